package employee

import "fmt"

// Store keeps records in insertion order for the lifetime of the process.
// It is not safe for concurrent use.
type Store struct {
	records []Record
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(r Record) error {
	id := r.Identity().ID
	if _, err := s.FindByID(id); err == nil {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	s.records = append(s.records, r)
	return nil
}

func (s *Store) FindByID(id string) (Record, error) {
	for _, r := range s.records {
		if r.Identity().ID == id {
			return r, nil
		}
	}
	return nil, ErrNotFound
}

// All returns a snapshot of the records; appending to it does not affect the
// store, but the records themselves are shared.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	return len(s.records)
}
