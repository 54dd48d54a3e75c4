package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"empman/internal/domain/audit"
)

type Service struct {
	store    StoreAPI
	recorder audit.Recorder
	now      func() time.Time
}

func NewService(store StoreAPI, recorder audit.Recorder) *Service {
	return &Service{store: store, recorder: recorder, now: time.Now}
}

func (s *Service) Add(ctx context.Context, role Role, name, id string, fields Fields) (Record, error) {
	r, err := Build(role, name, id, fields)
	if err != nil {
		return nil, err
	}
	if err := s.store.Add(r); err != nil {
		return nil, err
	}
	return r, s.record(ctx, audit.ActionAdded, r)
}

// Update applies fields to the record with the given id. An unknown id
// returns ErrNotFound and writes nothing to the action log.
func (s *Service) Update(ctx context.Context, id string, fields Fields) (Record, error) {
	r, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if err := UpdateFields(r, fields); err != nil {
		return nil, err
	}
	return r, s.record(ctx, audit.ActionUpdated, r)
}

func (s *Service) Find(id string) (Record, error) {
	return s.store.FindByID(id)
}

func (s *Service) List() []Record {
	return s.store.All()
}

func (s *Service) record(ctx context.Context, action audit.Action, r Record) error {
	if s.recorder == nil {
		return nil
	}
	entry := audit.Entry{
		ID:        uuid.NewString(),
		Timestamp: s.now(),
		Action:    action,
		Details:   Describe(r),
	}
	if err := s.recorder.Record(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", ErrNotRecorded, err)
	}
	return nil
}
