package employee

type StoreAPI interface {
	Add(r Record) error
	FindByID(id string) (Record, error)
	All() []Record
	Len() int
}
