package storage

// Backend persists whole collection documents by name. Load returns
// (nil, nil) when the collection has never been written.
type Backend interface {
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
	Describe(name string) string
}

const (
	HotelsCollection       = "hotels"
	CustomersCollection    = "customers"
	ReservationsCollection = "reservations"
)
