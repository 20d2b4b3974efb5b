// Package contract provides interfaces and shared utilities for roadmap's internal architecture.
package contract

import "github.com/huangsam/roadmap/schema"

// OrderManager defines the interface for reaching the journey-order store.
// This allows the persistence layer to be mocked for testing.
type OrderManager interface {
	GetOrderStore() OrderStore
}

// OrderStore persists user-chosen journey orders per dataset and program.
type OrderStore interface {
	// Load returns every stored program order of a dataset and the record-set
	// fingerprint they were saved against. An unknown dataset yields an empty map.
	Load(dataset string) (schema.JourneyOrder, string, error)

	// Save upserts the journey order of one program.
	Save(dataset, program string, journeys []string, fingerprint string) error

	// Clear removes every stored order of a dataset.
	Clear(dataset string) error

	// List returns every stored order, newest first.
	List() ([]schema.StoredOrder, error)

	// GetStatus returns status information about the store.
	GetStatus() (schema.OrderStatus, error)

	// Close closes the underlying connection.
	Close() error
}
