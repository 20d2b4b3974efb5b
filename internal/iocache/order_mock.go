package iocache

import (
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
	"github.com/stretchr/testify/mock"
)

// MockOrderManager is a mock implementation of OrderManager for testing.
type MockOrderManager struct {
	mock.Mock
}

var _ contract.OrderManager = &MockOrderManager{} // Compile-time check

// GetOrderStore implements the OrderManager interface.
func (m *MockOrderManager) GetOrderStore() contract.OrderStore {
	ret := m.Called()
	store, _ := ret.Get(0).(contract.OrderStore)
	return store
}

// MockOrderStore is a mock implementation of OrderStore for testing.
type MockOrderStore struct {
	mock.Mock
}

var _ contract.OrderStore = &MockOrderStore{} // Compile-time check

// Load implements the OrderStore interface.
func (m *MockOrderStore) Load(dataset string) (schema.JourneyOrder, string, error) {
	args := m.Called(dataset)
	orders, _ := args.Get(0).(schema.JourneyOrder)
	return orders, args.String(1), args.Error(2)
}

// Save implements the OrderStore interface.
func (m *MockOrderStore) Save(dataset, program string, journeys []string, fingerprint string) error {
	args := m.Called(dataset, program, journeys, fingerprint)
	return args.Error(0)
}

// Clear implements the OrderStore interface.
func (m *MockOrderStore) Clear(dataset string) error {
	args := m.Called(dataset)
	return args.Error(0)
}

// List implements the OrderStore interface.
func (m *MockOrderStore) List() ([]schema.StoredOrder, error) {
	args := m.Called()
	stored, _ := args.Get(0).([]schema.StoredOrder)
	return stored, args.Error(1)
}

// GetStatus implements the OrderStore interface.
func (m *MockOrderStore) GetStatus() (schema.OrderStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.OrderStatus), args.Error(1)
}

// Close implements the OrderStore interface.
func (m *MockOrderStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
