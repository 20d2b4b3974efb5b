// Package iocache persists journey orders across runs.
package iocache

import (
	"sync"

	"github.com/huangsam/roadmap/internal/contract"
)

// OrderStoreManager manages the OrderStore instance.
type OrderStoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	order        contract.OrderStore
}

var _ contract.OrderManager = &OrderStoreManager{} // Compile-time check

// GetOrderStore returns the journey-order store.
func (mgr *OrderStoreManager) GetOrderStore() contract.OrderStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.order
}
