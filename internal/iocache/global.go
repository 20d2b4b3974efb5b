package iocache

import (
	"fmt"
	"sync"

	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &OrderStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for journey-order storage.
func GetDBFilePath() string {
	return contract.GetDBFilePath()
}

// InitStores initializes the global manager with the journey-order store.
func InitStores(backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		store, err := NewOrderStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize order store: %w", err)
			return
		}
		Manager.Lock()
		defer Manager.Unlock()
		Manager.order = store
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.order != nil {
			_ = Manager.order.Close()
		}
	})
}

// PrintOrderStatus prints journey-order store status information.
func PrintOrderStatus(status schema.OrderStatus) {
	fmt.Printf("Order Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Schema Version: %d\n", status.SchemaVersion)
	fmt.Printf("Datasets: %d\n", status.Datasets)
	fmt.Printf("Total Entries: %d\n", status.TotalEntries)
	if status.TotalEntries > 0 {
		fmt.Printf("Last Update: %s\n", status.LastUpdateTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Entry: %s\n", status.OldestEntryTime.Format("2006-01-02 15:04:05"))
	}
}

// PrintMigrationResult prints the outcome of a migration run.
func PrintMigrationResult(result schema.MigrationResult) {
	if !result.Changed {
		fmt.Printf("No migration needed. Database is already at version %d\n", result.ToVersion)
		return
	}
	fmt.Printf("Successfully migrated from version %d to version %d\n", result.FromVersion, result.ToVersion)
}
