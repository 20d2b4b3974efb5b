package iocache

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/internal/parquet"
)

// ExecuteOrderExport writes every stored journey order to a Parquet file.
func ExecuteOrderExport(store contract.OrderStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for order export")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get order status: %w", err)
	}
	if status.TotalEntries == 0 {
		return errors.New("no journey orders found to export")
	}

	stored, err := store.List()
	if err != nil {
		return fmt.Errorf("failed to retrieve journey orders: %w", err)
	}

	rows := parquet.ConvertStoredOrders(stored)
	if err := parquet.WriteOrdersParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write journey orders: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stderr, "💾 Exported %d journey orders from %s to %s\n", len(rows), status.Backend, outputFile)
	return nil
}
