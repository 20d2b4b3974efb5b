package schema

import "time"

// OrderStatus represents the status of the journey-order store.
type OrderStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	Datasets        int       `json:"datasets"`
	TotalEntries    int       `json:"total_entries"`
	LastUpdateTime  time.Time `json:"last_update_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	SchemaVersion   uint      `json:"schema_version"`
}

// StoredOrder is one persisted program order for a dataset.
type StoredOrder struct {
	Dataset     string    `json:"dataset"`
	Program     string    `json:"program"`
	Journeys    []string  `json:"journeys"`
	Fingerprint string    `json:"fingerprint"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MigrationResult describes one schema migration run.
type MigrationResult struct {
	Backend     string `json:"backend"`
	FromVersion uint   `json:"from_version"`
	ToVersion   uint   `json:"to_version"`
	Changed     bool   `json:"changed"`
}
