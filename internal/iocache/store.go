package iocache

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/roadmap/internal/contract"
	"github.com/huangsam/roadmap/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// orderTable is the name of the table holding journey orders.
const orderTable = "journey_order"

// OrderStoreImpl handles durable journey-order storage using various database backends.
type OrderStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	now     func() time.Time
}

var _ contract.OrderStore = &OrderStoreImpl{} // Compile-time check

// NewOrderStore migrates the schema to the latest version and returns a store.
// The none backend yields a store that keeps nothing.
func NewOrderStore(backend schema.DatabaseBackend, connStr string) (*OrderStoreImpl, error) {
	if backend == schema.NoneBackend {
		return &OrderStoreImpl{backend: backend, now: time.Now}, nil
	}
	if _, err := MigrateOrders(backend, connStr, -1); err != nil {
		return nil, fmt.Errorf("failed to prepare %s order store: %w", backend, err)
	}
	db, err := openDB(backend, connStr)
	if err != nil {
		return nil, err
	}
	return &OrderStoreImpl{db: db, backend: backend, now: time.Now}, nil
}

// disabled reports whether the store keeps nothing.
func (s *OrderStoreImpl) disabled() bool {
	return s.backend == schema.NoneBackend || s.db == nil
}

// placeholder returns the n-th (1-based) parameter placeholder for the backend.
func (s *OrderStoreImpl) placeholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Load returns the stored orders of a dataset and their fingerprint.
func (s *OrderStoreImpl) Load(dataset string) (schema.JourneyOrder, string, error) {
	orders := schema.JourneyOrder{}
	if s.disabled() {
		return orders, "", nil
	}

	query := fmt.Sprintf(`SELECT program, journeys, fingerprint FROM %s WHERE dataset = %s ORDER BY program`,
		orderTable, s.placeholder(1))
	rows, err := s.db.Query(query, dataset)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load journey orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var fingerprint string
	for rows.Next() {
		var program, journeysJSON, fp string
		if err := rows.Scan(&program, &journeysJSON, &fp); err != nil {
			return nil, "", fmt.Errorf("failed to scan journey order: %w", err)
		}
		var journeys []string
		if err := json.Unmarshal([]byte(journeysJSON), &journeys); err != nil {
			return nil, "", fmt.Errorf("corrupt journey order for program %q: %w", program, err)
		}
		orders[program] = journeys
		if fingerprint == "" {
			fingerprint = fp
		} else if fingerprint != fp {
			// A mixed fingerprint never matches a real record set.
			fingerprint = "mixed"
		}
	}
	if err := rows.Err(); err != nil {
		return nil, "", err
	}
	return orders, fingerprint, nil
}

// Save upserts the journey order of one program.
func (s *OrderStoreImpl) Save(dataset, program string, journeys []string, fingerprint string) error {
	if s.disabled() {
		return nil
	}
	if journeys == nil {
		journeys = []string{}
	}
	data, err := json.Marshal(journeys)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(s.upsertQuery(), dataset, program, string(data), fingerprint, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save journey order for program %q: %w", program, err)
	}
	return nil
}

// upsertQuery returns the UPSERT query for the backend.
func (s *OrderStoreImpl) upsertQuery() string {
	switch s.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (dataset, program, journeys, fingerprint, updated_at) VALUES (?, ?, ?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE journeys = new.journeys, fingerprint = new.fingerprint, updated_at = new.updated_at`, orderTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (dataset, program, journeys, fingerprint, updated_at) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (dataset, program) DO UPDATE SET journeys = EXCLUDED.journeys, fingerprint = EXCLUDED.fingerprint, updated_at = EXCLUDED.updated_at`, orderTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (dataset, program, journeys, fingerprint, updated_at) VALUES (?, ?, ?, ?, ?)`, orderTable)
	}
}

// Clear removes every stored order of a dataset.
func (s *OrderStoreImpl) Clear(dataset string) error {
	if s.disabled() {
		return nil
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE dataset = %s`, orderTable, s.placeholder(1))
	if _, err := s.db.Exec(query, dataset); err != nil {
		return fmt.Errorf("failed to clear journey orders: %w", err)
	}
	return nil
}

// List returns every stored order, newest first.
func (s *OrderStoreImpl) List() ([]schema.StoredOrder, error) {
	if s.disabled() {
		return nil, nil
	}
	query := fmt.Sprintf(`SELECT dataset, program, journeys, fingerprint, updated_at FROM %s
		ORDER BY updated_at DESC, dataset, program`, orderTable)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list journey orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stored []schema.StoredOrder
	for rows.Next() {
		var rec schema.StoredOrder
		var journeysJSON string
		var ts int64
		if err := rows.Scan(&rec.Dataset, &rec.Program, &journeysJSON, &rec.Fingerprint, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan journey order: %w", err)
		}
		if err := json.Unmarshal([]byte(journeysJSON), &rec.Journeys); err != nil {
			return nil, fmt.Errorf("corrupt journey order for program %q: %w", rec.Program, err)
		}
		rec.UpdatedAt = time.Unix(ts, 0)
		stored = append(stored, rec)
	}
	return stored, rows.Err()
}

// GetStatus returns status information about the order store.
func (s *OrderStoreImpl) GetStatus() (schema.OrderStatus, error) {
	status := schema.OrderStatus{
		Backend:   string(s.backend),
		Connected: s.db != nil,
	}
	if s.disabled() {
		return status, nil
	}

	row := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*), COUNT(DISTINCT dataset) FROM %s`, orderTable))
	if err := row.Scan(&status.TotalEntries, &status.Datasets); err != nil {
		return status, fmt.Errorf("failed to get total entries: %w", err)
	}

	var version sql.NullInt64
	if err := s.db.QueryRow(`SELECT version FROM schema_migrations`).Scan(&version); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return status, fmt.Errorf("failed to get schema version: %w", err)
	}
	if version.Valid {
		status.SchemaVersion = uint(version.Int64)
	}

	if status.TotalEntries == 0 {
		return status, nil
	}

	var newest, oldest int64
	row = s.db.QueryRow(fmt.Sprintf(`SELECT MAX(updated_at), MIN(updated_at) FROM %s`, orderTable))
	if err := row.Scan(&newest, &oldest); err != nil {
		return status, fmt.Errorf("failed to get entry times: %w", err)
	}
	status.LastUpdateTime = time.Unix(newest, 0)
	status.OldestEntryTime = time.Unix(oldest, 0)
	return status, nil
}

// Close closes the underlying DB connection.
func (s *OrderStoreImpl) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
