package iocache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/roadmap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *OrderStoreImpl {
	t.Helper()
	store, err := NewOrderStore(schema.SQLiteBackend, filepath.Join(t.TempDir(), "orders.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOrderStoreLifecycle(t *testing.T) {
	store := newTestStore(t)

	orders, fp, err := store.Load("/data/roadmap.csv")
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, fp)

	require.NoError(t, store.Save("/data/roadmap.csv", "Payments", []string{"Refunds", "Checkout"}, "abc"))
	require.NoError(t, store.Save("/data/roadmap.csv", "Lending", []string{"Apply"}, "abc"))
	require.NoError(t, store.Save("/data/other.csv", "Payments", []string{"Checkout"}, "def"))

	orders, fp, err = store.Load("/data/roadmap.csv")
	require.NoError(t, err)
	assert.Equal(t, "abc", fp)
	assert.Equal(t, schema.JourneyOrder{
		"Payments": {"Refunds", "Checkout"},
		"Lending":  {"Apply"},
	}, orders)

	// Upsert replaces the existing row.
	require.NoError(t, store.Save("/data/roadmap.csv", "Payments", []string{"Checkout", "Refunds"}, "abc"))
	orders, _, err = store.Load("/data/roadmap.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"Checkout", "Refunds"}, orders["Payments"])

	require.NoError(t, store.Clear("/data/roadmap.csv"))
	orders, _, err = store.Load("/data/roadmap.csv")
	require.NoError(t, err)
	assert.Empty(t, orders)

	orders, fp, err = store.Load("/data/other.csv")
	require.NoError(t, err)
	assert.Equal(t, "def", fp)
	assert.Len(t, orders, 1)
}

func TestOrderStoreMixedFingerprint(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save("d", "A", []string{"x"}, "one"))
	require.NoError(t, store.Save("d", "B", []string{"y"}, "two"))

	_, fp, err := store.Load("d")
	require.NoError(t, err)
	assert.NotEqual(t, "one", fp)
	assert.NotEqual(t, "two", fp)
}

func TestOrderStoreListAndStatus(t *testing.T) {
	store := newTestStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalEntries)
	assert.Equal(t, uint(LatestSchemaVersion), status.SchemaVersion)

	clock := time.Unix(1_750_000_000, 0)
	store.now = func() time.Time { return clock }
	require.NoError(t, store.Save("d1", "A", []string{"x", "y"}, "fp"))
	clock = clock.Add(time.Hour)
	require.NoError(t, store.Save("d2", "B", nil, "fp"))

	stored, err := store.List()
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "d2", stored[0].Dataset)
	assert.Equal(t, []string{}, stored[0].Journeys)
	assert.Equal(t, []string{"x", "y"}, stored[1].Journeys)

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, 2, status.Datasets)
	assert.Equal(t, clock.Unix(), status.LastUpdateTime.Unix())
	assert.Equal(t, clock.Add(-time.Hour).Unix(), status.OldestEntryTime.Unix())
}

func TestOrderStoreNoneBackend(t *testing.T) {
	store, err := NewOrderStore(schema.NoneBackend, "")
	require.NoError(t, err)

	require.NoError(t, store.Save("d", "A", []string{"x"}, "fp"))
	orders, fp, err := store.Load("d")
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.Empty(t, fp)
	require.NoError(t, store.Clear("d"))

	stored, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, stored)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
	assert.NoError(t, store.Close())
}

func TestNewOrderStoreUnsupportedBackend(t *testing.T) {
	_, err := NewOrderStore("redis", "")
	assert.Error(t, err)
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "?", (&OrderStoreImpl{backend: schema.SQLiteBackend}).placeholder(1))
	assert.Equal(t, "?", (&OrderStoreImpl{backend: schema.MySQLBackend}).placeholder(2))
	assert.Equal(t, "$3", (&OrderStoreImpl{backend: schema.PostgreSQLBackend}).placeholder(3))
}
