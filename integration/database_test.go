//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/huangsam/roadmap/internal/iocache"
	"github.com/huangsam/roadmap/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// startMySQL starts a MySQL container and returns its connection string.
func startMySQL(t *testing.T) string {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "roadmap",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = mysqlC.Terminate(ctx) })

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	return fmt.Sprintf("root:secret123@tcp(%s:%s)/roadmap?parseTime=true", host, port.Port())
}

// startPostgres starts a PostgreSQL container and returns its connection string.
func startPostgres(t *testing.T) string {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres sslmode=disable", host, port.Port())
}

// exerciseStore runs the journey-order lifecycle against one backend.
func exerciseStore(t *testing.T, backend schema.DatabaseBackend, connStr string) {
	store, err := iocache.NewOrderStore(backend, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Save("sheet.csv", "Payments", []string{"Checkout", "Refunds"}, "fp1"))
	require.NoError(t, store.Save("sheet.csv", "Payments", []string{"Refunds", "Checkout"}, "fp1"))
	require.NoError(t, store.Save("other.csv", "Lending", []string{"Onboarding"}, "fp2"))

	orders, fingerprint, err := store.Load("sheet.csv")
	require.NoError(t, err)
	assert.Equal(t, "fp1", fingerprint)
	assert.Equal(t, schema.JourneyOrder{"Payments": {"Refunds", "Checkout"}}, orders)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, 2, status.TotalEntries)
	assert.Equal(t, 2, status.Datasets)

	require.NoError(t, store.Clear("sheet.csv"))
	orders, _, err = store.Load("sheet.csv")
	require.NoError(t, err)
	assert.Empty(t, orders)

	result, err := iocache.MigrateOrders(backend, connStr, -1)
	require.NoError(t, err)
	assert.False(t, result.Changed)
}

// TestOrderStoreWithMySQL tests the journey-order store with a MySQL backend.
func TestOrderStoreWithMySQL(t *testing.T) {
	connStr := startMySQL(t)
	exerciseStore(t, schema.MySQLBackend, connStr)

	home := t.TempDir()
	sheet := writeSheet(t, home)
	env := []string{"ROADMAP_ORDER_BACKEND=mysql", "ROADMAP_ORDER_DB_CONNECT=" + connStr}

	out, err := runRoadmapCommand(t, home, env, "layout", sheet)
	require.NoError(t, err, out)
	out, err = runRoadmapCommand(t, home, env, "order", "status")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Order Backend: mysql")
}

// TestOrderStoreWithPostgres tests the journey-order store with a PostgreSQL backend.
func TestOrderStoreWithPostgres(t *testing.T) {
	connStr := startPostgres(t)
	exerciseStore(t, schema.PostgreSQLBackend, connStr)

	home := t.TempDir()
	sheet := writeSheet(t, home)
	env := []string{"ROADMAP_ORDER_BACKEND=postgresql", "ROADMAP_ORDER_DB_CONNECT=" + connStr}

	out, err := runRoadmapCommand(t, home, env, "layout", sheet)
	require.NoError(t, err, out)
	out, err = runRoadmapCommand(t, home, env, "order", "status")
	require.NoError(t, err, out)
	assert.Contains(t, out, "Order Backend: postgresql")
}
