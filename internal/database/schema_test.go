package database

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Feature: barbershop-platform, Property 68: Pending migrations are executed
// Validates: Requirements 23.2
func TestMigrationFilesExist(t *testing.T) {
	migrationsDir := "../../migrations"

	// Check if migrations directory exists
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		t.Fatal("Migrations directory does not exist")
	}

	// Expected migration files
	expectedMigrations := []string{
		"00001_create_users_table.sql",
		"00002_create_refresh_tokens_table.sql",
		"00003_create_customers_table.sql",
		"00004_create_products_table.sql",
		"00005_create_services_table.sql",
		"00006_create_orders_table.sql",
		"00007_create_order_items_table.sql",
		"00008_create_appointments_table.sql",
		"00009_create_messages_table.sql",
		"00010_create_revenue_table.sql",
		"00011_create_notifications_table.sql",
	}

	for _, migration := range expectedMigrations {
		path := filepath.Join(migrationsDir, migration)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("Migration file %s does not exist", migration)
		}
	}
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	migrationsDir := "../../migrations"

	files, err := os.ReadDir(migrationsDir)
	if err != nil {
		t.Fatalf("Failed to read migrations directory: %v", err)
	}

	sqlFileCount := 0
	for _, file := range files {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		sqlFileCount++
		content, err := os.ReadFile(filepath.Join(migrationsDir, file.Name()))
		if err != nil {
			t.Errorf("Failed to read migration file %s: %v", file.Name(), err)
			continue
		}

		contentStr := string(content)

		// Check for goose Up directive
		if !strings.Contains(contentStr, "-- +goose Up") {
			t.Errorf("Migration file %s missing '-- +goose Up' directive", file.Name())
		}

		// Check for goose Down directive
		if !strings.Contains(contentStr, "-- +goose Down") {
			t.Errorf("Migration file %s missing '-- +goose Down' directive", file.Name())
		}

		// Check for StatementBegin/End
		if !strings.Contains(contentStr, "-- +goose StatementBegin") {
			t.Errorf("Migration file %s missing '-- +goose StatementBegin' directive", file.Name())
		}

		if !strings.Contains(contentStr, "-- +goose StatementEnd") {
			t.Errorf("Migration file %s missing '-- +goose StatementEnd' directive", file.Name())
		}
	}

	if sqlFileCount == 0 {
		t.Error("No SQL migration files found")
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	migrationsDir := "../../migrations"

	expectedTables := map[string]string{
		"users":          "00001_create_users_table.sql",
		"refresh_tokens": "00002_create_refresh_tokens_table.sql",
		"customers":      "00003_create_customers_table.sql",
		"products":       "00004_create_products_table.sql",
		"services":       "00005_create_services_table.sql",
		"orders":         "00006_create_orders_table.sql",
		"order_items":    "00007_create_order_items_table.sql",
		"appointments":   "00008_create_appointments_table.sql",
		"messages":       "00009_create_messages_table.sql",
		"revenue":        "00010_create_revenue_table.sql",
		"notifications":  "00011_create_notifications_table.sql",
	}

	for tableName, migrationFile := range expectedTables {
		path := filepath.Join(migrationsDir, migrationFile)
		content, err := os.ReadFile(path)
		if err != nil {
			t.Errorf("Failed to read migration file %s: %v", migrationFile, err)
			continue
		}

		contentStr := string(content)

		// Check if migration creates the table
		createTableStmt := "CREATE TABLE IF NOT EXISTS " + tableName
		if !strings.Contains(contentStr, createTableStmt) {
			t.Errorf("Migration file %s does not create table %s", migrationFile, tableName)
		}

		// Check if migration has drop table in down section
		dropTableStmt := "DROP TABLE IF EXISTS " + tableName
		if !strings.Contains(contentStr, dropTableStmt) {
			t.Errorf("Migration file %s does not drop table %s in down section", migrationFile, tableName)
		}
	}
}

func TestOrdersTableHasLifecycleColumns(t *testing.T) {
	migrationsDir := "../../migrations"
	path := filepath.Join(migrationsDir, "00006_create_orders_table.sql")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read orders migration: %v", err)
	}

	contentStr := string(content)
	requiredColumns := []string{
		"order_code TEXT NOT NULL UNIQUE",
		"customer_id BIGINT NOT NULL",
		"total_amount BIGINT",
		"status TEXT NOT NULL DEFAULT 'pending'",
		"payment_status TEXT NOT NULL DEFAULT 'pending'",
		"shipped_at TIMESTAMPTZ",
		"delivered_at TIMESTAMPTZ",
		"month INTEGER NOT NULL",
	}

	for _, column := range requiredColumns {
		if !strings.Contains(contentStr, column) {
			t.Errorf("Orders table missing required column definition: %s", column)
		}
	}
}

func TestRevenueTableEnforcesOneEntryPerOrder(t *testing.T) {
	migrationsDir := "../../migrations"
	path := filepath.Join(migrationsDir, "00010_create_revenue_table.sql")

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read revenue migration: %v", err)
	}

	contentStr := string(content)

	// The partial unique index backs the idempotent ledger reconciliation:
	// at most one order-derived entry may reference a given order.
	if !strings.Contains(contentStr, "CREATE UNIQUE INDEX IF NOT EXISTS idx_revenue_order_id") {
		t.Error("Revenue table missing unique index on order_id")
	}
	if !strings.Contains(contentStr, "WHERE order_id IS NOT NULL") {
		t.Error("Revenue order_id index must be partial so adjustments stay unconstrained")
	}
}

func TestMonthBucketedTablesHaveMonthIndex(t *testing.T) {
	migrationsDir := "../../migrations"

	indexed := map[string]string{
		"00006_create_orders_table.sql":       "idx_orders_month",
		"00008_create_appointments_table.sql": "idx_appointments_month",
		"00009_create_messages_table.sql":     "idx_messages_month",
		"00010_create_revenue_table.sql":      "idx_revenue_month",
	}

	for file, index := range indexed {
		content, err := os.ReadFile(filepath.Join(migrationsDir, file))
		if err != nil {
			t.Errorf("Failed to read migration file %s: %v", file, err)
			continue
		}

		if !strings.Contains(string(content), index) {
			t.Errorf("Migration file %s missing month index %s", file, index)
		}
	}
}
