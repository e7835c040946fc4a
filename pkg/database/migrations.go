package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These power content search over the message trail and the memory store.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_bus_messages_content_gin
		ON bus_messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create bus_messages content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_memory_records_content_gin
		ON memory_records USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create memory_records content GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. Tool requests aggregate by name while undeployed; once
// a tool ships, a fresh request row for the same name may open again.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS toolrequest_tool_name_undeployed
		ON tool_requests (tool_name)
		WHERE deployed = false`)
	if err != nil {
		return fmt.Errorf("failed to create undeployed tool request index: %w", err)
	}

	return nil
}
