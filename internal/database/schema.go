package database

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the backlog table and its indexes if they do not
// exist yet. Safe to run on every startup.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	backlogTable := `
	CREATE TABLE IF NOT EXISTS backlog_items (
		id TEXT PRIMARY KEY,
		status TEXT NOT NULL DEFAULT 'idea',
		topic TEXT NOT NULL,
		post_type TEXT NOT NULL DEFAULT 'ig_carousel',
		target_audience TEXT NOT NULL DEFAULT 'youth',
		main_message TEXT NOT NULL DEFAULT '',
		objective TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		source_insights TEXT NOT NULL DEFAULT '[]',
		structure TEXT NOT NULL DEFAULT '{}',
		visual_prompts TEXT NOT NULL DEFAULT '[]',
		planned_date TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS idx_backlog_items_status ON backlog_items(status);
	CREATE INDEX IF NOT EXISTS idx_backlog_items_created_at ON backlog_items(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_backlog_items_planned_date ON backlog_items(planned_date);
	`

	if _, err := db.ExecContext(ctx, backlogTable); err != nil {
		return fmt.Errorf("failed to create backlog_items table: %w", err)
	}

	return nil
}
