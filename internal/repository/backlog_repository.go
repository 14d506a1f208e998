package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/contentflow/backlog-api/internal/models"
)

type BacklogRepository interface {
	Create(ctx context.Context, item *models.BacklogItem) error
	List(ctx context.Context, status, postType string) ([]*models.BacklogItem, error)
	GetByID(ctx context.Context, id string) (*models.BacklogItem, bool, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.BacklogItem, bool, error)
	ListDueForPublish(ctx context.Context, until time.Time) ([]*models.BacklogItem, error)
	UpdateStatusIfCurrent(ctx context.Context, id, from, to string) (bool, error)
}

type backlogRepository struct {
	db *sql.DB
}

func NewBacklogRepository(db *sql.DB) BacklogRepository {
	return &backlogRepository{db: db}
}

const backlogColumns = `id, status, topic, post_type, target_audience, main_message, objective, notes, source_insights, structure, visual_prompts, planned_date, created_at, updated_at`

func scanBacklogItem(row interface{ Scan(...interface{}) error }) (*models.BacklogItem, error) {
	var item models.BacklogItem
	err := row.Scan(
		&item.ID, &item.Status, &item.Topic, &item.PostType,
		&item.TargetAudience, &item.MainMessage, &item.Objective,
		&item.Notes, &item.SourceInsights, &item.Structure,
		&item.VisualPrompts, &item.PlannedDate,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *backlogRepository) Create(ctx context.Context, item *models.BacklogItem) error {
	query := `
		INSERT INTO backlog_items (id, status, topic, post_type, target_audience, main_message, objective, notes, source_insights, structure, visual_prompts, planned_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		item.ID, item.Status, item.Topic, item.PostType,
		item.TargetAudience, item.MainMessage, item.Objective,
		item.Notes, item.SourceInsights, item.Structure,
		item.VisualPrompts, item.PlannedDate,
	).Scan(&item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return err
	}

	return nil
}

func (r *backlogRepository) List(ctx context.Context, status, postType string) ([]*models.BacklogItem, error) {
	query := `SELECT ` + backlogColumns + ` FROM backlog_items`

	var conditions []string
	var args []interface{}

	if status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if postType != "" {
		args = append(args, postType)
		conditions = append(conditions, fmt.Sprintf("post_type = $%d", len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.BacklogItem, 0)
	for rows.Next() {
		item, err := scanBacklogItem(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *backlogRepository) GetByID(ctx context.Context, id string) (*models.BacklogItem, bool, error) {
	query := `SELECT ` + backlogColumns + ` FROM backlog_items WHERE id = $1`

	item, err := scanBacklogItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return item, true, nil
}

// Update merges the given column/value pairs into the row and refreshes
// updated_at. The bool result reports whether the id existed.
func (r *backlogRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.BacklogItem, bool, error) {
	if len(fields) == 0 {
		return r.GetByID(ctx, id)
	}

	// Deterministic column order keeps the generated SQL stable.
	columns := make([]string, 0, len(fields))
	for col := range fields {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	setClauses := make([]string, 0, len(fields)+1)
	args := make([]interface{}, 0, len(fields)+2)
	for _, col := range columns {
		args = append(args, fields[col])
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	args = append(args, time.Now())
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, id)

	query := fmt.Sprintf(
		"UPDATE backlog_items SET %s WHERE id = $%d RETURNING %s",
		strings.Join(setClauses, ", "), len(args), backlogColumns,
	)

	item, err := scanBacklogItem(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		slog.Info(err.Error())
		return nil, false, err
	}

	return item, true, nil
}

func (r *backlogRepository) ListDueForPublish(ctx context.Context, until time.Time) ([]*models.BacklogItem, error) {
	query := `SELECT ` + backlogColumns + ` FROM backlog_items
		WHERE status = $1 AND planned_date IS NOT NULL AND planned_date <= $2
		ORDER BY planned_date ASC`

	rows, err := r.db.QueryContext(ctx, query, models.StatusApproved, until)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	items := make([]*models.BacklogItem, 0)
	for rows.Next() {
		item, err := scanBacklogItem(rows)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatusIfCurrent flips the status only when the row still holds the
// expected current status, so duplicate publish tasks are no-ops.
func (r *backlogRepository) UpdateStatusIfCurrent(ctx context.Context, id, from, to string) (bool, error) {
	query := `
		UPDATE backlog_items
		SET status = $1,
			updated_at = $2
		WHERE id = $3 AND status = $4
	`
	result, err := r.db.ExecContext(ctx, query, to, time.Now(), id, from)
	if err != nil {
		slog.Info(err.Error())
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
