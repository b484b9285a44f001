package postgres

import (
	"context"
	"database/sql"

	"docboard/internal/model"
	"docboard/internal/repository"
)

// TaskPostgres is a PostgreSQL implementation of repository.TaskRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type TaskPostgres struct {
	db *sql.DB
}

// NewTaskPostgres creates a new TaskPostgres repository.
func NewTaskPostgres(db *sql.DB) *TaskPostgres {
	return &TaskPostgres{db: db}
}

var _ repository.TaskRepository = (*TaskPostgres)(nil)

// Create inserts a new task row and returns the stored record.
func (r *TaskPostgres) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	const q = `
		INSERT INTO tasks (id, title, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, description, status, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.CreatedAt,
		task.UpdatedAt,
	)
	return scanTask(row)
}

// FindByID fetches a single task by its ID.
func (r *TaskPostgres) FindByID(ctx context.Context, id string) (*model.Task, error) {
	const q = `
		SELECT id, title, description, status, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`
	return scanTask(r.db.QueryRowContext(ctx, q, id))
}

// List returns tasks using LIMIT/OFFSET pagination and a total count.
func (r *TaskPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Task], error) {
	const qCount = `SELECT COUNT(*) FROM tasks`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT id, title, description, status, created_at, updated_at
		FROM tasks
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(
			&t.ID,
			&t.Title,
			&t.Description,
			&t.Status,
			&t.CreatedAt,
			&t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Task]{
		Items: items,
		Total: total,
	}, nil
}

// Update rewrites the mutable fields of a task row.
func (r *TaskPostgres) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	const q = `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, updated_at = $5
		WHERE id = $1
		RETURNING id, title, description, status, created_at, updated_at
	`
	row := r.db.QueryRowContext(ctx, q,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.UpdatedAt,
	)
	return scanTask(row)
}

// Delete removes a task by ID. It does not return an error if the row does not exist.
func (r *TaskPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tasks WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

func scanTask(row *sql.Row) (*model.Task, error) {
	var t model.Task
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
