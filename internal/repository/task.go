package repository

import (
	"context"

	"docboard/internal/model"
)

// TaskRepository defines data access for dashboard tasks using SQL queries only.
// No business logic here — strictly persistence operations.
type TaskRepository interface {
	// Create inserts a new task row and returns the stored record.
	Create(ctx context.Context, task *model.Task) (*model.Task, error)

	// FindByID returns a task by its ID.
	FindByID(ctx context.Context, id string) (*model.Task, error)

	// List returns a paginated list of tasks and the total row count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Task], error)

	// Update rewrites a task's mutable fields and returns the stored record.
	Update(ctx context.Context, task *model.Task) (*model.Task, error)

	// Delete removes a task by ID. It returns nil if the row was deleted or did not exist.
	Delete(ctx context.Context, id string) error
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
