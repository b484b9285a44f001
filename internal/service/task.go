package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"docboard/internal/model"
	"docboard/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
)

// TaskListResult is the service-level DTO for paginated tasks.
type TaskListResult struct {
	Items []model.Task `json:"data"`
	Total int          `json:"total"`
}

// TaskService defines the use cases for dashboard tasks.
type TaskService interface {
	// Create stores a new task; status defaults to open when empty.
	Create(ctx context.Context, title, description, status string) (*model.Task, error)

	// List returns tasks using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*TaskListResult, error)

	// Get returns a single task by its ID.
	Get(ctx context.Context, id string) (*model.Task, error)

	// Update rewrites a task's title, description and status.
	Update(ctx context.Context, id, title, description, status string) (*model.Task, error)

	// Delete removes a task by ID.
	Delete(ctx context.Context, id string) error
}

type taskService struct {
	repo repository.TaskRepository
}

// NewTaskService constructs a new TaskService.
func NewTaskService(repo repository.TaskRepository) TaskService {
	return &taskService{repo: repo}
}

func (s *taskService) Create(ctx context.Context, title, description, status string) (*model.Task, error) {
	if title == "" {
		return nil, ErrTitleRequired
	}
	if status == "" {
		status = model.TaskStatusOpen
	}
	if !model.ValidTaskStatus(status) {
		return nil, ErrInvalidStatus
	}
	now := time.Now().UTC()
	return s.repo.Create(ctx, &model.Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (s *taskService) List(ctx context.Context, limit, offset int) (*TaskListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &TaskListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *taskService) Get(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	task, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) Update(ctx context.Context, id, title, description, status string) (*model.Task, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !model.ValidTaskStatus(status) {
		return nil, ErrInvalidStatus
	}
	task, err := s.repo.Update(ctx, &model.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	// Existence check so missing ids surface as a miss, not a silent no-op.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTaskNotFound
		}
		return err
	}
	return s.repo.Delete(ctx, id)
}
