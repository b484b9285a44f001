package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"docboard/internal/model"
	"docboard/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func taskColumns() []string {
	return []string{"id", "title", "description", "status", "created_at", "updated_at"}
}

func TestTaskPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTaskPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	task := &model.Task{
		ID:          "test-uuid",
		Title:       "Review contract",
		Description: "Q3 supplier contract",
		Status:      model.TaskStatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(task.ID, task.Title, task.Description, task.Status, task.CreatedAt, task.UpdatedAt)

	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(task.ID, task.Title, task.Description, task.Status, task.CreatedAt, task.UpdatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, task)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, task.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTaskPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(taskColumns()).
			AddRow("test-id", "Review contract", "", model.TaskStatusOpen, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM tasks WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(rows)

		task, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.NotNil(t, task)
		assert.Equal(t, "test-id", task.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM tasks WHERE id = ?").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		task, err := repo.FindByID(ctx, "missing")

		assert.Error(t, err)
		assert.True(t, errors.Is(err, sql.ErrNoRows))
		assert.Nil(t, task)
	})
}

func TestTaskPostgres_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTaskPostgres(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM tasks").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		rows := sqlmock.NewRows(taskColumns()).
			AddRow("test-id", "Review contract", "", model.TaskStatusDone, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM tasks ORDER BY").
			WithArgs(10, 0).
			WillReturnRows(rows)

		res, err := repo.List(ctx, repository.PageQuery{Limit: 10, Offset: 0})

		assert.NoError(t, err)
		assert.Equal(t, 1, res.Total)
		assert.Len(t, res.Items, 1)
	})
}

func TestTaskPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTaskPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	task := &model.Task{
		ID:        "test-id",
		Title:     "Review contract",
		Status:    model.TaskStatusInProgress,
		UpdatedAt: now,
	}

	rows := sqlmock.NewRows(taskColumns()).
		AddRow(task.ID, task.Title, task.Description, task.Status, now, now)

	mock.ExpectQuery("UPDATE tasks").
		WithArgs(task.ID, task.Title, task.Description, task.Status, task.UpdatedAt).
		WillReturnRows(rows)

	result, err := repo.Update(ctx, task)

	assert.NoError(t, err)
	assert.Equal(t, model.TaskStatusInProgress, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskPostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewTaskPostgres(db)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM tasks WHERE id = ?").
		WithArgs("test-id").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Delete(ctx, "test-id")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
