package repository

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	"todoapi/pkg/tracing"
)

type TodoRepository struct {
	db *postgres.DB
}

func NewTodoRepository(db *postgres.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

func (tr *TodoRepository) Create(ctx context.Context, title string, ownerEmail string) (domain.Todo, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.Create", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "INSERT"),
	})
	defer span.End()

	now := time.Now()

	query := `INSERT INTO todos (title, completed, user_id, created_at, updated_at)
		VALUES ($1, false, (SELECT id FROM users WHERE email = $2), $3, $3)
		RETURNING id, title, completed, user_id, created_at, updated_at`

	var todo domain.Todo

	err := tr.db.QueryRow(ctx, query, title, ownerEmail, now).
		Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.UserId, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Insert failed", "error", err, "title", title)
		return domain.Todo{}, err
	}

	return todo, nil
}

func (tr *TodoRepository) GetAllByOwner(ctx context.Context, ownerEmail string) ([]domain.Todo, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.GetAllByOwner", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "SELECT"),
	})
	defer span.End()

	query := `SELECT t.id, t.title, t.completed, t.user_id, t.created_at, t.updated_at
		FROM todos t
		JOIN users u ON u.id = t.user_id
		WHERE u.email = $1
		ORDER BY t.id`

	rows, err := tr.db.Query(ctx, query, ownerEmail)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Error fetching todos", "error", err)
		return nil, err
	}

	defer rows.Close()

	todos := []domain.Todo{}

	for rows.Next() {
		var todo domain.Todo

		err = rows.Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.UserId, &todo.CreatedAt, &todo.UpdatedAt)

		if err != nil {
			tracing.AddSpanError(span, err)
			return nil, err
		}

		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		tracing.AddSpanError(span, err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("db.rows_returned", len(todos)))

	return todos, nil
}

func (tr *TodoRepository) Complete(ctx context.Context, id int, ownerEmail string) (int64, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.Complete", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "UPDATE"),
		attribute.Int("todo.id", id),
	})
	defer span.End()

	query := `UPDATE todos SET completed = true, updated_at = $1
		WHERE id = $2 AND user_id = (SELECT id FROM users WHERE email = $3)`

	tag, err := tr.db.Exec(ctx, query, time.Now(), id, ownerEmail)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Update failed", "error", err, "id", id)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", tag.RowsAffected()))

	return tag.RowsAffected(), nil
}

func (tr *TodoRepository) Delete(ctx context.Context, id int, ownerEmail string) (int64, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.Delete", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "DELETE"),
		attribute.Int("todo.id", id),
	})
	defer span.End()

	query := `DELETE FROM todos
		WHERE id = $1 AND user_id = (SELECT id FROM users WHERE email = $2)`

	tag, err := tr.db.Exec(ctx, query, id, ownerEmail)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Delete failed", "error", err, "id", id)
		return 0, err
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", tag.RowsAffected()))

	return tag.RowsAffected(), nil
}
