package repository

import (
	"context"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel/attribute"

	"todoapi/internal/adapter/database/sqlite"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	"todoapi/pkg/tracing"
)

type TodoRepository struct {
	db *sqlite.DB
}

func NewTodoRepository(db *sqlite.DB) port.TodoRepository {
	return &TodoRepository{db: db}
}

// ownerScope restricts a write to rows owned by the given email. A missing
// owner resolves the subselect to NULL and the NOT NULL constraint rejects
// the insert, mirroring a foreign key failure.
func ownerScope(email string) sq.Sqlizer {
	return sq.Expr("user_id = (SELECT id FROM users WHERE email = ?)", email)
}

func (tr *TodoRepository) Create(ctx context.Context, title string, ownerEmail string) (domain.Todo, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.Create", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "INSERT"),
	})
	defer span.End()

	now := time.Now()

	query := tr.db.QueryBuilder.Insert("todos").
		Columns("title", "completed", "user_id", "created_at", "updated_at").
		Values(title, false, sq.Expr("(SELECT id FROM users WHERE email = ?)", ownerEmail), now, now)

	stmt, args, err := query.ToSql()

	if err != nil {
		tracing.AddSpanError(span, err)
		return domain.Todo{}, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Insert failed", "error", err, "title", title)
		return domain.Todo{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		tracing.AddSpanError(span, err)
		return domain.Todo{}, err
	}

	return tr.getByID(ctx, int(id))
}

func (tr *TodoRepository) getByID(ctx context.Context, id int) (domain.Todo, error) {
	query := tr.db.QueryBuilder.
		Select("id", "title", "completed", "user_id", "created_at", "updated_at").
		From("todos").
		Where(sq.Eq{"id": id}).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.Todo{}, err
	}

	var todo domain.Todo

	err = tr.db.QueryRowContext(ctx, stmt, args...).
		Scan(&todo.ID, &todo.Title, &todo.Completed, &todo.UserId, &todo.CreatedAt, &todo.UpdatedAt)

	if err != nil {
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

	query := tr.db.QueryBuilder.
		Select("t.id", "t.title", "t.completed", "t.user_id", "t.created_at", "t.updated_at").
		From("todos t").
		Join("users u ON u.id = t.user_id").
		Where(sq.Eq{"u.email": ownerEmail}).
		OrderBy("t.id")

	stmt, args, err := query.ToSql()

	if err != nil {
		tracing.AddSpanError(span, err)
		return nil, err
	}

	rows, err := tr.db.QueryContext(ctx, stmt, args...)

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

	query := tr.db.QueryBuilder.Update("todos").
		Set("completed", true).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"id": id}).
		Where(ownerScope(ownerEmail))

	stmt, args, err := query.ToSql()

	if err != nil {
		tracing.AddSpanError(span, err)
		return 0, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Update failed", "error", err, "id", id)
		return 0, err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", affected))

	return affected, nil
}

func (tr *TodoRepository) Delete(ctx context.Context, id int, ownerEmail string) (int64, error) {
	ctx, span := tracing.CreateChildSpan(ctx, "db.todo.Delete", []attribute.KeyValue{
		attribute.String("db.table", "todos"),
		attribute.String("db.operation", "DELETE"),
		attribute.Int("todo.id", id),
	})
	defer span.End()

	query := tr.db.QueryBuilder.Delete("todos").
		Where(sq.Eq{"id": id}).
		Where(ownerScope(ownerEmail))

	stmt, args, err := query.ToSql()

	if err != nil {
		tracing.AddSpanError(span, err)
		return 0, err
	}

	result, err := tr.db.ExecContext(ctx, stmt, args...)

	if err != nil {
		tracing.AddSpanError(span, err)
		slog.Error("Delete failed", "error", err, "id", id)
		return 0, err
	}

	affected, err := result.RowsAffected()

	if err != nil {
		return 0, err
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", affected))

	return affected, nil
}
