package port

import (
	"context"

	"todoapi/internal/core/domain"
)

type TodoRepository interface {
	Create(ctx context.Context, title string, ownerEmail string) (domain.Todo, error)
	GetAllByOwner(ctx context.Context, ownerEmail string) ([]domain.Todo, error)
	Complete(ctx context.Context, id int, ownerEmail string) (int64, error)
	Delete(ctx context.Context, id int, ownerEmail string) (int64, error)
}

type TodoService interface {
	Create(ctx context.Context, title string, ownerEmail string) (domain.Todo, error)
	List(ctx context.Context, ownerEmail string) ([]domain.Todo, error)
	Complete(ctx context.Context, id int, ownerEmail string) error
	Delete(ctx context.Context, id int, ownerEmail string) error
}
