package service

import (
	"context"
	"log/slog"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

type TodoService struct {
	repo port.TodoRepository
}

func NewTodoService(repo port.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (ts *TodoService) Create(ctx context.Context, title string, ownerEmail string) (domain.Todo, error) {
	todo, err := ts.repo.Create(ctx, title, ownerEmail)

	if err != nil {
		slog.Error("Todo#Create", "error", err, "title", title)
		return domain.Todo{}, err
	}

	return todo, nil
}

func (ts *TodoService) List(ctx context.Context, ownerEmail string) ([]domain.Todo, error) {
	return ts.repo.GetAllByOwner(ctx, ownerEmail)
}

func (ts *TodoService) Complete(ctx context.Context, id int, ownerEmail string) error {
	affected, err := ts.repo.Complete(ctx, id, ownerEmail)

	if err != nil {
		return err
	}

	if affected == 0 {
		return domain.ErrTodoNotFound
	}

	return nil
}

// Delete is idempotent: removing an absent todo, or one owned by somebody
// else, affects zero rows and still reports success.
func (ts *TodoService) Delete(ctx context.Context, id int, ownerEmail string) error {
	_, err := ts.repo.Delete(ctx, id, ownerEmail)

	return err
}
