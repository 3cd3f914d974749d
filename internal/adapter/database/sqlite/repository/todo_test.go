package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	. "todoapi/pkg/test"

	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	factory "todoapi/pkg/test/factory"
)

func setupTodoRepo(t *testing.T) (port.UserRepository, port.TodoRepository) {
	t.Helper()

	db := InitTestDB()

	return repository.NewUserRepository(db), repository.NewTodoRepository(db)
}

func createOwner(t *testing.T, users port.UserRepository, email string) domain.User {
	t.Helper()

	user, err := users.Create(context.Background(), factory.NewUser[domain.User](map[string]any{
		"Email": email,
	}))
	assert.NoError(t, err)

	return user
}

func TestTodoRepositoryCreate(t *testing.T) {
	users, todos := setupTodoRepo(t)
	owner := createOwner(t, users, "owner@example.com")

	todo, err := todos.Create(context.Background(), "Buy milk", owner.Email)

	assert.NoError(t, err)
	assert.NotZero(t, todo.ID)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.False(t, todo.Completed)
	assert.Equal(t, owner.ID, todo.UserId)
}

func TestTodoRepositoryCreateUnknownOwner(t *testing.T) {
	_, todos := setupTodoRepo(t)

	// the owner subselect yields NULL and the insert must fail
	_, err := todos.Create(context.Background(), "Buy milk", "nobody@example.com")

	assert.Error(t, err)
}

func TestTodoRepositoryOwnershipScoping(t *testing.T) {
	users, todos := setupTodoRepo(t)
	alice := createOwner(t, users, "alice@example.com")
	bob := createOwner(t, users, "bob@example.com")

	created, err := todos.Create(context.Background(), "Alice task", alice.Email)
	assert.NoError(t, err)

	affected, err := todos.Complete(context.Background(), created.ID, bob.Email)
	assert.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = todos.Delete(context.Background(), created.ID, bob.Email)
	assert.NoError(t, err)
	assert.Zero(t, affected)

	list, err := todos.GetAllByOwner(context.Background(), bob.Email)
	assert.NoError(t, err)
	assert.Empty(t, list)

	list, err = todos.GetAllByOwner(context.Background(), alice.Email)
	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.False(t, list[0].Completed)
}

func TestTodoRepositoryCompleteAndDelete(t *testing.T) {
	users, todos := setupTodoRepo(t)
	owner := createOwner(t, users, "owner@example.com")

	created, err := todos.Create(context.Background(), "Buy milk", owner.Email)
	assert.NoError(t, err)

	affected, err := todos.Complete(context.Background(), created.ID, owner.Email)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	list, err := todos.GetAllByOwner(context.Background(), owner.Email)
	assert.NoError(t, err)
	assert.True(t, list[0].Completed)

	affected, err = todos.Delete(context.Background(), created.ID, owner.Email)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, affected)

	affected, err = todos.Delete(context.Background(), created.ID, owner.Email)
	assert.NoError(t, err)
	assert.Zero(t, affected)
}
