package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "todoapi/pkg/test"

	"todoapi/internal/adapter/database/sqlite/repository"
	adapterhttp "todoapi/internal/adapter/http"
	"todoapi/internal/adapter/http/routes"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/pkg/auth"
	factory "todoapi/pkg/test/factory"
)

var ctx = context.Background()

type TodoHandlerSuite struct {
	suite.Suite
	Router   *gin.Engine
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository
	issuer   *auth.JWT
}

func (s *TodoHandlerSuite) SetupTest() {
	db := InitTestDB()

	s.UserRepo = repository.NewUserRepository(db)
	s.TodoRepo = repository.NewTodoRepository(db)
	s.issuer, _ = auth.NewJWT("test-secret")

	container := adapterhttp.NewContainer(s.UserRepo, s.TodoRepo, s.issuer, nil)

	s.Router = routes.SetupRouterForTests(routes.HandlersConfig{
		AccountHandler: container.AccountHandler,
		TodoHandler:    container.TodoHandler,
	}, s.issuer)
}

func TestTodoHandlerSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoHandlerSuite))
}

func (s *TodoHandlerSuite) createUser(email string) domain.User {
	user, err := s.UserRepo.Create(ctx, factory.NewUser[domain.User](map[string]any{
		"Email": email,
		"Name":  "User",
	}))

	Expect(err).NotTo(HaveOccurred())

	return user
}

func (s *TodoHandlerSuite) request(method, path, email string, body map[string]any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if email != "" {
		token, err := s.issuer.CreateToken(email)
		Expect(err).NotTo(HaveOccurred())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	s.Router.ServeHTTP(rr, req)

	return rr
}

func (s *TodoHandlerSuite) TestCreateTodo() {
	user := s.createUser("owner@example.com")

	rr := s.request("POST", "/api/todos", user.Email, map[string]any{
		"title": "Buy milk",
	})

	Expect(rr.Code).To(Equal(http.StatusCreated))

	var body response.TodoCreatedResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Message).To(Equal("Todo created successfully"))
	Expect(body.TodoID).NotTo(BeZero())
}

func (s *TodoHandlerSuite) TestCreateTodo_RequiresAuth() {
	rr := s.request("POST", "/api/todos", "", map[string]any{
		"title": "Buy milk",
	})

	Expect(rr.Code).To(Equal(http.StatusUnauthorized))
}

func (s *TodoHandlerSuite) TestCreateTodo_MissingTitle() {
	user := s.createUser("owner@example.com")

	rr := s.request("POST", "/api/todos", user.Email, map[string]any{})

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
}

func (s *TodoHandlerSuite) TestGetTodos_ScopedToOwner() {
	alice := s.createUser("alice@example.com")
	bob := s.createUser("bob@example.com")

	_, err := s.TodoRepo.Create(ctx, "Alice task", alice.Email)
	Expect(err).NotTo(HaveOccurred())
	_, err = s.TodoRepo.Create(ctx, "Bob task", bob.Email)
	Expect(err).NotTo(HaveOccurred())

	rr := s.request("GET", "/api/todos", alice.Email, nil)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var todos []response.TodoResponse
	json.Unmarshal(rr.Body.Bytes(), &todos)

	Expect(todos).To(HaveLen(1))
	Expect(todos[0].Title).To(Equal("Alice task"))
	Expect(todos[0].Completed).To(BeFalse())
}

func (s *TodoHandlerSuite) TestGetTodos_EmptyList() {
	user := s.createUser("owner@example.com")

	rr := s.request("GET", "/api/todos", user.Email, nil)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(Equal("[]"))
}

func (s *TodoHandlerSuite) TestMarkAsCompleted() {
	user := s.createUser("owner@example.com")

	todo, err := s.TodoRepo.Create(ctx, "Buy milk", user.Email)
	Expect(err).NotTo(HaveOccurred())

	rr := s.request("PATCH", "/api/todos/1/complete", user.Email, nil)

	Expect(rr.Code).To(Equal(http.StatusOK))

	var body response.TodoCompletedResponse
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body.Message).To(Equal("Todo marked as completed"))
	Expect(body.TodoID).To(Equal(todo.ID))
}

func (s *TodoHandlerSuite) TestMarkAsCompleted_NonNumericID() {
	user := s.createUser("owner@example.com")

	rr := s.request("PATCH", "/api/todos/abc/complete", user.Email, nil)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
	Expect(rr.Body.String()).To(ContainSubstring("Invalid todo id"))
}

func (s *TodoHandlerSuite) TestMarkAsCompleted_OtherUsersTodo() {
	alice := s.createUser("alice@example.com")
	bob := s.createUser("bob@example.com")

	todo, err := s.TodoRepo.Create(ctx, "Alice task", alice.Email)
	Expect(err).NotTo(HaveOccurred())

	rr := s.request("PATCH", "/api/todos/1/complete", bob.Email, nil)

	Expect(rr.Code).To(Equal(http.StatusInternalServerError))
	Expect(rr.Body.String()).To(ContainSubstring("Internal server error during marking todo as completed"))

	todos, err := s.TodoRepo.GetAllByOwner(ctx, alice.Email)
	Expect(err).NotTo(HaveOccurred())
	Expect(todos[0].ID).To(Equal(todo.ID))
	Expect(todos[0].Completed).To(BeFalse())
}

func (s *TodoHandlerSuite) TestDeleteTodo() {
	user := s.createUser("owner@example.com")

	_, err := s.TodoRepo.Create(ctx, "Buy milk", user.Email)
	Expect(err).NotTo(HaveOccurred())

	rr := s.request("DELETE", "/api/todos/1", user.Email, nil)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(ContainSubstring("Todo deleted successfully"))

	todos, err := s.TodoRepo.GetAllByOwner(ctx, user.Email)
	Expect(err).NotTo(HaveOccurred())
	Expect(todos).To(BeEmpty())
}

func (s *TodoHandlerSuite) TestDeleteTodo_OtherUsersTodoReportsSuccess() {
	alice := s.createUser("alice@example.com")
	bob := s.createUser("bob@example.com")

	_, err := s.TodoRepo.Create(ctx, "Alice task", alice.Email)
	Expect(err).NotTo(HaveOccurred())

	rr := s.request("DELETE", "/api/todos/1", bob.Email, nil)

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(ContainSubstring("Todo deleted successfully"))

	todos, err := s.TodoRepo.GetAllByOwner(ctx, alice.Email)
	Expect(err).NotTo(HaveOccurred())
	Expect(todos).To(HaveLen(1))
}

func (s *TodoHandlerSuite) TestDeleteTodo_NonNumericID() {
	user := s.createUser("owner@example.com")

	rr := s.request("DELETE", "/api/todos/abc", user.Email, nil)

	Expect(rr.Code).To(Equal(http.StatusBadRequest))
	Expect(rr.Body.String()).To(ContainSubstring("Invalid todo id"))
}
