package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/pkg/tracing"
)

type TodoHandler struct {
	svc     port.TodoService
	metrics *tracing.AppMetrics
}

func NewTodoHandler(svc port.TodoService, metrics *tracing.AppMetrics) *TodoHandler {
	return &TodoHandler{svc: svc, metrics: metrics}
}

func (t *TodoHandler) recordOperation(c *gin.Context, operation string) {
	if t.metrics != nil {
		t.metrics.RecordTodoOperation(c.Request.Context(), operation)
	}
}

func currentEmail(c *gin.Context) (string, bool) {
	identity, ok := middleware.CurrentIdentity(c)

	if !ok {
		helper.SendInternalError(c, "Internal server error during authentication")
		c.Abort()
		return "", false
	}

	return identity.Email, true
}

// todoIDParam parses the :id path segment before anything touches the
// store.
func todoIDParam(c *gin.Context) (int, bool) {
	idParam := c.Param("id")

	if idParam == "" {
		helper.SendBadRequest(c, "Todo id is required")
		return 0, false
	}

	id, err := strconv.Atoi(idParam)

	if err != nil {
		helper.SendBadRequest(c, "Invalid todo id")
		return 0, false
	}

	return id, true
}

func (t *TodoHandler) CreateTodo(c *gin.Context) {
	ctx := c.Request.Context()

	email, ok := currentEmail(c)

	if !ok {
		return
	}

	var params request.TodoRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		slog.Info("CreateTodo rejected", "fields", validation.FormatValidationErrors(err))
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	todo, err := t.svc.Create(ctx, params.Title, email)

	if err != nil {
		slog.Error("Error creating todo", "error", err)
		helper.SendInternalError(c, "Internal server error during todo creation")
		return
	}

	t.recordOperation(c, "create")

	c.JSON(http.StatusCreated, response.TodoCreatedResponse{
		Message: "Todo created successfully",
		TodoID:  todo.ID,
	})
}

func (t *TodoHandler) GetTodos(c *gin.Context) {
	ctx := c.Request.Context()

	email, ok := currentEmail(c)

	if !ok {
		return
	}

	todos, err := t.svc.List(ctx, email)

	if err != nil {
		slog.Error("Error fetching todos", "error", err)
		helper.SendInternalError(c, "Internal server error during fetching todos")
		return
	}

	data := make([]response.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		data = append(data, response.TodoResponse{
			ID:        todo.ID,
			Title:     todo.Title,
			Completed: todo.Completed,
		})
	}

	t.recordOperation(c, "list")

	c.JSON(http.StatusOK, data)
}

func (t *TodoHandler) MarkAsCompleted(c *gin.Context) {
	ctx := c.Request.Context()

	email, ok := currentEmail(c)

	if !ok {
		return
	}

	id, ok := todoIDParam(c)

	if !ok {
		return
	}

	if err := t.svc.Complete(ctx, id, email); err != nil {
		// A miss here covers both unknown ids and other users' todos;
		// both surface as the same internal error.
		slog.Error("Error completing todo", "error", err, "id", id)
		helper.SendInternalError(c, "Internal server error during marking todo as completed")
		return
	}

	t.recordOperation(c, "complete")

	c.JSON(http.StatusOK, response.TodoCompletedResponse{
		Message: "Todo marked as completed",
		TodoID:  id,
	})
}

func (t *TodoHandler) DeleteTodo(c *gin.Context) {
	ctx := c.Request.Context()

	email, ok := currentEmail(c)

	if !ok {
		return
	}

	id, ok := todoIDParam(c)

	if !ok {
		return
	}

	if err := t.svc.Delete(ctx, id, email); err != nil {
		slog.Error("Error deleting todo", "error", err, "id", id)
		helper.SendInternalError(c, "Internal server error during deleting todo")
		return
	}

	t.recordOperation(c, "delete")

	helper.SendMessage(c, http.StatusOK, "Todo deleted successfully")
}
