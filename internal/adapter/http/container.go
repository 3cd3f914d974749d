package http

import (
	"todoapi/internal/adapter/http/handler"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/tracing"
)

type Container struct {
	UserRepo port.UserRepository
	TodoRepo port.TodoRepository

	AccountService port.AccountService
	TodoService    port.TodoService

	AccountHandler *handler.AccountHandler
	TodoHandler    *handler.TodoHandler
}

func NewContainer(userRepo port.UserRepository, todoRepo port.TodoRepository, issuer port.TokenIssuer, metrics *tracing.AppMetrics) *Container {
	accountSvc := service.NewAccountService(userRepo, issuer)
	todoSvc := service.NewTodoService(todoRepo)

	return &Container{
		UserRepo: userRepo,
		TodoRepo: todoRepo,

		AccountService: accountSvc,
		TodoService:    todoSvc,

		AccountHandler: handler.NewAccountHandler(accountSvc, metrics),
		TodoHandler:    handler.NewTodoHandler(todoSvc, metrics),
	}
}
