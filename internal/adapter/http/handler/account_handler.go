package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
	"todoapi/pkg/tracing"
)

type AccountHandler struct {
	svc     port.AccountService
	metrics *tracing.AppMetrics
}

func NewAccountHandler(svc port.AccountService, metrics *tracing.AppMetrics) *AccountHandler {
	return &AccountHandler{svc: svc, metrics: metrics}
}

func (a *AccountHandler) recordOperation(c *gin.Context, operation string) {
	if a.metrics != nil {
		a.metrics.RecordAccountOperation(c.Request.Context(), operation)
	}
}

func (a *AccountHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.RegisterRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		slog.Info("Register rejected", "fields", validation.FormatValidationErrors(err))
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	user, token, err := a.svc.Register(ctx, &params)

	if errors.Is(err, domain.ErrEmailTaken) {
		helper.SendBadRequest(c, "User with this email already exists")
		return
	}

	if err != nil {
		slog.Error("Account#Register", "error", err)
		helper.SendInternalError(c, "Internal server error during user registration")
		return
	}

	a.recordOperation(c, "register")

	c.JSON(http.StatusCreated, response.AuthResponse{
		Message: "User registered successfully",
		UserID:  user.ID,
		Token:   token,
	})
}

func (a *AccountHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var params request.LoginRequest

	if err := c.ShouldBindJSON(&params); err != nil {
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	if err := validation.Validator.Struct(params); err != nil {
		slog.Info("Login rejected", "fields", validation.FormatValidationErrors(err))
		helper.SendBadRequest(c, "Invalid request parameters")
		return
	}

	user, token, err := a.svc.Login(ctx, &params)

	if errors.Is(err, domain.ErrInvalidCredentials) {
		helper.SendBadRequest(c, "Invalid email or password")
		return
	}

	if err != nil {
		slog.Error("Account#Login", "error", err)
		helper.SendInternalError(c, "Internal server error during user login")
		return
	}

	a.recordOperation(c, "login")

	c.JSON(http.StatusOK, response.AuthResponse{
		Message: "User logged in successfully",
		UserID:  user.ID,
		Token:   token,
	})
}
