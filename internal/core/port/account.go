package port

import (
	"context"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
)

type AccountService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*domain.User, string, error)
	Login(ctx context.Context, req *request.LoginRequest) (*domain.User, string, error)
}

// TokenIssuer signs and verifies session tokens carrying the owner's email.
type TokenIssuer interface {
	CreateToken(email string) (string, error)
	VerifyToken(token string) (string, error)
}
