package service

import (
	"context"
	"errors"
	"log/slog"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
)

type AccountService struct {
	repo   port.UserRepository
	issuer port.TokenIssuer
}

func NewAccountService(repo port.UserRepository, issuer port.TokenIssuer) *AccountService {
	return &AccountService{repo: repo, issuer: issuer}
}

func (s *AccountService) Register(ctx context.Context, req *request.RegisterRequest) (*domain.User, string, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)

	if err == nil && existing.Email != "" {
		return nil, "", domain.ErrEmailTaken
	}

	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		slog.Error("Account#Register", "get_by_email", err)
		return nil, "", err
	}

	encrypted, err := util.GenerateEncrypt(req.Password)

	if err != nil {
		return nil, "", err
	}

	user := domain.User{
		Email:             req.Email,
		Name:              req.Name,
		EncryptedPassword: encrypted,
	}

	saved, err := s.repo.Create(ctx, user)

	if err != nil {
		slog.Error("Account#Register", "create", err)
		return nil, "", err
	}

	token, err := s.issuer.CreateToken(saved.Email)

	if err != nil {
		return nil, "", err
	}

	return &saved, token, nil
}

func (s *AccountService) Login(ctx context.Context, req *request.LoginRequest) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)

	if errors.Is(err, domain.ErrUserNotFound) {
		// Same error as a wrong password so callers cannot enumerate accounts.
		return nil, "", domain.ErrInvalidCredentials
	}

	if err != nil {
		slog.Error("Account#Login", "get_by_email", err)
		return nil, "", err
	}

	if err := util.ComparePassword(req.Password, user.EncryptedPassword); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issuer.CreateToken(user.Email)

	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}
