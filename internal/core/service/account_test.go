package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "todoapi/pkg/test"

	"todoapi/internal/adapter/database/sqlite/repository"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/service"
	"todoapi/pkg/auth"
)

type AccountServiceTestSuite struct {
	suite.Suite
	Service port.AccountService
	repo    port.UserRepository
	issuer  *auth.JWT
}

func (s *AccountServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.repo = repository.NewUserRepository(db)
	s.issuer, _ = auth.NewJWT("test-secret")
	s.Service = service.NewAccountService(s.repo, s.issuer)
}

func TestAccountServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) TestRegister_Success() {
	req := &request.RegisterRequest{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "password123",
	}

	user, token, err := s.Service.Register(context.Background(), req)

	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), user)
	assert.Equal(s.T(), "test@example.com", user.Email)
	assert.Equal(s.T(), "Test User", user.Name)
	assert.NotZero(s.T(), user.ID)
	assert.NotEqual(s.T(), "password123", user.EncryptedPassword)

	email, err := s.issuer.VerifyToken(token)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "test@example.com", email)
}

func (s *AccountServiceTestSuite) TestRegister_EmailTaken() {
	req := &request.RegisterRequest{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "password123",
	}

	first, _, err := s.Service.Register(context.Background(), req)
	assert.NoError(s.T(), err)

	_, _, err = s.Service.Register(context.Background(), req)
	assert.ErrorIs(s.T(), err, domain.ErrEmailTaken)

	// the first row is untouched and no second row exists
	existing, err := s.repo.GetByEmail(context.Background(), "test@example.com")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), first.ID, existing.ID)
}

func (s *AccountServiceTestSuite) TestLogin_Success() {
	register := &request.RegisterRequest{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "password123",
	}

	created, _, err := s.Service.Register(context.Background(), register)
	assert.NoError(s.T(), err)

	user, token, err := s.Service.Login(context.Background(), &request.LoginRequest{
		Email:    "test@example.com",
		Password: "password123",
	})

	assert.NoError(s.T(), err)
	assert.Equal(s.T(), created.ID, user.ID)

	email, err := s.issuer.VerifyToken(token)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), created.Email, email)
}

func (s *AccountServiceTestSuite) TestLogin_WrongPassword() {
	register := &request.RegisterRequest{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "password123",
	}

	_, _, err := s.Service.Register(context.Background(), register)
	assert.NoError(s.T(), err)

	_, _, err = s.Service.Login(context.Background(), &request.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCredentials)
}

func (s *AccountServiceTestSuite) TestLogin_UnknownEmail() {
	_, _, err := s.Service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	assert.ErrorIs(s.T(), err, domain.ErrInvalidCredentials)
}

func (s *AccountServiceTestSuite) TestLogin_FailuresAreIndistinguishable() {
	register := &request.RegisterRequest{
		Email:    "test@example.com",
		Name:     "Test User",
		Password: "password123",
	}

	_, _, err := s.Service.Register(context.Background(), register)
	assert.NoError(s.T(), err)

	_, _, wrongPassword := s.Service.Login(context.Background(), &request.LoginRequest{
		Email:    "test@example.com",
		Password: "wrong-password",
	})

	_, _, unknownEmail := s.Service.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})

	Expect(wrongPassword).To(Equal(unknownEmail))
}
