package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/auth"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

type RegisterInput struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthService struct {
	validate *validator.Validate
	users    UserRepository
	tokens   auth.TokenIssuer
}

func NewAuthService(validate *validator.Validate, users UserRepository, tokens auth.TokenIssuer) *AuthService {
	return &AuthService{
		validate: validate,
		users:    users,
		tokens:   tokens,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) error {
	if err := validateStruct(s.validate, in); err != nil {
		return err
	}

	// 先查一次用户名，并发注册的情况交给数据库的唯一约束处理
	_, err := s.users.GetUserByUsername(ctx, in.Username)
	switch {
	case err == nil:
		return domain.ErrUsernameTaken
	case !errors.Is(err, domain.ErrNotFound):
		return err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return err
	}

	return s.users.CreateUser(ctx, &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
}

func (s *AuthService) Login(ctx context.Context, in LoginInput) (string, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return "", err
	}

	user, err := s.users.GetUserByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	ok, err := auth.ComparePassword(user.PasswordHash, in.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}
