package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

type UserRepository interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) error
}

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, e *domain.Employee) error
	GetAllEmployees(ctx context.Context) ([]*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (*domain.Employee, error)
}

func validateStruct(validate *validator.Validate, v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	return nil
}
