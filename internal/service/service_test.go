package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/auth"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/repository"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/storage"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/validation"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate, _, err := validation.New()
	require.NoError(t, err)
	return validate
}

func newAuthService(t *testing.T) (*AuthService, *auth.JWTIssuer) {
	t.Helper()
	tokens := auth.NewJWTIssuer("test-secret", time.Hour)
	return NewAuthService(newValidator(t), repository.NewMemoryRepository(), tokens), tokens
}

func newEmployeeService(t *testing.T) (*EmployeeService, string) {
	t.Helper()
	root := filepath.Join(t.TempDir(), "uploads")
	images, err := storage.NewLocalProvider(root)
	require.NoError(t, err)
	return NewEmployeeService(newValidator(t), repository.NewMemoryRepository(), images), root
}

// failingEmployees 模拟数据库写入失败
type failingEmployees struct {
	repository.MemoryRepository
}

var errDBDown = errors.New("db down")

func (f *failingEmployees) CreateEmployee(context.Context, *domain.Employee) error {
	return errDBDown
}
