package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

// MemoryRepository 是不依赖数据库的实现，DATABASE_DRIVER=memory 时用于本地调试，也用于测试。
// 唯一约束与 Postgres 中的 users_username_key / users_email_key 一致。
type MemoryRepository struct {
	mu        sync.Mutex
	users     []*domain.User
	employees []*domain.Employee
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (m *MemoryRepository) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MemoryRepository) CreateUser(_ context.Context, user *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		switch {
		case u.Username == user.Username:
			return domain.ErrUsernameTaken
		case u.Email == user.Email:
			return domain.ErrEmailTaken
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	cp := *user
	m.users = append(m.users, &cp)
	return nil
}

func (m *MemoryRepository) CreateEmployee(_ context.Context, e *domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.ID = uuid.NewString()
	e.CreatedAt = time.Now()
	m.employees = append(m.employees, cloneEmployee(e))
	return nil
}

func (m *MemoryRepository) GetAllEmployees(_ context.Context) ([]*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	employees := make([]*domain.Employee, 0, len(m.employees))
	for _, e := range m.employees {
		employees = append(employees, cloneEmployee(e))
	}
	return employees, nil
}

func (m *MemoryRepository) DeleteEmployee(_ context.Context, id string) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.employees, func(e *domain.Employee) bool { return e.ID == id })
	if i < 0 {
		return nil, domain.ErrNotFound
	}

	deleted := m.employees[i]
	m.employees = slices.Delete(m.employees, i, i+1)
	return deleted, nil
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	cp := *e
	cp.Courses = slices.Clone(e.Courses)
	if e.Image != nil {
		image := *e.Image
		cp.Image = &image
	}
	return &cp
}
