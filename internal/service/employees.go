package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/storage"
)

type CreateEmployeeInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Designation string `json:"designation" validate:"required"`
	Gender      string `json:"gender" validate:"required"`
	Courses     string `json:"courses" validate:"required"` // 逗号分隔
}

// Upload 是随员工信息一起提交的可选图片
type Upload struct {
	Filename    string
	ContentType string
	Body        io.ReadSeeker
}

type EmployeeService struct {
	validate  *validator.Validate
	employees EmployeeRepository
	images    storage.Provider
	now       func() time.Time
}

func NewEmployeeService(validate *validator.Validate, employees EmployeeRepository, images storage.Provider) *EmployeeService {
	return &EmployeeService{
		validate:  validate,
		employees: employees,
		images:    images,
		now:       time.Now,
	}
}

// SplitCourses 按逗号切分课程，不去空格也不去重，空段保留
func SplitCourses(csv string) []string {
	return strings.Split(csv, ",")
}

func (s *EmployeeService) Create(ctx context.Context, in CreateEmployeeInput, image *Upload) (*domain.Employee, error) {
	if err := validateStruct(s.validate, in); err != nil {
		return nil, err
	}

	e := &domain.Employee{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Designation: in.Designation,
		Gender:      in.Gender,
		Courses:     SplitCourses(in.Courses),
	}

	if image != nil {
		name := storage.UploadName(s.now(), image.Filename)
		path, err := s.images.Put(ctx, name, image.Body, image.ContentType)
		if err != nil {
			return nil, fmt.Errorf("store image: %w", err)
		}
		e.Image = &path
	}

	// 写库失败时已保存的图片不会被清理
	if err := s.employees.CreateEmployee(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]*domain.Employee, error) {
	return s.employees.GetAllEmployees(ctx)
}

func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}

	if _, err := s.employees.DeleteEmployee(ctx, parsed.String()); err != nil {
		return err
	}

	return nil
}
