package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

type employeeRow struct {
	courses []byte
	image   sql.NullString
}

func (row *employeeRow) apply(e *domain.Employee) error {
	e.Courses = make([]string, 0)
	if err := json.Unmarshal(row.courses, &e.Courses); err != nil {
		return fmt.Errorf("decode courses: %w", err)
	}
	e.Image = nil
	if row.image.Valid {
		image := row.image.String
		e.Image = &image
	}
	return nil
}

func (r *Repository) CreateEmployee(ctx context.Context, e *domain.Employee) error {
	query := `
		INSERT INTO employees (name, email, phone, designation, gender, courses, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	courses, err := json.Marshal(e.Courses)
	if err != nil {
		return err
	}

	var image any
	if e.Image != nil {
		image = *e.Image
	}

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	args := []any{e.Name, e.Email, e.Phone, e.Designation, e.Gender, courses, image}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *Repository) GetAllEmployees(ctx context.Context) ([]*domain.Employee, error) {
	query := `
		SELECT id, name, email, phone, designation, gender, courses, image, created_at
		FROM employees ORDER BY created_at
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	employees := make([]*domain.Employee, 0)
	for rows.Next() {
		e := &domain.Employee{}
		row := employeeRow{}
		dst := []any{&e.ID, &e.Name, &e.Email, &e.Phone, &e.Designation, &e.Gender, &row.courses, &row.image, &e.CreatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		if err := row.apply(e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return employees, nil
}

// DeleteEmployee 删除并返回被删除的记录，关联的图片文件不做处理
func (r *Repository) DeleteEmployee(ctx context.Context, id string) (*domain.Employee, error) {
	query := `
		DELETE FROM employees WHERE id = $1
		RETURNING id, name, email, phone, designation, gender, courses, image, created_at
	`

	ctx, cancel := r.queryContext(ctx)
	defer cancel()

	e := &domain.Employee{}
	row := employeeRow{}
	dst := []any{&e.ID, &e.Name, &e.Email, &e.Phone, &e.Designation, &e.Gender, &row.courses, &row.image, &e.CreatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := row.apply(e); err != nil {
		return nil, err
	}

	return e, nil
}
