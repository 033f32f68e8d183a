package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/storage"
)

func validInput(name, courses string) CreateEmployeeInput {
	return CreateEmployeeInput{
		Name:        name,
		Email:       strings.ToLower(name) + "@example.com",
		Phone:       "13800000000",
		Designation: "HR",
		Gender:      "F",
		Courses:     courses,
	}
}

func TestSplitCourses(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Math,Science", []string{"Math", "Science"}},
		{"Math,,Science", []string{"Math", "", "Science"}},
		{"Math", []string{"Math"}},
		{" Math , Science", []string{" Math ", " Science"}},
		{"Math,", []string{"Math", ""}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitCourses(tt.in), tt.in)
	}
}

func TestCreate_WithoutImage(t *testing.T) {
	svc, _ := newEmployeeService(t)

	e, err := svc.Create(context.Background(), validInput("Ann", "Math,,Science"), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, e.ID)
	assert.Nil(t, e.Image)
	assert.Equal(t, []string{"Math", "", "Science"}, e.Courses)
}

func TestCreate_WithImage(t *testing.T) {
	svc, root := newEmployeeService(t)
	svc.now = func() time.Time { return time.UnixMilli(1700000000000) }

	content := []byte("\x89PNG not really")
	e, err := svc.Create(context.Background(), validInput("Ann", "Math"), &Upload{
		Filename:    "me.png",
		ContentType: "image/png",
		Body:        bytes.NewReader(content),
	})
	require.NoError(t, err)
	require.NotNil(t, e.Image)
	assert.Equal(t, filepath.Join(root, "1700000000000-me.png"), *e.Image)

	onDisk, err := os.ReadFile(*e.Image)
	require.NoError(t, err)
	assert.Equal(t, content, onDisk)
}

func TestCreate_MissingFields(t *testing.T) {
	svc, _ := newEmployeeService(t)

	full := validInput("Ann", "Math")
	blanks := []func(*CreateEmployeeInput){
		func(in *CreateEmployeeInput) { in.Name = "" },
		func(in *CreateEmployeeInput) { in.Email = "" },
		func(in *CreateEmployeeInput) { in.Phone = "" },
		func(in *CreateEmployeeInput) { in.Designation = "" },
		func(in *CreateEmployeeInput) { in.Gender = "" },
		func(in *CreateEmployeeInput) { in.Courses = "" },
	}

	for _, blank := range blanks {
		in := full
		blank(&in)
		_, err := svc.Create(context.Background(), in, nil)
		require.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCreate_DBFailureLeavesImage(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	images, err := storage.NewLocalProvider(root)
	require.NoError(t, err)
	svc := NewEmployeeService(newValidator(t), &failingEmployees{}, images)

	_, err = svc.Create(context.Background(), validInput("Ann", "Math"), &Upload{
		Filename: "me.png",
		Body:     bytes.NewReader([]byte("x")),
	})
	require.ErrorIs(t, err, errDBDown)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDelete_NotFound(t *testing.T) {
	svc, _ := newEmployeeService(t)

	require.ErrorIs(t, svc.Delete(context.Background(), uuid.NewString()), domain.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), "not-a-uuid"), domain.ErrNotFound)
}

func TestCreateDeleteList(t *testing.T) {
	svc, _ := newEmployeeService(t)
	ctx := context.Background()

	e1, err := svc.Create(ctx, validInput("E1", "Math"), nil)
	require.NoError(t, err)
	e2, err := svc.Create(ctx, validInput("E2", "Math"), nil)
	require.NoError(t, err)
	e3, err := svc.Create(ctx, validInput("E3", "Math"), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, e2.ID))

	employees, err := svc.List(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(employees))
	for _, e := range employees {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{e1.ID, e3.ID}, ids)

	require.ErrorIs(t, svc.Delete(ctx, e2.ID), domain.ErrNotFound)
}

func TestDelete_KeepsImage(t *testing.T) {
	svc, _ := newEmployeeService(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, validInput("Ann", "Math"), &Upload{Filename: "a.png", Body: bytes.NewReader([]byte("x"))})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, e.ID))

	_, err = os.Stat(*e.Image)
	require.NoError(t, err)
}
