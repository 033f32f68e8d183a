package handler

import (
	"errors"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/service"
)

type CreateEmployeeResponse struct {
	Message  string           `json:"message"`
	Employee *domain.Employee `json:"employee"`
}

type EmployeesResponse struct {
	Employees []*domain.Employee `json:"employees"`
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.config.Server.MaxUploadSize)

	// JSON 请求体同样可以创建员工，但不能附带图片
	if mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mediaType == "application/json" {
		var req service.CreateEmployeeInput
		if err := h.readJSON(r, &req); err != nil {
			h.badRequest(w, r, "All fields are required", err)
			return
		}
		h.createEmployee(w, r, req, nil)
		return
	}

	// 非 multipart 的表单也允许提交，此时没有图片
	if err := r.ParseMultipartForm(h.config.Server.MaxUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.badRequest(w, r, "All fields are required", err)
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	req := service.CreateEmployeeInput{
		Name:        r.PostFormValue("name"),
		Email:       r.PostFormValue("email"),
		Phone:       r.PostFormValue("phone"),
		Designation: r.PostFormValue("designation"),
		Gender:      r.PostFormValue("gender"),
		Courses:     r.PostFormValue("courses"),
	}

	var upload *service.Upload
	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		defer file.Close()
		upload = &service.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		h.internalServerError(w, r, "Error creating employee", err)
		return
	}

	h.createEmployee(w, r, req, upload)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request, req service.CreateEmployeeInput, upload *service.Upload) {
	employee, err := h.employees.Create(r.Context(), req, upload)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.badRequest(w, r, "All fields are required", err)
		default:
			h.internalServerError(w, r, "Error creating employee", err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, CreateEmployeeResponse{
		Message:  "Employee created successfully",
		Employee: employee,
	})
}

func (h *Handler) GetAllEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List(r.Context())
	if err != nil {
		h.internalServerError(w, r, "Error fetching employees", err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, EmployeesResponse{Employees: employees})
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employees.Delete(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.notFound(w, r, "Employee not found")
		default:
			h.internalServerError(w, r, "Error deleting employee", err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Employee deleted successfully"})
}
