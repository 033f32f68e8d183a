package handler

import (
	"errors"
	"net/http"

	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/service"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterInput

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, "All fields are required", err)
		return
	}

	if err := h.auth.Register(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.badRequest(w, r, "All fields are required", err)
		case errors.Is(err, domain.ErrUsernameTaken):
			h.errorResponse(w, r, http.StatusBadRequest, "Username already exists")
		case errors.Is(err, domain.ErrEmailTaken):
			h.errorResponse(w, r, http.StatusBadRequest, "Email already exists")
		default:
			h.internalServerError(w, r, "Server error", err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusCreated, MessageResponse{Message: "Registration successful"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginInput

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, "Both username and password are required", err)
		return
	}

	token, err := h.auth.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			h.badRequest(w, r, "Both username and password are required", err)
		case errors.Is(err, domain.ErrInvalidCredentials):
			// 沿用原有约定，认证失败返回 400 而不是 401
			h.errorResponse(w, r, http.StatusBadRequest, "Invalid username or password")
		default:
			h.internalServerError(w, r, "Server error", err)
		}
		return
	}

	h.writeJSON(w, r, http.StatusOK, LoginResponse{Message: "Login successful", Token: token})
}
