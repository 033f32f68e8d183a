package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/validation"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	args := []any{"method", r.Method, "path", r.URL.Path, "error", err}
	if userID, ok := r.Context().Value(UserIDCtxKey).(string); ok {
		args = append(args, "userID", userID)
	}
	slog.Error("服务器内部错误", args...)
}

func (h *Handler) readJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		// 状态码已经写出，这里只能记录日志
		h.logInternalServerError(r, err)
	}
}

type MessageResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

func (h *Handler) errorResponse(w http.ResponseWriter, r *http.Request, status int, msg string) {
	h.writeJSON(w, r, status, MessageResponse{Message: msg})
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.writeJSON(w, r, http.StatusBadRequest, MessageResponse{
		Message: msg,
		Details: validation.FirstMessage(err, h.translator),
	})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request, msg string) {
	h.errorResponse(w, r, http.StatusNotFound, msg)
}

func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.logInternalServerError(r, err)
	h.errorResponse(w, r, http.StatusInternalServerError, msg)
}
