package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

func (h *Handler) GetUpload(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")

	obj, err := h.images.Get(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			http.NotFound(w, r)
		default:
			h.internalServerError(w, r, "Server error", err)
		}
		return
	}
	defer obj.Body.Close()

	if obj.ContentType != "" {
		w.Header().Set("Content-Type", obj.ContentType)
	}

	// 本地文件可以 seek，交给 ServeContent 处理 Range 和内容类型
	if rs, ok := obj.Body.(io.ReadSeeker); ok {
		http.ServeContent(w, r, name, obj.LastModified, rs)
		return
	}

	if obj.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(obj.ContentLength, 10))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, obj.Body); err != nil {
		h.logInternalServerError(r, err)
	}
}
