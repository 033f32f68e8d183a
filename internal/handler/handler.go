package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	ut "github.com/go-playground/universal-translator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/auth"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/config"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/service"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/storage"
)

type Handler struct {
	config     *config.Config
	translator ut.Translator
	auth       *service.AuthService
	employees  *service.EmployeeService
	images     storage.Provider
	tokens     auth.TokenIssuer
	metrics    *metrics
	registry   *prometheus.Registry

	Mux *chi.Mux
}

type Deps struct {
	Translator ut.Translator
	Auth       *service.AuthService
	Employees  *service.EmployeeService
	Images     storage.Provider
	Tokens     auth.TokenIssuer
	Registry   *prometheus.Registry
}

func NewHandler(cfg *config.Config, deps Deps) (*Handler, error) {
	m, err := newMetrics(deps.Registry)
	if err != nil {
		return nil, err
	}

	return &Handler{
		config:     cfg,
		translator: deps.Translator,
		auth:       deps.Auth,
		employees:  deps.Employees,
		images:     deps.Images,
		tokens:     deps.Tokens,
		metrics:    m,
		registry:   deps.Registry,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)
	h.Mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.config.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))
	h.Mux.Use(h.instrument)

	// 认证相关
	h.Mux.Post("/register", h.Register)
	h.Mux.Post("/login", h.Login)

	// 员工信息，是否需要令牌由配置决定
	h.Mux.Route("/api/employees", func(r chi.Router) {
		if h.config.Auth.RequireToken {
			r.Use(h.requireToken)
		}
		r.Post("/", h.CreateEmployee)
		r.Get("/", h.GetAllEmployees)
		r.Delete("/{id}", h.DeleteEmployee)
	})

	// 上传的图片
	h.Mux.Get("/uploads/{filename}", h.GetUpload)

	if h.config.Metrics.Enabled {
		h.Mux.Handle(h.config.Metrics.Path, promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
	}
}
