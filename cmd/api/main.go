package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/auth"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/config"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/handler"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/repository"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/service"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/storage"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * 创建 logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * 加载配置
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法加载配置", "error", err)
		return
	}

	/**********************************************
	 * 创建 repository
	 **********************************************/
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	var repo store
	switch cfg.Database.Driver {
	case "memory":
		logger.Warn("正在使用内存存储，重启后数据会丢失")
		repo = repository.NewMemoryRepository()
	default:
		dbpool, err := openDB(ctx, cfg)
		if err != nil {
			logger.Error("无法连接到数据库", "error", err)
			return
		}
		defer dbpool.Close()

		pgRepo := repository.NewRepository(cfg, dbpool)
		if cfg.Database.AutoMigrate {
			if err := pgRepo.Migrate(ctx); err != nil {
				logger.Error("无法执行数据库迁移", "error", err)
				return
			}
		}
		repo = pgRepo
	}

	/**********************************************
	 * 创建图片存储
	 **********************************************/
	images, err := storage.New(ctx, cfg)
	if err != nil {
		logger.Error("无法创建图片存储", "error", err, "provider", cfg.Storage.Provider)
		return
	}

	/**********************************************
	 * 创建 service
	 **********************************************/
	validate, trans, err := validation.New()
	if err != nil {
		logger.Error("无法创建校验器", "error", err)
		return
	}

	tokens := auth.NewJWTIssuer(cfg.JWT.Secret, time.Duration(cfg.JWT.Expiration)*time.Second)
	authService := service.NewAuthService(validate, repo, tokens)
	employeeService := service.NewEmployeeService(validate, repo, images)

	/**********************************************
	 * 创建 handler
	 **********************************************/
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	handler, err := handler.NewHandler(cfg, handler.Deps{
		Translator: trans,
		Auth:       authService,
		Employees:  employeeService,
		Images:     images,
		Tokens:     tokens,
		Registry:   registry,
	})
	if err != nil {
		logger.Error("无法创建 handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * 启动 HTTP 服务器
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("正在启动服务器...", "port", cfg.Server.Port, "requireToken", cfg.Auth.RequireToken)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("无法启动服务器", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("正在关闭服务器...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("关闭服务器失败", slog.String("error", err.Error()))
	}
	logger.Info("服务器已成功关闭")
}

type store interface {
	service.UserRepository
	service.EmployeeRepository
}

func openDB(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return nil, err
	}

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}

	return dbpool, nil
}
