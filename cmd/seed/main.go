package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/config"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/repository"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/service"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/storage"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/utils"
	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/validation"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var n int
	var migrate bool

	flag.IntVar(&n, "n", 5, "要插入的员工数量")
	flag.BoolVar(&migrate, "migrate", true, "插入前是否先执行数据库迁移")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if n <= 0 {
		logger.Error("请输入合法的员工数量")
		os.Exit(1)
	}
	if cfg.Database.Driver != "postgres" {
		logger.Error("seed 只支持 postgres", slog.String("driver", cfg.Database.Driver))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)
	if migrate {
		if err := repo.Migrate(ctx); err != nil {
			logger.Error("无法执行数据库迁移", "error", err)
			return
		}
	}

	images, err := storage.New(ctx, cfg)
	if err != nil {
		logger.Error("无法创建图片存储", "error", err)
		return
	}

	validate, _, err := validation.New()
	if err != nil {
		logger.Error("无法创建校验器", "error", err)
		return
	}

	// 通过 service 插入，保证与接口创建的数据一致
	employees := service.NewEmployeeService(validate, repo, images)

	cnt := 0
	for i := 0; i < n; i++ {
		in := utils.GenerateRandomEmployee(cfg.Seed.EmailDomain)
		if _, err := employees.Create(context.Background(), in, nil); err != nil {
			logger.Error("无法插入员工", slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	logger.Info("插入员工成功", slog.Int("count", cnt))
}
