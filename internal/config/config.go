package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"5000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
		MaxUploadSize   int64  `env:"MAX_UPLOAD_SIZE" envDefault:"33554432"` // 32 MiB
	} `envPrefix:"SERVER_"`
	Database struct {
		Driver         string `env:"DRIVER" envDefault:"postgres"` // postgres | memory
		DSN            string `env:"DSN"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout   int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		MaxOpenConns   int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns   int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime    int    `env:"MAX_IDLE_TIME" envDefault:"60"`
		AutoMigrate    bool   `env:"AUTO_MIGRATE" envDefault:"true"`
	} `envPrefix:"DATABASE_"`
	JWT struct {
		Expiration int    `env:"EXPIRATION" envDefault:"3600"` // 1 小时，单位为秒
		Secret     string `env:"SECRET,required,notEmpty"`
	} `envPrefix:"JWT_"`
	Auth struct {
		RequireToken bool `env:"REQUIRE_TOKEN" envDefault:"false"`
	} `envPrefix:"AUTH_"`
	CORS struct {
		AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	} `envPrefix:"CORS_"`
	Storage struct {
		Provider string `env:"PROVIDER" envDefault:"local"`
		LocalDir string `env:"LOCAL_DIR" envDefault:"uploads"`
		S3       struct {
			Bucket    string `env:"BUCKET"`
			Region    string `env:"REGION" envDefault:"us-east-1"`
			Endpoint  string `env:"ENDPOINT"`
			AccessKey string `env:"ACCESS_KEY"`
			SecretKey string `env:"SECRET_KEY"`
			Prefix    string `env:"PREFIX" envDefault:"uploads"`
		} `envPrefix:"S3_"`
	} `envPrefix:"STORAGE_"`
	Metrics struct {
		Enabled bool   `env:"ENABLED" envDefault:"true"`
		Path    string `env:"PATH" envDefault:"/metrics"`
	} `envPrefix:"METRICS_"`
	Seed struct {
		EmailDomain string `env:"EMAIL_DOMAIN" envDefault:"example.com"`
	} `envPrefix:"SEED_"`
}

var (
	ErrUnknownStorageProvider = errors.New("unknown storage provider")
	ErrUnknownDatabaseDriver  = errors.New("unknown database driver")
	ErrMissingDSN             = errors.New("DATABASE_DSN is required when DATABASE_DRIVER is postgres")
)

func LoadConfig() (*Config, error) {
	// .env 文件是可选的，不存在时直接使用进程环境变量
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// 只返回第一个错误使得日志更清晰
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	switch cfg.Database.Driver {
	case "postgres":
		if cfg.Database.DSN == "" {
			return nil, ErrMissingDSN
		}
	case "memory":
		// 仅用于本地调试，数据不会持久化
	default:
		return nil, ErrUnknownDatabaseDriver
	}

	switch cfg.Storage.Provider {
	case "local", "s3":
	default:
		return nil, ErrUnknownStorageProvider
	}

	return cfg, nil
}
