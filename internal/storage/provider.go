package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/config"
)

// Provider 定义上传图片的存储后端
type Provider interface {
	// Put 保存文件并返回记录在员工信息中的存储路径
	Put(ctx context.Context, name string, body io.ReadSeeker, contentType string) (string, error)
	// Get 按文件名读取文件，文件不存在时返回 domain.ErrNotFound
	Get(ctx context.Context, name string) (*FileObject, error)
}

type FileObject struct {
	Body          io.ReadCloser
	ContentLength int64
	ContentType   string
	LastModified  time.Time
}

func New(ctx context.Context, cfg *config.Config) (Provider, error) {
	switch cfg.Storage.Provider {
	case "local":
		return NewLocalProvider(cfg.Storage.LocalDir)
	case "s3":
		return NewS3Provider(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %s", config.ErrUnknownStorageProvider, cfg.Storage.Provider)
	}
}

// UploadName 以上传时间的毫秒时间戳作为前缀，避免文件名冲突
func UploadName(now time.Time, original string) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "image"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}
