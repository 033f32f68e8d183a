package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sysu-ecnc-dev/employee-directory/backend/internal/domain"
)

type LocalProvider struct {
	// RootPath 是保存上传文件的目录，例如 "uploads"
	RootPath string
}

func NewLocalProvider(root string) (*LocalProvider, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &LocalProvider{RootPath: root}, nil
}

func (l *LocalProvider) Put(_ context.Context, name string, body io.ReadSeeker, _ string) (string, error) {
	path := filepath.Join(l.RootPath, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", err
	}

	return path, nil
}

func (l *LocalProvider) Get(_ context.Context, name string) (*FileObject, error) {
	path := filepath.Join(l.RootPath, filepath.Base(name))

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		f.Close()
		return nil, domain.ErrNotFound
	}

	return &FileObject{
		Body:          f,
		ContentLength: stat.Size(),
		LastModified:  stat.ModTime(),
	}, nil
}
