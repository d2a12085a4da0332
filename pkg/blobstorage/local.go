// Package blobstorage - хранилище бинарных вложений (фото счетчиков,
// подписи). Локальный диск для разработки, GCS для продакшена.
package blobstorage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type Local struct {
	dir string
}

func NewLocal(dir string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &Local{dir: dir}, nil
}

func (l *Local) Store(_ context.Context, filename string, data []byte) (string, error) {
	path := filepath.Join(l.dir, filepath.Base(filename))

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write file %s: %w", filename, err)
	}

	return filepath.Base(filename), nil
}
