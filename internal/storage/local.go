package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Local struct {
	BaseDir   string
	URLPrefix string
}

func NewLocal(baseDir, urlPrefix string) *Local {
	return &Local{BaseDir: baseDir, URLPrefix: urlPrefix}
}

func (l *Local) Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error) {
	if err := ctx.Err(); err != nil {
		return PutResult{}, err
	}
	if err := os.MkdirAll(l.BaseDir, 0o755); err != nil {
		return PutResult{}, err
	}

	key := objectKey(in)
	dstPath := filepath.Join(l.BaseDir, key)

	// write then rename so readers never see a half-written file
	tmp, err := os.CreateTemp(l.BaseDir, ".put-*")
	if err != nil {
		return PutResult{}, err
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return PutResult{}, err
	}
	if err := tmp.Close(); err != nil {
		return PutResult{}, err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return PutResult{}, err
	}
	if err := os.Rename(tmp.Name(), dstPath); err != nil {
		return PutResult{}, err
	}

	url := strings.TrimRight(l.URLPrefix, "/") + "/" + key
	return PutResult{Key: key, URL: url}, nil
}

func (l *Local) Delete(ctx context.Context, key string) error {
	_ = ctx
	key = filepath.Base(key)
	return os.Remove(filepath.Join(l.BaseDir, key))
}

// Open returns a stored object for reading.
func (l *Local) Open(key string) (*os.File, error) {
	return os.Open(filepath.Join(l.BaseDir, filepath.Base(key)))
}

// objectKey keeps only the base name of an explicit key so callers cannot
// escape the target directory.
func objectKey(in PutInput) string {
	if k := sanitizeKey(in.Key); k != "" {
		return k
	}
	return uuid.NewString() + safeExt(in.Filename)
}

func sanitizeKey(key string) string {
	key = filepath.Base(strings.TrimSpace(key))
	if key == "." || key == "/" || key == ".." || strings.HasPrefix(key, ".") {
		return ""
	}
	return key
}

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt", ".pdf", ".csv":
		return ext
	default:
		return ""
	}
}

func (l *Local) String() string { return fmt.Sprintf("local(%s)", l.BaseDir) }
