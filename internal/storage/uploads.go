// Package storage persists uploaded images on local disk. The rest of the
// system only ever sees the public /uploads/<name> path returned by Save;
// file bytes never travel past this package.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const publicPrefix = "/uploads/"

type UploadStore struct {
	root string
}

func NewUploadStore(root string) (*UploadStore, error) {
	abs, err := filepath.Abs(strings.TrimSpace(root))
	if err != nil {
		return nil, fmt.Errorf("resolve upload root: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload root: %w", err)
	}

	return &UploadStore{root: abs}, nil
}

func (s *UploadStore) Root() string {
	return s.root
}

// Save writes one multipart file under the upload root with a unique
// sanitized name and returns its public path.
func (s *UploadStore) Save(file multipart.File, originalName string) (string, error) {
	name := uuid.NewString() + "-" + sanitizeFilename(originalName)
	dest := filepath.Join(s.root, name)

	// The sanitized name has no separators; the join must stay inside root.
	if filepath.Dir(dest) != s.root {
		return "", fmt.Errorf("upload name escapes root: %q", originalName)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(out, file); err != nil {
		_ = out.Close()
		_ = os.Remove(dest)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	if err := out.Close(); err != nil {
		_ = os.Remove(dest)
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return publicPrefix + name, nil
}

// sanitizeFilename strips directories and any character outside a
// conservative allowlist, keeping the extension usable.
func sanitizeFilename(name string) string {
	base := path.Base(filepath.ToSlash(strings.TrimSpace(name)))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "file"
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}
