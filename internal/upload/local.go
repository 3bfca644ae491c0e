// Package upload stores uploaded file blobs on the local filesystem
// and serves them back under a stable URL prefix.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore writes blobs into a single directory. Stored names are
// random; the original filename only contributes its extension.
type LocalStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
}

// NewLocalStore creates the storage directory if needed
func NewLocalStore(dir, urlPrefix string, maxBytes int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		maxBytes:  maxBytes,
	}, nil
}

// Dir returns the storage directory, for static file serving
func (s *LocalStore) Dir() string {
	return s.dir
}

// URLPrefix returns the public path prefix uploads are served under
func (s *LocalStore) URLPrefix() string {
	return s.urlPrefix
}

// Save stores the blob and returns its retrieval URL
func (s *LocalStore) Save(filename string, r io.Reader) (string, error) {
	ext := sanitizeExt(filepath.Ext(filename))
	name := uuid.NewString() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	limited := io.LimitReader(r, s.maxBytes+1)
	n, err := io.Copy(f, limited)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	if n > s.maxBytes {
		os.Remove(path)
		return "", fmt.Errorf("upload exceeds %d bytes", s.maxBytes)
	}

	return s.urlPrefix + "/" + name, nil
}

// Remove deletes the blob behind a retrieval URL previously returned by
// Save. URLs outside the store's prefix are rejected.
func (s *LocalStore) Remove(url string) error {
	name, ok := strings.CutPrefix(url, s.urlPrefix+"/")
	if !ok {
		return fmt.Errorf("url %q is not under %q", url, s.urlPrefix)
	}
	name = filepath.Base(name)
	if name == "." || name == ".." || name == "" {
		return fmt.Errorf("invalid upload name %q", name)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove upload: %w", err)
	}
	return nil
}

// sanitizeExt keeps only short, simple extensions
func sanitizeExt(ext string) string {
	if len(ext) > 10 || strings.ContainsAny(ext, "/\\") {
		return ""
	}
	return strings.ToLower(ext)
}
