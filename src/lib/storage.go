package lib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

var ErrInvalidObjectName = errors.New("invalid object name")

// Storage holds uploaded resource files.
type Storage interface {
	Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, name string) error
	Serve(w http.ResponseWriter, r *http.Request, name string)
}

// ValidObjectName rejects anything that is not a plain file name.
func ValidObjectName(name string) bool {
	return name != "" && name != "." && name != ".." && filepath.Base(name) == name
}

type LocalStorage struct {
	Dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &LocalStorage{Dir: dir}, nil
}

func (s *LocalStorage) path(name string) (string, error) {
	if !ValidObjectName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidObjectName, name)
	}
	return filepath.Join(s.Dir, name), nil
}

func (s *LocalStorage) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	dst, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(p)
		return err
	}
	return dst.Close()
}

func (s *LocalStorage) Remove(ctx context.Context, name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	return os.Remove(p)
}

func (s *LocalStorage) Serve(w http.ResponseWriter, r *http.Request, name string) {
	p, err := s.path(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if _, err := os.Stat(p); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, p)
}
