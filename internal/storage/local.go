package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// LocalStore keeps media files in a single directory on local disk and
// serves them under publicPrefix.
type LocalStore struct {
	dir          string
	publicPrefix string
}

var _ Store = (*LocalStore)(nil)

func NewLocalStore(dir, publicPrefix string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, publicPrefix: publicPrefix}, nil
}

func (s *LocalStore) Save(name string, r io.Reader) error {
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("create video file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return fmt.Errorf("write video file: %w", err)
	}
	return nil
}

func (s *LocalStore) PublicPath(name string) string {
	// URL path, so path.Join rather than filepath.Join.
	return path.Join(s.publicPrefix, name)
}

func (s *LocalStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}
