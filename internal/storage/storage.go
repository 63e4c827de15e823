package storage

import "io"

// Store is the file-storage collaborator that persists uploaded
// binaries and maps them to web-retrievable paths.
type Store interface {
	// Save streams the binary to durable storage under name.
	Save(name string, r io.Reader) error
	// PublicPath returns the web path a saved file is served from.
	PublicPath(name string) string
	// List returns the base names of every stored file.
	List() ([]string, error)
}
