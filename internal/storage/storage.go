package storage

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage abstracts where attachment files live. The local
// implementation writes to a directory under the upload root; a cloud
// backend would satisfy the same interface.
type Storage interface {
	// Save writes the file content under the given key.
	Save(key string, reader io.Reader) error

	// Open returns a reader for the stored file.
	Open(key string) (io.ReadCloser, error)

	// Delete removes the stored file. Deleting a missing key is not an error.
	Delete(key string) error

	// Exists reports whether the key is stored and returns its size.
	Exists(key string) (bool, int64, error)
}

// NewKey builds a unique storage key for an uploaded file, keeping the
// original extension so downloads get a sensible content type.
func NewKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return uuid.New().String() + ext
}
