package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// ErrNotFound is returned when an object does not exist
var ErrNotFound = errors.New("object not found")

// ErrInvalidName is returned for object names that escape the storage root
var ErrInvalidName = errors.New("invalid object name")

// Storage holds corpus shard files by name
type Storage interface {
	// Upload stores an object under name and returns its storage path
	Upload(ctx context.Context, name string, data io.Reader) (string, error)

	// Download opens an object by name
	Download(ctx context.Context, name string) (io.ReadCloser, error)

	// Delete removes an object by name; deleting a missing object is not an error
	Delete(ctx context.Context, name string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a new storage instance based on configuration
func NewStorage(ctx context.Context, cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal, "":
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("AWS_S3_BUCKET is required for S3 storage")
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// cleanName normalizes an object name to a slash separated relative key
func cleanName(name string) (string, error) {
	name = strings.Trim(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"), "/")
	if name == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	for _, seg := range strings.Split(name, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return path.Clean(name), nil
}
