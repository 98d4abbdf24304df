package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	key, err := s.Upload(ctx, "shards/arabic_data_part1.json", strings.NewReader(`{"articles":[]}`))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if key != "shards/arabic_data_part1.json" {
		t.Errorf("key = %q", key)
	}

	rc, err := s.Download(ctx, key)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != `{"articles":[]}` {
		t.Errorf("content = %q", data)
	}

	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Download(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Errorf("deleting a missing object should succeed, got %v", err)
	}
}

func TestLocalStorage_UploadReplaces(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, _ := NewLocalStorage(dir)
	s.Upload(ctx, "a.json", strings.NewReader("one"))
	s.Upload(ctx, "a.json", strings.NewReader("two"))

	data, err := os.ReadFile(filepath.Join(dir, "a.json"))
	if err != nil || string(data) != "two" {
		t.Errorf("content = %q, err = %v", data, err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected no temp files left, got %d entries", len(entries))
	}
}

func TestLocalStorage_RejectsEscapingNames(t *testing.T) {
	s, _ := NewLocalStorage(t.TempDir())
	for _, name := range []string{"", "../secret.json", "a/../../b.json"} {
		if _, err := s.Download(context.Background(), name); !errors.Is(err, ErrInvalidName) {
			t.Errorf("Download(%q) error = %v, want ErrInvalidName", name, err)
		}
	}
}

func TestNewStorage_UnknownType(t *testing.T) {
	if _, err := NewStorage(context.Background(), StorageConfig{Type: "ftp"}); err == nil {
		t.Error("expected error for unknown storage type")
	}
	if _, err := NewStorage(context.Background(), StorageConfig{Type: StorageTypeS3}); err == nil {
		t.Error("expected error for S3 without bucket")
	}
}
