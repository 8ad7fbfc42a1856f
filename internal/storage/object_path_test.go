package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtensionOf(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "pdf", in: "report.pdf", want: "pdf"},
		{name: "uppercase", in: "PHOTO.JPG", want: "jpg"},
		{name: "no extension", in: "README", want: "bin"},
		{name: "traversal garbage", in: "../../etc/passwd.d/../x.p!!df", want: "pdf"},
		{name: "empty", in: "", want: "bin"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extensionOf(tc.in); got != tc.want {
				t.Fatalf("extensionOf(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestBuildObjectPathShape(t *testing.T) {
	key := buildObjectPath("News Attachments", "hujjat nusxasi.PDF")
	parts := strings.Split(key, "/")
	if len(parts) != 5 {
		t.Fatalf("key = %q, want category/yyyy/mm/dd/name", key)
	}
	if parts[0] != "newsattachments" {
		t.Fatalf("category = %q", parts[0])
	}
	if !strings.HasSuffix(key, ".pdf") {
		t.Fatalf("key = %q, want .pdf suffix", key)
	}
	if key == buildObjectPath("News Attachments", "hujjat nusxasi.PDF") {
		t.Fatal("two keys for the same name must differ")
	}
}

func TestJoinPrefix(t *testing.T) {
	if got := joinPrefix(" /uploads/ ", "/news/a.pdf"); got != "uploads/news/a.pdf" {
		t.Fatalf("joinPrefix = %q", got)
	}
	if got := joinPrefix("", "news/a.pdf"); got != "news/a.pdf" {
		t.Fatalf("joinPrefix with empty prefix = %q", got)
	}
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	key, err := s.Save(context.Background(), []byte("payload"), SaveOptions{Category: "news", OriginalName: "rasm.png"})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	abs := filepath.Join(dir, filepath.FromSlash(key))
	if _, err := os.Stat(abs); err != nil {
		t.Fatalf("stored file missing: %v", err)
	}

	if err := s.Delete(context.Background(), key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(abs); !os.IsNotExist(err) {
		t.Fatalf("file still present after delete: %v", err)
	}

	// Deleting again is a no-op.
	if err := s.Delete(context.Background(), key); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestLocalStorageDeleteRejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	if err := s.Delete(context.Background(), "../outside.txt"); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
}

func TestLocalStorageRejectsEmptyPayload(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	if _, err := s.Save(context.Background(), nil, SaveOptions{Category: "news"}); err == nil {
		t.Fatal("expected empty payload to be rejected")
	}
}
