package api

import (
	"bytes"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"tmsiti/internal/config"
	"tmsiti/internal/storage"

	"github.com/gin-gonic/gin"
)

func uploadTestHandler(t *testing.T, maxBytes int64) (*HTTPHandler, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	baseDir := t.TempDir()
	store, err := storage.NewLocalStorage(baseDir)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	cfg := config.Config{
		JWTSecret:            "test-secret",
		JWTIssuer:            "tmsiti-test",
		JWTExpirationMinutes: 60,
		StoragePublicBaseURL: "/files",
		UploadMaxBytes:       maxBytes,
	}
	handler, err := NewHTTPHandler(cfg, newFakeRepo(), store, nil, nil)
	if err != nil {
		t.Fatalf("NewHTTPHandler: %v", err)
	}
	return handler, baseDir
}

func uploadForm(t *testing.T, field, filename string, content []byte) (*bytes.Reader, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}
	return bytes.NewReader(body.Bytes()), writer.FormDataContentType()
}

func storedFileSizes(t *testing.T, baseDir string) []int64 {
	t.Helper()
	var sizes []int64
	err := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		sizes = append(sizes, info.Size())
		return nil
	})
	if err != nil {
		t.Fatalf("walk storage dir: %v", err)
	}
	return sizes
}

func TestSaveUploadUnlimitedStoresFullFile(t *testing.T) {
	handler, baseDir := uploadTestHandler(t, 0)

	router := gin.New()
	router.POST("/upload", func(c *gin.Context) {
		url, ok := handler.saveUpload(c, "file", "test")
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": url})
	})

	content := bytes.Repeat([]byte("a"), 1024)
	body, contentType := uploadForm(t, "file", "doc.pdf", content)
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	sizes := storedFileSizes(t, baseDir)
	if len(sizes) != 1 {
		t.Fatalf("stored %d files, want 1", len(sizes))
	}
	if sizes[0] != int64(len(content)) {
		t.Fatalf("stored %d bytes, want %d", sizes[0], len(content))
	}
}

func TestSaveUploadRejectsOversizedFile(t *testing.T) {
	handler, baseDir := uploadTestHandler(t, 16)

	router := gin.New()
	router.POST("/upload", func(c *gin.Context) {
		if _, ok := handler.saveUpload(c, "file", "test"); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	body, contentType := uploadForm(t, "file", "doc.pdf", bytes.Repeat([]byte("a"), 1024))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if sizes := storedFileSizes(t, baseDir); len(sizes) != 0 {
		t.Fatalf("stored %d files, want none", len(sizes))
	}
}
