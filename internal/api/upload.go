package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"tmsiti/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Accepted upload extensions: images for illustrations and portraits,
// documents for the regulatory files, archives for bundled attachments.
var allowedUploadExts = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {},
	"pdf": {}, "doc": {}, "docx": {}, "xls": {}, "xlsx": {}, "ppt": {}, "pptx": {},
	"zip": {}, "rar": {},
}

// saveUpload stores the optional multipart file under the given form field and
// returns its public URL. An absent field is not an error; the empty string
// marks "no file". On failure the response is already written and ok is false.
func (h *HTTPHandler) saveUpload(c *gin.Context, field, category string) (string, bool) {
	fileHeader, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return "", true
	}
	if err != nil {
		BadRequest(c, ErrCodeInvalidRequest, "invalid multipart payload")
		return "", false
	}

	if h.cfg.UploadMaxBytes > 0 && fileHeader.Size > h.cfg.UploadMaxBytes {
		BadRequest(c, ErrCodeInvalidRequest, "file exceeds the upload size limit")
		return "", false
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileHeader.Filename), "."))
	if _, ok := allowedUploadExts[ext]; !ok {
		Unprocessable(c, ErrCodeValidation, "file type not allowed")
		return "", false
	}

	src, err := fileHeader.Open()
	if err != nil {
		InternalError(c, "failed to read uploaded file")
		return "", false
	}
	defer src.Close()

	// UploadMaxBytes <= 0 disables the limit entirely.
	var reader io.Reader = src
	if h.cfg.UploadMaxBytes > 0 {
		reader = io.LimitReader(src, h.cfg.UploadMaxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		InternalError(c, "failed to read uploaded file")
		return "", false
	}
	if h.cfg.UploadMaxBytes > 0 && int64(len(data)) > h.cfg.UploadMaxBytes {
		BadRequest(c, ErrCodeInvalidRequest, "file exceeds the upload size limit")
		return "", false
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	key, err := h.storage.Save(ctx, data, storage.SaveOptions{
		Category:     category,
		OriginalName: fileHeader.Filename,
	})
	if err != nil {
		logrus.WithError(err).WithField("category", category).Error("failed to persist upload")
		InternalError(c, "failed to store uploaded file")
		return "", false
	}

	return h.publicURL(key), true
}

// storageKeyFromURL reverses publicURL so stored files can be deleted.
func (h *HTTPHandler) storageKeyFromURL(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	base := h.storagePublicBase + "/"
	if strings.HasPrefix(value, base) {
		return strings.TrimPrefix(value, base)
	}
	return ""
}

// cleanupStoredFiles deletes the files behind the given public URLs. Best
// effort only: a leaked file is logged, never surfaced to the client.
func (h *HTTPHandler) cleanupStoredFiles(c *gin.Context, urls []string) {
	if h.storage == nil {
		return
	}
	for _, u := range urls {
		key := h.storageKeyFromURL(u)
		if key == "" {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := h.storage.Delete(ctx, key); err != nil {
			logrus.WithError(err).WithField("key", key).Warn("failed to delete stored file")
		}
		cancel()
	}
}
