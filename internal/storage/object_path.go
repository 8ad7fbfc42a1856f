package storage

import (
	"mime"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

func sanitizePathSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	builder := strings.Builder{}
	builder.Grow(len(value))
	for i := 0; i < len(value); i++ {
		ch := value[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= '0' && ch <= '9':
			builder.WriteByte(ch)
		case ch >= 'A' && ch <= 'Z':
			builder.WriteByte(ch + 32)
		case ch == '-', ch == '_':
			builder.WriteByte(ch)
		}
	}
	return builder.String()
}

// extensionOf extracts and sanitizes the extension from a client-supplied
// filename, without the leading dot.
func extensionOf(originalName string) string {
	ext := strings.TrimPrefix(path.Ext(strings.TrimSpace(originalName)), ".")
	ext = sanitizePathSegment(ext)
	if ext == "" {
		return "bin"
	}
	return ext
}

// buildObjectPath produces <category>/<yyyy>/<mm>/<dd>/<uuid>.<ext>. The
// random name makes keys collision-free and strips anything the client put in
// the filename.
func buildObjectPath(category, originalName string) string {
	now := time.Now().UTC()
	category = sanitizePathSegment(category)
	if category == "" {
		category = "misc"
	}
	datedir := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format("2006/01/02")
	filename := uuid.NewString() + "." + extensionOf(originalName)
	return path.Join(category, datedir, filename)
}

func detectContentType(originalName string) string {
	typeName := mime.TypeByExtension("." + extensionOf(originalName))
	if typeName == "" {
		return "application/octet-stream"
	}
	return typeName
}

func joinPrefix(prefix, key string) string {
	cleanPrefix := trimPrefix(prefix)
	if cleanPrefix == "" {
		return strings.TrimLeft(key, "/")
	}
	return path.Join(cleanPrefix, strings.TrimLeft(key, "/"))
}

func trimPrefix(prefix string) string {
	return strings.Trim(strings.TrimSpace(prefix), "/")
}
