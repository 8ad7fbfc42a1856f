package storage

import (
	"context"
	"fmt"
	"strings"

	"tmsiti/internal/config"
)

const (
	// TypeLocal stores files on the local filesystem.
	TypeLocal = "local"
	// TypeS3 targets Amazon S3 or a compatible endpoint.
	TypeS3 = "s3"
	// TypeOSS targets Alibaba Cloud OSS.
	TypeOSS = "oss"
	// TypeCOS targets Tencent Cloud COS.
	TypeCOS = "cos"
	// TypeR2 targets Cloudflare R2.
	TypeR2 = "r2"
)

// SaveOptions controls how a backend persists an upload.
//
// Category groups objects on disk (news, vacancies, ...). OriginalName is the
// client-supplied filename; only its extension survives into the stored key,
// the name itself is replaced with a random identifier.
type SaveOptions struct {
	Category     string
	OriginalName string
}

// Storage persists binary payloads and returns a backend-specific key (a
// relative path for local storage, an object key for the cloud backends).
type Storage interface {
	Save(ctx context.Context, data []byte, opts SaveOptions) (string, error)
	Delete(ctx context.Context, key string) error
}

// LocalBaseDirProvider is implemented by backends whose files can be served
// directly over HTTP from a local directory.
type LocalBaseDirProvider interface {
	LocalBaseDir() string
}

// NewStorage instantiates the configured backend.
func NewStorage(cfg config.Config) (Storage, error) {
	typeName := strings.ToLower(strings.TrimSpace(cfg.StorageType))
	switch typeName {
	case "", TypeLocal:
		return NewLocalStorage(cfg.StorageLocalDir)
	case TypeS3:
		return NewS3Storage(cfg)
	case TypeOSS:
		return NewOSSStorage(cfg)
	case TypeCOS:
		return NewCOSStorage(cfg)
	case TypeR2:
		return NewR2Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
