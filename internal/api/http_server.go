package api

import (
	"context"
	"strconv"
	"strings"
	"time"

	"tmsiti/internal/auth"
	"tmsiti/internal/config"
	"tmsiti/internal/entity"
	"tmsiti/internal/i18n"
	"tmsiti/internal/model"
	"tmsiti/internal/notify"
	"tmsiti/internal/service"
	"tmsiti/internal/storage"

	"github.com/gin-gonic/gin"
)

const dbTimeout = 5 * time.Second

// HTTPHandler carries the request handlers and their dependencies.
type HTTPHandler struct {
	cfg               config.Config
	repo              model.Repository
	storage           storage.Storage
	storagePublicBase string
	authManager       *auth.Manager
	notifier          notify.Notifier

	accounts *service.AccountService
}

func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage, mailer notify.Mailer, notifier notify.Notifier) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	handler := &HTTPHandler{
		cfg:               cfg,
		repo:              repo,
		storage:           store,
		storagePublicBase: normalisePublicBase(cfg.StoragePublicBaseURL),
		authManager:       authManager,
		notifier:          notifier,
		accounts:          service.NewAccountService(repo, mailer, authManager, cfg.ResetPasswordBaseURL),
	}

	return handler, nil
}

func normalisePublicBase(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		trimmed = "/files"
	}
	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		return strings.TrimRight(trimmed, "/")
	}
	if !strings.HasPrefix(trimmed, "/") {
		trimmed = "/" + trimmed
	}
	return strings.TrimRight(trimmed, "/")
}

// publicURL turns a storage key into a URL a browser can fetch.
func (h *HTTPHandler) publicURL(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}
	return h.storagePublicBase + "/" + strings.TrimLeft(key, "/")
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), dbTimeout)
}

// requestLang validates the lang query parameter. An absent parameter falls
// back to Uzbek; an unsupported value is a client error, never a silent
// fallback.
func requestLang(c *gin.Context) (i18n.Lang, bool) {
	lang, err := i18n.Parse(c.Query("lang"))
	if err != nil {
		FromError(c, err)
		return "", false
	}
	return lang, true
}

func pathID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// applyString records an optional form field into a column update map.
func applyString(updates map[string]interface{}, column string, value *string) {
	if value != nil {
		updates[column] = *value
	}
}

// parseDateField accepts RFC 3339 or a bare yyyy-mm-dd date. An empty value
// yields nil.
func parseDateField(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return &ts, nil
	}
	ts, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

func bindListQuery(c *gin.Context) (*entity.ListQuery, bool) {
	var query entity.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		InvalidPayload(c)
		return nil, false
	}
	if err := entity.ValidatePageBounds(query.Page, query.Size); err != nil {
		FromError(c, err)
		return nil, false
	}
	return &query, true
}

// listLocalized is the shared shape of every public list endpoint: validate
// lang and pagination, load a page, project rows through the language-aware
// view maker.
func listLocalized[T any, V any](h *HTTPHandler, c *gin.Context,
	list func(ctx context.Context, params *entity.ListQuery) ([]T, *entity.PageMeta, error),
	view func(*T, i18n.Lang) V,
) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	rows, meta, err := list(ctx, query)
	if err != nil {
		FromError(c, err)
		return
	}

	items := make([]V, 0, len(rows))
	for idx := range rows {
		items = append(items, view(&rows[idx], lang))
	}

	c.JSON(200, entity.PageResponse{Items: items, PageMeta: *meta})
}

// getLocalized serves a single row through its localized view.
func getLocalized[T any, V any](h *HTTPHandler, c *gin.Context,
	get func(ctx context.Context, id uint) (*T, error),
	view func(*T, i18n.Lang) V,
) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	row, err := get(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(200, view(row, lang))
}

// deleteEntity removes a row and, when the row carried a stored file, the
// file behind it. Storage cleanup is best effort.
func deleteEntity[T any](h *HTTPHandler, c *gin.Context,
	get func(ctx context.Context, id uint) (*T, error),
	remove func(ctx context.Context, id uint) error,
	fileKeys func(*T) []string,
) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	var keys []string
	if fileKeys != nil {
		row, err := get(ctx, id)
		if err != nil {
			FromError(c, err)
			return
		}
		keys = fileKeys(row)
	}

	if err := remove(ctx, id); err != nil {
		FromError(c, err)
		return
	}

	h.cleanupStoredFiles(c, keys)
	c.JSON(200, gin.H{"deleted": id})
}
