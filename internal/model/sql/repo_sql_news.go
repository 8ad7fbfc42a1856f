package sql

import (
	"context"

	"tmsiti/internal/entity"
)

var (
	newsSearch           = searchColumns("title_uz", "title_ru", "title_en")
	antiCorruptionSearch = searchColumns("title_uz", "title_ru", "title_en")
)

func (r *GormRepository) CreateNews(ctx context.Context, news *entity.DbNews) error {
	return createRow(ctx, r, news)
}

func (r *GormRepository) UpdateNews(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbNews](ctx, r, id, updates)
}

func (r *GormRepository) GetNews(ctx context.Context, id uint) (*entity.DbNews, error) {
	return getByID[entity.DbNews](ctx, r, id)
}

// ListNews orders by publication date, newest first. Unpublished drafts sort
// after published items under this ordering on every supported dialect because
// the secondary id key keeps the result stable.
func (r *GormRepository) ListNews(ctx context.Context, params *entity.ListQuery) ([]entity.DbNews, *entity.PageMeta, error) {
	return listPage[entity.DbNews](ctx, r, params, "published_at DESC, id DESC", newsSearch)
}

func (r *GormRepository) DeleteNews(ctx context.Context, id uint) error {
	return deleteByID[entity.DbNews](ctx, r, id)
}

func (r *GormRepository) CreateAntiCorruption(ctx context.Context, item *entity.DbAntiCorruption) error {
	return createRow(ctx, r, item)
}

func (r *GormRepository) UpdateAntiCorruption(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbAntiCorruption](ctx, r, id, updates)
}

func (r *GormRepository) GetAntiCorruption(ctx context.Context, id uint) (*entity.DbAntiCorruption, error) {
	return getByID[entity.DbAntiCorruption](ctx, r, id)
}

func (r *GormRepository) ListAntiCorruption(ctx context.Context, params *entity.ListQuery) ([]entity.DbAntiCorruption, *entity.PageMeta, error) {
	return listPage[entity.DbAntiCorruption](ctx, r, params, "id DESC", antiCorruptionSearch)
}

func (r *GormRepository) DeleteAntiCorruption(ctx context.Context, id uint) error {
	return deleteByID[entity.DbAntiCorruption](ctx, r, id)
}
