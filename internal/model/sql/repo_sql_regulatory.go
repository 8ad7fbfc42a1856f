package sql

import (
	"context"

	"tmsiti/internal/entity"
)

// Regulatory document families share the list shape: stable code ordering and
// keyword search over code plus the localized titles.
var (
	shnqSearch      = searchColumns("code", "title_uz", "title_ru", "title_en")
	standardSearch  = searchColumns("code", "title_uz", "title_ru", "title_en")
	buildingSearch  = searchColumns("code", "number", "title_uz", "title_ru", "title_en")
	srnSearch       = searchColumns("srn_code", "srn_title_uz", "srn_title_ru", "srn_title_en", "main_shnq_code")
	technicalSearch = searchColumns("code", "title_uz", "title_ru", "title_en")
	referenceSearch = searchColumns("number", "title_uz", "title_ru", "title_en")
)

func (r *GormRepository) CreateShnq(ctx context.Context, doc *entity.DbShnq) error {
	return createRow(ctx, r, doc)
}

func (r *GormRepository) UpdateShnq(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbShnq](ctx, r, id, updates)
}

func (r *GormRepository) GetShnq(ctx context.Context, id uint) (*entity.DbShnq, error) {
	return getByID[entity.DbShnq](ctx, r, id)
}

func (r *GormRepository) ListShnq(ctx context.Context, params *entity.ListQuery) ([]entity.DbShnq, *entity.PageMeta, error) {
	return listPage[entity.DbShnq](ctx, r, params, "code ASC", shnqSearch)
}

func (r *GormRepository) DeleteShnq(ctx context.Context, id uint) error {
	return deleteByID[entity.DbShnq](ctx, r, id)
}

func (r *GormRepository) CreateStandard(ctx context.Context, doc *entity.DbStandard) error {
	return createRow(ctx, r, doc)
}

func (r *GormRepository) UpdateStandard(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbStandard](ctx, r, id, updates)
}

func (r *GormRepository) GetStandard(ctx context.Context, id uint) (*entity.DbStandard, error) {
	return getByID[entity.DbStandard](ctx, r, id)
}

func (r *GormRepository) ListStandards(ctx context.Context, params *entity.ListQuery) ([]entity.DbStandard, *entity.PageMeta, error) {
	return listPage[entity.DbStandard](ctx, r, params, "code ASC", standardSearch)
}

func (r *GormRepository) DeleteStandard(ctx context.Context, id uint) error {
	return deleteByID[entity.DbStandard](ctx, r, id)
}

func (r *GormRepository) CreateBuildingRegulation(ctx context.Context, doc *entity.DbBuildingRegulation) error {
	return createRow(ctx, r, doc)
}

func (r *GormRepository) UpdateBuildingRegulation(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbBuildingRegulation](ctx, r, id, updates)
}

func (r *GormRepository) GetBuildingRegulation(ctx context.Context, id uint) (*entity.DbBuildingRegulation, error) {
	return getByID[entity.DbBuildingRegulation](ctx, r, id)
}

func (r *GormRepository) ListBuildingRegulations(ctx context.Context, params *entity.ListQuery) ([]entity.DbBuildingRegulation, *entity.PageMeta, error) {
	return listPage[entity.DbBuildingRegulation](ctx, r, params, "code ASC", buildingSearch)
}

func (r *GormRepository) DeleteBuildingRegulation(ctx context.Context, id uint) error {
	return deleteByID[entity.DbBuildingRegulation](ctx, r, id)
}

func (r *GormRepository) CreateSmetaResursNorm(ctx context.Context, doc *entity.DbSmetaResursNorm) error {
	return createRow(ctx, r, doc)
}

func (r *GormRepository) UpdateSmetaResursNorm(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbSmetaResursNorm](ctx, r, id, updates)
}

func (r *GormRepository) GetSmetaResursNorm(ctx context.Context, id uint) (*entity.DbSmetaResursNorm, error) {
	return getByID[entity.DbSmetaResursNorm](ctx, r, id)
}

func (r *GormRepository) ListSmetaResursNorms(ctx context.Context, params *entity.ListQuery) ([]entity.DbSmetaResursNorm, *entity.PageMeta, error) {
	return listPage[entity.DbSmetaResursNorm](ctx, r, params, "srn_code ASC", srnSearch)
}

func (r *GormRepository) DeleteSmetaResursNorm(ctx context.Context, id uint) error {
	return deleteByID[entity.DbSmetaResursNorm](ctx, r, id)
}

func (r *GormRepository) CreateTechnicalRegulation(ctx context.Context, doc *entity.DbTechnicalRegulation) error {
	return createRow(ctx, r, doc)
}

func (r *GormRepository) UpdateTechnicalRegulation(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbTechnicalRegulation](ctx, r, id, updates)
}

func (r *GormRepository) GetTechnicalRegulation(ctx context.Context, id uint) (*entity.DbTechnicalRegulation, error) {
	return getByID[entity.DbTechnicalRegulation](ctx, r, id)
}

func (r *GormRepository) ListTechnicalRegulations(ctx context.Context, params *entity.ListQuery) ([]entity.DbTechnicalRegulation, *entity.PageMeta, error) {
	return listPage[entity.DbTechnicalRegulation](ctx, r, params, "code ASC", technicalSearch)
}

func (r *GormRepository) DeleteTechnicalRegulation(ctx context.Context, id uint) error {
	return deleteByID[entity.DbTechnicalRegulation](ctx, r, id)
}

func (r *GormRepository) CreateReference(ctx context.Context, doc *entity.DbReference) error {
	return createRow(ctx, r, doc)
}

func (r *GormRepository) UpdateReference(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbReference](ctx, r, id, updates)
}

func (r *GormRepository) GetReference(ctx context.Context, id uint) (*entity.DbReference, error) {
	return getByID[entity.DbReference](ctx, r, id)
}

func (r *GormRepository) ListReferences(ctx context.Context, params *entity.ListQuery) ([]entity.DbReference, *entity.PageMeta, error) {
	return listPage[entity.DbReference](ctx, r, params, "id ASC", referenceSearch)
}

func (r *GormRepository) DeleteReference(ctx context.Context, id uint) error {
	return deleteByID[entity.DbReference](ctx, r, id)
}
