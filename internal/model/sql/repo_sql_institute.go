package sql

import (
	"context"

	"tmsiti/internal/entity"

	"gorm.io/gorm"
)

var (
	managementSearch = searchColumns("full_name", "position_uz", "position_ru", "position_en")
	structureSearch  = searchColumns("title_uz", "title_ru", "title_en")
	divisionSearch   = searchColumns("title_uz", "title_ru", "title_en", "head_full_name")
	vacancySearch    = searchColumns("title_uz", "title_ru", "title_en")
)

func (r *GormRepository) CreateAbout(ctx context.Context, item *entity.DbAbout) error {
	return createRow(ctx, r, item)
}

func (r *GormRepository) UpdateAbout(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbAbout](ctx, r, id, updates)
}

func (r *GormRepository) GetAbout(ctx context.Context, id uint) (*entity.DbAbout, error) {
	return getByID[entity.DbAbout](ctx, r, id)
}

func (r *GormRepository) ListAbout(ctx context.Context, params *entity.ListQuery) ([]entity.DbAbout, *entity.PageMeta, error) {
	return listPage[entity.DbAbout](ctx, r, params, "id ASC", nil)
}

func (r *GormRepository) DeleteAbout(ctx context.Context, id uint) error {
	return deleteByID[entity.DbAbout](ctx, r, id)
}

func (r *GormRepository) CreateManagement(ctx context.Context, item *entity.DbManagement) error {
	return createRow(ctx, r, item)
}

func (r *GormRepository) UpdateManagement(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbManagement](ctx, r, id, updates)
}

func (r *GormRepository) GetManagement(ctx context.Context, id uint) (*entity.DbManagement, error) {
	return getByID[entity.DbManagement](ctx, r, id)
}

// ListManagement follows the curated display order, not insertion order.
func (r *GormRepository) ListManagement(ctx context.Context, params *entity.ListQuery) ([]entity.DbManagement, *entity.PageMeta, error) {
	return listPage[entity.DbManagement](ctx, r, params, "order_index ASC, id ASC", managementSearch)
}

func (r *GormRepository) DeleteManagement(ctx context.Context, id uint) error {
	return deleteByID[entity.DbManagement](ctx, r, id)
}

func (r *GormRepository) CreateStructure(ctx context.Context, item *entity.DbStructure) error {
	return createRow(ctx, r, item)
}

func (r *GormRepository) UpdateStructure(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbStructure](ctx, r, id, updates)
}

func (r *GormRepository) GetStructure(ctx context.Context, id uint) (*entity.DbStructure, error) {
	return getByID[entity.DbStructure](ctx, r, id)
}

func (r *GormRepository) ListStructures(ctx context.Context, params *entity.ListQuery) ([]entity.DbStructure, *entity.PageMeta, error) {
	return listPage[entity.DbStructure](ctx, r, params, "id ASC", structureSearch)
}

func (r *GormRepository) DeleteStructure(ctx context.Context, id uint) error {
	return deleteByID[entity.DbStructure](ctx, r, id)
}

func (r *GormRepository) CreateStructuralDivision(ctx context.Context, item *entity.DbStructuralDivision) error {
	return createRow(ctx, r, item)
}

func (r *GormRepository) UpdateStructuralDivision(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbStructuralDivision](ctx, r, id, updates)
}

func (r *GormRepository) GetStructuralDivision(ctx context.Context, id uint) (*entity.DbStructuralDivision, error) {
	return getByID[entity.DbStructuralDivision](ctx, r, id)
}

func (r *GormRepository) ListStructuralDivisions(ctx context.Context, params *entity.ListQuery) ([]entity.DbStructuralDivision, *entity.PageMeta, error) {
	return listPage[entity.DbStructuralDivision](ctx, r, params, "id ASC", divisionSearch)
}

func (r *GormRepository) DeleteStructuralDivision(ctx context.Context, id uint) error {
	return deleteByID[entity.DbStructuralDivision](ctx, r, id)
}

func (r *GormRepository) CreateVacancy(ctx context.Context, item *entity.DbVacancy) error {
	return createRow(ctx, r, item)
}

func (r *GormRepository) UpdateVacancy(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbVacancy](ctx, r, id, updates)
}

func (r *GormRepository) GetVacancy(ctx context.Context, id uint) (*entity.DbVacancy, error) {
	return getByID[entity.DbVacancy](ctx, r, id)
}

func (r *GormRepository) ListVacancies(ctx context.Context, params *entity.ListQuery) ([]entity.DbVacancy, *entity.PageMeta, error) {
	return listPage[entity.DbVacancy](ctx, r, params, "id DESC", vacancySearch)
}

func (r *GormRepository) ListActiveVacancies(ctx context.Context, params *entity.ListQuery) ([]entity.DbVacancy, *entity.PageMeta, error) {
	return listPage[entity.DbVacancy](ctx, r, params, "id DESC", vacancySearch, func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true)
	})
}

func (r *GormRepository) DeleteVacancy(ctx context.Context, id uint) error {
	return deleteByID[entity.DbVacancy](ctx, r, id)
}
