package sql

import (
	"context"

	"tmsiti/internal/entity"
)

var (
	managementSystemSearch = searchColumns("title_uz", "title_ru", "title_en")
	contactSearch          = searchColumns("fio", "email", "phone")
)

func (r *GormRepository) CreateManagementSystem(ctx context.Context, item *entity.DbManagementSystem) error {
	return createRow(ctx, r, item)
}

func (r *GormRepository) UpdateManagementSystem(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbManagementSystem](ctx, r, id, updates)
}

func (r *GormRepository) GetManagementSystem(ctx context.Context, id uint) (*entity.DbManagementSystem, error) {
	return getByID[entity.DbManagementSystem](ctx, r, id)
}

func (r *GormRepository) ListManagementSystems(ctx context.Context, params *entity.ListQuery) ([]entity.DbManagementSystem, *entity.PageMeta, error) {
	return listPage[entity.DbManagementSystem](ctx, r, params, "id DESC", managementSystemSearch)
}

func (r *GormRepository) DeleteManagementSystem(ctx context.Context, id uint) error {
	return deleteByID[entity.DbManagementSystem](ctx, r, id)
}

func (r *GormRepository) CreateContact(ctx context.Context, item *entity.DbContact) error {
	return createRow(ctx, r, item)
}

func (r *GormRepository) GetContact(ctx context.Context, id uint) (*entity.DbContact, error) {
	return getByID[entity.DbContact](ctx, r, id)
}

// ListContacts shows the newest submissions first.
func (r *GormRepository) ListContacts(ctx context.Context, params *entity.ListQuery) ([]entity.DbContact, *entity.PageMeta, error) {
	return listPage[entity.DbContact](ctx, r, params, "id DESC", contactSearch)
}

func (r *GormRepository) DeleteContact(ctx context.Context, id uint) error {
	return deleteByID[entity.DbContact](ctx, r, id)
}
