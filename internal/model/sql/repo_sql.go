package sql

import (
	"context"
	"fmt"
	"strings"

	"tmsiti/internal/entity"

	"gorm.io/gorm"
)

// GormRepository implements Repository using GORM.
type GormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new repository instance.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) conn() (*gorm.DB, error) {
	if r == nil || r.db == nil {
		return nil, fmt.Errorf("repository not initialised")
	}
	return r.db, nil
}

func pageMeta(total int64, page, size int) *entity.PageMeta {
	pages := (total + int64(size) - 1) / int64(size)
	if pages < 1 {
		pages = 1
	}
	return &entity.PageMeta{
		Total: total,
		Page:  page,
		Size:  size,
		Pages: pages,
	}
}

func normalizeQuery(params *entity.ListQuery) (entity.ListQuery, error) {
	q := entity.ListQuery{Page: 1, Size: 10}
	if params != nil {
		if params.Page != 0 {
			q.Page = params.Page
		}
		if params.Size != 0 {
			q.Size = params.Size
		}
		q.Search = strings.TrimSpace(params.Search)
	}
	if err := entity.ValidatePageBounds(q.Page, q.Size); err != nil {
		return q, err
	}
	return q, nil
}

// searchScope narrows a list query by the user-supplied keyword.
type searchScope func(db *gorm.DB, keyword string) *gorm.DB

// searchColumns builds a case-insensitive OR LIKE scope over the given columns.
func searchColumns(cols ...string) searchScope {
	return func(db *gorm.DB, keyword string) *gorm.DB {
		kw := "%" + strings.ToLower(keyword) + "%"
		clauses := make([]string, 0, len(cols))
		args := make([]interface{}, 0, len(cols))
		for _, col := range cols {
			clauses = append(clauses, fmt.Sprintf("LOWER(%s) LIKE ?", col))
			args = append(args, kw)
		}
		return db.Where(strings.Join(clauses, " OR "), args...)
	}
}

// listPage pages through rows of T with a fixed ordering, an optional
// keyword scope, and optional extra filters. The same shape serves every
// listed entity.
func listPage[T any](ctx context.Context, r *GormRepository, params *entity.ListQuery, order string, search searchScope, filters ...func(*gorm.DB) *gorm.DB) ([]T, *entity.PageMeta, error) {
	db, err := r.conn()
	if err != nil {
		return nil, nil, err
	}

	q, err := normalizeQuery(params)
	if err != nil {
		return nil, nil, err
	}

	var zero T
	query := db.WithContext(ctx).Model(&zero)
	if q.Search != "" && search != nil {
		query = search(query, q.Search)
	}
	for _, filter := range filters {
		query = filter(query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var rows []T
	offset := (q.Page - 1) * q.Size
	if err := query.Order(order).Offset(offset).Limit(q.Size).Find(&rows).Error; err != nil {
		return nil, nil, err
	}

	return rows, pageMeta(total, q.Page, q.Size), nil
}

func getByID[T any](ctx context.Context, r *GormRepository, id uint) (*T, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var row T
	if err := db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func createRow[T any](ctx context.Context, r *GormRepository, row *T) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("record is nil")
	}
	return db.WithContext(ctx).Create(row).Error
}

func updateByID[T any](ctx context.Context, r *GormRepository, id uint, updates map[string]interface{}) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	if len(updates) == 0 {
		return nil
	}

	var zero T
	result := db.WithContext(ctx).Model(&zero).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Updates reports zero rows both for a missing row and for a no-op
		// change, so confirm the row exists before reporting not found.
		var count int64
		if err := db.WithContext(ctx).Model(&zero).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

func deleteByID[T any](ctx context.Context, r *GormRepository, id uint) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	if id == 0 {
		return gorm.ErrRecordNotFound
	}
	var zero T
	result := db.WithContext(ctx).Delete(&zero, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
