package sql

import (
	"context"
	"fmt"
	"strings"

	"tmsiti/internal/entity"

	"gorm.io/gorm"
)

// CreateUser persists a new user record.
func (r *GormRepository) CreateUser(ctx context.Context, user *entity.DbUser) error {
	return createRow(ctx, r, user)
}

// UpdateUser applies a partial update to an existing account.
func (r *GormRepository) UpdateUser(ctx context.Context, id uint, updates map[string]interface{}) error {
	return updateByID[entity.DbUser](ctx, r, id, updates)
}

// GetUserByEmail loads a user by email, case-insensitively.
func (r *GormRepository) GetUserByEmail(ctx context.Context, email string) (*entity.DbUser, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return nil, fmt.Errorf("email is empty")
	}

	var user entity.DbUser
	if err := db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(trimmed)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByPhone loads a user by phone number.
func (r *GormRepository) GetUserByPhone(ctx context.Context, phone string) (*entity.DbUser, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(phone)
	if trimmed == "" {
		return nil, fmt.Errorf("phone is empty")
	}

	var user entity.DbUser
	if err := db.WithContext(ctx).Where("phone_number = ?", trimmed).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByResetToken loads a user holding the given password reset token.
func (r *GormRepository) GetUserByResetToken(ctx context.Context, token string) (*entity.DbUser, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var user entity.DbUser
	if err := db.WithContext(ctx).Where("password_reset_token = ?", trimmed).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByID loads a user by ID.
func (r *GormRepository) GetUserByID(ctx context.Context, id uint) (*entity.DbUser, error) {
	return getByID[entity.DbUser](ctx, r, id)
}

// ListUsers returns paginated users with optional role, status and keyword
// filters.
func (r *GormRepository) ListUsers(ctx context.Context, params *entity.UserQuery) ([]entity.DbUser, *entity.PageMeta, error) {
	db, err := r.conn()
	if err != nil {
		return nil, nil, err
	}

	var base *entity.ListQuery
	if params != nil {
		base = &params.ListQuery
	}
	q, err := normalizeQuery(base)
	if err != nil {
		return nil, nil, err
	}

	query := db.WithContext(ctx).Model(&entity.DbUser{})
	if params != nil {
		if role := strings.TrimSpace(params.Role); role != "" {
			query = query.Where("role = ?", role)
		}
		if status := strings.TrimSpace(params.Status); status != "" {
			query = query.Where("status = ?", status)
		}
	}
	if q.Search != "" {
		query = searchColumns("email", "full_name", "phone_number")(query, q.Search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, nil, err
	}

	var users []entity.DbUser
	offset := (q.Page - 1) * q.Size
	if err := query.Order("id DESC").Offset(offset).Limit(q.Size).Find(&users).Error; err != nil {
		return nil, nil, err
	}

	return users, pageMeta(total, q.Page, q.Size), nil
}

// DeleteUser removes a user by ID.
func (r *GormRepository) DeleteUser(ctx context.Context, id uint) error {
	return deleteByID[entity.DbUser](ctx, r, id)
}

// CountUsers returns total user count.
func (r *GormRepository) CountUsers(ctx context.Context) (int64, error) {
	db, err := r.conn()
	if err != nil {
		return 0, err
	}
	var count int64
	if err := db.WithContext(ctx).Model(&entity.DbUser{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
