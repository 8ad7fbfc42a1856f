package sql

import (
	"context"
	"fmt"
	"strings"

	"tmsiti/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UpsertVerificationCode stores or replaces the pending code for an address.
// Re-registering the same email re-issues the code instead of erroring.
func (r *GormRepository) UpsertVerificationCode(ctx context.Context, code *entity.DbEmailVerificationCode) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	if code == nil {
		return fmt.Errorf("verification code is nil")
	}
	code.Email = strings.ToLower(strings.TrimSpace(code.Email))

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"code", "expires_at", "created_at"}),
	}).Create(code).Error
}

// GetVerificationCode loads the pending code for an address.
func (r *GormRepository) GetVerificationCode(ctx context.Context, email string) (*entity.DbEmailVerificationCode, error) {
	db, err := r.conn()
	if err != nil {
		return nil, err
	}
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return nil, gorm.ErrRecordNotFound
	}

	var code entity.DbEmailVerificationCode
	if err := db.WithContext(ctx).Where("email = ?", trimmed).First(&code).Error; err != nil {
		return nil, err
	}
	return &code, nil
}

// DeleteVerificationCode burns the pending code for an address. Deleting a
// code that is already gone is not an error.
func (r *GormRepository) DeleteVerificationCode(ctx context.Context, email string) error {
	db, err := r.conn()
	if err != nil {
		return err
	}
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return nil
	}
	return db.WithContext(ctx).Where("email = ?", trimmed).Delete(&entity.DbEmailVerificationCode{}).Error
}
