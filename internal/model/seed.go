package model

import (
	"context"
	"errors"
	"strings"
	"time"

	"tmsiti/internal/auth"
	"tmsiti/internal/config"
	"tmsiti/internal/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedSuperAdmin ensures the environment-configured superadmin account exists
// and holds the superadmin role. Runs once at startup before the server
// accepts traffic.
func SeedSuperAdmin(ctx context.Context, repo Repository, cfg config.Config) error {
	if repo == nil {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.AdminEmail))
	password := cfg.AdminPassword
	if email == "" || password == "" {
		logrus.Warn("superadmin seed skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	existing, err := repo.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return promoteSeedAccount(ctx, repo, existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return createSeedAccount(ctx, repo, email, password)
	default:
		return err
	}
}

func createSeedAccount(ctx context.Context, repo Repository, email, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := entity.DbUser{
		Email:           email,
		FullName:        "Super Admin",
		PasswordHash:    hash,
		Role:            entity.UserRoleSuperAdmin,
		Status:          entity.UserStatusActive,
		IsActive:        true,
		EmailVerified:   true,
		EmailVerifiedAt: &now,
	}
	if err := repo.CreateUser(ctx, &admin); err != nil {
		return err
	}
	logrus.WithField("email", email).Info("superadmin account created")
	return nil
}

func promoteSeedAccount(ctx context.Context, repo Repository, existing *entity.DbUser) error {
	if existing == nil {
		return nil
	}

	updates := make(map[string]interface{})
	if existing.Role != entity.UserRoleSuperAdmin {
		updates["role"] = entity.UserRoleSuperAdmin
	}
	if existing.Status != entity.UserStatusActive {
		updates["status"] = entity.UserStatusActive
	}
	if !existing.IsActive {
		updates["is_active"] = true
	}
	if !existing.EmailVerified {
		updates["email_verified"] = true
	}
	if len(updates) == 0 {
		return nil
	}
	if err := repo.UpdateUser(ctx, existing.ID, updates); err != nil {
		return err
	}
	logrus.WithField("email", existing.Email).Info("superadmin account promoted")
	return nil
}
