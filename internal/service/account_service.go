package service

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"tmsiti/internal/auth"
	"tmsiti/internal/entity"
	"tmsiti/internal/model"
	"tmsiti/internal/notify"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	verificationCodeTTL = 10 * time.Minute
	resetTokenTTL       = time.Hour

	maxLoginAttempts = 5
	lockDuration     = 15 * time.Minute
)

// AccountService covers registration, email verification, login, password
// recovery and profile management.
type AccountService struct {
	repo         model.Repository
	mailer       notify.Mailer
	tokens       *auth.Manager
	resetBaseURL string

	now func() time.Time
}

func NewAccountService(repo model.Repository, mailer notify.Mailer, tokens *auth.Manager, resetBaseURL string) *AccountService {
	return &AccountService{
		repo:         repo,
		mailer:       mailer,
		tokens:       tokens,
		resetBaseURL: strings.TrimRight(resetBaseURL, "/"),
		now:          time.Now,
	}
}

// Register creates a pending account and mails a verification code. The very
// first account on an empty database is bootstrapped straight to an active,
// verified admin so a fresh deployment can be administered at all.
func (s *AccountService) Register(ctx context.Context, req entity.AuthRegisterRequest) (*entity.AuthRegisterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.PhoneNumber)

	total, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	bootstrap := total == 0

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, entity.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if phone != "" {
		if _, err := s.repo.GetUserByPhone(ctx, phone); err == nil {
			return nil, entity.ErrPhoneTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := entity.DbUser{
		Email:        email,
		FullName:     strings.TrimSpace(req.FullName),
		PhoneNumber:  phone,
		PasswordHash: hash,
		Gender:       strings.TrimSpace(req.Gender),
		Role:         entity.UserRoleUser,
		Status:       entity.UserStatusPending,
		IsActive:     true,
	}
	if bootstrap {
		now := s.now()
		user.Role = entity.UserRoleAdmin
		user.Status = entity.UserStatusActive
		user.EmailVerified = true
		user.EmailVerifiedAt = &now
	}

	if err := s.repo.CreateUser(ctx, &user); err != nil {
		// The pre-checks race with concurrent registrations; the unique
		// indexes are the real arbiter.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrEmailTaken
		}
		return nil, err
	}

	if !bootstrap {
		if err := s.issueVerificationCode(ctx, &user); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"bootstrap": bootstrap,
	}).Info("account registered")

	return &entity.AuthRegisterResponse{
		UserID:               user.ID,
		Email:                user.Email,
		VerificationRequired: !bootstrap,
	}, nil
}

func (s *AccountService) issueVerificationCode(ctx context.Context, user *entity.DbUser) error {
	code, err := generateNumericCode(6)
	if err != nil {
		return err
	}

	record := entity.DbEmailVerificationCode{
		Email:     user.Email,
		Code:      code,
		ExpiresAt: s.now().Add(verificationCodeTTL),
	}
	if err := s.repo.UpsertVerificationCode(ctx, &record); err != nil {
		return err
	}

	if s.mailer == nil {
		logrus.Warn("mailer not configured, verification code cannot be delivered")
		return entity.ErrMailDelivery
	}
	if err := s.mailer.SendVerificationCode(user.Email, user.FullName, code); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("verification mail failed")
		return entity.ErrMailDelivery
	}
	return nil
}

// VerifyEmail checks the pending code and activates the account. The code is
// single use: it is deleted on success and on expiry, but survives a mismatch
// so a typo does not force re-registration.
func (s *AccountService) VerifyEmail(ctx context.Context, req entity.AuthVerifyEmailRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	record, err := s.repo.GetVerificationCode(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrVerificationNotFound
	}
	if err != nil {
		return err
	}

	if record.Expired(s.now()) {
		if err := s.repo.DeleteVerificationCode(ctx, email); err != nil {
			logrus.WithError(err).Warn("failed to drop expired verification code")
		}
		return entity.ErrVerificationExpired
	}

	if subtle.ConstantTimeCompare([]byte(record.Code), []byte(req.Code)) != 1 {
		return entity.ErrVerificationMismatch
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrVerificationNotFound
	}
	if err != nil {
		return err
	}

	now := s.now()
	updates := map[string]interface{}{
		"email_verified":    true,
		"email_verified_at": now,
	}
	if user.Status == entity.UserStatusPending {
		updates["status"] = entity.UserStatusActive
	}
	if err := s.repo.UpdateUser(ctx, user.ID, updates); err != nil {
		return err
	}
	if err := s.repo.DeleteVerificationCode(ctx, email); err != nil {
		logrus.WithError(err).Warn("failed to burn verification code")
	}

	logrus.WithField("user_id", user.ID).Info("email verified")
	return nil
}

// Login verifies credentials and issues an access token. An unknown email and
// a wrong password produce the same error; account-state errors are only
// reachable with a correct password.
func (s *AccountService) Login(ctx context.Context, req entity.AuthLoginRequest) (*entity.AuthLoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	now := s.now()

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Equalise timing with the known-email path.
		auth.BurnVerification(req.Password)
		return nil, entity.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if user.LockedUntil != nil && user.LockedUntil.After(now) {
		return nil, entity.ErrAccountLocked
	}

	if err := auth.VerifyPassword(user.PasswordHash, req.Password); err != nil {
		if err := s.recordFailedAttempt(ctx, user, now); err != nil {
			logrus.WithError(err).WithField("user_id", user.ID).Warn("failed to record login attempt")
		}
		return nil, entity.ErrInvalidCredentials
	}

	if !user.IsActive || user.Status == entity.UserStatusSuspended || user.Status == entity.UserStatusBanned {
		return nil, entity.ErrAccountSuspended
	}

	updates := map[string]interface{}{
		"login_attempts": 0,
		"locked_until":   nil,
		"last_login":     now,
	}

	if user.Status == entity.UserStatusPending {
		if !user.EmailVerified {
			return nil, entity.ErrAccountPending
		}
		// Verified but never promoted, e.g. verification and a status edit
		// raced. Promote on successful login.
		updates["status"] = entity.UserStatusActive
	}

	if err := s.repo.UpdateUser(ctx, user.ID, updates); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}

	logrus.WithField("user_id", user.ID).Info("login succeeded")
	return &entity.AuthLoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

func (s *AccountService) recordFailedAttempt(ctx context.Context, user *entity.DbUser, now time.Time) error {
	attempts := user.LoginAttempts + 1
	updates := map[string]interface{}{
		"login_attempts": attempts,
	}
	if attempts >= maxLoginAttempts {
		updates["login_attempts"] = 0
		updates["locked_until"] = now.Add(lockDuration)
		logrus.WithField("user_id", user.ID).Warn("account locked after repeated login failures")
	}
	return s.repo.UpdateUser(ctx, user.ID, updates)
}

// ForgotPassword issues a single-use reset token and mails a reset link. The
// caller sees the same outcome whether or not the address is registered.
func (s *AccountService) ForgotPassword(ctx context.Context, req entity.AuthForgotPasswordRequest) error {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	expires := s.now().Add(resetTokenTTL)
	updates := map[string]interface{}{
		"password_reset_token":   token,
		"password_reset_expires": expires,
	}
	if err := s.repo.UpdateUser(ctx, user.ID, updates); err != nil {
		return err
	}

	link := fmt.Sprintf("%s?token=%s", s.resetBaseURL, token)
	if s.mailer == nil {
		logrus.Warn("mailer not configured, reset link cannot be delivered")
		return entity.ErrMailDelivery
	}
	if err := s.mailer.SendPasswordReset(user.Email, user.FullName, link); err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("reset mail failed")
		return entity.ErrMailDelivery
	}

	logrus.WithField("user_id", user.ID).Info("password reset requested")
	return nil
}

// ResetPassword sets a new password for a valid, unexpired token. The token is
// cleared either way, so it can never be replayed.
func (s *AccountService) ResetPassword(ctx context.Context, req entity.AuthResetPasswordRequest) error {
	user, err := s.repo.GetUserByResetToken(ctx, strings.TrimSpace(req.Token))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.ErrResetTokenInvalid
	}
	if err != nil {
		return err
	}

	if user.PasswordResetExpires == nil || user.PasswordResetExpires.Before(s.now()) {
		clear := map[string]interface{}{
			"password_reset_token":   "",
			"password_reset_expires": nil,
		}
		if err := s.repo.UpdateUser(ctx, user.ID, clear); err != nil {
			logrus.WithError(err).Warn("failed to clear expired reset token")
		}
		return entity.ErrResetTokenExpired
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"password_hash":          hash,
		"password_reset_token":   "",
		"password_reset_expires": nil,
		"login_attempts":         0,
		"locked_until":           nil,
	}
	if err := s.repo.UpdateUser(ctx, user.ID, updates); err != nil {
		return err
	}

	logrus.WithField("user_id", user.ID).Info("password reset completed")
	return nil
}

// UpdateProfile applies the self-service profile edits.
func (s *AccountService) UpdateProfile(ctx context.Context, userID uint, req entity.ProfileUpdateRequest) (*entity.UserProfile, error) {
	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Gender != nil {
		updates["gender"] = strings.TrimSpace(*req.Gender)
	}
	if req.AvatarURL != nil {
		updates["avatar_url"] = strings.TrimSpace(*req.AvatarURL)
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.PhoneNumber != nil {
		phone := strings.TrimSpace(*req.PhoneNumber)
		if phone != "" {
			if other, err := s.repo.GetUserByPhone(ctx, phone); err == nil && other.ID != userID {
				return nil, entity.ErrPhoneTaken
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		updates["phone_number"] = phone
	}

	if len(updates) > 0 {
		if err := s.repo.UpdateUser(ctx, userID, updates); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, entity.ErrPhoneTaken
			}
			return nil, err
		}
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile := entity.MakeUserProfile(user)
	return &profile, nil
}

func generateNumericCode(digits int) (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < digits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", digits, n), nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
