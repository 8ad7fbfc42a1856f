package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tmsiti/internal/auth"
	"tmsiti/internal/entity"
	"tmsiti/internal/model"

	"gorm.io/gorm"
)

// fakeRepo backs the service tests with in-memory maps. Embedding the
// interface keeps the fake small; calling an unimplemented method panics and
// fails the test loudly.
type fakeRepo struct {
	model.Repository

	users  map[uint]*entity.DbUser
	codes  map[string]*entity.DbEmailVerificationCode
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  make(map[uint]*entity.DbUser),
		codes:  make(map[string]*entity.DbEmailVerificationCode),
		nextID: 1,
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, user *entity.DbUser) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
		if user.PhoneNumber != "" && u.PhoneNumber == user.PhoneNumber {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) UpdateUser(_ context.Context, id uint, updates map[string]interface{}) error {
	u, ok := f.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for key, value := range updates {
		switch key {
		case "email_verified":
			u.EmailVerified = value.(bool)
		case "email_verified_at":
			t := value.(time.Time)
			u.EmailVerifiedAt = &t
		case "status":
			u.Status = value.(string)
		case "is_active":
			u.IsActive = value.(bool)
		case "role":
			u.Role = value.(string)
		case "login_attempts":
			u.LoginAttempts = value.(int)
		case "locked_until":
			if value == nil {
				u.LockedUntil = nil
			} else {
				t := value.(time.Time)
				u.LockedUntil = &t
			}
		case "last_login":
			t := value.(time.Time)
			u.LastLogin = &t
		case "password_hash":
			u.PasswordHash = value.(string)
		case "password_reset_token":
			u.PasswordResetToken = value.(string)
		case "password_reset_expires":
			if value == nil {
				u.PasswordResetExpires = nil
			} else {
				t := value.(time.Time)
				u.PasswordResetExpires = &t
			}
		case "full_name":
			u.FullName = value.(string)
		case "phone_number":
			u.PhoneNumber = value.(string)
		case "gender":
			u.Gender = value.(string)
		case "avatar_url":
			u.AvatarURL = value.(string)
		case "bio":
			u.Bio = value.(string)
		}
	}
	return nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id uint) (*entity.DbUser, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.DbUser, error) {
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetUserByPhone(_ context.Context, phone string) (*entity.DbUser, error) {
	for _, u := range f.users {
		if u.PhoneNumber == phone {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetUserByResetToken(_ context.Context, token string) (*entity.DbUser, error) {
	for _, u := range f.users {
		if token != "" && u.PasswordResetToken == token {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) CountUsers(_ context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeRepo) UpsertVerificationCode(_ context.Context, code *entity.DbEmailVerificationCode) error {
	f.codes[code.Email] = code
	return nil
}

func (f *fakeRepo) GetVerificationCode(_ context.Context, email string) (*entity.DbEmailVerificationCode, error) {
	if c, ok := f.codes[strings.ToLower(email)]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) DeleteVerificationCode(_ context.Context, email string) error {
	delete(f.codes, strings.ToLower(email))
	return nil
}

type fakeMailer struct {
	codes  []string
	links  []string
	fail   bool
	lastTo string
}

func (m *fakeMailer) SendVerificationCode(to, _, code string) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.lastTo = to
	m.codes = append(m.codes, code)
	return nil
}

func (m *fakeMailer) SendPasswordReset(to, _, link string) error {
	if m.fail {
		return errors.New("smtp down")
	}
	m.lastTo = to
	m.links = append(m.links, link)
	return nil
}

func newTestService(t *testing.T) (*AccountService, *fakeRepo, *fakeMailer) {
	t.Helper()
	repo := newFakeRepo()
	mailer := &fakeMailer{}
	tokens, err := auth.NewManager("test-secret", "tmsiti-test", time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return NewAccountService(repo, mailer, tokens, "http://localhost:3000/reset-password"), repo, mailer
}

func TestRegisterBootstrapsFirstAccount(t *testing.T) {
	svc, repo, mailer := newTestService(t)

	resp, err := svc.Register(context.Background(), entity.AuthRegisterRequest{
		Email:    "First@Example.uz",
		Password: "password123",
		FullName: "First User",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.VerificationRequired {
		t.Fatal("first account must not require verification")
	}

	u := repo.users[resp.UserID]
	if u.Role != entity.UserRoleAdmin || u.Status != entity.UserStatusActive || !u.EmailVerified {
		t.Fatalf("bootstrap account = role %q status %q verified %v", u.Role, u.Status, u.EmailVerified)
	}
	if u.Email != "first@example.uz" {
		t.Fatalf("email not normalised: %q", u.Email)
	}
	if len(mailer.codes) != 0 {
		t.Fatal("no verification mail expected for bootstrap account")
	}
}

func TestRegisterSecondAccountIsPending(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")

	resp, err := svc.Register(context.Background(), entity.AuthRegisterRequest{
		Email:    "user@example.uz",
		Password: "password123",
		FullName: "Plain User",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if !resp.VerificationRequired {
		t.Fatal("second account must require verification")
	}

	u := repo.users[resp.UserID]
	if u.Role != entity.UserRoleUser || u.Status != entity.UserStatusPending || u.EmailVerified {
		t.Fatalf("second account = role %q status %q verified %v", u.Role, u.Status, u.EmailVerified)
	}
	if len(mailer.codes) != 1 || len(mailer.codes[0]) != 6 {
		t.Fatalf("mailed codes = %v", mailer.codes)
	}
	if _, ok := repo.codes["user@example.uz"]; !ok {
		t.Fatal("verification code not persisted")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")
	mustRegister(t, svc, "someone@example.uz")

	_, err := svc.Register(context.Background(), entity.AuthRegisterRequest{
		Email:    "SOMEONE@example.uz",
		Password: "password123",
		FullName: "Duplicate",
	})
	if !errors.Is(err, entity.ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}

func TestRegisterMailFailureKeepsAccount(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")
	mailer.fail = true

	_, err := svc.Register(context.Background(), entity.AuthRegisterRequest{
		Email:    "user@example.uz",
		Password: "password123",
		FullName: "Plain User",
	})
	if !errors.Is(err, entity.ErrMailDelivery) {
		t.Fatalf("err = %v, want ErrMailDelivery", err)
	}
	if _, err := repo.GetUserByEmail(context.Background(), "user@example.uz"); err != nil {
		t.Fatal("account must persist when mail delivery fails")
	}
}

func TestVerifyEmailFlow(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")
	mustRegister(t, svc, "user@example.uz")
	if len(mailer.codes) != 1 {
		t.Fatalf("mailed codes = %v", mailer.codes)
	}
	repo.codes["user@example.uz"].Code = "123456"
	code := "123456"

	t.Run("wrong code keeps the stored code", func(t *testing.T) {
		err := svc.VerifyEmail(context.Background(), entity.AuthVerifyEmailRequest{Email: "user@example.uz", Code: "654321"})
		if !errors.Is(err, entity.ErrVerificationMismatch) {
			t.Fatalf("err = %v, want ErrVerificationMismatch", err)
		}
		if _, ok := repo.codes["user@example.uz"]; !ok {
			t.Fatal("code must survive a mismatch")
		}
	})

	t.Run("correct code activates", func(t *testing.T) {
		if err := svc.VerifyEmail(context.Background(), entity.AuthVerifyEmailRequest{Email: "user@example.uz", Code: code}); err != nil {
			t.Fatalf("VerifyEmail: %v", err)
		}
		u, _ := repo.GetUserByEmail(context.Background(), "user@example.uz")
		if !u.EmailVerified || u.Status != entity.UserStatusActive {
			t.Fatalf("account = verified %v status %q", u.EmailVerified, u.Status)
		}
		if _, ok := repo.codes["user@example.uz"]; ok {
			t.Fatal("code must be burned after success")
		}
	})

	t.Run("replay fails", func(t *testing.T) {
		err := svc.VerifyEmail(context.Background(), entity.AuthVerifyEmailRequest{Email: "user@example.uz", Code: code})
		if !errors.Is(err, entity.ErrVerificationNotFound) {
			t.Fatalf("err = %v, want ErrVerificationNotFound", err)
		}
	})
}

func TestVerifyEmailExpiredCode(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")
	mustRegister(t, svc, "user@example.uz")
	repo.codes["user@example.uz"].ExpiresAt = time.Now().Add(-time.Minute)

	err := svc.VerifyEmail(context.Background(), entity.AuthVerifyEmailRequest{Email: "user@example.uz", Code: mailer.codes[len(mailer.codes)-1]})
	if !errors.Is(err, entity.ErrVerificationExpired) {
		t.Fatalf("err = %v, want ErrVerificationExpired", err)
	}
	if _, ok := repo.codes["user@example.uz"]; ok {
		t.Fatal("expired code must be dropped")
	}
}

func TestLoginHappyPath(t *testing.T) {
	svc, repo, _ := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")

	resp, err := svc.Login(context.Background(), entity.AuthLoginRequest{Email: "admin@example.uz", Password: "password123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.AccessToken == "" || resp.TokenType != "bearer" {
		t.Fatalf("response = %+v", resp)
	}
	u, _ := repo.GetUserByEmail(context.Background(), "admin@example.uz")
	if u.LastLogin == nil {
		t.Fatal("last login not recorded")
	}
}

func TestLoginCollapsesUnknownAndWrongPassword(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")

	_, errUnknown := svc.Login(context.Background(), entity.AuthLoginRequest{Email: "nobody@example.uz", Password: "password123"})
	_, errWrong := svc.Login(context.Background(), entity.AuthLoginRequest{Email: "admin@example.uz", Password: "wrong-password"})

	if !errors.Is(errUnknown, entity.ErrInvalidCredentials) || !errors.Is(errWrong, entity.ErrInvalidCredentials) {
		t.Fatalf("unknown = %v, wrong = %v", errUnknown, errWrong)
	}
}

func TestLoginPendingUnverified(t *testing.T) {
	svc, _, _ := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")
	mustRegister(t, svc, "user@example.uz")

	_, err := svc.Login(context.Background(), entity.AuthLoginRequest{Email: "user@example.uz", Password: "password123"})
	if !errors.Is(err, entity.ErrAccountPending) {
		t.Fatalf("err = %v, want ErrAccountPending", err)
	}
}

func TestLoginSuspended(t *testing.T) {
	svc, repo, _ := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")
	u, _ := repo.GetUserByEmail(context.Background(), "admin@example.uz")
	u.Status = entity.UserStatusSuspended

	_, err := svc.Login(context.Background(), entity.AuthLoginRequest{Email: "admin@example.uz", Password: "password123"})
	if !errors.Is(err, entity.ErrAccountSuspended) {
		t.Fatalf("err = %v, want ErrAccountSuspended", err)
	}
}

func TestLoginLocksAfterRepeatedFailures(t *testing.T) {
	svc, repo, _ := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")

	for i := 0; i < maxLoginAttempts; i++ {
		if _, err := svc.Login(context.Background(), entity.AuthLoginRequest{Email: "admin@example.uz", Password: "wrong"}); !errors.Is(err, entity.ErrInvalidCredentials) {
			t.Fatalf("attempt %d: err = %v", i, err)
		}
	}

	u, _ := repo.GetUserByEmail(context.Background(), "admin@example.uz")
	if u.LockedUntil == nil || !u.LockedUntil.After(time.Now()) {
		t.Fatal("account should be locked")
	}

	// Even the correct password is refused while locked.
	if _, err := svc.Login(context.Background(), entity.AuthLoginRequest{Email: "admin@example.uz", Password: "password123"}); !errors.Is(err, entity.ErrAccountLocked) {
		t.Fatalf("err = %v, want ErrAccountLocked", err)
	}
}

func TestPasswordResetFlow(t *testing.T) {
	svc, repo, mailer := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")

	if err := svc.ForgotPassword(context.Background(), entity.AuthForgotPasswordRequest{Email: "admin@example.uz"}); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(mailer.links) != 1 {
		t.Fatalf("links = %v", mailer.links)
	}

	u, _ := repo.GetUserByEmail(context.Background(), "admin@example.uz")
	token := u.PasswordResetToken
	if token == "" {
		t.Fatal("reset token not stored")
	}

	if err := svc.ResetPassword(context.Background(), entity.AuthResetPasswordRequest{Token: token, Password: "newpassword1"}); err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := svc.Login(context.Background(), entity.AuthLoginRequest{Email: "admin@example.uz", Password: "newpassword1"}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	// The token is single use.
	if err := svc.ResetPassword(context.Background(), entity.AuthResetPasswordRequest{Token: token, Password: "another1234"}); !errors.Is(err, entity.ErrResetTokenInvalid) {
		t.Fatalf("err = %v, want ErrResetTokenInvalid", err)
	}
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	svc, _, mailer := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")

	if err := svc.ForgotPassword(context.Background(), entity.AuthForgotPasswordRequest{Email: "nobody@example.uz"}); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if len(mailer.links) != 0 {
		t.Fatal("no mail expected for unknown address")
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, repo, _ := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")

	if err := svc.ForgotPassword(context.Background(), entity.AuthForgotPasswordRequest{Email: "admin@example.uz"}); err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	u, _ := repo.GetUserByEmail(context.Background(), "admin@example.uz")
	token := u.PasswordResetToken
	expired := time.Now().Add(-time.Minute)
	u.PasswordResetExpires = &expired

	if err := svc.ResetPassword(context.Background(), entity.AuthResetPasswordRequest{Token: token, Password: "newpassword1"}); !errors.Is(err, entity.ErrResetTokenExpired) {
		t.Fatalf("err = %v, want ErrResetTokenExpired", err)
	}
	if u.PasswordResetToken != "" {
		t.Fatal("expired token must be cleared")
	}
}

func TestUpdateProfilePhoneConflict(t *testing.T) {
	svc, repo, _ := newTestService(t)
	mustRegister(t, svc, "admin@example.uz")
	mustRegister(t, svc, "user@example.uz")

	first, _ := repo.GetUserByEmail(context.Background(), "admin@example.uz")
	first.PhoneNumber = "+998901112233"
	second, _ := repo.GetUserByEmail(context.Background(), "user@example.uz")

	phone := "+998901112233"
	_, err := svc.UpdateProfile(context.Background(), second.ID, entity.ProfileUpdateRequest{PhoneNumber: &phone})
	if !errors.Is(err, entity.ErrPhoneTaken) {
		t.Fatalf("err = %v, want ErrPhoneTaken", err)
	}

	bio := "builder"
	profile, err := svc.UpdateProfile(context.Background(), second.ID, entity.ProfileUpdateRequest{Bio: &bio})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if profile.Bio != "builder" {
		t.Fatalf("bio = %q", profile.Bio)
	}
}

func mustRegister(t *testing.T, svc *AccountService, email string) {
	t.Helper()
	if _, err := svc.Register(context.Background(), entity.AuthRegisterRequest{
		Email:    email,
		Password: "password123",
		FullName: "Test User",
	}); err != nil {
		t.Fatalf("register %s: %v", email, err)
	}
}
