package entity

import "time"

const (
	UserRoleSuperAdmin = "superadmin"
	UserRoleAdmin      = "admin"
	UserRoleModerator  = "moderator"
	UserRoleUser       = "user"
)

const (
	UserStatusPending   = "pending"
	UserStatusActive    = "active"
	UserStatusSuspended = "suspended"
	UserStatusBanned    = "banned"
)

// DbUser represents a persisted user account.
type DbUser struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	FullName     string `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	PhoneNumber  string `gorm:"column:phone_number;type:varchar(32);uniqueIndex;default:null" json:"phone_number"`
	PasswordHash string `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Gender       string `gorm:"column:gender;type:varchar(16)" json:"gender"`
	AvatarURL    string `gorm:"column:avatar_url;type:varchar(500)" json:"avatar_url"`
	Bio          string `gorm:"column:bio;type:varchar(1000)" json:"bio"`

	Role     string `gorm:"column:role;type:varchar(20);index;not null;default:user" json:"role"`
	Status   string `gorm:"column:status;type:varchar(20);index;not null;default:pending" json:"status"`
	IsActive bool   `gorm:"column:is_active;not null;default:true" json:"is_active"`

	EmailVerified   bool       `gorm:"column:email_verified;not null;default:false" json:"email_verified"`
	EmailVerifiedAt *time.Time `gorm:"column:email_verified_at" json:"email_verified_at,omitempty"`

	LoginAttempts int        `gorm:"column:login_attempts;not null;default:0" json:"-"`
	LockedUntil   *time.Time `gorm:"column:locked_until" json:"-"`

	PasswordResetToken   string     `gorm:"column:password_reset_token;type:varchar(64);index" json:"-"`
	PasswordResetExpires *time.Time `gorm:"column:password_reset_expires" json:"-"`

	LastLogin *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
}

// TableName overrides default pluralised name.
func (DbUser) TableName() string {
	return "users"
}

// CanLogin reports whether the account passes the static login checks:
// active flag, status, and the transient lock window.
func (u *DbUser) CanLogin(now time.Time) bool {
	if u == nil {
		return false
	}
	if !u.IsActive || u.Status == UserStatusSuspended || u.Status == UserStatusBanned {
		return false
	}
	if u.LockedUntil != nil && u.LockedUntil.After(now) {
		return false
	}
	return true
}

// UserProfile is the self-service view of an account.
type UserProfile struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	PhoneNumber   string     `json:"phone_number"`
	Gender        string     `json:"gender"`
	AvatarURL     string     `json:"avatar_url"`
	Bio           string     `json:"bio"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	EmailVerified bool       `json:"email_verified"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// MakeUserProfile projects the fields an account holder may see.
func MakeUserProfile(u *DbUser) UserProfile {
	if u == nil {
		return UserProfile{}
	}
	return UserProfile{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		PhoneNumber:   u.PhoneNumber,
		Gender:        u.Gender,
		AvatarURL:     u.AvatarURL,
		Bio:           u.Bio,
		Role:          u.Role,
		Status:        u.Status,
		EmailVerified: u.EmailVerified,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
	}
}

// UserSummary is the admin-facing listing view.
type UserSummary struct {
	ID            uint       `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	PhoneNumber   string     `json:"phone_number"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// MakeUserSummary projects an account for admin listings.
func MakeUserSummary(u *DbUser) UserSummary {
	if u == nil {
		return UserSummary{}
	}
	return UserSummary{
		ID:            u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		PhoneNumber:   u.PhoneNumber,
		Role:          u.Role,
		Status:        u.Status,
		IsActive:      u.IsActive,
		EmailVerified: u.EmailVerified,
		LastLogin:     u.LastLogin,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

type AuthRegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"full_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Gender      string `json:"gender"`
}

type AuthRegisterResponse struct {
	UserID               uint   `json:"user_id"`
	Email                string `json:"email"`
	VerificationRequired bool   `json:"verification_required"`
}

type AuthVerifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6"`
}

type AuthLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthLoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

type AuthForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type AuthResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ProfileUpdateRequest uses pointers so absent fields stay untouched.
type ProfileUpdateRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Bio         *string `json:"bio,omitempty"`
}

// AdminUserUpdateRequest covers admin-side account edits. Role changes are
// restricted to superadmin callers at the handler level.
type AdminUserUpdateRequest struct {
	FullName    *string `json:"full_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        *string `json:"role,omitempty"`
	Status      *string `json:"status,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

// UserQuery supports listing users with pagination.
type UserQuery struct {
	ListQuery
	Role   string `form:"role" json:"role"`
	Status string `form:"status" json:"status"`
}
