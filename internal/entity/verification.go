package entity

import "time"

// DbEmailVerificationCode is a persisted single-use registration code. Keeping
// these in the database instead of process memory means codes survive restarts
// and work behind multiple workers; the unique email index makes re-issuing a
// code an upsert.
type DbEmailVerificationCode struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email     string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Code      string    `gorm:"column:code;type:varchar(6);not null" json:"-"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null" json:"expires_at"`
}

// TableName overrides default pluralised name.
func (DbEmailVerificationCode) TableName() string {
	return "email_verification_codes"
}

// Expired reports whether the code is past its validity window.
func (c *DbEmailVerificationCode) Expired(now time.Time) bool {
	return c == nil || now.After(c.ExpiresAt)
}
