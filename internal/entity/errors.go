package entity

import "errors"

// Sentinel errors shared by the service and repository layers. HTTP handlers
// map them onto status codes; the client-facing message may be more generic
// than the internal kind (login failures in particular collapse into one).
var (
	ErrInvalidPage     = errors.New("page must be >= 1")
	ErrInvalidPageSize = errors.New("size must be between 1 and 100")

	ErrEmailTaken = errors.New("email already registered")
	ErrPhoneTaken = errors.New("phone number already registered")

	ErrInvalidCredentials = errors.New("unknown email or wrong password")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrAccountPending     = errors.New("email address not verified")
	ErrAccountSuspended   = errors.New("account suspended or disabled")

	ErrVerificationNotFound = errors.New("verification code not found")
	ErrVerificationExpired  = errors.New("verification code expired")
	ErrVerificationMismatch = errors.New("verification code mismatch")

	ErrResetTokenInvalid = errors.New("password reset token invalid")
	ErrResetTokenExpired = errors.New("password reset token expired")

	ErrMailDelivery = errors.New("outbound mail delivery failed")
)

// ValidatePageBounds enforces the pagination contract: page >= 1 and
// 1 <= size <= 100. Out-of-range values are rejected, never clamped.
func ValidatePageBounds(page, size int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	if size < 1 || size > 100 {
		return ErrInvalidPageSize
	}
	return nil
}
