package api

import (
	"errors"
	"net/http"

	"tmsiti/internal/entity"
	"tmsiti/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	ErrCodeInvalidRequest  = "ERR_INVALID_REQUEST"
	ErrCodeValidation      = "ERR_VALIDATION"
	ErrCodeUnauthorized    = "ERR_UNAUTHORIZED"
	ErrCodeForbidden       = "ERR_FORBIDDEN"
	ErrCodeNotFound        = "ERR_NOT_FOUND"
	ErrCodeInternalError   = "ERR_INTERNAL_ERROR"
	ErrCodeUpstreamFailure = "ERR_UPSTREAM_FAILURE"
	ErrCodeRateLimited     = "ERR_RATE_LIMITED"

	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeAccountLocked      = "ERR_ACCOUNT_LOCKED"
	ErrCodeAccountPending     = "ERR_ACCOUNT_PENDING"
	ErrCodeAccountSuspended   = "ERR_ACCOUNT_SUSPENDED"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"
	ErrCodeEmailExists        = "ERR_EMAIL_EXISTS"
	ErrCodePhoneExists        = "ERR_PHONE_EXISTS"
	ErrCodeVerification       = "ERR_VERIFICATION"
	ErrCodeResetToken         = "ERR_RESET_TOKEN"
	ErrCodeUserNotFound       = "ERR_USER_NOT_FOUND"
)

// APIError is the uniform error body of every non-2xx response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, ErrCodeForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, ErrCodeNotFound, message)
}

func Unprocessable(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusUnprocessableEntity, code, message)
}

func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// FromError maps service and repository errors onto the response taxonomy.
// Unknown errors are logged and returned as an opaque 500.
func FromError(c *gin.Context, err error) {
	switch {
	case err == nil:
		return
	case errors.Is(err, entity.ErrInvalidPage),
		errors.Is(err, entity.ErrInvalidPageSize),
		errors.Is(err, i18n.ErrUnsupportedLang):
		BadRequest(c, ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, entity.ErrInvalidDocumentCode),
		errors.Is(err, entity.ErrTitleRequired),
		errors.Is(err, entity.ErrTitleTooLong),
		errors.Is(err, entity.ErrDescriptionRequired):
		Unprocessable(c, ErrCodeValidation, err.Error())
	case errors.Is(err, entity.ErrEmailTaken):
		Unprocessable(c, ErrCodeEmailExists, err.Error())
	case errors.Is(err, entity.ErrPhoneTaken):
		Unprocessable(c, ErrCodePhoneExists, err.Error())
	case errors.Is(err, entity.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeInvalidCredentials, err.Error())
	case errors.Is(err, entity.ErrAccountLocked):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeAccountLocked, err.Error())
	case errors.Is(err, entity.ErrAccountPending):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeAccountPending, err.Error())
	case errors.Is(err, entity.ErrAccountSuspended):
		ErrorResponse(c, http.StatusUnauthorized, ErrCodeAccountSuspended, err.Error())
	case errors.Is(err, entity.ErrVerificationNotFound):
		ErrorResponse(c, http.StatusNotFound, ErrCodeVerification, err.Error())
	case errors.Is(err, entity.ErrVerificationExpired),
		errors.Is(err, entity.ErrVerificationMismatch):
		BadRequest(c, ErrCodeVerification, err.Error())
	case errors.Is(err, entity.ErrResetTokenInvalid),
		errors.Is(err, entity.ErrResetTokenExpired):
		BadRequest(c, ErrCodeResetToken, err.Error())
	case errors.Is(err, entity.ErrMailDelivery):
		ErrorResponse(c, http.StatusBadGateway, ErrCodeUpstreamFailure, err.Error())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		Unprocessable(c, ErrCodeValidation, "duplicate value for a unique field")
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "resource not found")
	default:
		logrus.WithError(err).Error("unhandled request error")
		InternalError(c, "internal server error")
	}
}
