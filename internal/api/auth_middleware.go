package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"tmsiti/internal/entity"
	"tmsiti/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const currentUserContextKey = "current-user"

// RequestUser is the authenticated caller attached to the request context.
type RequestUser struct {
	ID       uint
	Email    string
	FullName string
	Role     string
}

func (u *RequestUser) IsSuperAdmin() bool {
	return u != nil && u.Role == entity.UserRoleSuperAdmin
}

// IsModerator reports whether the caller holds at least moderator rank.
func (u *RequestUser) IsModerator() bool {
	if u == nil {
		return false
	}
	switch u.Role {
	case entity.UserRoleSuperAdmin, entity.UserRoleAdmin, entity.UserRoleModerator:
		return true
	default:
		return false
	}
}

// AuthMiddleware validates the bearer token and loads the account behind it.
// A token for a deactivated account is rejected as unauthenticated, so a
// suspended user cannot keep an old session alive.
func (h *HTTPHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing authorization header",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "invalid authorization header format",
			})
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeUnauthorized,
				Message: "missing bearer token",
			})
			return
		}

		claims, err := h.authManager.ParseToken(tokenString)
		if err != nil {
			logrus.WithError(err).Warn("failed to parse jwt token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeSessionExpired,
				Message: "token invalid or expired",
			})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		user, err := h.repo.GetUserByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
					Code:    ErrCodeUserNotFound,
					Message: "account no longer exists",
				})
				return
			}
			logrus.WithError(err).WithField("user_id", claims.UserID).Error("failed to load user")
			c.AbortWithStatusJSON(http.StatusInternalServerError, APIError{
				Code:    ErrCodeInternalError,
				Message: "failed to verify account",
			})
			return
		}

		if !user.CanLogin(time.Now()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
				Code:    ErrCodeAccountSuspended,
				Message: "account is deactivated",
			})
			return
		}

		requestUser := &RequestUser{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     user.Role,
		}

		c.Set(currentUserContextKey, requestUser)
		c.Next()
	}
}

// RequireSuperAdmin gates content mutation routes. The refusal message is
// localized from the lang parameter.
func (h *HTTPHandler) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsSuperAdmin() {
			lang, _ := i18n.Parse(c.Query("lang"))
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: i18n.SuperAdminOnly(lang),
			})
			return
		}
		c.Next()
	}
}

// RequireModerator gates staff read routes, e.g. contact listings.
func (h *HTTPHandler) RequireModerator() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsModerator() {
			lang, _ := i18n.Parse(c.Query("lang"))
			c.AbortWithStatusJSON(http.StatusForbidden, APIError{
				Code:    ErrCodeForbidden,
				Message: i18n.ModeratorOnly(lang),
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated caller, or nil outside AuthMiddleware.
func CurrentUser(c *gin.Context) *RequestUser {
	value, exists := c.Get(currentUserContextKey)
	if !exists {
		return nil
	}
	user, ok := value.(*RequestUser)
	if !ok {
		return nil
	}
	return user
}
