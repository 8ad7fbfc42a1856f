package api

import (
	"net/http"
	"strings"

	"tmsiti/internal/entity"

	"github.com/gin-gonic/gin"
)

// ListUsers serves the admin account listing with role, status and keyword
// filters. Superadmin only.
func (h *HTTPHandler) ListUsers(c *gin.Context) {
	var query entity.UserQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		InvalidPayload(c)
		return
	}
	if err := entity.ValidatePageBounds(query.Page, query.Size); err != nil {
		FromError(c, err)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	users, meta, err := h.repo.ListUsers(ctx, &query)
	if err != nil {
		FromError(c, err)
		return
	}

	items := make([]entity.UserSummary, 0, len(users))
	for idx := range users {
		items = append(items, entity.MakeUserSummary(&users[idx]))
	}
	c.JSON(http.StatusOK, entity.PageResponse{Items: items, PageMeta: *meta})
}

func (h *HTTPHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.repo.GetUserByID(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeUserSummary(user))
}

func validAssignableRole(role string) bool {
	switch role {
	case entity.UserRoleAdmin, entity.UserRoleModerator, entity.UserRoleUser:
		return true
	default:
		return false
	}
}

func validStatus(status string) bool {
	switch status {
	case entity.UserStatusPending, entity.UserStatusActive, entity.UserStatusSuspended, entity.UserStatusBanned:
		return true
	default:
		return false
	}
}

// UpdateUser applies admin-side account edits. The superadmin role can never
// be granted through the API and the seeded superadmin cannot demote itself.
func (h *HTTPHandler) UpdateUser(c *gin.Context) {
	actor := CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req entity.AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	updates := make(map[string]interface{})
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = strings.TrimSpace(*req.PhoneNumber)
	}
	if req.Role != nil {
		role := strings.TrimSpace(*req.Role)
		if !validAssignableRole(role) {
			Unprocessable(c, ErrCodeValidation, "invalid role")
			return
		}
		if actor != nil && actor.ID == id {
			Forbidden(c, "cannot change own role")
			return
		}
		updates["role"] = role
	}
	if req.Status != nil {
		status := strings.TrimSpace(*req.Status)
		if !validStatus(status) {
			Unprocessable(c, ErrCodeValidation, "invalid status")
			return
		}
		updates["status"] = status
	}
	if req.IsActive != nil {
		if actor != nil && actor.ID == id && !*req.IsActive {
			Forbidden(c, "cannot deactivate own account")
			return
		}
		updates["is_active"] = *req.IsActive
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	target, err := h.repo.GetUserByID(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	if target.Role == entity.UserRoleSuperAdmin && (req.Role != nil || req.IsActive != nil || req.Status != nil) {
		Forbidden(c, "superadmin account cannot be modified")
		return
	}

	if len(updates) > 0 {
		if err := h.repo.UpdateUser(ctx, id, updates); err != nil {
			FromError(c, err)
			return
		}
	}

	updated, err := h.repo.GetUserByID(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeUserSummary(updated))
}

func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	actor := CurrentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}
	if actor != nil && actor.ID == id {
		Forbidden(c, "cannot delete own account")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	target, err := h.repo.GetUserByID(ctx, id)
	if err != nil {
		FromError(c, err)
		return
	}
	if target.Role == entity.UserRoleSuperAdmin {
		Forbidden(c, "superadmin account cannot be deleted")
		return
	}

	if err := h.repo.DeleteUser(ctx, id); err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
