package api

import (
	"net/http"

	"tmsiti/internal/entity"

	"github.com/gin-gonic/gin"
)

func (h *HTTPHandler) Register(c *gin.Context) {
	var req entity.AuthRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.accounts.Register(ctx, req)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *HTTPHandler) VerifyEmail(c *gin.Context) {
	var req entity.AuthVerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.accounts.VerifyEmail(ctx, req); err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}

func (h *HTTPHandler) Login(c *gin.Context) {
	var req entity.AuthLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	resp, err := h.accounts.Login(ctx, req)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HTTPHandler) ForgotPassword(c *gin.Context) {
	var req entity.AuthForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.accounts.ForgotPassword(ctx, req); err != nil {
		FromError(c, err)
		return
	}
	// The body never reveals whether the address is registered.
	c.JSON(http.StatusOK, gin.H{"message": "if the address is registered, a reset link has been sent"})
}

func (h *HTTPHandler) ResetPassword(c *gin.Context) {
	var req entity.AuthResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.accounts.ResetPassword(ctx, req); err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

func (h *HTTPHandler) GetProfile(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	account, err := h.repo.GetUserByID(ctx, user.ID)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, entity.MakeUserProfile(account))
}

func (h *HTTPHandler) UpdateProfile(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		Unauthorized(c, "authentication required")
		return
	}

	var req entity.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		InvalidPayload(c)
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	profile, err := h.accounts.UpdateProfile(ctx, user.ID, req)
	if err != nil {
		FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
