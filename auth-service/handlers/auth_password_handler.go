package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitegate-backend/auth-service/services"
	utils "sitegate-backend/shared/utils/auth"
)

// ForgotPasswordRequest represents the request body for forgot password
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" example:"alice@example.com"`
}

// ResetPasswordRequest represents the request body for resetting a password
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ForgotPassword initiates the password reset process by sending a reset link
// to the account's email. The response is identical whether or not the email
// exists, so the endpoint cannot be used to enumerate accounts.
// @Summary Forgot password
// @Description Initiates password reset process by sending a reset link to the account's email
// @Tags auth-password
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Email for password reset"
// @Success 200 {object} map[string]string "Password reset email sent"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to process request"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidateEmail(req.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		log.Printf("password reset request failed: %v", err)
		if errors.Is(err, services.ErrMailSend) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not send reset email"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If a user with this email exists, a password reset link will be sent"})
}

// ResetPassword resets an account's password using a valid reset token.
// @Summary Reset password
// @Description Reset the account password using a valid reset token
// @Tags auth-password
// @Accept json
// @Produce json
// @Param request body ResetPasswordRequest true "Password reset data with token"
// @Success 200 {object} map[string]string "Password reset successful"
// @Failure 400 {object} map[string]string "Invalid request format, weak password, or invalid/expired/used token"
// @Failure 404 {object} map[string]string "Account no longer exists"
// @Failure 500 {object} map[string]string "Failed to update password"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.auth.CompletePasswordReset(c.Request.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWeakPassword):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reset token"})
		case errors.Is(err, services.ErrTokenExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reset token has expired"})
		case errors.Is(err, services.ErrTokenUsed):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Reset token has already been used"})
		case errors.Is(err, services.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		default:
			log.Printf("password reset failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update password"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful. You can now log in with your new password."})
}
