package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitegate-backend/auth-service/services"
)

// AdminHandler exposes administrative account operations.
// WARNING: these endpoints carry no authentication, matching the original
// deployment behind a trusted frontend. Do not expose them publicly.
type AdminHandler struct {
	auth *services.AuthService
}

func NewAdminHandler(auth *services.AuthService) *AdminHandler {
	return &AdminHandler{auth: auth}
}

// DeleteAccountRequest represents the request body for deleting an account
type DeleteAccountRequest struct {
	Username string `json:"username" binding:"required" example:"alice"`
}

// DeleteAccount removes an account and every reset token referencing it.
// Deleting an account that does not exist still succeeds.
// @Summary Delete account
// @Description Delete an account and cascade-delete its password reset tokens
// @Tags admin
// @Accept json
// @Produce json
// @Param request body DeleteAccountRequest true "Account to delete"
// @Success 200 {object} map[string]string "Account deleted"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 500 {object} map[string]string "Failed to delete account"
// @Router /admin/delete-account [post]
func (h *AdminHandler) DeleteAccount(c *gin.Context) {
	var req DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.auth.DeleteAccount(c.Request.Context(), req.Username); err != nil {
		log.Printf("account deletion failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account deleted successfully"})
}
