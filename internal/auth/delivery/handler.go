package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdto "smartlux-backend/internal/auth/dto"
	"smartlux-backend/internal/auth/usecase"
)

// AuthHandler handles the admin console's user management endpoints.
type AuthHandler struct {
	userAdmin usecase.UserAdminUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userAdmin usecase.UserAdminUsecase) *AuthHandler {
	return &AuthHandler{
		userAdmin: userAdmin,
	}
}

// CreateUser creates a Firebase Auth user plus its profile document.
// POST /api/createUser
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req authdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields."})
		return
	}

	uid, err := h.userAdmin.CreateUser(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"uid": uid, "message": "User created!"})
}

// UpdateUser updates the Auth record and the profile document.
// POST /api/updateUser
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req authdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields (uid, email, username)."})
		return
	}

	if err := h.userAdmin.UpdateUser(c.Request.Context(), &req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully."})
}

// UpdateUserPassword sets a new password on the Auth record.
// POST /api/updateUserPassword
func (h *AuthHandler) UpdateUserPassword(c *gin.Context) {
	var req authdto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user ID or new password."})
		return
	}

	if err := h.userAdmin.UpdatePassword(c.Request.Context(), req.UID, req.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully."})
}

// DeleteUser removes the Auth record and the profile document.
// POST /api/deleteUser
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	var req authdto.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing uid."})
		return
	}

	if err := h.userAdmin.DeleteUser(c.Request.Context(), req.UID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted from Auth and Firestore (if present)."})
}

// CheckUserByEmail looks up an Auth user and its sign-in providers.
// POST /api/checkUserByEmail
func (h *AuthHandler) CheckUserByEmail(c *gin.Context) {
	var req authdto.CheckUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "email required"})
		return
	}

	resp, err := h.userAdmin.CheckUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SendResetLink generates a password reset link for password-provider users.
// Actual email delivery is not wired up, so sendEmail requests are refused
// rather than silently dropped.
// POST /api/sendResetLink
func (h *AuthHandler) SendResetLink(c *gin.Context) {
	var req authdto.ResetLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "email required"})
		return
	}

	resp, err := h.userAdmin.ResetLink(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	if resp.OK && req.SendEmail {
		c.JSON(http.StatusNotImplemented, gin.H{"ok": false, "code": "email-delivery-not-configured"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
