package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/dtos"
	"github.com/openhired/jobboard/internal/middleware"
	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/services"
)

type UserHandler struct {
	users  *services.UserService
	logger *zap.Logger
}

func NewUserHandler(users *services.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// Signup is POST /user/signup.
func (h *UserHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.users.Signup(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": user})
}

// Confirm is POST /user/confirm.
func (h *UserHandler) Confirm(c *gin.Context) {
	var req dtos.ConfirmEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.users.ConfirmEmail(c.Request.Context(), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed successfully"})
}

// SignIn is POST /user/signin.
func (h *UserHandler) SignIn(c *gin.Context) {
	var req dtos.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if req.Email == "" && req.RecoveryEmail == "" && req.MobileNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "validation_failed",
			"error_description": "Provide an email, recovery email, or mobile number.",
		})
		return
	}
	signed, err := h.users.SignIn(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": signed})
}

// Update is PATCH /user/update.
func (h *UserHandler) Update(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req dtos.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	user, err := h.users.Update(c.Request.Context(), actor.ID, req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User account updated successfully", "user": user})
}

// UpdatePassword is PATCH /user/password.
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	var req dtos.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.users.UpdatePassword(c.Request.Context(), actor.ID, req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// Delete is DELETE /user.
func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if err := h.users.DeleteAccount(c.Request.Context(), actor.ID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User account deleted successfully"})
}

// Me is GET /user/me.
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := middleware.CurrentUser(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	user, err := h.users.Get(c.Request.Context(), actor.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Profile is GET /user/profile/:id. Public, so only the public subset
// of fields is returned.
func (h *UserHandler) Profile(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": publicProfile(user)})
}

// RequestPasswordReset is POST /user/password/forgot.
func (h *UserHandler) RequestPasswordReset(c *gin.Context) {
	var req dtos.RequestPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.users.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to your email"})
}

// ResetPassword is POST /user/password/reset.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req dtos.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.users.ResetPassword(c.Request.Context(), req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully"})
}

// AccountsByRecovery is GET /user/accounts.
func (h *UserHandler) AccountsByRecovery(c *gin.Context) {
	var query dtos.RecoveryAccountsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}
	accounts, err := h.users.AccountsByRecoveryEmail(c.Request.Context(), query.RecoveryEmail)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	summaries := make([]gin.H, 0, len(accounts))
	for i := range accounts {
		summaries = append(summaries, gin.H{
			"username": accounts[i].Username,
			"email":    accounts[i].Email,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": summaries})
}

func publicProfile(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"username":   user.Username,
	}
}
