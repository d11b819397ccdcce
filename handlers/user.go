package handlers

import (
	"errors"
	"io"
	"net/http"

	"dentalcare/models"
	"dentalcare/services/user"
	"dentalcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Users  user.UserService
	Logger *zap.Logger
}

func NewUserHandler(us user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Users: us, Logger: logger}
}

// UpsertUserHandler handles PUT /user/:email on sign-in and sign-up.
func (h *UserHandler) UpsertUserHandler(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile", err.Error())
		return
	}

	result, token, err := h.Users.SignIn(c.Request.Context(), c.Param("email"), profile)
	if err != nil {
		respondError(c, h.Logger, "Failed to save user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}

// GetUsersHandler handles GET /users.
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.Users.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, "Failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// MakeAdminHandler handles PUT /admin/:email.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	email := c.Param("email")
	if err := h.Users.MakeAdmin(c.Request.Context(), email); err != nil {
		respondError(c, h.Logger, "Failed to grant admin role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email, "role": models.RoleAdmin})
}

// CheckAdminHandler handles GET /admin/:email.
func (h *UserHandler) CheckAdminHandler(c *gin.Context) {
	isAdmin, err := h.Users.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.Logger, "Failed to check role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}
