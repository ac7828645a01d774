package handlers

import (
	"errors"
	"net/http"

	"gubu/api/filters"
	userrepo "gubu/api/repositories/user"
	userservice "gubu/api/services/user"

	"github.com/gin-gonic/gin"
)

// UserHandler exposes the user CRUD and authentication endpoints.
type UserHandler struct {
	userService *userservice.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService *userservice.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserBody struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
}

type authBody struct {
	Username string  `json:"username" binding:"required"`
	Password *string `json:"password"`
}

// GetUsers lists user ids, optionally filtered by display name.
func (h *UserHandler) GetUsers(c *gin.Context) {
	var params filters.UserListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids, err := h.userService.List(c.Request.Context(), params.DisplayName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_ids": ids})
}

// PostUsers registers a new user.
func (h *UserHandler) PostUsers(c *gin.Context) {
	var body createUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.userService.Create(c.Request.Context(), body.Username, body.Password, body.DisplayName)
	if err != nil {
		if errors.Is(err, userrepo.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": id})
}

// GetUser returns a single user with their played games and friends.
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// PatchUser applies a partial update to a user.
func (h *UserHandler) PatchUser(c *gin.Context) {
	id, ok := parseIdParam(c, "id")
	if !ok {
		return
	}

	var update filters.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if update.IsEmpty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty update"})
		return
	}

	found, err := h.userService.Update(c.Request.Context(), id, &update)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.Status(http.StatusOK)
}

// PostAuth verifies a username and password pair.
func (h *UserHandler) PostAuth(c *gin.Context) {
	var body authBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := h.userService.Authenticate(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		if errors.Is(err, userservice.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": userID})
}
