package handlers

import (
	"net/http"

	"fintracker/internal/service"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name       string `json:"name" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6,max=50"`
	Role       string `json:"role" binding:"omitempty,oneof=user admin"`
	ProfilePic string `json:"profilePic" binding:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  registerRequest  true  "Registration payload"
// @Success      201  {object}  map[string]string  "token"
// @Failure      400  {object}  map[string]interface{}
// @Router       /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	token, err := h.services.Authorization.Register(c.Request.Context(), service.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       req.Role,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		h.respondServiceError(c, err, "auth_register_failed", "email", req.Email)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

// @Summary      Log in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  loginRequest  true  "Credentials"
// @Success      200  {object}  map[string]interface{}  "token, user"
// @Failure      401  {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if ok := h.bindJSON(c, &req); !ok {
		return
	}

	token, user, err := h.services.Authorization.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondServiceError(c, err, "auth_login_failed", "email", req.Email)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me [get]
// @Security     BearerAuth
func (h *Handler) me(c *gin.Context) {
	owner := currentUser(c)

	// Re-resolve so a user deleted mid-session yields a 404 rather than
	// echoing the snapshot the middleware attached.
	user, err := h.services.Authorization.Profile(c.Request.Context(), owner.ID.Hex())
	if err != nil {
		h.respondServiceError(c, err, "users_me_failed", "user_id", owner.ID.Hex())
		return
	}

	c.JSON(http.StatusOK, user)
}
