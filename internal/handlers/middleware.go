package handlers

import (
	"net/http"
	"strings"
	"time"

	"fintracker/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	userCtxKey      = "user"
	requestIDHeader = "X-Request-ID"
)

// authMiddleware gates protected routes behind a valid bearer token. The
// resolved user in the gin context is the sole basis for ownership scoping;
// handlers never trust a client-supplied owner field.
func (h *Handler) authMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "missing Authorization header",
		})
		return
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid Authorization header format",
		})
		return
	}

	user, err := h.services.Authorization.UserFromToken(c.Request.Context(), parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "invalid or expired token",
		})
		return
	}

	c.Set(userCtxKey, user)
	c.Next()
}

// currentUser returns the identity the auth middleware attached.
func currentUser(c *gin.Context) *models.User {
	u, ok := c.Get(userCtxKey)
	if !ok {
		return nil
	}
	user, _ := u.(*models.User)
	return user
}

// requestLogger tags each request with an id and logs method, path, status
// and latency once the handler chain finishes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	requestID := uuid.NewString()
	c.Writer.Header().Set(requestIDHeader, requestID)

	c.Next()

	if h.log == nil {
		return
	}
	h.log.Infow("http_request",
		"request_id", requestID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
