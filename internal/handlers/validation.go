package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"fintracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	layoutDate = "2006-01-02"

	msgValidationFailed = "Validation Failed"
	msgInvalidDate      = "Invalid date format"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// fieldMessage maps a failed constraint to its user-facing message.
func fieldMessage(field, tag string) string {
	switch field {
	case "name":
		return "Name must be at least 2 characters long"
	case "email":
		return "Invalid email address"
	case "password":
		if tag == "max" {
			return "Password must be at most 50 characters long"
		}
		return "Password must be at least 6 characters long"
	case "title":
		return "Title is required"
	case "amount":
		return "Amount is required"
	case "status":
		return "Status is required"
	case "category":
		return "Category is required"
	case "date":
		return msgInvalidDate
	}
	return "Invalid input"
}

// jsonFieldName lowercases the first letter of a struct field name to match
// the wire name.
func jsonFieldName(structField string) string {
	if structField == "" {
		return structField
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

// validationFailed writes the 400 response carrying per-field messages.
func validationFailed(c *gin.Context, fields []fieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": msgValidationFailed,
		"errors":  fields,
	})
}

// bindJSON binds the request body into dst. On failure it writes the 400
// response itself and returns false.
func (h *Handler) bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			name := jsonFieldName(fe.Field())
			fields = append(fields, fieldError{Field: name, Message: fieldMessage(name, fe.Tag())})
		}
		validationFailed(c, fields)
		return false
	}

	if h.log != nil {
		h.log.Infow("bad_request_body", "err", err)
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body: " + err.Error()})
	return false
}

// parseDate accepts YYYY-MM-DD or RFC3339 and normalizes to UTC midnight.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{layoutDate, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, errors.New(msgInvalidDate)
}

// respondServiceError is the single place mapping service failures to HTTP
// status codes. Unexpected errors are logged and masked.
func (h *Handler) respondServiceError(c *gin.Context, err error, logKey string, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrEmailRegistered),
		errors.Is(err, service.ErrMonthOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		if h.log != nil {
			fields := append([]interface{}{"err", err}, kv...)
			h.log.Errorw(logKey, fields...)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
