package middleware

import (
	"net/http"

	"github.com/aversacc/avers-site/internal/api/constants"
	"github.com/aversacc/avers-site/internal/api/dto/common"
	"github.com/aversacc/avers-site/internal/api/dto/v1/contact"
	"github.com/aversacc/avers-site/internal/api/sanitization"
	"github.com/aversacc/avers-site/internal/api/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationMiddleware handles request validation
type ValidationMiddleware struct {
	validate *validator.Validate
}

// NewValidationMiddleware creates a new validation middleware
func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return &ValidationMiddleware{
		validate: validate,
	}
}

// ValidateContactRequest validates a contact form submission.
// Name, email and message are required; no downstream work happens when
// any of them is missing or malformed.
func (m *ValidationMiddleware) ValidateContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(
				common.ErrCodeValidation,
				"Name, email, and message are required",
				validation.FormatValidationError(err),
			))
			c.Abort()
			return
		}

		req.Name = sanitization.SanitizeName(req.Name)
		req.Email = sanitization.SanitizeEmail(req.Email)
		req.Message = sanitization.SanitizeText(req.Message)

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
