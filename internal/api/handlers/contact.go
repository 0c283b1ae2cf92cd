package handlers

import (
	"errors"
	"net/http"

	"github.com/aversacc/avers-site/internal/api/constants"
	"github.com/aversacc/avers-site/internal/api/dto/common"
	"github.com/aversacc/avers-site/internal/api/dto/v1/contact"
	"github.com/aversacc/avers-site/internal/config"
	"github.com/aversacc/avers-site/internal/logging"
	"github.com/aversacc/avers-site/internal/service"
	"github.com/aversacc/avers-site/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler relays contact form submissions: validate, verify the
// Turnstile token, dispatch one transactional email, respond.
type ContactHandler struct {
	turnstileService service.ChallengeVerifier
	mailerService    service.ContactMailer
	policy           string
}

// NewContactHandler creates a new contact handler with the given verification policy
func NewContactHandler(policy string) *ContactHandler {
	return &ContactHandler{
		turnstileService: service.NewTurnstileService(),
		mailerService:    service.NewMailerService(),
		policy:           policy,
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}

	contactPtr, ok := contactData.(*contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid contact data format")
		return
	}

	logger := logging.GetGlobalLogger()

	// Token policy. Strict mode requires a token; lenient mode lets a
	// tokenless submission through so a broken widget doesn't lose leads.
	if contactPtr.TurnstileToken == "" {
		if h.policy == config.PolicyStrict {
			utils.HandleAPIError(c, nil, http.StatusBadRequest, common.ErrCodeBadRequest, "Turnstile verification is required")
			return
		}
		logger.Warn("Contact submission without Turnstile token allowed through (lenient policy)")
	} else {
		err := h.turnstileService.VerifyToken(contactPtr.TurnstileToken, utils.GetRealIP(c))
		if err != nil {
			if h.policy == config.PolicyLenient && errors.Is(err, service.ErrChallengeUnavailable) {
				logger.Warn("Turnstile verification unavailable, allowing submission through: %v", err)
			} else {
				utils.HandleAPIError(c, err, http.StatusBadRequest, common.ErrCodeBadRequest, "Turnstile verification failed")
				return
			}
		}
	}

	// Exactly one outbound email per verified submission
	providerPayload, err := h.mailerService.SendContactEmail(
		contactPtr.Name,
		contactPtr.Email,
		contactPtr.Message,
	)
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Failed to send email")
		return
	}

	utils.HandleSuccess(c, contact.ContactResponse{
		Message: "Message sent successfully. We'll get back to you shortly.",
		Email:   providerPayload,
	})
}
