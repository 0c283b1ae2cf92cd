package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SiteHandler serves the marketing site
type SiteHandler struct {
	turnstileSiteKey string
}

func NewSiteHandler(turnstileSiteKey string) *SiteHandler {
	return &SiteHandler{turnstileSiteKey: turnstileSiteKey}
}

// Home renders the single scrolling landing page
func (h *SiteHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"TurnstileSiteKey": h.turnstileSiteKey,
	})
}
