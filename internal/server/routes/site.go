package routes

import (
	"net/http"

	"github.com/aversacc/avers-site/internal/api/handlers"
	"github.com/aversacc/avers-site/internal/web"

	"github.com/gin-gonic/gin"
)

// SetupSiteRoutes serves the marketing page and its embedded static assets
func SetupSiteRoutes(router *gin.Engine, site *handlers.SiteHandler) error {
	templates, err := web.Templates()
	if err != nil {
		return err
	}
	router.SetHTMLTemplate(templates)

	staticFS, err := web.StaticFS()
	if err != nil {
		return err
	}
	router.StaticFS("/static", http.FS(staticFS))

	router.GET("/", site.Home)
	return nil
}
