package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"school-directory-backend/config"
	"school-directory-backend/internal/blob"
	"school-directory-backend/internal/mw"
	"school-directory-backend/internal/store"
	"school-directory-backend/internal/web"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(s store.Store, blobs blob.Store, cfg *config.ServerConfig) *gin.Engine {
	r := gin.Default()

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))
	r.StaticFS("/static", web.StaticFS())

	handler := NewHandler(s, blobs, cfg.Debug)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// POST /api/add-school
		api.POST("/add-school", handler.AddSchool)

		// GET /api/debug
		api.GET("/debug", handler.GetDebug)
	}

	// Server-rendered pages
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/show-schools")
	})
	r.GET("/add-school", handler.AddSchoolPage)
	r.GET("/show-schools", handler.ShowSchoolsPage)

	return r
}
