package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowSchoolsPage renders the listing page. All schools are fetched on
// every view, newest first; an empty result renders the empty state.
func (h *Handler) ShowSchoolsPage(c *gin.Context) {
	schools, err := h.store.ListSchools(c.Request.Context())
	if err != nil {
		log.Printf("Error rendering /show-schools: %v", err)
		c.String(http.StatusInternalServerError, "Internal Server Error")
		return
	}

	c.HTML(http.StatusOK, "show_schools.html", gin.H{
		"Schools": schools,
	})
}

// AddSchoolPage renders the submission form page.
func (h *Handler) AddSchoolPage(c *gin.Context) {
	c.HTML(http.StatusOK, "add_school.html", nil)
}
