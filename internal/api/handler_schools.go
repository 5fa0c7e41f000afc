package api

import (
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"school-directory-backend/internal/model"
	"school-directory-backend/internal/validate"
)

// AddSchool handles the POST /api/add-school request: parse the
// multipart body, validate all fields, upload the image, persist the
// record. Validation happens before either side effect, so a rejected
// submission leaves no trace. The blob write and the database write are
// not wrapped in a transaction; if the insert fails after the upload
// succeeded, the blob is left unreferenced.
func (h *Handler) AddSchool(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	in := validate.SchoolInput{
		Name:    formValue(form, "name"),
		Address: formValue(form, "address"),
		City:    formValue(form, "city"),
		State:   formValue(form, "state"),
		Contact: formValue(form, "contact"),
		EmailID: formValue(form, "email_id"),
	}
	if files := form.File["image"]; len(files) > 0 {
		in.Image = files[0]
	}

	draft, issues := validate.School(in)
	if issues != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"issues": issues,
		})
		return
	}

	file, err := in.Image.Open()
	if err != nil {
		h.internalError(c, fmt.Errorf("failed to open uploaded image: %w", err))
		return
	}
	defer file.Close()

	// Prefix the original filename with the current time so two uploads
	// of the same file never collide.
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(in.Image.Filename))
	imageURL, err := h.blobs.Put(c.Request.Context(), key, file, in.Image.Size, validate.ImageContentType(in.Image))
	if err != nil {
		h.internalError(c, fmt.Errorf("image upload failed: %w", err))
		return
	}

	school := &model.School{
		Name:    draft.Name,
		Address: draft.Address,
		City:    draft.City,
		State:   draft.State,
		Contact: draft.Contact,
		EmailID: draft.EmailID,
		Image:   imageURL,
	}
	if err := h.store.CreateSchool(c.Request.Context(), school); err != nil {
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "School added successfully!",
		"school":  school,
	})
}

func formValue(form *multipart.Form, key string) string {
	if values := form.Value[key]; len(values) > 0 {
		return values[0]
	}
	return ""
}

// internalError logs the cause and responds with a generic 500. The
// details object is only included in debug mode so internals never leak
// in production.
func (h *Handler) internalError(c *gin.Context, err error) {
	log.Printf("Error in POST /api/add-school: %v", err)
	resp := gin.H{"error": "An internal server error occurred."}
	if h.debug {
		resp["details"] = gin.H{"message": err.Error()}
	}
	c.JSON(http.StatusInternalServerError, resp)
}
