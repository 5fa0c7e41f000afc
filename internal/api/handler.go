package api

import (
	"school-directory-backend/internal/blob"
	"school-directory-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	blobs blob.Store
	debug bool
}

// NewHandler creates a new API handler. When debug is set, internal
// errors carry a details object in the response body.
func NewHandler(s store.Store, blobs blob.Store, debug bool) *Handler {
	return &Handler{
		store: s,
		blobs: blobs,
		debug: debug,
	}
}
