package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"school-directory-backend/internal/model"
)

// SchoolSummary is the projection of a school used by the listing page.
type SchoolSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Image   string `json:"image"`
}

// Store defines the interface for all database operations.
type Store interface {
	CreateSchool(ctx context.Context, school *model.School) error
	ListSchools(ctx context.Context) ([]SchoolSummary, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// CreateSchool inserts one school row. The database assigns the ID and
// creation timestamp; both are populated on the passed record.
func (s *gormStore) CreateSchool(ctx context.Context, school *model.School) error {
	if err := s.db.WithContext(ctx).Create(school).Error; err != nil {
		return fmt.Errorf("failed to create school record: %w", err)
	}
	return nil
}

// ListSchools returns all schools, newest first. The ID tiebreak keeps
// the order deterministic when two rows share a creation timestamp.
func (s *gormStore) ListSchools(ctx context.Context) ([]SchoolSummary, error) {
	var schools []SchoolSummary
	err := s.db.WithContext(ctx).
		Model(&model.School{}).
		Select("id", "name", "address", "city", "image").
		Order("created_at DESC, id DESC").
		Find(&schools).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list schools: %w", err)
	}
	return schools, nil
}
