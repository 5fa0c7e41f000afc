package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"school-directory-backend/internal/model"
)

func newTestStore(t *testing.T) Store {
	// A named shared-cache memory database keeps every pooled connection
	// on the same data.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	require.NoError(t, db.AutoMigrate(&model.School{}))
	return NewGormStore(db)
}

func TestCreateSchoolAssignsIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)

	school := &model.School{
		Name:    "Northside High",
		Address: "1 Main Street",
		City:    "Portland",
		State:   "Oregon",
		Contact: 5551234567,
		EmailID: "info@northside.example",
		Image:   "http://blob.local/school-images/1-front.png",
	}
	require.NoError(t, s.CreateSchool(context.Background(), school))

	assert.NotZero(t, school.ID)
	assert.WithinDuration(t, time.Now(), school.CreatedAt, 5*time.Second)
}

func TestListSchoolsEmpty(t *testing.T) {
	s := newTestStore(t)

	schools, err := s.ListSchools(context.Background())
	require.NoError(t, err)
	assert.Empty(t, schools)
}

func TestListSchoolsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	names := []string{"First School", "Second School", "Third School"}
	for i, name := range names {
		school := &model.School{
			Name:    name,
			Address: "Some Street",
			City:    "Some City",
			State:   "Some State",
			Contact: 1000000000 + int64(i),
			EmailID: "a@b",
			Image:   "http://blob.local/img",
		}
		require.NoError(t, s.CreateSchool(ctx, school))
	}

	schools, err := s.ListSchools(ctx)
	require.NoError(t, err)
	require.Len(t, schools, 3)

	// Inserted in order, listed newest first.
	assert.Equal(t, "Third School", schools[0].Name)
	assert.Equal(t, "Second School", schools[1].Name)
	assert.Equal(t, "First School", schools[2].Name)

	// The projection carries only the listing fields.
	assert.NotZero(t, schools[0].ID)
	assert.Equal(t, "Some Street", schools[0].Address)
	assert.Equal(t, "Some City", schools[0].City)
	assert.Equal(t, "http://blob.local/img", schools[0].Image)
}

func TestListSchoolsIdempotentReads(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		school := &model.School{
			Name:    "School",
			Address: "Street",
			City:    "City",
			State:   "State",
			Contact: 2000000000 + int64(i),
			EmailID: "a@b",
			Image:   "http://blob.local/img",
		}
		require.NoError(t, s.CreateSchool(ctx, school))
	}

	first, err := s.ListSchools(ctx)
	require.NoError(t, err)
	second, err := s.ListSchools(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
