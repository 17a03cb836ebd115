package rating

import (
	"context"
	"fmt"
	"testing"

	"teacher-rating-api/internal/apperr"
	"teacher-rating-api/internal/models"
	"teacher-rating-api/internal/store"
	"teacher-rating-api/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newService(t *testing.T, opts Options) (*Service, *gorm.DB) {
	t.Helper()
	db, err := testutil.NewInMemoryDB()
	require.NoError(t, err)
	require.NoError(t, db.Create(&models.User{ID: "u-1", Username: "alice", Password: "x"}).Error)
	return NewService(store.NewTeachers(db), store.NewRatings(db), opts), db
}

func countRatings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Rating{}).Count(&n).Error)
	return n
}

func TestAddTeacher_NameOnlyUniqueness(t *testing.T) {
	svc, db := newService(t, Options{})
	ctx := context.Background()

	smith, err := svc.AddTeacher(ctx, "Smith", "Lincoln High")
	require.NoError(t, err)
	require.NotEmpty(t, smith.ID)

	_, err = svc.AddTeacher(ctx, "Smith", "Other School")
	require.ErrorIs(t, err, apperr.ErrConflict)

	var n int64
	require.NoError(t, db.Model(&models.Teacher{}).Count(&n).Error)
	require.EqualValues(t, 1, n)
}

func TestListTeachers_SortedByName(t *testing.T) {
	svc, _ := newService(t, Options{})
	ctx := context.Background()

	for _, name := range []string{"Smith", "Adams", "Jones"} {
		_, err := svc.AddTeacher(ctx, name, "Lincoln High")
		require.NoError(t, err)
	}

	teachers, err := svc.ListTeachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 3)
	require.Equal(t, []string{"Adams", "Jones", "Smith"}, []string{teachers[0].Name, teachers[1].Name, teachers[2].Name})
}

func TestSubmitRating_UnknownTeacher(t *testing.T) {
	svc, db := newService(t, Options{})

	_, err := svc.SubmitRating(context.Background(), "u-1", "missing", 5)
	require.ErrorIs(t, err, apperr.ErrNotFound)
	require.Zero(t, countRatings(t, db))
}

func TestSubmitRating_AcceptsAnyInteger(t *testing.T) {
	svc, db := newService(t, Options{})
	ctx := context.Background()

	teacher, err := svc.AddTeacher(ctx, "Smith", "Lincoln High")
	require.NoError(t, err)

	for _, v := range []int{8, 8, -4, 250} {
		_, err := svc.SubmitRating(ctx, "u-1", teacher.ID, v)
		require.NoError(t, err)
	}
	require.EqualValues(t, 4, countRatings(t, db))
}

func TestSubmitRating_LegacyKeyCollides(t *testing.T) {
	svc, db := newService(t, Options{LegacyRatingKey: true})
	ctx := context.Background()

	smith, err := svc.AddTeacher(ctx, "Smith", "Lincoln High")
	require.NoError(t, err)
	adams, err := svc.AddTeacher(ctx, "Adams", "Lincoln High")
	require.NoError(t, err)

	_, err = svc.SubmitRating(ctx, "u-1", smith.ID, 8)
	require.NoError(t, err)
	_, err = svc.SubmitRating(ctx, "u-1", adams.ID, 8)
	require.ErrorIs(t, err, apperr.ErrConflict)
	require.EqualValues(t, 1, countRatings(t, db))
}

// racingTeachers behaves as if another insert for the same name committed
// between the lookup and the insert.
type racingTeachers struct {
	TeacherStore
}

func (racingTeachers) FindByName(context.Context, string) (models.Teacher, error) {
	return models.Teacher{}, store.ErrNotFound
}

func (racingTeachers) Create(context.Context, *models.Teacher) error {
	return fmt.Errorf("insert teacher: %w", store.ErrDuplicate)
}

func TestAddTeacher_UniqueIndexRaceIsConflict(t *testing.T) {
	svc := NewService(racingTeachers{}, nil, Options{})

	_, err := svc.AddTeacher(context.Background(), "Smith", "Lincoln High")
	require.ErrorIs(t, err, apperr.ErrConflict)
	e, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, "Teacher already exists", e.Message)
}
