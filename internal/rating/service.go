// Package rating covers the teacher registry and the rating ledger operations.
package rating

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"teacher-rating-api/internal/apperr"
	"teacher-rating-api/internal/models"
	"teacher-rating-api/internal/store"

	"github.com/google/uuid"
)

type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	FindByName(ctx context.Context, name string) (models.Teacher, error)
	FindByID(ctx context.Context, id string) (models.Teacher, error)
	ListByName(ctx context.Context) ([]models.Teacher, error)
}

type RatingStore interface {
	Create(ctx context.Context, rating *models.Rating) error
	ExistsWithValue(ctx context.Context, value int) (bool, error)
}

// Options tunes ledger behaviour.
type Options struct {
	// LegacyRatingKey rejects a rating whose value is already present in the
	// ledger, mirroring the old schema where the value was the primary key.
	LegacyRatingKey bool
}

type Service struct {
	teachers TeacherStore
	ratings  RatingStore
	opts     Options
}

func NewService(teachers TeacherStore, ratings RatingStore, opts Options) *Service {
	return &Service{teachers: teachers, ratings: ratings, opts: opts}
}

// AddTeacher registers a teacher. Names are unique regardless of school.
func (s *Service) AddTeacher(ctx context.Context, name, school string) (models.Teacher, error) {
	_, err := s.teachers.FindByName(ctx, name)
	switch {
	case err == nil:
		return models.Teacher{}, apperr.Conflict("Teacher already exists", nil)
	case !errors.Is(err, store.ErrNotFound):
		return models.Teacher{}, fmt.Errorf("lookup teacher: %w", err)
	}

	teacher := models.Teacher{
		ID:     uuid.NewString(),
		Name:   name,
		School: school,
	}
	if err := s.teachers.Create(ctx, &teacher); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return models.Teacher{}, apperr.Conflict("Teacher already exists", err)
		}
		return models.Teacher{}, err
	}

	slog.Info("teacher added", "teacher_id", teacher.ID, "name", teacher.Name, "school", teacher.School)
	return teacher, nil
}

// ListTeachers returns all teachers sorted by name.
func (s *Service) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	return s.teachers.ListByName(ctx)
}

// SubmitRating appends a rating by userID for teacherID. The value is not
// range-checked; any integer is stored as-is.
func (s *Service) SubmitRating(ctx context.Context, userID, teacherID string, value int) (models.Rating, error) {
	_, err := s.teachers.FindByID(ctx, teacherID)
	if errors.Is(err, store.ErrNotFound) {
		return models.Rating{}, apperr.NotFound("Teacher doesn't exist")
	}
	if err != nil {
		return models.Rating{}, fmt.Errorf("lookup teacher: %w", err)
	}

	if s.opts.LegacyRatingKey {
		taken, err := s.ratings.ExistsWithValue(ctx, value)
		if err != nil {
			return models.Rating{}, err
		}
		if taken {
			return models.Rating{}, apperr.Conflict("Rating already exists", nil)
		}
	}

	rating := models.Rating{
		UserID:    userID,
		TeacherID: teacherID,
		Value:     value,
	}
	if err := s.ratings.Create(ctx, &rating); err != nil {
		return models.Rating{}, err
	}

	slog.Info("rating submitted", "user_id", userID, "teacher_id", teacherID, "rating", value)
	return rating, nil
}
