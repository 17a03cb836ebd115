package store

import (
	"context"
	"fmt"

	"teacher-rating-api/internal/models"

	"gorm.io/gorm"
)

// RatingTotal is the sum and count of one teacher's ratings.
type RatingTotal struct {
	TeacherID string
	Sum       int64
	Count     int64
}

// Ratings is the append-only rating ledger.
type Ratings struct {
	db *gorm.DB
}

func NewRatings(db *gorm.DB) *Ratings {
	return &Ratings{db: db}
}

func (s *Ratings) Create(ctx context.Context, rating *models.Rating) error {
	if err := s.db.WithContext(ctx).Create(rating).Error; err != nil {
		return fmt.Errorf("create rating: %w", translate(err))
	}
	return nil
}

// ExistsWithValue reports whether any rating already carries value.
func (s *Ratings) ExistsWithValue(ctx context.Context, value int) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Rating{}).Where("rating = ?", value).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count ratings: %w", err)
	}
	return count > 0, nil
}

// Totals returns rating sums and counts keyed by teacher id.
func (s *Ratings) Totals(ctx context.Context) (map[string]RatingTotal, error) {
	var rows []RatingTotal
	if err := s.db.WithContext(ctx).Model(&models.Rating{}).
		Select("teacher_id, SUM(rating) as sum, COUNT(*) as count").
		Group("teacher_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}

	totals := make(map[string]RatingTotal, len(rows))
	for _, r := range rows {
		totals[r.TeacherID] = r
	}
	return totals, nil
}
