// Package leaderboard ranks teachers by their average rating.
package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"teacher-rating-api/internal/models"
	"teacher-rating-api/internal/store"
)

// UnratedMarker stands in for the average of a teacher with no ratings.
const UnratedMarker = "?"

// Order selects how averages are compared.
type Order string

const (
	// OrderLexical compares the rendered averages as text, so "9.5" ranks
	// above "10.0". This is the historical behaviour.
	OrderLexical Order = "lexical"
	// OrderNumeric compares averages as numbers.
	OrderNumeric Order = "numeric"
)

// Entry is one leaderboard row.
type Entry struct {
	TeacherID string  `json:"teacherId"`
	Name      string  `json:"name"`
	School    string  `json:"school"`
	Rating    string  `json:"rating"`
	Average   float64 `json:"average"`
	Count     int64   `json:"count"`
}

// Rated reports whether the teacher has at least one rating.
func (e Entry) Rated() bool { return e.Count > 0 }

type TeacherLister interface {
	List(ctx context.Context) ([]models.Teacher, error)
}

type TotalsReader interface {
	Totals(ctx context.Context) (map[string]store.RatingTotal, error)
}

type Aggregator struct {
	teachers TeacherLister
	ratings  TotalsReader
	order    Order
	size     int
}

func NewAggregator(teachers TeacherLister, ratings TotalsReader, order Order, size int) *Aggregator {
	if order == "" {
		order = OrderLexical
	}
	return &Aggregator{teachers: teachers, ratings: ratings, order: order, size: size}
}

// Compute returns the top entries, best first.
func (a *Aggregator) Compute(ctx context.Context) ([]Entry, error) {
	teachers, err := a.teachers.List(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := a.ratings.Totals(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}

	entries := make([]Entry, 0, len(teachers))
	for _, t := range teachers {
		e := Entry{
			TeacherID: t.ID,
			Name:      t.Name,
			School:    t.School,
			Rating:    UnratedMarker,
		}
		if total, ok := totals[t.ID]; ok && total.Count > 0 {
			e.Count = total.Count
			e.Average = roundAverage(float64(total.Sum) / float64(total.Count))
			e.Rating = FormatAverage(e.Average)
		}
		entries = append(entries, e)
	}

	Rank(entries, a.order)
	if a.size > 0 && len(entries) > a.size {
		entries = entries[:a.size]
	}
	return entries, nil
}

// Rank sorts entries best first. Unrated entries always come last; equal
// entries keep their relative order.
func Rank(entries []Entry, order Order) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Rated() != b.Rated() {
			return a.Rated()
		}
		if !a.Rated() {
			return false
		}
		if order == OrderNumeric {
			return a.Average > b.Average
		}
		return a.Rating > b.Rating
	})
}

// FormatAverage renders an average with the fewest digits that represent it
// and at least one fractional digit: 9 -> "9.0", 8.333 -> "8.33", 7.5 -> "7.5".
func FormatAverage(avg float64) string {
	s := strconv.FormatFloat(roundAverage(avg), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// roundAverage rounds to two decimals using the exact binary value.
func roundAverage(avg float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(avg, 'f', 2, 64), 64)
	if err != nil {
		return avg
	}
	return rounded
}
