package store

import (
	"context"
	"fmt"

	"teacher-rating-api/internal/models"

	"gorm.io/gorm"
)

// Teachers is the teacher registry.
type Teachers struct {
	db *gorm.DB
}

func NewTeachers(db *gorm.DB) *Teachers {
	return &Teachers{db: db}
}

// Create inserts a teacher. A taken name yields ErrDuplicate.
func (s *Teachers) Create(ctx context.Context, teacher *models.Teacher) error {
	if err := s.db.WithContext(ctx).Create(teacher).Error; err != nil {
		return fmt.Errorf("create teacher: %w", translate(err))
	}
	return nil
}

func (s *Teachers) FindByName(ctx context.Context, name string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&teacher).Error; err != nil {
		return models.Teacher{}, translate(err)
	}
	return teacher, nil
}

func (s *Teachers) FindByID(ctx context.Context, id string) (models.Teacher, error) {
	var teacher models.Teacher
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&teacher).Error; err != nil {
		return models.Teacher{}, translate(err)
	}
	return teacher, nil
}

// ListByName returns every teacher ordered by name.
func (s *Teachers) ListByName(ctx context.Context) ([]models.Teacher, error) {
	return s.list(ctx, "name asc")
}

// List returns every teacher in creation order.
func (s *Teachers) List(ctx context.Context) ([]models.Teacher, error) {
	return s.list(ctx, "created_at asc, id asc")
}

func (s *Teachers) list(ctx context.Context, order string) ([]models.Teacher, error) {
	var teachers []models.Teacher
	if err := s.db.WithContext(ctx).Order(order).Find(&teachers).Error; err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}
