package models

import "time"

// Teacher represents a teacher that can be rated
type Teacher struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	School    string    `json:"school" gorm:"not null"`
	Name      string    `json:"name" gorm:"size:191;uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for Teacher Model
func (Teacher) TableName() string {
	return "teachers"
}
