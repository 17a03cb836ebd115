package models

import "time"

// Rating is a single submission in the rating ledger.
// A user may rate the same teacher any number of times.
type Rating struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"userId" gorm:"column:user_id;not null;index"`
	TeacherID string    `json:"teacherId" gorm:"column:teacher_id;not null;index"`
	Value     int       `json:"rating" gorm:"column:rating;not null"`
	CreatedAt time.Time `json:"createdAt"`

	User    *User    `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Teacher *Teacher `json:"-" gorm:"foreignKey:TeacherID;references:ID"`
}

// TableName specifies the table name for Rating Model
func (Rating) TableName() string {
	return "ratings"
}

// All returns every model in migration order.
func All() []any {
	return []any{&User{}, &Teacher{}, &Rating{}}
}
