package model

import "time"

// LessonProgress marks a lesson done (or undone) for a user. One row per
// (user, lesson); repeat completions update the row instead of adding one.
type LessonProgress struct {
	BaseModel
	UserID      uint       `gorm:"not null;uniqueIndex:idx_user_lesson" json:"userId"`
	LessonID    uint       `gorm:"not null;uniqueIndex:idx_user_lesson" json:"lessonId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}
