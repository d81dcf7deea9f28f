package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name       string     `gorm:"size:100;not null" json:"name"`
	Username   string     `gorm:"size:100" json:"username"`
	Email      string     `gorm:"size:100;unique;not null" json:"email"`
	Password   string     `gorm:"size:100;not null" json:"-"`
	Bio        string     `gorm:"size:500" json:"bio"`
	Avatar     string     `gorm:"size:255" json:"avatar"`
	Role       UserRole   `gorm:"size:20;default:'student'" json:"role"`
	SkillLevel string     `gorm:"size:50;default:'Beginner'" json:"skillLevel"`
	XP         int        `gorm:"default:0" json:"xp"` // cumulative, only ever incremented
	LastLogin  time.Time  `json:"lastLogin"`
	Interests  []Interest `gorm:"many2many:user_interests" json:"interests,omitempty"`
}

func (User) TableName() string {
	return "users"
}

type Interest struct {
	BaseModel
	Name string `gorm:"size:100;unique;not null" json:"name"`
}

func (Interest) TableName() string {
	return "interests"
}
