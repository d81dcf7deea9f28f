package model

import "time"

type EnrollmentStatus string

const (
	StatusInProgress EnrollmentStatus = "in_progress"
	StatusCompleted  EnrollmentStatus = "completed"
)

// UserSkill is the enrollment record of a user in a skill, unique per
// (user, skill) pair.
type UserSkill struct {
	BaseModel
	UserID      uint             `gorm:"not null;uniqueIndex:idx_user_skill" json:"userId"`
	SkillID     uint             `gorm:"not null;uniqueIndex:idx_user_skill" json:"skillId"`
	Status      EnrollmentStatus `gorm:"size:20;default:'in_progress'" json:"status"`
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	Skill       Skill            `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (UserSkill) TableName() string {
	return "user_skills"
}

type UserRoadmap struct {
	BaseModel
	UserID      uint             `gorm:"not null;uniqueIndex:idx_user_roadmap" json:"userId"`
	RoadmapID   uint             `gorm:"not null;uniqueIndex:idx_user_roadmap" json:"roadmapId"`
	Status      EnrollmentStatus `gorm:"size:20;default:'in_progress'" json:"status"`
	CompletedAt *time.Time       `json:"completedAt,omitempty"`
	Roadmap     Roadmap          `gorm:"foreignKey:RoadmapID" json:"roadmap,omitempty"`
}

func (UserRoadmap) TableName() string {
	return "user_roadmaps"
}
