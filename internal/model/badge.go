package model

import "time"

// Badge catalog entries are created lazily on first award and looked up
// by title, so title is the de-facto key.
type Badge struct {
	BaseModel
	Title       string `gorm:"size:150;unique;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`
	Icon        string `gorm:"size:100" json:"icon"`
}

func (Badge) TableName() string {
	return "badges"
}

type UserBadge struct {
	BaseModel
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"userId"`
	BadgeID   uint      `gorm:"not null;uniqueIndex:idx_user_badge" json:"badgeId"`
	AwardedAt time.Time `json:"awardedAt"`
	Badge     Badge     `gorm:"foreignKey:BadgeID" json:"badge,omitempty"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
