package model

type Comment struct {
	BaseModel
	UserID  uint   `gorm:"index;not null" json:"userId"`
	SkillID uint   `gorm:"index;not null" json:"skillId"`
	Content string `gorm:"type:text;not null" json:"content"`
	User    User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}

type Notification struct {
	UUIDBase
	UserID  uint   `gorm:"index;not null" json:"userId"`
	Type    string `gorm:"size:50" json:"type"`
	Message string `gorm:"size:500;not null" json:"message"`
	Read    bool   `gorm:"default:false" json:"read"`
}

func (Notification) TableName() string {
	return "notifications"
}
