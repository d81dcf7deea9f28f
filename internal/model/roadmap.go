package model

type Roadmap struct {
	BaseModel
	Title         string         `gorm:"size:150;not null" json:"title"`
	Description   string         `gorm:"type:text" json:"description"`
	Image         string         `gorm:"size:255" json:"image"`
	EstimatedTime string         `gorm:"size:50" json:"estimatedTime"`
	Skills        []RoadmapSkill `gorm:"foreignKey:RoadmapID" json:"skills,omitempty"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// RoadmapSkill links a skill into a roadmap at a position. The position
// drives the unlock chain: skill N+1 stays locked until skill N is
// completed by the user.
type RoadmapSkill struct {
	BaseModel
	RoadmapID uint  `gorm:"index;not null;uniqueIndex:idx_roadmap_skill" json:"roadmapId"`
	SkillID   uint  `gorm:"not null;uniqueIndex:idx_roadmap_skill" json:"skillId"`
	Order     int   `gorm:"column:sort_order;default:0" json:"order"`
	Skill     Skill `gorm:"foreignKey:SkillID" json:"skill,omitempty"`
}

func (RoadmapSkill) TableName() string {
	return "roadmap_skills"
}
