package model

// Skill is a course-sized unit of the catalog. Its lessons are grouped
// into ordered modules; a user has completed the skill once every lesson
// of every module carries a completed LessonProgress row.
type Skill struct {
	BaseModel
	Name        string   `gorm:"size:150;not null" json:"name"`
	Description string   `gorm:"type:text" json:"description"`
	Category    string   `gorm:"size:100;index" json:"category"`
	Difficulty  string   `gorm:"size:50" json:"difficulty"`
	Image       string   `gorm:"size:255" json:"image"`
	Modules     []Module `gorm:"foreignKey:SkillID" json:"modules,omitempty"`
}

func (Skill) TableName() string {
	return "skills"
}

type Module struct {
	BaseModel
	SkillID uint     `gorm:"index;not null" json:"skillId"`
	Title   string   `gorm:"size:200;not null" json:"title"`
	Order   int      `gorm:"column:sort_order;default:0" json:"order"`
	Lessons []Lesson `gorm:"foreignKey:ModuleID" json:"lessons,omitempty"`
}

func (Module) TableName() string {
	return "modules"
}

type Lesson struct {
	BaseModel
	ModuleID uint   `gorm:"index;not null" json:"moduleId"`
	Title    string `gorm:"size:200;not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	Duration int    `gorm:"default:0" json:"duration"` // minutes
	Order    int    `gorm:"column:sort_order;default:0" json:"order"`
}

func (Lesson) TableName() string {
	return "lessons"
}
