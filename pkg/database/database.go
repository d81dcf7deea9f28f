package database

import (
	"fmt"
	"log"
	"skillsync_backend/internal/config"
	"skillsync_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	seedDefaults(db)

	return db, nil
}

// Migrate is separate from InitDB so tests can run it against their own DB.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Interest{},
		&model.Skill{},
		&model.Module{},
		&model.Lesson{},
		&model.Roadmap{},
		&model.RoadmapSkill{},
		&model.UserSkill{},
		&model.UserRoadmap{},
		&model.LessonProgress{},
		&model.Badge{},
		&model.UserBadge{},
		&model.Comment{},
		&model.Notification{},
	)
}

// seedDefaults inserts the interest catalog when the table is empty.
func seedDefaults(db *gorm.DB) {
	var count int64
	db.Model(&model.Interest{}).Count(&count)
	if count == 0 {
		defaultInterests := []string{
			"Frontend", "Backend", "Data Science", "DevOps",
			"Design", "Cloud Computing", "Tools", "Mobile Development",
		}
		for _, name := range defaultInterests {
			db.Create(&model.Interest{Name: name})
		}
	}
}
