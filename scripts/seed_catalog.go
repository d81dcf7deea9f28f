// Loads the starter catalog (skills, modules, lessons, roadmaps) into an
// empty database. Intended for first deployment or local development.
//
// Usage: go run scripts/seed_catalog.go
package main

import (
	"log"
	"skillsync_backend/internal/config"
	"skillsync_backend/internal/model"
	"skillsync_backend/pkg/database"
	"skillsync_backend/pkg/logger"

	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var count int64
	db.Model(&model.Skill{}).Count(&count)
	if count > 0 {
		log.Println("Catalog already seeded, nothing to do")
		return
	}

	if err := seedCatalog(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding finished")
}

func seedCatalog(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		skills := []*model.Skill{
			{Name: "HTML & CSS Fundamentals", Description: "Learn the building blocks of the web. Structure content with HTML and style it beautifully with CSS.", Category: "Frontend", Difficulty: "Beginner"},
			{Name: "JavaScript Core Concepts", Description: "Dive into the language of the web. Understand variables, functions, DOM manipulation, and asynchronous operations.", Category: "Frontend", Difficulty: "Intermediate"},
			{Name: "React.js Framework", Description: "Build modern, dynamic user interfaces with the most popular frontend library. Master components, state, and hooks.", Category: "Frontend", Difficulty: "Advanced"},
			{Name: "Version Control with Git", Description: "Learn to track changes in your code, collaborate with others, and manage projects effectively using Git and GitHub.", Category: "Tools", Difficulty: "Beginner"},
			{Name: "Advanced React Patterns", Description: "Master component composition, hooks, and state management for scalable applications.", Category: "Frontend", Difficulty: "Advanced"},
			{Name: "Docker for Developers", Description: "Learn to containerize your applications for consistent development and deployment.", Category: "DevOps", Difficulty: "Intermediate"},
			{Name: "Data Science with Python", Description: "Explore data analysis and machine learning using Pandas, NumPy, and Scikit-learn.", Category: "Data Science", Difficulty: "Intermediate"},
			{Name: "UI/UX Design Fundamentals", Description: "Understand user-centered design principles, wireframing, and prototyping.", Category: "Design", Difficulty: "Beginner"},
			{Name: "AWS Cloud Practitioner", Description: "Grasp the fundamentals of the AWS cloud platform and its core services.", Category: "Cloud Computing", Difficulty: "Beginner"},
			{Name: "Backend APIs with Node.js", Description: "Build robust and scalable RESTful APIs using the Express.js framework.", Category: "Backend", Difficulty: "Intermediate"},
		}
		for _, skill := range skills {
			if err := tx.Create(skill).Error; err != nil {
				return err
			}
		}

		htmlCSS, js, react, git := skills[0], skills[1], skills[2], skills[3]
		advReact, docker, dataSci, uiux := skills[4], skills[5], skills[6], skills[7]
		aws, nodeBackend := skills[8], skills[9]

		fundamentals := &model.Module{SkillID: js.ID, Title: "Fundamentals", Order: 1}
		async := &model.Module{SkillID: js.ID, Title: "Asynchronous JavaScript", Order: 2}
		for _, m := range []*model.Module{fundamentals, async} {
			if err := tx.Create(m).Error; err != nil {
				return err
			}
		}

		lessons := []*model.Lesson{
			{ModuleID: fundamentals.ID, Title: "Variables and Data Types", Content: "Introduction to let, const, var, and primitive types.", Order: 1},
			{ModuleID: fundamentals.ID, Title: "Functions and Scope", Content: "Understanding function declarations, expressions, and arrow functions.", Order: 2},
			{ModuleID: async.ID, Title: "Introduction to Promises", Content: "Handling async operations with Promises.", Order: 1},
			{ModuleID: async.ID, Title: "Async/Await", Content: "Syntactic sugar for Promises.", Order: 2},
		}
		for _, lesson := range lessons {
			if err := tx.Create(lesson).Error; err != nil {
				return err
			}
		}

		roadmaps := []*model.Roadmap{
			{
				Title:         "Full-Stack Web Developer",
				Description:   "Master the entire web development process, from frontend interfaces to backend servers and databases. This path will equip you with the skills to build and deploy complete web applications.",
				EstimatedTime: "6 months",
				Skills: []model.RoadmapSkill{
					{SkillID: htmlCSS.ID, Order: 1},
					{SkillID: js.ID, Order: 2},
					{SkillID: git.ID, Order: 3},
					{SkillID: react.ID, Order: 4},
					{SkillID: nodeBackend.ID, Order: 5},
				},
			},
			{
				Title:         "Frontend Specialist",
				Description:   "Become an expert in user interfaces, mastering React, CSS, and modern JavaScript.",
				EstimatedTime: "4 months",
				Skills: []model.RoadmapSkill{
					{SkillID: htmlCSS.ID, Order: 1},
					{SkillID: js.ID, Order: 2},
					{SkillID: react.ID, Order: 3},
					{SkillID: advReact.ID, Order: 4},
					{SkillID: uiux.ID, Order: 5},
				},
			},
			{
				Title:         "DevOps Engineer",
				Description:   "Bridge the gap between development and operations. Master Docker, AWS, and CI/CD pipelines.",
				EstimatedTime: "5 months",
				Skills: []model.RoadmapSkill{
					{SkillID: git.ID, Order: 1},
					{SkillID: docker.ID, Order: 2},
					{SkillID: aws.ID, Order: 3},
				},
			},
			{
				Title:         "Data Scientist",
				Description:   "Analyze complex data sets to drive decision-making. Master Python, Pandas, and Machine Learning.",
				EstimatedTime: "8 months",
				Skills: []model.RoadmapSkill{
					{SkillID: dataSci.ID, Order: 1},
				},
			},
		}
		for _, roadmap := range roadmaps {
			if err := tx.Create(roadmap).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
