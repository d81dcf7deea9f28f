package service

import (
	"path/filepath"
	"skillsync_backend/internal/config"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
	"skillsync_backend/pkg/database"
	applogger "skillsync_backend/pkg/logger"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testEnv wires the full service stack against a throwaway sqlite
// database.
type testEnv struct {
	DB          *gorm.DB
	Cfg         *config.Config
	Auth        *AuthService
	Skill       *SkillService
	Progress    *ProgressService
	Roadmap     *RoadmapService
	Achievement *AchievementService
	Dashboard   *DashboardService
	User        *UserService
	Community   *CommunityService

	userRepo       *repository.UserRepository
	badgeRepo      *repository.BadgeRepository
	enrollmentRepo *repository.EnrollmentRepository
	progressRepo   *repository.ProgressRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	applogger.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:     "0123456789abcdef0123456789abcdef",
			ExpireTime: time.Hour,
		},
		Reward: config.RewardConfig{
			SkillXP:   500,
			RoadmapXP: 2000,
			SignupXP:  100,
		},
	}

	userRepo := repository.NewUserRepository(db)
	interestRepo := repository.NewInterestRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	roadmapRepo := repository.NewRoadmapRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	return &testEnv{
		DB:          db,
		Cfg:         cfg,
		Auth:        NewAuthService(userRepo, badgeRepo, cfg),
		Skill:       NewSkillService(skillRepo, enrollmentRepo, progressRepo),
		Progress:    NewProgressService(skillRepo, progressRepo, enrollmentRepo, roadmapRepo, badgeRepo, userRepo, cfg, db),
		Roadmap:     NewRoadmapService(roadmapRepo, enrollmentRepo),
		Achievement: NewAchievementService(userRepo, badgeRepo, notificationRepo, nil),
		Dashboard:   NewDashboardService(userRepo, skillRepo, enrollmentRepo, progressRepo, badgeRepo),
		User:        NewUserService(userRepo, interestRepo),
		Community:   NewCommunityService(commentRepo, notificationRepo, skillRepo),

		userRepo:       userRepo,
		badgeRepo:      badgeRepo,
		enrollmentRepo: enrollmentRepo,
		progressRepo:   progressRepo,
	}
}

func (e *testEnv) createUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: email, Password: "x"}
	require.NoError(t, e.DB.Create(user).Error)
	return user
}

// createSkill builds a skill with one module holding the given lessons.
func (e *testEnv) createSkill(t *testing.T, name string, lessonTitles ...string) *model.Skill {
	t.Helper()
	skill := &model.Skill{Name: name, Category: "Frontend", Difficulty: "Beginner"}
	require.NoError(t, e.DB.Create(skill).Error)

	module := &model.Module{SkillID: skill.ID, Title: name + " Basics", Order: 1}
	require.NoError(t, e.DB.Create(module).Error)

	for i, title := range lessonTitles {
		lesson := &model.Lesson{ModuleID: module.ID, Title: title, Order: i + 1}
		require.NoError(t, e.DB.Create(lesson).Error)
	}

	var loaded model.Skill
	require.NoError(t, e.DB.Preload("Modules.Lessons").First(&loaded, skill.ID).Error)
	*skill = loaded
	return skill
}

func (e *testEnv) createRoadmap(t *testing.T, title string, skills ...*model.Skill) *model.Roadmap {
	t.Helper()
	roadmap := &model.Roadmap{Title: title}
	for i, skill := range skills {
		roadmap.Skills = append(roadmap.Skills, model.RoadmapSkill{SkillID: skill.ID, Order: i + 1})
	}
	require.NoError(t, e.DB.Create(roadmap).Error)
	return roadmap
}

func (e *testEnv) enroll(t *testing.T, userID, skillID uint) {
	t.Helper()
	status, _, err := e.Progress.StartSkill(userID, skillID)
	require.NoError(t, err)
	require.Equal(t, model.StatusInProgress, status)
}

func (e *testEnv) userXP(t *testing.T, userID uint) int {
	t.Helper()
	user, err := e.userRepo.FindByID(userID)
	require.NoError(t, err)
	return user.XP
}

func (e *testEnv) badgeTitles(t *testing.T, userID uint) []string {
	t.Helper()
	badges, err := e.badgeRepo.FindByUser(userID)
	require.NoError(t, err)
	titles := make([]string, len(badges))
	for i, ub := range badges {
		titles[i] = ub.Badge.Title
	}
	return titles
}
