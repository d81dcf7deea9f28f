package service

import (
	"math"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
)

type DashboardService struct {
	UserRepo       *repository.UserRepository
	SkillRepo      *repository.SkillRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
	BadgeRepo      *repository.BadgeRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	skillRepo *repository.SkillRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
	badgeRepo *repository.BadgeRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		SkillRepo:      skillRepo,
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
		BadgeRepo:      badgeRepo,
	}
}

type DashboardUser struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	XP               int      `json:"xp"`
	SkillLevel       string   `json:"skillLevel"`
	Interests        []string `json:"interests"`
	SkillsMastered   int      `json:"skillsMastered"`
	LessonsCompleted int64    `json:"lessonsCompleted"`
}

type OngoingCourse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Image    string `json:"image"`
	Category string `json:"category"`
	Progress int    `json:"progress"`
}

type RoadmapProgress struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
}

type EarnedBadge struct {
	Title       string `json:"title"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	AwardedAt   string `json:"awardedAt"`
}

type Dashboard struct {
	User               DashboardUser     `json:"user"`
	OngoingCourses     []OngoingCourse   `json:"ongoingCourses"`
	IncompleteRoadmaps []RoadmapProgress `json:"incompleteRoadmaps"`
	RecommendedCourses []model.Skill     `json:"recommendedCourses"`
	Badges             []EarnedBadge     `json:"badges"`
}

const recommendedLimit = 3

// GetSummary assembles the dashboard payload: ongoing courses with
// percentages, in-progress roadmap progress, earned badges and up to
// three recommendations (interest-category matches first, backfilled with
// anything the user is not enrolled in).
func (s *DashboardService) GetSummary(userID uint) (*Dashboard, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.EnrollmentRepo.FindUserSkills(userID)
	if err != nil {
		return nil, err
	}

	enrolledIDs := make([]uint, len(enrollments))
	completedIDs := map[uint]bool{}
	skillsMastered := 0
	for i, us := range enrollments {
		enrolledIDs[i] = us.SkillID
		if us.Status == model.StatusCompleted {
			completedIDs[us.SkillID] = true
			skillsMastered++
		}
	}

	ongoing := make([]OngoingCourse, 0)
	for _, us := range enrollments {
		if us.Status != model.StatusInProgress {
			continue
		}
		skill, err := s.SkillRepo.FindByID(us.SkillID)
		if err != nil {
			return nil, err
		}
		lessonIDs := make([]uint, 0)
		for _, m := range skill.Modules {
			for _, l := range m.Lessons {
				lessonIDs = append(lessonIDs, l.ID)
			}
		}
		completed, err := s.ProgressRepo.CountCompleted(userID, lessonIDs)
		if err != nil {
			return nil, err
		}
		progress := 0
		if len(lessonIDs) > 0 {
			progress = int(math.Round(float64(completed) / float64(len(lessonIDs)) * 100))
		}
		ongoing = append(ongoing, OngoingCourse{
			ID:       skill.ID,
			Name:     skill.Name,
			Image:    skill.Image,
			Category: skill.Category,
			Progress: progress,
		})
	}

	userRoadmaps, err := s.EnrollmentRepo.FindInProgressRoadmaps(userID)
	if err != nil {
		return nil, err
	}
	incomplete := make([]RoadmapProgress, 0, len(userRoadmaps))
	for _, ur := range userRoadmaps {
		total := len(ur.Roadmap.Skills)
		completed := 0
		for _, rs := range ur.Roadmap.Skills {
			if completedIDs[rs.SkillID] {
				completed++
			}
		}
		progress := 0
		if total > 0 {
			progress = int(math.Round(float64(completed) / float64(total) * 100))
		}
		incomplete = append(incomplete, RoadmapProgress{
			ID:          ur.Roadmap.ID,
			Name:        ur.Roadmap.Title,
			Description: ur.Roadmap.Description,
			Progress:    progress,
		})
	}

	userBadges, err := s.BadgeRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	badges := make([]EarnedBadge, len(userBadges))
	for i, ub := range userBadges {
		badges[i] = EarnedBadge{
			Title:       ub.Badge.Title,
			Icon:        ub.Badge.Icon,
			Description: ub.Badge.Description,
			AwardedAt:   ub.AwardedAt.Format("2006-01-02"),
		}
	}

	interestNames := make([]string, len(user.Interests))
	for i, interest := range user.Interests {
		interestNames[i] = interest.Name
	}

	recommended := make([]model.Skill, 0, recommendedLimit)
	if len(interestNames) > 0 {
		recommended, err = s.SkillRepo.FindByCategories(interestNames, enrolledIDs, recommendedLimit)
		if err != nil {
			return nil, err
		}
	}
	if len(recommended) < recommendedLimit {
		exclude := append([]uint{}, enrolledIDs...)
		for _, skill := range recommended {
			exclude = append(exclude, skill.ID)
		}
		more, err := s.SkillRepo.FindExcluding(exclude, recommendedLimit-len(recommended))
		if err != nil {
			return nil, err
		}
		recommended = append(recommended, more...)
	}

	lessonsCompleted, err := s.ProgressRepo.CountAllCompleted(userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		User: DashboardUser{
			Name:             user.Name,
			Email:            user.Email,
			XP:               user.XP,
			SkillLevel:       user.SkillLevel,
			Interests:        interestNames,
			SkillsMastered:   skillsMastered,
			LessonsCompleted: lessonsCompleted,
		},
		OngoingCourses:     ongoing,
		IncompleteRoadmaps: incomplete,
		RecommendedCourses: recommended,
		Badges:             badges,
	}, nil
}
