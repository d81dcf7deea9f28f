package service

import (
	"errors"
	"skillsync_backend/internal/config"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
	"skillsync_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

// ProgressService reacts to lesson completions and applies the downstream
// state changes: skill completion, roadmap completion, XP, badges. The
// whole cascade runs inside one transaction; the status transitions are
// conditional updates, so two overlapping calls for the same (user, skill)
// cannot double-award.
type ProgressService struct {
	SkillRepo      *repository.SkillRepository
	ProgressRepo   *repository.ProgressRepository
	EnrollmentRepo *repository.EnrollmentRepository
	RoadmapRepo    *repository.RoadmapRepository
	BadgeRepo      *repository.BadgeRepository
	UserRepo       *repository.UserRepository
	Cfg            *config.Config
	DB             *gorm.DB
}

func NewProgressService(
	skillRepo *repository.SkillRepository,
	progressRepo *repository.ProgressRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	roadmapRepo *repository.RoadmapRepository,
	badgeRepo *repository.BadgeRepository,
	userRepo *repository.UserRepository,
	cfg *config.Config,
	db *gorm.DB,
) *ProgressService {
	return &ProgressService{
		SkillRepo:      skillRepo,
		ProgressRepo:   progressRepo,
		EnrollmentRepo: enrollmentRepo,
		RoadmapRepo:    roadmapRepo,
		BadgeRepo:      badgeRepo,
		UserRepo:       userRepo,
		Cfg:            cfg,
		DB:             db,
	}
}

// CompletionResult is what the client renders into celebratory toasts.
type CompletionResult struct {
	SkillCompleted bool          `json:"skillCompleted"`
	XPAwarded      int           `json:"xpAwarded"`
	BadgesEarned   []model.Badge `json:"badgesEarned"`
}

// CompleteLesson marks the lesson done for the user and cascades:
// full-skill check, enrollment transition, XP, skill badge, then the same
// for every roadmap containing the skill. Re-running is safe: the upsert
// changes nothing and the transitions fire at most once.
func (s *ProgressService) CompleteLesson(userID, skillID, lessonID uint) (*CompletionResult, error) {
	lesson, err := s.SkillRepo.FindLessonByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	skill, err := s.SkillRepo.FindByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}

	lessonIDs := make([]uint, 0)
	lessonInSkill := false
	for _, m := range skill.Modules {
		for _, l := range m.Lessons {
			lessonIDs = append(lessonIDs, l.ID)
		}
		if m.ID == lesson.ModuleID {
			lessonInSkill = true
		}
	}
	if !lessonInSkill {
		return nil, util.ErrLessonNotInSkill
	}

	result := &CompletionResult{BadgesEarned: []model.Badge{}}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		progressRepo := &repository.ProgressRepository{DB: tx}
		enrollmentRepo := &repository.EnrollmentRepository{DB: tx}
		roadmapRepo := &repository.RoadmapRepository{DB: tx}
		badgeRepo := &repository.BadgeRepository{DB: tx}
		userRepo := &repository.UserRepository{DB: tx}

		now := time.Now()

		// 1. Record the lesson itself.
		if err := progressRepo.Upsert(&model.LessonProgress{
			UserID:      userID,
			LessonID:    lessonID,
			Completed:   true,
			CompletedAt: &now,
		}); err != nil {
			return err
		}

		// 2. Recount completion over the whole skill. Recomputed on every
		// call rather than tracked incrementally; a retry after a failed
		// cascade picks up exactly where the counts say it is.
		completedCount, err := progressRepo.CountCompleted(userID, lessonIDs)
		if err != nil {
			return err
		}
		if int(completedCount) != len(lessonIDs) || len(lessonIDs) == 0 {
			return nil
		}

		result.SkillCompleted = true

		// 3. Rewards fire only for the caller that wins the enrollment
		// transition. Users who never enrolled get no rewards.
		transitioned, err := enrollmentRepo.CompleteUserSkill(userID, skillID, now)
		if err != nil {
			return err
		}
		if !transitioned {
			return nil
		}

		if err := userRepo.IncrementXP(userID, s.Cfg.Reward.SkillXP); err != nil {
			return err
		}
		result.XPAwarded += s.Cfg.Reward.SkillXP

		badge, err := badgeRepo.EnsureByTitle(skill.Name, "Completed the "+skill.Name+" skill", "workspace_premium")
		if err != nil {
			return err
		}
		awarded, err := badgeRepo.AwardOnce(userID, badge.ID)
		if err != nil {
			return err
		}
		if awarded {
			result.BadgesEarned = append(result.BadgesEarned, *badge)
		}

		// 4. A roadmap can only newly complete when one of its skills just
		// did, so the sweep runs on the transition.
		roadmaps, err := roadmapRepo.FindContainingSkill(skillID)
		if err != nil {
			return err
		}
		for _, roadmap := range roadmaps {
			skillIDs := make([]uint, len(roadmap.Skills))
			for i, rs := range roadmap.Skills {
				skillIDs[i] = rs.SkillID
			}
			completedSkills, err := enrollmentRepo.CountCompletedSkills(userID, skillIDs)
			if err != nil {
				return err
			}
			if int(completedSkills) != len(skillIDs) || len(skillIDs) == 0 {
				continue
			}

			title := roadmap.Title + " Master"
			roadmapBadge, err := badgeRepo.EnsureByTitle(title, "Completed the "+roadmap.Title+" roadmap", "military_tech")
			if err != nil {
				return err
			}
			// The unique pair doubles as the exactly-once guard for the
			// roadmap bonus.
			newlyAwarded, err := badgeRepo.AwardOnce(userID, roadmapBadge.ID)
			if err != nil {
				return err
			}
			if newlyAwarded {
				if err := userRepo.IncrementXP(userID, s.Cfg.Reward.RoadmapXP); err != nil {
					return err
				}
				result.XPAwarded += s.Cfg.Reward.RoadmapXP
				result.BadgesEarned = append(result.BadgesEarned, *roadmapBadge)
			}

			// No row is fabricated for users who completed every skill
			// without ever starting the roadmap; they keep XP and badge
			// only.
			if _, err := enrollmentRepo.CompleteUserRoadmap(userID, roadmap.ID, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// StartSkill enrolls the user; re-starting reports the existing status
// instead of erroring.
func (s *ProgressService) StartSkill(userID, skillID uint) (model.EnrollmentStatus, bool, error) {
	if _, err := s.SkillRepo.FindByID(skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, util.ErrSkillNotFound
		}
		return "", false, err
	}

	existing, err := s.EnrollmentRepo.FindUserSkill(userID, skillID)
	if err == nil {
		return existing.Status, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, err
	}

	us := &model.UserSkill{
		UserID:    userID,
		SkillID:   skillID,
		Status:    model.StatusInProgress,
		StartedAt: time.Now(),
	}
	if err := s.EnrollmentRepo.CreateUserSkill(us); err != nil {
		return "", false, err
	}
	return us.Status, false, nil
}

// LeaveSkill drops the enrollment. LessonProgress rows stay, so
// re-enrolling resumes with prior progress intact.
func (s *ProgressService) LeaveSkill(userID, skillID uint) error {
	if _, err := s.EnrollmentRepo.FindUserSkill(userID, skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrNotEnrolled
		}
		return err
	}
	return s.EnrollmentRepo.DeleteUserSkill(userID, skillID)
}

// MarkLesson is the raw progress toggle; it also un-completes. No cascade
// runs here.
func (s *ProgressService) MarkLesson(userID, lessonID uint, completed bool) (*model.LessonProgress, error) {
	if _, err := s.SkillRepo.FindLessonByID(lessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	progress := &model.LessonProgress{
		UserID:    userID,
		LessonID:  lessonID,
		Completed: completed,
	}
	if completed {
		now := time.Now()
		progress.CompletedAt = &now
	}
	if err := s.ProgressRepo.Upsert(progress); err != nil {
		return nil, err
	}
	return progress, nil
}
