package service

import (
	"errors"
	"math"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
	"skillsync_backend/internal/util"

	"gorm.io/gorm"
)

type SkillService struct {
	SkillRepo      *repository.SkillRepository
	EnrollmentRepo *repository.EnrollmentRepository
	ProgressRepo   *repository.ProgressRepository
}

func NewSkillService(
	skillRepo *repository.SkillRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	progressRepo *repository.ProgressRepository,
) *SkillService {
	return &SkillService{
		SkillRepo:      skillRepo,
		EnrollmentRepo: enrollmentRepo,
		ProgressRepo:   progressRepo,
	}
}

const StatusNotEnrolled = "not_enrolled"

// SkillSummary is a catalog entry decorated with the caller's enrollment
// status.
type SkillSummary struct {
	model.Skill
	UserStatus string `json:"userStatus"`
}

type LessonView struct {
	model.Lesson
	Completed bool `json:"completed"`
	Locked    bool `json:"locked"`
}

type ModuleView struct {
	model.Module
	Lessons []LessonView `json:"lessons"`
}

type SkillDetail struct {
	model.Skill
	Modules            []ModuleView `json:"modules"`
	UserStatus         string       `json:"userStatus"`
	ProgressPercentage int          `json:"progressPercentage"`
}

// GetAllSkills lists the catalog; userID 0 means anonymous and every entry
// reads not_enrolled.
func (s *SkillService) GetAllSkills(userID uint) ([]SkillSummary, error) {
	skills, err := s.SkillRepo.FindAll()
	if err != nil {
		return nil, err
	}

	statusBySkill := map[uint]model.EnrollmentStatus{}
	if userID != 0 {
		enrollments, err := s.EnrollmentRepo.FindUserSkills(userID)
		if err != nil {
			return nil, err
		}
		for _, us := range enrollments {
			statusBySkill[us.SkillID] = us.Status
		}
	}

	summaries := make([]SkillSummary, len(skills))
	for i, skill := range skills {
		status := StatusNotEnrolled
		if st, ok := statusBySkill[skill.ID]; ok {
			status = string(st)
		}
		summaries[i] = SkillSummary{Skill: skill, UserStatus: status}
	}
	return summaries, nil
}

// GetSkillByID returns the skill detail with per-lesson completion flags
// and the overall progress percentage for the caller.
func (s *SkillService) GetSkillByID(skillID, userID uint) (*SkillDetail, error) {
	skill, err := s.SkillRepo.FindByID(skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSkillNotFound
		}
		return nil, err
	}

	status := StatusNotEnrolled
	completedLessons := map[uint]bool{}
	if userID != 0 {
		if us, err := s.EnrollmentRepo.FindUserSkill(userID, skillID); err == nil {
			status = string(us.Status)

			lessonIDs := make([]uint, 0)
			for _, m := range skill.Modules {
				for _, l := range m.Lessons {
					lessonIDs = append(lessonIDs, l.ID)
				}
			}
			rows, err := s.ProgressRepo.FindByUserAndLessons(userID, lessonIDs)
			if err != nil {
				return nil, err
			}
			for _, row := range rows {
				if row.Completed {
					completedLessons[row.LessonID] = true
				}
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	totalLessons := 0
	modules := make([]ModuleView, len(skill.Modules))
	for i, m := range skill.Modules {
		lessons := make([]LessonView, len(m.Lessons))
		for j, l := range m.Lessons {
			lessons[j] = LessonView{
				Lesson:    l,
				Completed: completedLessons[l.ID],
			}
		}
		totalLessons += len(m.Lessons)
		modules[i] = ModuleView{Module: m, Lessons: lessons}
	}

	percentage := 0
	if totalLessons > 0 {
		percentage = int(math.Round(float64(len(completedLessons)) / float64(totalLessons) * 100))
	}

	return &SkillDetail{
		Skill:              *skill,
		Modules:            modules,
		UserStatus:         status,
		ProgressPercentage: percentage,
	}, nil
}

func (s *SkillService) CreateSkill(skill *model.Skill) error {
	return s.SkillRepo.Create(skill)
}

func (s *SkillService) UpdateSkill(skill *model.Skill) error {
	return s.SkillRepo.Update(skill)
}

func (s *SkillService) DeleteSkill(id uint) error {
	return s.SkillRepo.Delete(id)
}

func (s *SkillService) CreateModule(module *model.Module) error {
	if _, err := s.SkillRepo.FindByID(module.SkillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSkillNotFound
		}
		return err
	}
	return s.SkillRepo.CreateModule(module)
}

func (s *SkillService) CreateLesson(lesson *model.Lesson) error {
	if _, err := s.SkillRepo.FindModuleByID(lesson.ModuleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrLessonNotFound
		}
		return err
	}
	return s.SkillRepo.CreateLesson(lesson)
}
