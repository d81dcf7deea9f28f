package service

import (
	"errors"
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/repository"
	"skillsync_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type RoadmapService struct {
	RoadmapRepo    *repository.RoadmapRepository
	EnrollmentRepo *repository.EnrollmentRepository
}

func NewRoadmapService(
	roadmapRepo *repository.RoadmapRepository,
	enrollmentRepo *repository.EnrollmentRepository,
) *RoadmapService {
	return &RoadmapService{
		RoadmapRepo:    roadmapRepo,
		EnrollmentRepo: enrollmentRepo,
	}
}

const StatusNotStarted = "not_started"

type RoadmapSummary struct {
	model.Roadmap
	Status string `json:"status"`
}

type RoadmapSkillView struct {
	model.RoadmapSkill
	Status string `json:"status"`
	Locked bool   `json:"locked"`
}

type RoadmapDetail struct {
	model.Roadmap
	Skills []RoadmapSkillView `json:"skills"`
	Status string             `json:"status"`
}

type RoadmapQuery struct {
	Page   int
	Limit  int
	Search string
	Sort   string
}

func (s *RoadmapService) GetAllRoadmaps(userID uint, q RoadmapQuery) ([]RoadmapSummary, int64, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 9
	}

	roadmaps, total, err := s.RoadmapRepo.FindPage(q.Search, q.Sort, q.Page, q.Limit)
	if err != nil {
		return nil, 0, err
	}

	statusByRoadmap := map[uint]model.EnrollmentStatus{}
	if userID != 0 {
		enrollments, err := s.EnrollmentRepo.FindUserRoadmaps(userID)
		if err != nil {
			return nil, 0, err
		}
		for _, ur := range enrollments {
			statusByRoadmap[ur.RoadmapID] = ur.Status
		}
	}

	summaries := make([]RoadmapSummary, len(roadmaps))
	for i, roadmap := range roadmaps {
		status := StatusNotStarted
		if st, ok := statusByRoadmap[roadmap.ID]; ok {
			status = string(st)
		}
		summaries[i] = RoadmapSummary{Roadmap: roadmap, Status: status}
	}
	return summaries, total, nil
}

// GetRoadmapByID decorates the ordered skill links with the caller's
// status and the unlock chain: everything locked until the roadmap is
// started, then each skill unlocks when its predecessor is completed.
func (s *RoadmapService) GetRoadmapByID(roadmapID, userID uint) (*RoadmapDetail, error) {
	roadmap, err := s.RoadmapRepo.FindByID(roadmapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRoadmapNotFound
		}
		return nil, err
	}

	roadmapStatus := StatusNotStarted
	statusBySkill := map[uint]model.EnrollmentStatus{}
	if userID != 0 {
		if _, err := s.EnrollmentRepo.FindUserRoadmap(userID, roadmapID); err == nil {
			roadmapStatus = "started"
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		enrollments, err := s.EnrollmentRepo.FindUserSkills(userID)
		if err != nil {
			return nil, err
		}
		for _, us := range enrollments {
			statusBySkill[us.SkillID] = us.Status
		}
	}

	skills := make([]RoadmapSkillView, len(roadmap.Skills))
	for i, rs := range roadmap.Skills {
		status := StatusNotStarted
		if st, ok := statusBySkill[rs.SkillID]; ok {
			status = string(st)
		}
		skills[i] = RoadmapSkillView{RoadmapSkill: rs, Status: status}
	}

	if roadmapStatus == StatusNotStarted {
		for i := range skills {
			skills[i].Locked = true
		}
	} else {
		for i := 1; i < len(skills); i++ {
			if skills[i-1].Status != string(model.StatusCompleted) {
				skills[i].Locked = true
			}
		}
	}

	return &RoadmapDetail{
		Roadmap: *roadmap,
		Skills:  skills,
		Status:  roadmapStatus,
	}, nil
}

// StartRoadmap creates the enrollment if absent and auto-enrolls the user
// in the roadmap's first ordered skill, establishing the unlock chain.
func (s *RoadmapService) StartRoadmap(userID, roadmapID uint) error {
	roadmap, err := s.RoadmapRepo.FindByID(roadmapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrRoadmapNotFound
		}
		return err
	}

	if _, err := s.EnrollmentRepo.FindUserRoadmap(userID, roadmapID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.EnrollmentRepo.CreateUserRoadmap(&model.UserRoadmap{
			UserID:    userID,
			RoadmapID: roadmapID,
			Status:    model.StatusInProgress,
		}); err != nil {
			return err
		}
	}

	if len(roadmap.Skills) == 0 {
		return nil
	}

	firstSkillID := roadmap.Skills[0].SkillID
	if _, err := s.EnrollmentRepo.FindUserSkill(userID, firstSkillID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := s.EnrollmentRepo.CreateUserSkill(&model.UserSkill{
			UserID:    userID,
			SkillID:   firstSkillID,
			Status:    model.StatusInProgress,
			StartedAt: time.Now(),
		}); err != nil {
			return err
		}
	}

	return nil
}

func (s *RoadmapService) CreateRoadmap(roadmap *model.Roadmap) error {
	return s.RoadmapRepo.Create(roadmap)
}
