package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrLessonNotInSkill  = errors.New("lesson does not belong to skill")
	ErrRoadmapNotFound   = errors.New("roadmap not found")
	ErrNotEnrolled       = errors.New("not enrolled in skill")
	ErrPermissionDenied  = errors.New("permission denied")
)
