package service

import (
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllSkillsAnonymousAndEnrolled(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")
	skillA := env.createSkill(t, "HTML & CSS Fundamentals", "A1")
	env.createSkill(t, "JavaScript Core Concepts", "B1")
	env.enroll(t, user.ID, skillA.ID)

	anonymous, err := env.Skill.GetAllSkills(0)
	require.NoError(t, err)
	require.Len(t, anonymous, 2)
	for _, summary := range anonymous {
		assert.Equal(t, StatusNotEnrolled, summary.UserStatus)
	}

	summaries, err := env.Skill.GetAllSkills(user.ID)
	require.NoError(t, err)
	byName := map[string]string{}
	for _, summary := range summaries {
		byName[summary.Name] = summary.UserStatus
	}
	assert.Equal(t, "in_progress", byName["HTML & CSS Fundamentals"])
	assert.Equal(t, StatusNotEnrolled, byName["JavaScript Core Concepts"])
}

func TestGetSkillByIDProgressPercentage(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")
	skill := env.createSkill(t, "JavaScript Core Concepts", "Variables", "Functions", "Promises")
	env.enroll(t, user.ID, skill.ID)

	_, err := env.Progress.CompleteLesson(user.ID, skill.ID, skill.Modules[0].Lessons[0].ID)
	require.NoError(t, err)

	detail, err := env.Skill.GetSkillByID(skill.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "in_progress", detail.UserStatus)
	assert.Equal(t, 33, detail.ProgressPercentage)
	require.Len(t, detail.Modules, 1)
	require.Len(t, detail.Modules[0].Lessons, 3)
	assert.True(t, detail.Modules[0].Lessons[0].Completed)
	assert.False(t, detail.Modules[0].Lessons[1].Completed)
}

func TestGetSkillByIDAnonymous(t *testing.T) {
	env := newTestEnv(t)
	skill := env.createSkill(t, "HTML & CSS Fundamentals", "A1")

	detail, err := env.Skill.GetSkillByID(skill.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusNotEnrolled, detail.UserStatus)
	assert.Zero(t, detail.ProgressPercentage)

	_, err = env.Skill.GetSkillByID(9999, 0)
	assert.ErrorIs(t, err, util.ErrSkillNotFound)
}

func TestCreateModuleAndLessonValidation(t *testing.T) {
	env := newTestEnv(t)
	skill := env.createSkill(t, "HTML & CSS Fundamentals", "A1")

	err := env.Skill.CreateModule(&model.Module{SkillID: 9999, Title: "Orphan"})
	assert.ErrorIs(t, err, util.ErrSkillNotFound)

	module := &model.Module{SkillID: skill.ID, Title: "Layout", Order: 2}
	require.NoError(t, env.Skill.CreateModule(module))
	assert.NotZero(t, module.ID)

	err = env.Skill.CreateLesson(&model.Lesson{ModuleID: 9999, Title: "Orphan"})
	assert.ErrorIs(t, err, util.ErrLessonNotFound)

	lesson := &model.Lesson{ModuleID: module.ID, Title: "Flexbox", Order: 1}
	require.NoError(t, env.Skill.CreateLesson(lesson))
	assert.NotZero(t, lesson.ID)
}
