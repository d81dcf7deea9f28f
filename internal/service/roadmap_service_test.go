package service

import (
	"skillsync_backend/internal/model"
	"skillsync_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartRoadmapEnrollsFirstSkill(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")
	skillA := env.createSkill(t, "HTML & CSS Fundamentals", "A1")
	skillB := env.createSkill(t, "JavaScript Core Concepts", "B1")
	roadmap := env.createRoadmap(t, "Frontend Specialist", skillA, skillB)

	require.NoError(t, env.Roadmap.StartRoadmap(user.ID, roadmap.ID))

	ur, err := env.enrollmentRepo.FindUserRoadmap(user.ID, roadmap.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, ur.Status)

	us, err := env.enrollmentRepo.FindUserSkill(user.ID, skillA.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, us.Status)

	_, err = env.enrollmentRepo.FindUserSkill(user.ID, skillB.ID)
	assert.Error(t, err)

	// Restarting is a no-op, not an error.
	require.NoError(t, env.Roadmap.StartRoadmap(user.ID, roadmap.ID))
}

func TestStartRoadmapNotFound(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")

	err := env.Roadmap.StartRoadmap(user.ID, 9999)
	assert.ErrorIs(t, err, util.ErrRoadmapNotFound)
}

func TestRoadmapDetailLockChain(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")
	skillA := env.createSkill(t, "HTML & CSS Fundamentals", "A1")
	skillB := env.createSkill(t, "JavaScript Core Concepts", "B1")
	skillC := env.createSkill(t, "React.js Framework", "C1")
	roadmap := env.createRoadmap(t, "Frontend Specialist", skillA, skillB, skillC)

	// Before starting: everything locked.
	detail, err := env.Roadmap.GetRoadmapByID(roadmap.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, detail.Status)
	require.Len(t, detail.Skills, 3)
	for _, sv := range detail.Skills {
		assert.True(t, sv.Locked)
	}

	require.NoError(t, env.Roadmap.StartRoadmap(user.ID, roadmap.ID))

	// Started: first skill open, the rest gated on their predecessor.
	detail, err = env.Roadmap.GetRoadmapByID(roadmap.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, detail.Skills[0].Locked)
	assert.True(t, detail.Skills[1].Locked)
	assert.True(t, detail.Skills[2].Locked)
	assert.Equal(t, string(model.StatusInProgress), detail.Skills[0].Status)

	// Completing skill A unlocks B but not C.
	_, err = env.Progress.CompleteLesson(user.ID, skillA.ID, skillA.Modules[0].Lessons[0].ID)
	require.NoError(t, err)

	detail, err = env.Roadmap.GetRoadmapByID(roadmap.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCompleted), detail.Skills[0].Status)
	assert.False(t, detail.Skills[1].Locked)
	assert.True(t, detail.Skills[2].Locked)
}

func TestRoadmapDetailAnonymous(t *testing.T) {
	env := newTestEnv(t)
	skill := env.createSkill(t, "HTML & CSS Fundamentals", "A1")
	roadmap := env.createRoadmap(t, "Frontend Specialist", skill)

	detail, err := env.Roadmap.GetRoadmapByID(roadmap.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusNotStarted, detail.Status)
	assert.True(t, detail.Skills[0].Locked)
}

func TestGetAllRoadmapsPaginationAndStatus(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")
	skill := env.createSkill(t, "HTML & CSS Fundamentals", "A1")
	first := env.createRoadmap(t, "Frontend Specialist", skill)
	env.createRoadmap(t, "DevOps Engineer")
	env.createRoadmap(t, "Data Scientist")

	require.NoError(t, env.Roadmap.StartRoadmap(user.ID, first.ID))

	summaries, total, err := env.Roadmap.GetAllRoadmaps(user.ID, RoadmapQuery{Page: 1, Limit: 2, Sort: "name_asc"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, summaries, 2)
	assert.Equal(t, "Data Scientist", summaries[0].Title)
	assert.Equal(t, "DevOps Engineer", summaries[1].Title)

	summaries, total, err = env.Roadmap.GetAllRoadmaps(user.ID, RoadmapQuery{Page: 1, Limit: 10, Search: "Frontend"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, summaries, 1)
	assert.Equal(t, string(model.StatusInProgress), summaries[0].Status)
}
