package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardSummary(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")
	skillA := env.createSkill(t, "HTML & CSS Fundamentals", "A1")
	skillB := env.createSkill(t, "JavaScript Core Concepts", "B1", "B2")
	env.createSkill(t, "Docker for Developers", "C1")
	roadmap := env.createRoadmap(t, "Frontend Specialist", skillA, skillB)

	require.NoError(t, env.Roadmap.StartRoadmap(user.ID, roadmap.ID))
	env.enroll(t, user.ID, skillB.ID)

	_, err := env.Progress.CompleteLesson(user.ID, skillA.ID, skillA.Modules[0].Lessons[0].ID)
	require.NoError(t, err)
	_, err = env.Progress.CompleteLesson(user.ID, skillB.ID, skillB.Modules[0].Lessons[0].ID)
	require.NoError(t, err)

	dashboard, err := env.Dashboard.GetSummary(user.ID)
	require.NoError(t, err)

	assert.Equal(t, "Jordan", dashboard.User.Name)
	assert.Equal(t, 500, dashboard.User.XP)
	assert.Equal(t, 1, dashboard.User.SkillsMastered)
	assert.Equal(t, int64(2), dashboard.User.LessonsCompleted)

	// Skill A is completed, so only B remains ongoing at 50%.
	require.Len(t, dashboard.OngoingCourses, 1)
	assert.Equal(t, "JavaScript Core Concepts", dashboard.OngoingCourses[0].Name)
	assert.Equal(t, 50, dashboard.OngoingCourses[0].Progress)

	require.Len(t, dashboard.IncompleteRoadmaps, 1)
	assert.Equal(t, "Frontend Specialist", dashboard.IncompleteRoadmaps[0].Name)
	assert.Equal(t, 50, dashboard.IncompleteRoadmaps[0].Progress)

	// The skill badge for A was earned along the way.
	require.Len(t, dashboard.Badges, 1)
	assert.Equal(t, "HTML & CSS Fundamentals", dashboard.Badges[0].Title)

	// Not enrolled in Docker, so it is a recommendation candidate.
	require.NotEmpty(t, dashboard.RecommendedCourses)
	for _, rec := range dashboard.RecommendedCourses {
		assert.NotEqual(t, skillA.ID, rec.ID)
		assert.NotEqual(t, skillB.ID, rec.ID)
	}
}

func TestDashboardRecommendationsFollowInterests(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")
	env.createSkill(t, "HTML & CSS Fundamentals", "A1")
	docker := env.createSkill(t, "Docker for Developers", "B1")
	docker.Category = "DevOps"
	require.NoError(t, env.DB.Save(docker).Error)

	_, err := env.User.UpdateProfile(user.ID, ProfileUpdate{Interests: []string{"DevOps"}})
	require.NoError(t, err)

	dashboard, err := env.Dashboard.GetSummary(user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, dashboard.RecommendedCourses)
	assert.Equal(t, "Docker for Developers", dashboard.RecommendedCourses[0].Name)
	assert.Equal(t, []string{"DevOps"}, dashboard.User.Interests)
}
