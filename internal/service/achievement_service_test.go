package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateLevel(t *testing.T) {
	cases := []struct {
		xp        int
		level     int
		nextLevel int
	}{
		{0, 0, 200},
		{199, 0, 200},
		{200, 1, 400},
		{1450, 7, 1600},
		{3000, 15, 3200},
	}
	for _, tc := range cases {
		level, next := calculateLevel(tc.xp)
		assert.Equal(t, tc.level, level, "xp=%d", tc.xp)
		assert.Equal(t, tc.nextLevel, next, "xp=%d", tc.xp)
	}
}

func TestGetUserAchievements(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")
	skill := env.createSkill(t, "HTML & CSS Fundamentals", "A1")
	env.enroll(t, user.ID, skill.ID)

	_, err := env.Progress.CompleteLesson(user.ID, skill.ID, skill.Modules[0].Lessons[0].ID)
	require.NoError(t, err)

	achievements, err := env.Achievement.GetUserAchievements(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 500, achievements.TotalXP)
	assert.Equal(t, 2, achievements.CurrentLevel)
	assert.Equal(t, 600, achievements.NextLevelXP)
	require.Len(t, achievements.Badges, 1)
	assert.Equal(t, "HTML & CSS Fundamentals", achievements.Badges[0].Badge.Title)
}

func TestGetLeaderboardOrdering(t *testing.T) {
	env := newTestEnv(t)
	for _, u := range []struct {
		name string
		xp   int
	}{
		{"Low", 100},
		{"High", 900},
		{"Mid", 400},
	} {
		user := env.createUser(t, u.name, u.name+"@example.com")
		require.NoError(t, env.userRepo.IncrementXP(user.ID, u.xp))
	}

	leaderboard, err := env.Achievement.GetLeaderboard(2)
	require.NoError(t, err)
	require.Len(t, leaderboard, 2)
	assert.Equal(t, "High", leaderboard[0].User)
	assert.Equal(t, 1, leaderboard[0].Rank)
	assert.Equal(t, "Mid", leaderboard[1].User)
}

func TestAwardBadgeManuallyOnce(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")

	badge, err := env.badgeRepo.EnsureByTitle("Community Star", "Helped fellow learners", "star")
	require.NoError(t, err)

	awarded, err := env.Achievement.AwardBadge(user.ID, badge.ID)
	require.NoError(t, err)
	assert.True(t, awarded)

	awarded, err = env.Achievement.AwardBadge(user.ID, badge.ID)
	require.NoError(t, err)
	assert.False(t, awarded)

	badges, err := env.Achievement.GetUserBadges(user.ID)
	require.NoError(t, err)
	assert.Len(t, badges, 1)

	notifications, err := env.Community.GetNotifications(user.ID)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "badge_awarded", notifications[0].Type)
	assert.Contains(t, notifications[0].Message, "Community Star")
}
