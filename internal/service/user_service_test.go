package service

import (
	"skillsync_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfileReplacesInterests(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")

	updated, err := env.User.UpdateProfile(user.ID, ProfileUpdate{
		Name:      "Jordan Smith",
		Bio:       "Learning in public",
		Interests: []string{"Frontend", "Design"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", updated.Name)
	assert.Equal(t, "Learning in public", updated.Bio)
	require.Len(t, updated.Interests, 2)

	// Replacing shrinks the set; unknown names are created on the fly.
	updated, err = env.User.UpdateProfile(user.ID, ProfileUpdate{
		Interests: []string{"Quantum Computing"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Interests, 1)
	assert.Equal(t, "Quantum Computing", updated.Interests[0].Name)

	fresh, err := env.User.GetByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jordan Smith", fresh.Name)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.User.UpdateProfile(9999, ProfileUpdate{Name: "Ghost"})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}

func TestUpdateProfileNilInterestsKeepsSet(t *testing.T) {
	env := newTestEnv(t)
	user := env.createUser(t, "Jordan", "jordan@example.com")

	_, err := env.User.UpdateProfile(user.ID, ProfileUpdate{Interests: []string{"Backend"}})
	require.NoError(t, err)

	updated, err := env.User.UpdateProfile(user.ID, ProfileUpdate{Bio: "bio only"})
	require.NoError(t, err)
	assert.Equal(t, "bio only", updated.Bio)

	fresh, err := env.User.GetByID(user.ID)
	require.NoError(t, err)
	require.Len(t, fresh.Interests, 1)
	assert.Equal(t, "Backend", fresh.Interests[0].Name)
}
