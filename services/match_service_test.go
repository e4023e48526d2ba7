package services

import (
	"context"
	"testing"

	"spark_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMatchesForFiltersByUser(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, other2 := seedTestUsers(t, storage)
	svc := NewMatchService(storage)

	_, err := storage.AddMatch(ctx, self.ID, other1.ID)
	require.NoError(t, err)
	_, err = storage.AddMatch(ctx, other1.ID, other2.ID)
	require.NoError(t, err)

	matches, err := svc.GetMatchesFor(ctx, self.ID)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].Match.Contains(self.ID))
	assert.Equal(t, other1.ID, matches[0].Profile.ID)

	matches, err = svc.GetMatchesFor(ctx, other1.ID)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestGetMatchesForDropsDanglingProfiles(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, _, _ := seedTestUsers(t, storage)
	svc := NewMatchService(storage)

	_, err := storage.AddMatch(ctx, self.ID, "deleted-user")
	require.NoError(t, err)

	matches, err := svc.GetMatchesFor(ctx, self.ID)
	require.NoError(t, err)
	assert.Empty(t, matches, "a match whose counterpart is gone is excluded, not returned with an empty profile")
}

func TestGetAdmirers(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, other2 := seedTestUsers(t, storage)
	svc := NewMatchService(storage)

	recordSwipe(t, storage, other1.ID, self.ID, models.SwipeActionLike)
	recordSwipe(t, storage, other2.ID, self.ID, models.SwipeActionLike)
	// self already passed on other2, so only other1 remains actionable.
	recordSwipe(t, storage, self.ID, other2.ID, models.SwipeActionPass)

	admirers, err := svc.GetAdmirers(ctx, self.ID)
	require.NoError(t, err)
	require.Len(t, admirers, 1)
	assert.Equal(t, other1.ID, admirers[0].ID)
}
