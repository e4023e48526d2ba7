package services

import (
	"context"
	"testing"

	"spark_server/apperror"
	"spark_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestActionService(storage *StorageService) *ActionService {
	svc := NewActionService(storage)
	svc.Rand = func() float64 { return 0.99 } // never match unless a test overrides
	return svc
}

func TestGetDiscoverableProfilesExcludesSelfAndSwiped(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, other2 := seedTestUsers(t, storage)
	svc := newTestActionService(storage)

	profiles, err := svc.GetDiscoverableProfiles(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, other1.ID, profiles[0].ID, "insertion order is preserved")
	assert.Equal(t, other2.ID, profiles[1].ID)
	for _, p := range profiles {
		assert.NotEqual(t, self.ID, p.ID)
	}

	// Once swiped, in either direction, a profile never reappears.
	_, err = svc.Swipe(ctx, other1.ID, models.SwipeActionLike)
	require.NoError(t, err)
	_, err = svc.Swipe(ctx, other2.ID, models.SwipeActionPass)
	require.NoError(t, err)

	profiles, err = svc.GetDiscoverableProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestGetDiscoverableProfilesEmptySession(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	svc := newTestActionService(storage)

	profiles, err := svc.GetDiscoverableProfiles(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestSwipePassNeverMatches(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, _ := seedTestUsers(t, storage)
	svc := newTestActionService(storage)
	svc.Rand = func() float64 { return 0.0 } // would match if a like were drawn

	outcome, err := svc.Swipe(ctx, other1.ID, models.SwipeActionPass)
	require.NoError(t, err)
	assert.False(t, outcome.Matched)
	assert.Nil(t, outcome.MatchedProfile)

	swipes, err := storage.Swipes(ctx, self.ID)
	require.NoError(t, err)
	assert.Contains(t, swipes.Passed, other1.ID)
	assert.NotContains(t, swipes.Liked, other1.ID)

	matches, err := storage.Matches(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSwipeLikeLedgerIdempotent(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, _ := seedTestUsers(t, storage)
	svc := newTestActionService(storage)

	_, err := svc.Swipe(ctx, other1.ID, models.SwipeActionLike)
	require.NoError(t, err)
	_, err = svc.Swipe(ctx, other1.ID, models.SwipeActionLike)
	require.NoError(t, err)

	swipes, err := storage.Swipes(ctx, self.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{other1.ID}, swipes.Liked, "id recorded exactly once")
}

func TestSwipeLikeBelowThresholdCreatesMatchAndChat(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, _ := seedTestUsers(t, storage)
	svc := newTestActionService(storage)
	svc.Rand = func() float64 { return 0.29 }

	outcome, err := svc.Swipe(ctx, other1.ID, models.SwipeActionLike)
	require.NoError(t, err)
	assert.True(t, outcome.Matched)
	require.NotNil(t, outcome.MatchedProfile)
	assert.Equal(t, other1.ID, outcome.MatchedProfile.ID)
	assert.Equal(t, self.ID+"_"+other1.ID, outcome.ChatID)

	matches, err := storage.Matches(ctx)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.True(t, matches[0].Contains(self.ID))
	assert.True(t, matches[0].Contains(other1.ID))

	chat, err := storage.FindChat(ctx, outcome.ChatID)
	require.NoError(t, err)
	require.NotNil(t, chat)
	assert.Nil(t, chat.LastMessage)

	messages, err := storage.Messages(ctx, outcome.ChatID)
	require.NoError(t, err)
	assert.Empty(t, messages, "new conversations start with an empty log")
}

func TestSwipeRepeatedLikeLeavesMatchAndChatAlone(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, _ := seedTestUsers(t, storage)
	svc := newTestActionService(storage)
	svc.Rand = func() float64 { return 0.0 }

	outcome, err := svc.Swipe(ctx, other1.ID, models.SwipeActionLike)
	require.NoError(t, err)
	require.True(t, outcome.Matched)

	chatSvc := NewChatService(storage)
	_, err = chatSvc.SendMessage(ctx, outcome.ChatID, models.NewTextMessage(self.ID, other1.ID, "hey"))
	require.NoError(t, err)

	// A second like on the same target is already in the ledger and must
	// not re-run arbitration.
	outcome, err = svc.Swipe(ctx, other1.ID, models.SwipeActionLike)
	require.NoError(t, err)
	assert.False(t, outcome.Matched)

	matches, err := storage.Matches(ctx)
	require.NoError(t, err)
	assert.Len(t, matches, 1, "a repeated like must not duplicate the match")

	chat, err := storage.FindChat(ctx, models.ChatID(self.ID, other1.ID))
	require.NoError(t, err)
	require.NotNil(t, chat)
	require.NotNil(t, chat.LastMessage, "the denormalized last message survives a repeated like")
	assert.Equal(t, "hey", chat.LastMessage.Content)
}

func TestSwipeLikeAtThresholdDoesNotMatch(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	_, other1, _ := seedTestUsers(t, storage)
	svc := newTestActionService(storage)
	svc.Rand = func() float64 { return 0.30 } // decision is strictly below

	outcome, err := svc.Swipe(ctx, other1.ID, models.SwipeActionLike)
	require.NoError(t, err)
	assert.False(t, outcome.Matched)
}

func TestSwipeUnknownTargetDowngradesToNoMatch(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	seedTestUsers(t, storage)
	svc := newTestActionService(storage)
	svc.Rand = func() float64 { return 0.0 }

	outcome, err := svc.Swipe(ctx, "ghost", models.SwipeActionLike)
	require.NoError(t, err)
	assert.False(t, outcome.Matched)

	matches, err := storage.Matches(ctx)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestSwipeEmptySessionIsSilent(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	svc := newTestActionService(storage)

	outcome, err := svc.Swipe(ctx, "u2", models.SwipeActionLike)
	require.NoError(t, err)
	assert.False(t, outcome.Matched)
}

func TestSwipeMutualMode(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, other2 := seedTestUsers(t, storage)
	svc := newTestActionService(storage)
	svc.Mode = MatchModeMutual
	svc.Rand = func() float64 { panic("mutual mode must not sample") }

	// other1 has already liked self; other2 has not.
	recordSwipe(t, storage, other1.ID, self.ID, models.SwipeActionLike)

	outcome, err := svc.Swipe(ctx, other2.ID, models.SwipeActionLike)
	require.NoError(t, err)
	assert.False(t, outcome.Matched, "no reciprocal like yet")

	outcome, err = svc.Swipe(ctx, other1.ID, models.SwipeActionLike)
	require.NoError(t, err)
	assert.True(t, outcome.Matched)
	require.NotNil(t, outcome.MatchedProfile)
	assert.Equal(t, other1.ID, outcome.MatchedProfile.ID)
}

func TestSwipeStorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	storage := NewStorageService(&faultStore{KVStore: base, failKey: models.KeySwipedUsers})
	seedTestUsers(t, NewStorageService(base))
	svc := newTestActionService(storage)

	_, err := svc.Swipe(ctx, "u2", models.SwipeActionLike)
	require.Error(t, err)
	assert.True(t, apperror.IsStorage(err), "store failures surface as StorageError, not as a silent no-match")
}

func TestGetDiscoverableProfilesStorageErrorPropagates(t *testing.T) {
	ctx := context.Background()
	base := NewMemoryStore()
	storage := NewStorageService(&faultStore{KVStore: base, failKey: models.KeyUsers})
	require.NoError(t, NewStorageService(base).SetCurrentUser(ctx, testProfile("u1", "self@example.com", "Selina")))
	svc := newTestActionService(storage)

	_, err := svc.GetDiscoverableProfiles(ctx)
	require.Error(t, err)
	assert.True(t, apperror.IsStorage(err))
}
