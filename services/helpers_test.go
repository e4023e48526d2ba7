package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"spark_server/models"

	"github.com/stretchr/testify/require"
)

func newTestStorage() *StorageService {
	return NewStorageService(NewMemoryStore())
}

func testProfile(id, email, firstName string) models.UserProfile {
	return models.UserProfile{
		ID:        id,
		Email:     email,
		Password:  "password123",
		FirstName: firstName,
		LastName:  "Tester",
		Age:       25,
		CreatedAt: time.Now().UTC(),
	}
}

// seedTestUsers stores three profiles and logs the first one in.
func seedTestUsers(t *testing.T, storage *StorageService) (self, other1, other2 models.UserProfile) {
	t.Helper()
	ctx := context.Background()

	self = testProfile("u1", "self@example.com", "Selina")
	other1 = testProfile("u2", "other1@example.com", "Otto")
	other2 = testProfile("u3", "other2@example.com", "Olga")

	for _, p := range []models.UserProfile{self, other1, other2} {
		require.NoError(t, storage.SaveUser(ctx, p))
	}
	require.NoError(t, storage.SetCurrentUser(ctx, self))
	return self, other1, other2
}

// recordSwipe writes a ledger entry directly, failing the test on error.
func recordSwipe(t *testing.T, storage *StorageService, userID, targetUserID, action string) {
	t.Helper()
	_, err := storage.AddSwipe(context.Background(), userID, targetUserID, action)
	require.NoError(t, err)
}

var errStoreDown = errors.New("store down")

// faultStore fails every operation touching failKey; everything else is
// delegated to the wrapped store.
type faultStore struct {
	KVStore
	failKey string
}

func (f *faultStore) Get(ctx context.Context, key string) (json.RawMessage, bool, error) {
	if key == f.failKey {
		return nil, false, errStoreDown
	}
	return f.KVStore.Get(ctx, key)
}

func (f *faultStore) Set(ctx context.Context, key string, value interface{}) error {
	if key == f.failKey {
		return errStoreDown
	}
	return f.KVStore.Set(ctx, key, value)
}
