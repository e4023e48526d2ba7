package services

import (
	"context"

	"spark_server/models"
)

// MatchService derives per-user match lists from the match registry.
type MatchService struct {
	Storage *StorageService
}

func NewMatchService(storage *StorageService) *MatchService {
	return &MatchService{Storage: storage}
}

// GetMatchesFor returns every match containing userID, each paired with the
// counterpart's profile. Matches whose counterpart cannot be resolved are
// dropped, never returned with an empty profile. The registry imposes no
// order; the chat list re-sorts by activity.
func (ms *MatchService) GetMatchesFor(ctx context.Context, userID string) ([]models.MatchWithProfile, error) {
	matches, err := ms.Storage.Matches(ctx)
	if err != nil {
		return nil, err
	}
	users, err := ms.Storage.AllUsers(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.UserProfile, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	result := make([]models.MatchWithProfile, 0, len(matches))
	for _, m := range matches {
		if !m.Contains(userID) {
			continue
		}
		other, ok := byID[m.Other(userID)]
		if !ok {
			continue
		}
		result = append(result, models.MatchWithProfile{Match: m, Profile: other})
	}
	return result, nil
}

// GetAdmirers returns profiles whose ledger likes userID and whom userID has
// not swiped on yet. Only meaningful in mutual match mode, where liking one
// of them back is an instant match.
func (ms *MatchService) GetAdmirers(ctx context.Context, userID string) ([]models.UserProfile, error) {
	users, err := ms.Storage.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	own, err := ms.Storage.Swipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	admirers := make([]models.UserProfile, 0)
	for _, u := range users {
		if u.ID == userID || own.Contains(u.ID) {
			continue
		}
		theirs, err := ms.Storage.Swipes(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		if theirs.HasLiked(userID) {
			admirers = append(admirers, u)
		}
	}
	return admirers, nil
}
