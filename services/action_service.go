package services

import (
	"context"
	"log"
	"math/rand"
	"time"

	"spark_server/models"
)

// Match decision modes. Random keeps the historical coin-flip behavior;
// mutual matches only when the target has already liked the swiper.
const (
	MatchModeRandom = "random"
	MatchModeMutual = "mutual"
)

// DefaultMatchProbability is the like-to-match odds in random mode.
const DefaultMatchProbability = 0.30

// SwipeOutcome is the result of one swipe.
type SwipeOutcome struct {
	Matched        bool                `json:"matched"`
	MatchedProfile *models.UserProfile `json:"matchedProfile,omitempty"`
	ChatID         string              `json:"chatId,omitempty"`
}

// ActionService is the discovery engine and swipe arbiter: which profiles
// are shown, how a swipe is decided, and the match/chat creation that a
// successful like triggers.
type ActionService struct {
	Storage          *StorageService
	Mode             string
	MatchProbability float64
	Rand             func() float64 // injectable for deterministic tests
}

func NewActionService(storage *StorageService) *ActionService {
	return &ActionService{
		Storage:          storage,
		Mode:             MatchModeRandom,
		MatchProbability: DefaultMatchProbability,
		Rand:             rand.Float64,
	}
}

// GetDiscoverableProfiles returns every profile the current user has not
// swiped on yet, excluding themselves, in repository insertion order.
// An empty session yields an empty result, not an error.
//
// The age-range and distance settings are advisory only and deliberately
// not applied here.
func (as *ActionService) GetDiscoverableProfiles(ctx context.Context) ([]models.UserProfile, error) {
	current, err := as.Storage.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return []models.UserProfile{}, nil
	}

	users, err := as.Storage.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	swipes, err := as.Storage.Swipes(ctx, current.ID)
	if err != nil {
		return nil, err
	}

	discoverable := make([]models.UserProfile, 0, len(users))
	for _, u := range users {
		if u.ID == current.ID || swipes.Contains(u.ID) {
			continue
		}
		discoverable = append(discoverable, u)
	}
	return discoverable, nil
}

// Swipe records the action into the ledger and arbitrates the outcome.
// Passes and repeated swipes are terminal; first-time likes go through the
// configured match decision. On a
// match the pair gets one Match record and a chat with the deterministic id
// "{currentUserId}_{targetUserId}" and an empty message log.
//
// Missing data (no session, unknown target) downgrades the outcome to "no
// match"; store failures propagate.
func (as *ActionService) Swipe(ctx context.Context, targetUserID, action string) (SwipeOutcome, error) {
	current, err := as.Storage.CurrentUser(ctx)
	if err != nil {
		return SwipeOutcome{}, err
	}
	if current == nil {
		return SwipeOutcome{}, nil
	}

	changed, err := as.Storage.AddSwipe(ctx, current.ID, targetUserID, action)
	if err != nil {
		return SwipeOutcome{}, err
	}
	// A target already in the ledger was arbitrated on the first swipe;
	// re-running the decision could duplicate the match and reset the chat.
	if !changed || action != models.SwipeActionLike {
		return SwipeOutcome{}, nil
	}

	matched, err := as.decideMatch(ctx, current.ID, targetUserID)
	if err != nil {
		return SwipeOutcome{}, err
	}
	if !matched {
		return SwipeOutcome{}, nil
	}

	target, err := as.Storage.FindUser(ctx, targetUserID)
	if err != nil {
		return SwipeOutcome{}, err
	}
	if target == nil {
		return SwipeOutcome{}, nil
	}

	if _, err := as.Storage.AddMatch(ctx, current.ID, targetUserID); err != nil {
		return SwipeOutcome{}, err
	}

	now := time.Now().UTC()
	chat := models.Chat{
		ChatID:          models.ChatID(current.ID, targetUserID),
		Participants:    []string{current.ID, targetUserID},
		LastMessage:     nil,
		LastMessageTime: now,
		CreatedAt:       now,
	}
	if err := as.Storage.SaveChat(ctx, chat); err != nil {
		return SwipeOutcome{}, err
	}

	log.Printf("Matched %s with %s", current.ID, targetUserID)
	return SwipeOutcome{Matched: true, MatchedProfile: target, ChatID: chat.ChatID}, nil
}

func (as *ActionService) decideMatch(ctx context.Context, userID, targetUserID string) (bool, error) {
	if as.Mode == MatchModeMutual {
		targetSwipes, err := as.Storage.Swipes(ctx, targetUserID)
		if err != nil {
			return false, err
		}
		return targetSwipes.HasLiked(userID), nil
	}
	return as.Rand() < as.MatchProbability, nil
}
