package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"spark_server/apperror"
	"spark_server/models"

	"github.com/google/uuid"
)

// StorageService layers typed accessors for every document the app keeps
// over the flat KVStore. Absent documents come back as zero values; actual
// store failures come back as *apperror.StorageError and are never coerced
// into empty results.
type StorageService struct {
	Store KVStore
}

func NewStorageService(store KVStore) *StorageService {
	return &StorageService{Store: store}
}

// getDoc loads and decodes the document at key into out. Returns false when
// the key is absent.
func (s *StorageService) getDoc(ctx context.Context, key string, out interface{}) (bool, error) {
	doc, ok, err := s.Store.Get(ctx, key)
	if err != nil {
		return false, apperror.Storage("get", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(doc, out); err != nil {
		return false, apperror.Storage("get", key, fmt.Errorf("corrupt document: %w", err))
	}
	return true, nil
}

func (s *StorageService) setDoc(ctx context.Context, key string, value interface{}) error {
	if err := s.Store.Set(ctx, key, value); err != nil {
		return apperror.Storage("set", key, err)
	}
	return nil
}

// --- Session ---

// CurrentUser returns the active session's profile, or nil when logged out.
func (s *StorageService) CurrentUser(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	ok, err := s.getDoc(ctx, models.KeyCurrentUser, &profile)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (s *StorageService) SetCurrentUser(ctx context.Context, profile models.UserProfile) error {
	return s.setDoc(ctx, models.KeyCurrentUser, profile)
}

func (s *StorageService) ClearCurrentUser(ctx context.Context) error {
	if err := s.Store.Remove(ctx, models.KeyCurrentUser); err != nil {
		return apperror.Storage("remove", models.KeyCurrentUser, err)
	}
	return nil
}

// --- Profiles ---

// AllUsers returns every stored profile in insertion order.
func (s *StorageService) AllUsers(ctx context.Context) ([]models.UserProfile, error) {
	var users []models.UserProfile
	if _, err := s.getDoc(ctx, models.KeyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SaveUser upserts a profile by id, preserving insertion order.
func (s *StorageService) SaveUser(ctx context.Context, profile models.UserProfile) error {
	users, err := s.AllUsers(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, u := range users {
		if u.ID == profile.ID {
			users[i] = profile
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, profile)
	}

	return s.setDoc(ctx, models.KeyUsers, users)
}

// FindUser resolves a profile by id, nil when absent.
func (s *StorageService) FindUser(ctx context.Context, userID string) (*models.UserProfile, error) {
	users, err := s.AllUsers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, nil
}

// --- Matches ---

func (s *StorageService) Matches(ctx context.Context) ([]models.Match, error) {
	var matches []models.Match
	if _, err := s.getDoc(ctx, models.KeyMatches, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// AddMatch appends a new match for the pair and returns it.
func (s *StorageService) AddMatch(ctx context.Context, userID, targetUserID string) (models.Match, error) {
	matches, err := s.Matches(ctx)
	if err != nil {
		return models.Match{}, err
	}

	match := models.Match{
		MatchID:   uuid.NewString(),
		Users:     []string{userID, targetUserID},
		CreatedAt: time.Now().UTC(),
	}
	matches = append(matches, match)

	if err := s.setDoc(ctx, models.KeyMatches, matches); err != nil {
		return models.Match{}, err
	}
	return match, nil
}

// --- Chats ---

func (s *StorageService) Chats(ctx context.Context) ([]models.Chat, error) {
	var chats []models.Chat
	if _, err := s.getDoc(ctx, models.KeyChats, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// SaveChat upserts chat metadata by id.
func (s *StorageService) SaveChat(ctx context.Context, chat models.Chat) error {
	chats, err := s.Chats(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i, c := range chats {
		if c.ChatID == chat.ChatID {
			chats[i] = chat
			replaced = true
			break
		}
	}
	if !replaced {
		chats = append(chats, chat)
	}

	return s.setDoc(ctx, models.KeyChats, chats)
}

// FindChat resolves chat metadata by id, nil when absent.
func (s *StorageService) FindChat(ctx context.Context, chatID string) (*models.Chat, error) {
	chats, err := s.Chats(ctx)
	if err != nil {
		return nil, err
	}
	for i := range chats {
		if chats[i].ChatID == chatID {
			return &chats[i], nil
		}
	}
	return nil, nil
}

// --- Messages ---

func (s *StorageService) allMessages(ctx context.Context) (map[string][]models.Message, error) {
	messages := make(map[string][]models.Message)
	if _, err := s.getDoc(ctx, models.KeyMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// Messages returns the message log for a chat in append order.
func (s *StorageService) Messages(ctx context.Context, chatID string) ([]models.Message, error) {
	all, err := s.allMessages(ctx)
	if err != nil {
		return nil, err
	}
	return all[chatID], nil
}

// AppendMessage appends a message to a chat's log.
func (s *StorageService) AppendMessage(ctx context.Context, chatID string, message models.Message) error {
	all, err := s.allMessages(ctx)
	if err != nil {
		return err
	}
	all[chatID] = append(all[chatID], message)
	return s.setDoc(ctx, models.KeyMessages, all)
}

// SetMessages replaces a chat's log wholesale (read-flag updates).
func (s *StorageService) SetMessages(ctx context.Context, chatID string, messages []models.Message) error {
	all, err := s.allMessages(ctx)
	if err != nil {
		return err
	}
	all[chatID] = messages
	return s.setDoc(ctx, models.KeyMessages, all)
}

// --- Swipe ledger ---

// The ledger document is keyed by user id so that several stored profiles
// each get their own swipe history.

func (s *StorageService) allSwipes(ctx context.Context) (map[string]models.SwipeRecord, error) {
	swipes := make(map[string]models.SwipeRecord)
	if _, err := s.getDoc(ctx, models.KeySwipedUsers, &swipes); err != nil {
		return nil, err
	}
	return swipes, nil
}

// Swipes returns userID's swipe record, zero-valued when none exists.
func (s *StorageService) Swipes(ctx context.Context, userID string) (models.SwipeRecord, error) {
	all, err := s.allSwipes(ctx)
	if err != nil {
		return models.SwipeRecord{}, err
	}
	return all[userID], nil
}

// AddSwipe records a swipe into userID's ledger. Membership is idempotent:
// a target already present in either set is left where it is, and the
// returned bool reports whether the ledger actually changed.
func (s *StorageService) AddSwipe(ctx context.Context, userID, targetUserID, action string) (bool, error) {
	all, err := s.allSwipes(ctx)
	if err != nil {
		return false, err
	}

	record := all[userID]
	if !record.Add(action, targetUserID) {
		return false, nil
	}
	all[userID] = record

	if err := s.setDoc(ctx, models.KeySwipedUsers, all); err != nil {
		return false, err
	}
	return true, nil
}

// --- Settings ---

// Settings returns the stored settings, falling back to defaults when the
// document is absent.
func (s *StorageService) Settings(ctx context.Context) (models.Settings, error) {
	settings := models.DefaultSettings()
	ok, err := s.getDoc(ctx, models.KeySettings, &settings)
	if err != nil {
		return models.Settings{}, err
	}
	if !ok {
		return models.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *StorageService) SaveSettings(ctx context.Context, settings models.Settings) error {
	return s.setDoc(ctx, models.KeySettings, settings)
}

// --- Reset ---

// ClearAll wipes every key, the full data reset.
func (s *StorageService) ClearAll(ctx context.Context) error {
	if err := s.Store.Clear(ctx); err != nil {
		return apperror.Storage("clear", "", err)
	}
	return nil
}
