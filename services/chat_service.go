package services

import (
	"context"
	"sort"
	"time"

	"spark_server/models"

	"github.com/google/uuid"
)

// ChatService owns the per-conversation message logs and the chat list.
type ChatService struct {
	Storage *StorageService
}

func NewChatService(storage *StorageService) *ChatService {
	return &ChatService{Storage: storage}
}

// SendMessage validates and appends a message to a chat's log, then updates
// the chat's denormalized lastMessage/lastMessageTime. Returns the stored
// message with id and timestamp filled in.
func (cs *ChatService) SendMessage(ctx context.Context, chatID string, message models.Message) (models.Message, error) {
	if err := message.Validate(); err != nil {
		return models.Message{}, err
	}

	if message.MessageID == "" {
		message.MessageID = uuid.NewString()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = time.Now().UTC()
	}
	message.Read = false

	if err := cs.Storage.AppendMessage(ctx, chatID, message); err != nil {
		return models.Message{}, err
	}

	// Best-effort denormalization; the message log stays the source of truth.
	chat, err := cs.Storage.FindChat(ctx, chatID)
	if err != nil {
		return models.Message{}, err
	}
	if chat != nil {
		chat.LastMessage = &message
		chat.LastMessageTime = message.Timestamp
		if err := cs.Storage.SaveChat(ctx, *chat); err != nil {
			return models.Message{}, err
		}
	}

	return message, nil
}

// GetMessages returns a chat's log in append order, which is chronological
// since all appends are sequential.
func (cs *ChatService) GetMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	return cs.Storage.Messages(ctx, chatID)
}

// MarkMessagesAsRead flips the read flag on every message in the chat that
// the reader received.
func (cs *ChatService) MarkMessagesAsRead(ctx context.Context, chatID, readerID string) error {
	messages, err := cs.Storage.Messages(ctx, chatID)
	if err != nil {
		return err
	}

	changed := false
	for i, m := range messages {
		if !m.Read && m.SenderID != readerID {
			messages[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return cs.Storage.SetMessages(ctx, chatID, messages)
}

// UnreadCount counts received messages not yet read.
func UnreadCount(messages []models.Message, selfID string) int {
	count := 0
	for _, m := range messages {
		if !m.Read && m.SenderID != selfID {
			count++
		}
	}
	return count
}

// GetChatSummaries builds the chat list for a user: each chat with the
// counterpart's profile and unread count, sorted by most recent activity.
// Chats whose counterpart profile is gone are dropped.
func (cs *ChatService) GetChatSummaries(ctx context.Context, userID string) ([]models.ChatSummary, error) {
	chats, err := cs.Storage.Chats(ctx)
	if err != nil {
		return nil, err
	}
	users, err := cs.Storage.AllUsers(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]models.UserProfile, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	summaries := make([]models.ChatSummary, 0, len(chats))
	for _, chat := range chats {
		if !chat.Contains(userID) {
			continue
		}
		other, ok := byID[chat.Other(userID)]
		if !ok {
			continue
		}
		messages, err := cs.Storage.Messages(ctx, chat.ChatID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, models.ChatSummary{
			Chat:        chat,
			Profile:     other,
			DisplayName: other.FullName(),
			Photo:       other.PrimaryPhoto(),
			UnreadCount: UnreadCount(messages, userID),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Chat.LastActivity().After(summaries[j].Chat.LastActivity())
	})
	return summaries, nil
}
