package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"spark_server/apperror"
	"spark_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessagePreservesAppendOrder(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, _ := seedTestUsers(t, storage)
	svc := NewChatService(storage)

	chatID := models.ChatID(self.ID, other1.ID)
	for i := 0; i < 5; i++ {
		_, err := svc.SendMessage(ctx, chatID, models.NewTextMessage(self.ID, other1.ID, fmt.Sprintf("msg %d", i)))
		require.NoError(t, err)
	}

	messages, err := svc.GetMessages(ctx, chatID)
	require.NoError(t, err)
	require.Len(t, messages, 5)
	for i, m := range messages {
		assert.Equal(t, fmt.Sprintf("msg %d", i), m.Content)
		assert.NotEmpty(t, m.MessageID)
	}
}

func TestSendMessageUpdatesChatDenormalization(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, _ := seedTestUsers(t, storage)
	svc := NewChatService(storage)

	chatID := models.ChatID(self.ID, other1.ID)
	now := time.Now().UTC()
	require.NoError(t, storage.SaveChat(ctx, models.Chat{
		ChatID:       chatID,
		Participants: []string{self.ID, other1.ID},
		CreatedAt:    now,
	}))

	stored, err := svc.SendMessage(ctx, chatID, models.NewTextMessage(self.ID, other1.ID, "hello"))
	require.NoError(t, err)

	chat, err := storage.FindChat(ctx, chatID)
	require.NoError(t, err)
	require.NotNil(t, chat)
	require.NotNil(t, chat.LastMessage)
	assert.Equal(t, stored.MessageID, chat.LastMessage.MessageID)
	assert.Equal(t, stored.Timestamp, chat.LastMessageTime)
}

func TestSendMessageRejectsInvalidVariants(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, _ := seedTestUsers(t, storage)
	svc := NewChatService(storage)
	chatID := models.ChatID(self.ID, other1.ID)

	bad := []models.Message{
		models.NewTextMessage(self.ID, other1.ID, ""),
		models.NewAudioMessage(self.ID, other1.ID, "clip.mp3", 0),
		models.NewVideoMessage(self.ID, other1.ID, "clip.mp4", "", 12),
		{SenderID: self.ID, ReceiverID: other1.ID, Type: "sticker", Content: "x"},
	}
	for _, msg := range bad {
		_, err := svc.SendMessage(ctx, chatID, msg)
		var ve *apperror.ValidationError
		assert.ErrorAs(t, err, &ve)
	}

	messages, err := svc.GetMessages(ctx, chatID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMarkMessagesAsReadAndUnreadCount(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, _ := seedTestUsers(t, storage)
	svc := NewChatService(storage)
	chatID := models.ChatID(self.ID, other1.ID)

	_, err := svc.SendMessage(ctx, chatID, models.NewTextMessage(other1.ID, self.ID, "hi"))
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, chatID, models.NewTextMessage(other1.ID, self.ID, "you there?"))
	require.NoError(t, err)
	_, err = svc.SendMessage(ctx, chatID, models.NewTextMessage(self.ID, other1.ID, "yes"))
	require.NoError(t, err)

	messages, err := svc.GetMessages(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 2, UnreadCount(messages, self.ID), "own messages never count")

	require.NoError(t, svc.MarkMessagesAsRead(ctx, chatID, self.ID))

	messages, err = svc.GetMessages(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, 0, UnreadCount(messages, self.ID))
	// The reader's own outgoing message is still unread for the counterpart.
	assert.Equal(t, 1, UnreadCount(messages, other1.ID))
	for _, m := range messages {
		if m.SenderID == self.ID {
			assert.False(t, m.Read, "messages sent by the reader stay unread for the counterpart")
		}
	}
}

func TestGetChatSummariesSortedByActivity(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, other1, other2 := seedTestUsers(t, storage)
	svc := NewChatService(storage)

	base := time.Now().UTC().Add(-time.Hour)
	chatA := models.Chat{ChatID: models.ChatID(self.ID, other1.ID), Participants: []string{self.ID, other1.ID}, CreatedAt: base}
	chatB := models.Chat{ChatID: models.ChatID(self.ID, other2.ID), Participants: []string{self.ID, other2.ID}, CreatedAt: base.Add(time.Minute)}
	require.NoError(t, storage.SaveChat(ctx, chatA))
	require.NoError(t, storage.SaveChat(ctx, chatB))

	// A message in chat A makes it the most recent.
	_, err := svc.SendMessage(ctx, chatA.ChatID, models.NewTextMessage(other1.ID, self.ID, "newest"))
	require.NoError(t, err)

	summaries, err := svc.GetChatSummaries(ctx, self.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, chatA.ChatID, summaries[0].Chat.ChatID)
	assert.Equal(t, other1.ID, summaries[0].Profile.ID)
	assert.Equal(t, other1.FullName(), summaries[0].DisplayName)
	assert.Equal(t, other1.PrimaryPhoto(), summaries[0].Photo)
	assert.Equal(t, 1, summaries[0].UnreadCount)
	assert.Equal(t, chatB.ChatID, summaries[1].Chat.ChatID)
	assert.Equal(t, 0, summaries[1].UnreadCount)
}

func TestGetChatSummariesDropsDanglingProfiles(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage()
	self, _, _ := seedTestUsers(t, storage)
	svc := NewChatService(storage)

	require.NoError(t, storage.SaveChat(ctx, models.Chat{
		ChatID:       models.ChatID(self.ID, "ghost"),
		Participants: []string{self.ID, "ghost"},
		CreatedAt:    time.Now().UTC(),
	}))

	summaries, err := svc.GetChatSummaries(ctx, self.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}
