package models

import "time"

// Chat is per-conversation metadata. LastMessage/LastMessageTime are
// denormalized from the message log and maintained on append.
type Chat struct {
	ChatID          string    `json:"id"`
	Participants    []string  `json:"participants"`
	LastMessage     *Message  `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ChatID builds the deterministic conversation id for a matched pair. The
// swiping user always comes first.
func ChatID(currentUserID, targetUserID string) string {
	return currentUserID + "_" + targetUserID
}

// Contains reports whether userID participates in the chat.
func (c Chat) Contains(userID string) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

// Other returns the participant that is not userID, or "" if absent.
func (c Chat) Other(userID string) string {
	for _, id := range c.Participants {
		if id != userID {
			return id
		}
	}
	return ""
}

// LastActivity is the sort key for the chat list: last message time when a
// message exists, chat creation time otherwise.
func (c Chat) LastActivity() time.Time {
	if c.LastMessage != nil {
		return c.LastMessage.Timestamp
	}
	return c.CreatedAt
}

// ChatSummary is a chat enriched for the chat list: counterpart profile,
// display fields, and unread count resolved.
type ChatSummary struct {
	Chat        Chat        `json:"chat"`
	Profile     UserProfile `json:"profile"`
	DisplayName string      `json:"displayName"`
	Photo       string      `json:"photo,omitempty"`
	UnreadCount int         `json:"unreadCount"`
}

// KeyChats is the store key holding chat metadata
const KeyChats = "chats"
