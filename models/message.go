package models

import (
	"fmt"
	"time"

	"spark_server/apperror"
)

// Message types
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeAudio = "audio"
	MessageTypeVideo = "video"
)

// Message is a tagged variant over Type. Content is text for "text" and a
// URI for the media kinds; Caption, Duration and Thumbnail only apply to the
// kinds Validate enforces them for.
type Message struct {
	MessageID  string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Type       string    `json:"type"`
	Content    string    `json:"content"`
	Caption    string    `json:"caption,omitempty"`
	Duration   int       `json:"duration,omitempty"`  // seconds, audio/video only
	Thumbnail  string    `json:"thumbnail,omitempty"` // video only
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
}

// NewTextMessage builds a plain text message.
func NewTextMessage(senderID, receiverID, content string) Message {
	return Message{SenderID: senderID, ReceiverID: receiverID, Type: MessageTypeText, Content: content}
}

// NewImageMessage builds an image message from a URI with an optional caption.
func NewImageMessage(senderID, receiverID, uri, caption string) Message {
	return Message{SenderID: senderID, ReceiverID: receiverID, Type: MessageTypeImage, Content: uri, Caption: caption}
}

// NewAudioMessage builds an audio message; duration is in seconds.
func NewAudioMessage(senderID, receiverID, uri string, duration int) Message {
	return Message{SenderID: senderID, ReceiverID: receiverID, Type: MessageTypeAudio, Content: uri, Duration: duration}
}

// NewVideoMessage builds a video message with a thumbnail; duration is in seconds.
func NewVideoMessage(senderID, receiverID, uri, thumbnail string, duration int) Message {
	return Message{SenderID: senderID, ReceiverID: receiverID, Type: MessageTypeVideo, Content: uri, Thumbnail: thumbnail, Duration: duration}
}

// Validate enforces the per-kind required fields before a message is
// accepted into a conversation log.
func (m Message) Validate() error {
	if m.SenderID == "" {
		return apperror.Validation("senderId", "senderId is required")
	}
	if m.ReceiverID == "" {
		return apperror.Validation("receiverId", "receiverId is required")
	}
	if m.Content == "" {
		return apperror.Validation("content", "content is required")
	}
	switch m.Type {
	case MessageTypeText, MessageTypeImage:
		return nil
	case MessageTypeAudio:
		if m.Duration <= 0 {
			return apperror.Validation("duration", "audio messages require a positive duration")
		}
		return nil
	case MessageTypeVideo:
		if m.Duration <= 0 {
			return apperror.Validation("duration", "video messages require a positive duration")
		}
		if m.Thumbnail == "" {
			return apperror.Validation("thumbnail", "video messages require a thumbnail")
		}
		return nil
	default:
		return apperror.Validation("type", fmt.Sprintf("unknown message type %q", m.Type))
	}
}

// KeyMessages is the store key holding the map of chat id to message log
const KeyMessages = "messages"
