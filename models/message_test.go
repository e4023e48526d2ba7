package models

import (
	"testing"

	"spark_server/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name    string
		message Message
		field   string // "" means valid
	}{
		{"valid text", NewTextMessage("a", "b", "hi"), ""},
		{"valid image", NewImageMessage("a", "b", "https://x/photo.jpg", "caption"), ""},
		{"image without caption", NewImageMessage("a", "b", "https://x/photo.jpg", ""), ""},
		{"valid audio", NewAudioMessage("a", "b", "clip.mp3", 12), ""},
		{"valid video", NewVideoMessage("a", "b", "clip.mp4", "thumb.jpg", 30), ""},
		{"empty content", NewTextMessage("a", "b", ""), "content"},
		{"missing sender", NewTextMessage("", "b", "hi"), "senderId"},
		{"missing receiver", NewTextMessage("a", "", "hi"), "receiverId"},
		{"audio without duration", NewAudioMessage("a", "b", "clip.mp3", 0), "duration"},
		{"video without duration", NewVideoMessage("a", "b", "clip.mp4", "thumb.jpg", 0), "duration"},
		{"video without thumbnail", NewVideoMessage("a", "b", "clip.mp4", "", 30), "thumbnail"},
		{"unknown type", Message{SenderID: "a", ReceiverID: "b", Type: "sticker", Content: "x"}, "type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.message.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var ve *apperror.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}
