package controllers

import (
	"encoding/json"
	"net/http"

	"spark_server/models"
	"spark_server/services"
)

// ChatController handles HTTP requests for conversations
type ChatController struct {
	ChatService        *services.ChatService
	UserProfileService *services.UserProfileService
}

// NewChatController creates a new ChatController instance
func NewChatController(chatService *services.ChatService, userProfileService *services.UserProfileService) *ChatController {
	return &ChatController{ChatService: chatService, UserProfileService: userProfileService}
}

// HandleSendMessage appends a message to a chat
func (cc *ChatController) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ChatID  string         `json:"chatId"`
		Message models.Message `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.ChatID == "" {
		http.Error(w, "chatId is required", http.StatusBadRequest)
		return
	}

	stored, err := cc.ChatService.SendMessage(r.Context(), request.ChatID, request.Message)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

// HandleGetMessages fetches a chat's log in append order
func (cc *ChatController) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	chatID := r.URL.Query().Get("chatId")
	if chatID == "" {
		http.Error(w, "chatId is required", http.StatusBadRequest)
		return
	}

	messages, err := cc.ChatService.GetMessages(r.Context(), chatID)
	if err != nil {
		writeError(w, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// HandleMarkMessagesAsRead marks the messages the current user received as read
func (cc *ChatController) HandleMarkMessagesAsRead(w http.ResponseWriter, r *http.Request) {
	var request struct {
		ChatID string `json:"chatId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.ChatID == "" {
		http.Error(w, "chatId is required", http.StatusBadRequest)
		return
	}

	profile, err := cc.UserProfileService.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		http.Error(w, "no active session", http.StatusUnauthorized)
		return
	}

	if err := cc.ChatService.MarkMessagesAsRead(r.Context(), request.ChatID, profile.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Messages marked as read"})
}

// HandleGetChats returns the current user's chat list sorted by activity
func (cc *ChatController) HandleGetChats(w http.ResponseWriter, r *http.Request) {
	profile, err := cc.UserProfileService.CurrentUser(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		http.Error(w, "no active session", http.StatusUnauthorized)
		return
	}

	summaries, err := cc.ChatService.GetChatSummaries(r.Context(), profile.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
