package dto

import (
	"time"

	"edubot/models"
)

// ChatRequest là body của POST /chat.
// UserMessage dùng pointer để phân biệt thiếu field với chuỗi rỗng
// (chuỗi rỗng vẫn là input hợp lệ).
type ChatRequest struct {
	UserMessage *string `json:"user_message"`
}

// ChatResponse là shape trả về của POST /chat, không lộ id nội bộ
type ChatResponse struct {
	UserMessage string    `json:"user_message"`
	BotResponse *string   `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}

// HistoryEntry là một phần tử trong kết quả GET /history
type HistoryEntry struct {
	User string  `json:"user"`
	Bot  *string `json:"bot"`
}

// NewChatResponse map từ row chat_messages sang response
func NewChatResponse(msg models.ChatMessage) ChatResponse {
	return ChatResponse{
		UserMessage: msg.UserMessage,
		BotResponse: msg.BotResponse,
		Timestamp:   msg.Timestamp,
	}
}

// NewHistoryEntries map danh sách row sang projection {user, bot}.
// Luôn trả về slice khác nil để JSON encode thành [] thay vì null.
func NewHistoryEntries(msgs []models.ChatMessage) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(msgs))
	for _, msg := range msgs {
		entries = append(entries, HistoryEntry{
			User: msg.UserMessage,
			Bot:  msg.BotResponse,
		})
	}
	return entries
}
