package models

import "time"

// ChatMessage là một lượt hỏi đáp đã lưu trong bảng chat_messages.
// Bản ghi chỉ được tạo, không bao giờ update; BotResponse nullable
// vì schema cho phép lưu lượt chat chưa có câu trả lời.
type ChatMessage struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserMessage string    `json:"user_message" gorm:"not null"`
	BotResponse *string   `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp" gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
