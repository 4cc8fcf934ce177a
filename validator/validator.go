package validator

import (
	"edubot/dto"
	"edubot/errors"
)

// ValidateChatRequest validate body của POST /chat.
// Chỉ bắt buộc field user_message có mặt; chuỗi rỗng vẫn hợp lệ.
func ValidateChatRequest(req *dto.ChatRequest) error {
	if req.UserMessage == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "user_message is required", nil)
	}
	return nil
}

// ValidateHistoryLimit chuẩn hóa limit của GET /history.
// Giá trị không dương fallback về defaultLimit.
func ValidateHistoryLimit(limit, defaultLimit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}
