package services

import (
	"context"
	"time"

	"edubot/errors"
	"edubot/models"
	"edubot/services/logger"

	"gorm.io/gorm"
)

// DefaultHistoryLimit là số bản ghi trả về khi GET /history không truyền limit
const DefaultHistoryLimit = 10

// ChatService điều phối một lượt chat: gọi provider, lưu kết quả,
// trả về bản ghi đã lưu. Không giữ state giữa các request.
type ChatService struct {
	db       *gorm.DB
	provider CompletionProvider
	logger   logger.Logger
}

type ChatServiceOptions struct {
	DB       *gorm.DB
	Provider CompletionProvider
	Logger   logger.Logger
}

func NewChatService(opts ChatServiceOptions) *ChatService {
	return &ChatService{
		db:       opts.DB,
		provider: opts.Provider,
		logger:   opts.Logger,
	}
}

// Send gọi provider lấy câu trả lời rồi lưu lượt chat.
// Provider lỗi thì KHÔNG lưu gì cả: lịch sử chỉ chứa lượt chat
// đã hoàn tất (chính sách đã chốt, xem DESIGN.md).
func (s *ChatService) Send(ctx context.Context, userMessage string) (models.ChatMessage, error) {
	content, err := s.provider.Complete(ctx, userMessage)
	if err != nil {
		s.logger.Error("gọi completion provider thất bại: %v", err)
		return models.ChatMessage{}, err
	}

	msg := models.ChatMessage{
		UserMessage: userMessage,
		BotResponse: &content,
	}
	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		s.logger.Error("lưu chat_messages thất bại: %v", err)
		return models.ChatMessage{}, errors.NewAppError(errors.ErrCodeDBError, "failed to save chat message", err)
	}

	return msg, nil
}

// History trả về limit bản ghi mới nhất, mới nhất đứng trước.
// limit không dương fallback về DefaultHistoryLimit. Sắp thêm theo
// id desc để thứ tự ổn định khi timestamp trùng nhau.
func (s *ChatService) History(ctx context.Context, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	var msgs []models.ChatMessage
	err := s.db.WithContext(ctx).
		Order("timestamp DESC").
		Order("id DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		s.logger.Error("truy vấn lịch sử chat thất bại: %v", err)
		return nil, errors.NewAppError(errors.ErrCodeDBError, "failed to load chat history", err)
	}

	return msgs, nil
}

// PurgeBefore xóa các bản ghi cũ hơn cutoff, trả về số dòng đã xóa.
// Đây là đường xóa duy nhất, chỉ dùng cho job dọn dẹp định kỳ.
func (s *ChatService) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tx := s.db.WithContext(ctx).
		Where("timestamp < ?", cutoff).
		Delete(&models.ChatMessage{})
	if tx.Error != nil {
		s.logger.Error("dọn dẹp lịch sử chat thất bại: %v", tx.Error)
		return 0, errors.NewAppError(errors.ErrCodeDBError, "failed to purge chat history", tx.Error)
	}

	return tx.RowsAffected, nil
}
