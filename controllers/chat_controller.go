package controllers

import (
	"strconv"

	"edubot/dto"
	"edubot/errors"
	"edubot/response"
	"edubot/services"
	"edubot/services/logger"
	"edubot/validator"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
	logger  logger.Logger
}

func NewChatController(service *services.ChatService, log logger.Logger) *ChatController {
	return &ChatController{service: service, logger: log}
}

// CreateChat xử lý POST /chat: validate input, gọi service, trả về
// {user_message, bot_response, timestamp}
func (ctl *ChatController) CreateChat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Body không phải JSON hoặc user_message sai kiểu
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := validator.ValidateChatRequest(&req); err != nil {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	msg, err := ctl.service.Send(c.Request.Context(), *req.UserMessage)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	response.Success(c, dto.NewChatResponse(msg))
}

// GetHistory xử lý GET /history?limit=N, mặc định 10 bản ghi mới nhất.
// limit không parse được hoặc không dương thì fallback về mặc định.
func (ctl *ChatController) GetHistory(c *gin.Context) {
	limit := services.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = validator.ValidateHistoryLimit(parsed, services.DefaultHistoryLimit)
		}
	}

	msgs, err := ctl.service.History(c.Request.Context(), limit)
	if err != nil {
		ctl.respondError(c, err)
		return
	}

	response.Success(c, dto.NewHistoryEntries(msgs))
}

// respondError map AppError sang status code, không lộ lỗi nội bộ ra caller
func (ctl *ChatController) respondError(c *gin.Context, err error) {
	if errors.IsClientError(err) {
		response.ValidationError(c, errors.GetAppError(err).Message)
		return
	}

	// Lỗi 5xx log kèm request id để trace được, caller chỉ nhận message chung
	ctl.logger.Error("request %s thất bại: %v", c.GetString("requestId"), err)

	if appErr := errors.GetAppError(err); appErr != nil {
		switch appErr.Code {
		case errors.ErrCodeProvider, errors.ErrCodeEmptyCompletion:
			response.ServerError(c, "failed to generate response")
			return
		case errors.ErrCodeDBError:
			response.ServerError(c, "failed to access chat history")
			return
		}
	}

	response.ServerError(c, "internal server error")
}
