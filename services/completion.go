package services

import (
	"context"
	"time"

	"edubot/errors"

	openai "github.com/sashabaranov/go-openai"
)

// systemPrompt là persona cố định gửi kèm mọi message của user,
// không cho phép đổi theo từng request
const systemPrompt = "You are an AI educational assistant. Your goal is to provide helpful, " +
	"accurate, and engaging educational content. Explain concepts clearly " +
	"and provide examples when appropriate. " +
	"If not explicitly specified, give a concise and simple to understand explanation. " +
	"You can then ask if the user understands or wants an in-depth explanation."

// CompletionProvider là collaborator sinh câu trả lời cho một message.
// Mọi lỗi từ provider đều là hard failure, không retry.
type CompletionProvider interface {
	Complete(ctx context.Context, userMessage string) (string, error)
}

// GroqProvider gọi chat-completions API của Groq (tương thích OpenAI)
type GroqProvider struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// GroqProviderOptions chứa tham số khởi tạo GroqProvider
type GroqProviderOptions struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewGroqProvider tạo client dùng chung cho cả process, khởi tạo một lần
// lúc startup rồi inject vào ChatService
func NewGroqProvider(opts GroqProviderOptions) *GroqProvider {
	cfg := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GroqProvider{
		client:  openai.NewClientWithConfig(cfg),
		model:   opts.Model,
		timeout: timeout,
	}
}

// Complete gửi system prompt + message của user và lấy candidate đầu tiên.
// Timeout áp cho từng lần gọi, cancel luôn được release kể cả khi lỗi.
func (p *GroqProvider) Complete(ctx context.Context, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
	})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeProvider, "completion request failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.NewAppError(errors.ErrCodeEmptyCompletion, "provider returned no choices", nil)
	}

	return resp.Choices[0].Message.Content, nil
}
