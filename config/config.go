package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config chứa toàn bộ cấu hình đọc từ biến môi trường
type Config struct {
	Port        string `env:"PORT" envDefault:"8083"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	GroqAPIKey      string        `env:"GROQ_API_KEY"`
	GroqBaseURL     string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GroqModel       string        `env:"GROQ_MODEL" envDefault:"llama-3.3-70b-versatile"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`

	// RetentionDays = 0 nghĩa là không xóa lịch sử chat
	RetentionDays int `env:"RETENTION_DAYS" envDefault:"0"`
}

// LoadEnv nạp file .env nếu có, không có thì dùng biến môi trường hệ thống
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}
}

// LoadConfig parse cấu hình từ biến môi trường.
// Thiếu DATABASE_URL là lỗi fatal khi khởi động.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
