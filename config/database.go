package config

import (
	"fmt"
	"log"

	"edubot/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDB kết nối Postgres và migrate bảng chat_messages
func ConnectDB(databaseURL string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("fail to connect to db: %w", err)
	}

	if err := DB.AutoMigrate(&models.ChatMessage{}); err != nil {
		return fmt.Errorf("fail to migrate tables: %w", err)
	}

	log.Println("Successfully connected to db")
	return nil
}
