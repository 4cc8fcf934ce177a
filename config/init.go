package config

import (
	"fmt"

	middlewares "edubot/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
)

// InitApp khởi tạo gin engine, cron và các thành phần dùng chung
func InitApp() (*gin.Engine, *cron.Cron, *Config, error) {
	LoadEnv()

	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %v", err)
	}

	router := gin.Default()

	// Cho phép mọi origin kèm credentials, giống bản gốc
	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))
	router.Use(middlewares.RequestIDMiddleware())

	router.SetTrustedProxies(nil)

	if err := ConnectDB(cfg.DatabaseURL); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize components: %v", err)
	}

	c := cron.New()

	return router, c, cfg, nil
}
