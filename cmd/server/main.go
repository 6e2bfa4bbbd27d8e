package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/internal/config"
	"github.com/studytrack/internal/db"
	"github.com/studytrack/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 确保面板账号存在
	if err := db.EnsureUser(cfg.DashboardUserName, cfg.DashboardPassword); err != nil {
		log.Fatalf("failed to ensure dashboard user: %v", err)
	}

	// 设置并运行 Gin 服务器
	r := router.SetupRouter(cfg)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
