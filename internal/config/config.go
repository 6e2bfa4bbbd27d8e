package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr        string
	Port              string
	DatabasePath      string
	SessionSecret     string
	GinMode           string
	DashboardUserName string
	DashboardPassword string
	ProgramStartDate  time.Time
	LoginDelay        time.Duration
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "studytrack.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "studytrack-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	dashboardUserName := strings.TrimSpace(os.Getenv("DASHBOARD_USER_NAME"))
	dashboardPassword := strings.TrimSpace(os.Getenv("DASHBOARD_PASSWORD"))

	return AppConfig{
		ListenAddr:        listenAddr,
		Port:              port,
		DatabasePath:      databasePath,
		SessionSecret:     sessionSecret,
		GinMode:           ginMode,
		DashboardUserName: dashboardUserName,
		DashboardPassword: dashboardPassword,
		ProgramStartDate:  loadStartDate(),
		LoginDelay:        loadLoginDelay(),
	}
}

// loadStartDate 解析 90 天计划的起始日期，格式 YYYY-MM-DD。
// 解析失败或未设置时回退到默认起始日。
func loadStartDate() time.Time {
	raw := strings.TrimSpace(os.Getenv("PROGRAM_START_DATE"))
	if raw != "" {
		if parsed, err := time.Parse("2006-01-02", raw); err == nil {
			return parsed
		}
	}
	return time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC)
}

// loadLoginDelay 读取登录接口的人为延迟（毫秒），默认 0 表示不延迟。
func loadLoginDelay() time.Duration {
	raw := strings.TrimSpace(os.Getenv("LOGIN_DELAY_MS"))
	if raw == "" {
		return 0
	}

	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}
