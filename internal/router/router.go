package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/studytrack/internal/config"
	"github.com/studytrack/internal/db"
	"github.com/studytrack/internal/handler"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("studytrack_session", store))

	api := handler.NewAPI(db.DB, cfg)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/login", api.Login)
		apiGroup.POST("/logout", api.Logout)

		// 需要认证的路由
		auth := apiGroup.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/dashboard", api.GetDashboard)

			auth.GET("/ledger", api.GetLedger)
			auth.POST("/ledger/days", api.UpsertDay)
			auth.GET("/ledger/days/:day", api.GetDay)
			auth.DELETE("/ledger/days/:day", api.DeleteDay)

			auth.GET("/plan/phases", api.GetPhases)
			auth.GET("/plan/days/:day", api.GetPlanDay)

			auth.GET("/habits/days/:day", api.GetDayHabits)
			auth.POST("/habits/days/:day/toggle", api.ToggleHabit)
			auth.POST("/habits/custom", api.CreateCustomHabit)
			auth.DELETE("/habits/custom/:id", api.DeleteCustomHabit)
		}
	}

	return r
}
