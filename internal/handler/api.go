package handler

import (
	"time"

	"github.com/studytrack/internal/config"
	"github.com/studytrack/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db         *gorm.DB
	ledger     *service.LedgerService
	habits     *service.HabitService
	startDate  time.Time
	loginDelay time.Duration
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, cfg config.AppConfig) *API {
	store := service.NewGormStateStore(gdb)

	return &API{
		db:         gdb,
		ledger:     service.NewLedgerService(store, cfg.ProgramStartDate),
		habits:     service.NewHabitService(store),
		startDate:  cfg.ProgramStartDate,
		loginDelay: cfg.LoginDelay,
	}
}
