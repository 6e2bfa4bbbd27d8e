package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/internal/plan"
	"github.com/studytrack/internal/service"
)

type chartPoint struct {
	Day     int    `json:"day"`
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
	Vocab   int    `json:"vocab"`
}

// GetDashboard 组装进度面板所需的全部派生数据。
// 当前天数等于台账长度；技能雷达默认取当前阶段，可用 ?phase= 切换。
func (a *API) GetDashboard(c *gin.Context) {
	entries, err := a.ledger.All()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取台账失败")
		return
	}

	currentDay := len(entries)
	currentPhase := plan.PhaseForDay(currentDay)
	currentWeek := plan.WeekNumber(currentDay)

	selectedPhase := currentPhase
	if raw := c.Query("phase"); raw != "" {
		if id, err := strconv.Atoi(raw); err == nil {
			if phase, ok := plan.PhaseByID(id); ok {
				selectedPhase = phase
			}
		}
	}

	stats := service.Aggregate(entries)

	completionRate := 0
	avgMinutes := 0
	avgVocab := 0
	if currentDay > 0 {
		completionRate = int(math.Round(float64(stats.CompletedDays) / float64(currentDay) * 100))
		avgMinutes = int(math.Round(float64(stats.TotalMinutes) / float64(currentDay)))
		avgVocab = int(math.Round(float64(stats.TotalVocab) / float64(currentDay)))
	}

	phases := make([]gin.H, 0, len(plan.Phases()))
	for _, phase := range plan.Phases() {
		phases = append(phases, gin.H{
			"phase":    phase,
			"progress": service.ProgressForPhase(entries, phase),
			"active":   currentDay >= phase.DayRange[0] && currentDay <= phase.DayRange[1],
		})
	}

	chart := make([]chartPoint, 0, len(entries))
	for _, entry := range entries {
		chart = append(chart, chartPoint{
			Day:     entry.Day,
			Name:    "Day " + strconv.Itoa(entry.Day),
			Minutes: entry.MinutesStudied,
			Vocab:   entry.VocabLearned,
		})
	}

	habitSummary := service.HabitSummary{}
	if currentDay >= 1 {
		if summary, err := a.habits.Summary(currentDay); err == nil {
			habitSummary = summary
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"currentDay":     currentDay,
		"totalDays":      plan.TotalDays,
		"daysRemaining":  plan.TotalDays - currentDay,
		"currentPhase":   currentPhase,
		"currentWeek":    currentWeek,
		"stats":          stats,
		"completionRate": completionRate,
		"avgMinutes":     avgMinutes,
		"avgVocab":       avgVocab,
		"phases":         phases,
		"skills":         service.SkillProficiency(entries, selectedPhase),
		"chart":          chart,
		"calendar":       service.CalendarProjection(entries, plan.TotalDays),
		"habitSummary":   habitSummary,
		"quote":          plan.QuoteForDay(currentDay),
	})
}
