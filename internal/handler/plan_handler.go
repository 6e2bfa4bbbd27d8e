package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/internal/plan"
)

// GetPhases 返回全部课程阶段的参考数据。
func (a *API) GetPhases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"phases": plan.Phases()})
}

// GetPlanDay 返回某天对应的课程安排：日期、阶段、周主题与每日例程。
func (a *API) GetPlanDay(c *gin.Context) {
	day, err := parseDayParam(c, "day")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	phase := plan.PhaseForDay(day)
	weekNumber := plan.WeekNumber(day)

	var week *plan.Week
	for i := range phase.Weeks {
		if phase.Weeks[i].Week == weekNumber {
			week = &phase.Weeks[i]
			break
		}
	}
	if week == nil && len(phase.Weeks) > 0 {
		week = &phase.Weeks[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"day":     day,
		"date":    plan.DateForDay(a.startDate, day).Format("2006-01-02"),
		"phase":   phase,
		"week":    weekNumber,
		"topics":  week,
		"routine": phase.DailyRoutine,
	})
}
