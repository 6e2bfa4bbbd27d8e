package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/internal/service"
)

type togglePayload struct {
	HabitID string `json:"habitId"`
}

type customHabitPayload struct {
	Label string `json:"label"`
}

// GetDayHabits 返回某天的打卡记录、完整习惯目录与完成摘要。
func (a *API) GetDayHabits(c *gin.Context) {
	day, err := parseDayParam(c, "day")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	record, err := a.habits.Record(day)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取打卡记录失败")
		return
	}

	catalog, err := a.habits.Catalog()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取习惯目录失败")
		return
	}

	summary, err := a.habits.Summary(day)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "统计打卡进度失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record":  record,
		"habits":  catalog,
		"summary": summary,
	})
}

// ToggleHabit 翻转某天某个习惯的勾选状态。
func (a *API) ToggleHabit(c *gin.Context) {
	day, err := parseDayParam(c, "day")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	var payload togglePayload
	if !bindJSON(c, &payload, "无效的打卡参数") {
		return
	}

	record, err := a.habits.Toggle(day, payload.HabitID)
	if err != nil {
		if errors.Is(err, service.ErrHabitIDRequired) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "保存打卡记录失败")
		return
	}

	summary, err := a.habits.Summary(day)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "统计打卡进度失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"record":  record,
		"summary": summary,
	})
}

// CreateCustomHabit 新建自定义习惯。
func (a *API) CreateCustomHabit(c *gin.Context) {
	var payload customHabitPayload
	if !bindJSON(c, &payload, "无效的习惯参数") {
		return
	}

	habit, err := a.habits.AddCustomHabit(payload.Label)
	if err != nil {
		if errors.Is(err, service.ErrHabitLabelRequired) {
			respondError(c, http.StatusUnprocessableEntity, "习惯名称不能为空")
			return
		}
		respondError(c, http.StatusInternalServerError, "创建习惯失败")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"habit": habit})
}

// DeleteCustomHabit 删除自定义习惯并返回剩余自定义目录。
// 不存在的 id 是幂等空操作。
func (a *API) DeleteCustomHabit(c *gin.Context) {
	habits, err := a.habits.RemoveCustomHabit(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "删除习惯失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": habits})
}
