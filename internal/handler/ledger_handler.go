package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studytrack/internal/service"
)

// GetLedger 返回完整台账，按天数升序。
func (a *API) GetLedger(c *gin.Context) {
	entries, err := a.ledger.All()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "读取台账失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// UpsertDay 以草稿保存一天的记录并返回重算后的完整台账。
func (a *API) UpsertDay(c *gin.Context) {
	var draft service.LogEntryDraft
	if !bindJSON(c, &draft, "无效的记录参数") {
		return
	}

	entries, err := a.ledger.Upsert(draft)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDay),
			errors.Is(err, service.ErrMinutesOutOfRange),
			errors.Is(err, service.ErrVocabOutOfRange):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, "保存记录失败")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetDay 返回指定天的记录，笔记同时以渲染后的 HTML 返回。
func (a *API) GetDay(c *gin.Context) {
	day, err := parseDayParam(c, "day")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entry, err := a.ledger.Entry(day)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			respondError(c, http.StatusNotFound, "该天尚无记录")
			return
		}
		respondError(c, http.StatusInternalServerError, "读取记录失败")
		return
	}

	notesHTML, err := renderMarkdown(entry.Notes)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "渲染笔记失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entry":     entry,
		"notesHtml": notesHTML,
	})
}

// DeleteDay 删除指定天的记录并返回重算后的台账。不存在的天是幂等空操作。
func (a *API) DeleteDay(c *gin.Context) {
	day, err := parseDayParam(c, "day")
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entries, err := a.ledger.Remove(day)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "删除记录失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
