package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseDayParam(c *gin.Context, key string) (int, error) {
	raw := c.Param(key)
	day, err := strconv.Atoi(raw)
	if err != nil || day < 1 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return day, nil
}
