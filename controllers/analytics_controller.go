package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	Svc    *services.AnalyticsService
	Impact *services.ImpactService
}

func NewAnalyticsController(svc *services.AnalyticsService, impact *services.ImpactService) *AnalyticsController {
	return &AnalyticsController{Svc: svc, Impact: impact}
}

func dateQuery(c *gin.Context, key string) (time.Time, bool) {
	raw := c.Query(key)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": key + " query parameter is required (YYYY-MM-DD)"})
		return time.Time{}, false
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + key + " format. Use YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (ac *AnalyticsController) GetSingleDay(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	date, ok := dateQuery(c, "date")
	if !ok {
		return
	}

	report, err := ac.Svc.SingleDay(c.Request.Context(), userID, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (ac *AnalyticsController) GetMonthly(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 1970 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return
	}

	report, err := ac.Svc.Monthly(c.Request.Context(), userID, year, month)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (ac *AnalyticsController) GetWeekly(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	start, ok := dateQuery(c, "week_start")
	if !ok {
		return
	}

	report, err := ac.Svc.Weekly(c.Request.Context(), userID, start)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (ac *AnalyticsController) GetSdgImpact(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	start, ok := dateQuery(c, "week_start")
	if !ok {
		return
	}

	report, err := ac.Impact.Report(c.Request.Context(), userID, start)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
