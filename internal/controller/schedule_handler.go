package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olekhw/deputy_api/internal/controller/weekimage"
	"go.uber.org/zap"
)

// parseTelegramID читает идентификатор Telegram аккаунта из query параметра
func parseTelegramID(ctx *gin.Context) (int64, bool) {
	telegramID, err := strconv.ParseInt(ctx.Query("telegramId"), 10, 64)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid telegramId"})
		return 0, false
	}
	return telegramID, true
}

// parseDate читает дату в формате 2006-01-02 из query параметра
func parseDate(ctx *gin.Context) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return time.Time{}, false
	}
	return date, true
}

// getDaySchedule отдаёт боту расписание студента на дату
func (c *Controller) getDaySchedule(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}
	date, ok := parseDate(ctx)
	if !ok {
		return
	}

	day, err := c.scheduleService.GetDaySchedule(ctx.Request.Context(), telegramID, date)
	if err != nil {
		c.logger.Error("Failed to get day schedule", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if day == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, day)
}

// getWeekSchedule отдаёт боту расписание студента на неделю
func (c *Controller) getWeekSchedule(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}
	date, ok := parseDate(ctx)
	if !ok {
		return
	}

	week, err := c.scheduleService.GetWeekSchedule(ctx.Request.Context(), telegramID, date)
	if err != nil {
		c.logger.Error("Failed to get week schedule", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if week == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, week)
}

// getWeekScheduleImage отдаёт боту расписание на неделю картинкой
func (c *Controller) getWeekScheduleImage(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}
	date, ok := parseDate(ctx)
	if !ok {
		return
	}

	week, err := c.scheduleService.GetWeekSchedule(ctx.Request.Context(), telegramID, date)
	if err != nil {
		c.logger.Error("Failed to get week schedule", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if week == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	image, err := weekimage.Render(week)
	if err != nil {
		c.logger.Error("Failed to render week image", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.Data(http.StatusOK, "image/png", image)
}
