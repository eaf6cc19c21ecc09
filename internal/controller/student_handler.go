package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olekhw/deputy_api/internal/dto"
	"go.uber.org/zap"
)

// authorizeStudent привязывает Telegram аккаунт к студенту по номеру телефона
func (c *Controller) authorizeStudent(ctx *gin.Context) {
	var contact dto.StudentContact
	if err := ctx.ShouldBindJSON(&contact); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid contact"})
		return
	}

	result, err := c.studentService.Authorize(ctx.Request.Context(), &contact)
	if err != nil {
		c.logger.Error("Failed to authorize student", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"result": result})
}

// getStudentSettings отдаёт настройки бота для Telegram аккаунта
func (c *Controller) getStudentSettings(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}

	settings, err := c.studentService.GetSettings(ctx.Request.Context(), telegramID)
	if err != nil {
		c.logger.Error("Failed to get student settings", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if settings == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// updateStudentSettings обновляет настройки бота для Telegram аккаунта
func (c *Controller) updateStudentSettings(ctx *gin.Context) {
	var settings dto.StudentSettings
	if err := ctx.ShouldBindJSON(&settings); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid settings"})
		return
	}

	updated, err := c.studentService.UpdateSettings(ctx.Request.Context(), &settings)
	if err != nil {
		c.logger.Error("Failed to update student settings", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if !updated {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.Status(http.StatusOK)
}
