package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getSubjectsInformation отдаёт боту сводку по предметам
func (c *Controller) getSubjectsInformation(ctx *gin.Context) {
	subjects, err := c.informationService.GetSubjectsInformation(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to get subjects information", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// getStudentsInformation отдаёт боту список студентов группы
func (c *Controller) getStudentsInformation(ctx *gin.Context) {
	students, err := c.informationService.GetStudentsInformation(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to get students information", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, students)
}
