package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/model"
	"go.uber.org/zap"
)

// parseIDParam читает числовой идентификатор из path параметра
func parseIDParam(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// listCouples отдаёт шаблоны пар на день недели с их исключениями
func (c *Controller) listCouples(ctx *gin.Context) {
	weekday, err := strconv.Atoi(ctx.Query("dayOfWeek"))
	if err != nil || weekday < 1 || weekday > 7 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid dayOfWeek"})
		return
	}

	couples, err := c.coupleService.ListByWeekday(ctx.Request.Context(), weekday)
	if err != nil {
		c.logger.Error("Failed to list couples", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, couples)
}

// createCouple создаёт шаблон пары вместе с исключениями
func (c *Controller) createCouple(ctx *gin.Context) {
	var couple dto.Couple
	if err := ctx.ShouldBindJSON(&couple); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid couple"})
		return
	}

	if err := c.coupleService.Create(ctx.Request.Context(), &couple); err != nil {
		c.logger.Error("Failed to create couple", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, couple)
}

// updateCouple обновляет шаблон пары, полностью заменяя его исключения
func (c *Controller) updateCouple(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var couple dto.Couple
	if err := ctx.ShouldBindJSON(&couple); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid couple"})
		return
	}
	couple.Couple.ID = id

	updated, err := c.coupleService.Update(ctx.Request.Context(), &couple)
	if err != nil {
		c.logger.Error("Failed to update couple", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if !updated {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, couple)
}

// deleteCouple удаляет шаблон пары вместе с исключениями
func (c *Controller) deleteCouple(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	deleted, err := c.coupleService.Delete(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Error("Failed to delete couple", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if !deleted {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.Status(http.StatusOK)
}

// listAdditionalCouples отдаёт разовые пары
func (c *Controller) listAdditionalCouples(ctx *gin.Context) {
	couples, err := c.additionalCouples.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to list additional couples", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, couples)
}

// createAdditionalCouple создаёт разовую пару
func (c *Controller) createAdditionalCouple(ctx *gin.Context) {
	var couple model.AdditionalCouple
	if err := ctx.ShouldBindJSON(&couple); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid additional couple"})
		return
	}

	if err := c.additionalCouples.Create(ctx.Request.Context(), &couple); err != nil {
		c.logger.Error("Failed to create additional couple", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, couple)
}

// updateAdditionalCouple обновляет разовую пару
func (c *Controller) updateAdditionalCouple(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var couple model.AdditionalCouple
	if err := ctx.ShouldBindJSON(&couple); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid additional couple"})
		return
	}
	couple.ID = id

	if err := c.additionalCouples.Update(ctx.Request.Context(), &couple); err != nil {
		c.logger.Error("Failed to update additional couple", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, couple)
}

// deleteAdditionalCouple удаляет разовую пару
func (c *Controller) deleteAdditionalCouple(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.additionalCouples.Delete(ctx.Request.Context(), id); err != nil {
		c.logger.Error("Failed to delete additional couple", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.Status(http.StatusOK)
}

// listCoupleTimes отдаёт слоты времени пар в порядке их следования
func (c *Controller) listCoupleTimes(ctx *gin.Context) {
	times, err := c.coupleTimes.ListOrdered(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to list couple times", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, times)
}
