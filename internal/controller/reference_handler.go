package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olekhw/deputy_api/internal/model"
	"go.uber.org/zap"
)

// listSubjectTypes отдаёт справочник типов занятий
func (c *Controller) listSubjectTypes(ctx *gin.Context) {
	types, err := c.subjectTypes.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to list subject types", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, types)
}

// listSubjects отдаёт предметы группы
func (c *Controller) listSubjects(ctx *gin.Context) {
	subjects, err := c.subjects.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to list subjects", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, subjects)
}

// createSubject создаёт предмет
func (c *Controller) createSubject(ctx *gin.Context) {
	var subject model.Subject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid subject"})
		return
	}

	if err := c.subjects.Create(ctx.Request.Context(), &subject); err != nil {
		c.logger.Error("Failed to create subject", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, subject)
}

// updateSubject обновляет предмет
func (c *Controller) updateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var subject model.Subject
	if err := ctx.ShouldBindJSON(&subject); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid subject"})
		return
	}
	subject.ID = id

	if err := c.subjects.Update(ctx.Request.Context(), &subject); err != nil {
		c.logger.Error("Failed to update subject", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, subject)
}

// deleteSubject удаляет предмет
func (c *Controller) deleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.subjects.Delete(ctx.Request.Context(), id); err != nil {
		c.logger.Error("Failed to delete subject", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.Status(http.StatusOK)
}

// listStudents отдаёт студентов группы
func (c *Controller) listStudents(ctx *gin.Context) {
	students, err := c.students.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to list students", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, students)
}

// createStudent создаёт студента
func (c *Controller) createStudent(ctx *gin.Context) {
	var student model.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid student"})
		return
	}

	if err := c.students.Create(ctx.Request.Context(), &student); err != nil {
		c.logger.Error("Failed to create student", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, student)
}

// updateStudent обновляет студента
func (c *Controller) updateStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var student model.Student
	if err := ctx.ShouldBindJSON(&student); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid student"})
		return
	}
	student.ID = id

	if err := c.students.Update(ctx.Request.Context(), &student); err != nil {
		c.logger.Error("Failed to update student", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, student)
}

// deleteStudent удаляет студента
func (c *Controller) deleteStudent(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.students.Delete(ctx.Request.Context(), id); err != nil {
		c.logger.Error("Failed to delete student", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.Status(http.StatusOK)
}

// listDeadlines отдаёт дедлайны работ, ближайшие первыми
func (c *Controller) listDeadlines(ctx *gin.Context) {
	deadlines, err := c.deadlineService.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Failed to list deadlines", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, deadlines)
}

// createDeadline создаёт дедлайн
func (c *Controller) createDeadline(ctx *gin.Context) {
	var deadline model.WorkDeadline
	if err := ctx.ShouldBindJSON(&deadline); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid deadline"})
		return
	}

	if err := c.deadlineService.Create(ctx.Request.Context(), &deadline); err != nil {
		c.logger.Error("Failed to create deadline", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusCreated, deadline)
}

// updateDeadline обновляет дедлайн
func (c *Controller) updateDeadline(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var deadline model.WorkDeadline
	if err := ctx.ShouldBindJSON(&deadline); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid deadline"})
		return
	}
	deadline.ID = id

	if err := c.deadlineService.Update(ctx.Request.Context(), &deadline); err != nil {
		c.logger.Error("Failed to update deadline", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, deadline)
}

// deleteDeadline удаляет дедлайн
func (c *Controller) deleteDeadline(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.deadlineService.Delete(ctx.Request.Context(), id); err != nil {
		c.logger.Error("Failed to delete deadline", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.Status(http.StatusOK)
}
