package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const studentIDKey = "studentID"

// botTokenMiddleware проверяет статический токен бота в заголовке X-Bot-Token
func (c *Controller) botTokenMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("X-Bot-Token")
		if token == "" || token != c.botToken {
			c.logger.Warn("Bot request with invalid token", zap.String("path", ctx.Request.URL.Path))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Next()
	}
}

// jwtMiddleware проверяет Bearer токен веб-интерфейса
// и кладёт ID студента в контекст запроса
func (c *Controller) jwtMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		studentID, err := c.authService.ParseAccessToken(token)
		if err != nil {
			c.logger.Debug("Access token rejected", zap.Error(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		ctx.Set(studentIDKey, studentID)
		ctx.Next()
	}
}
