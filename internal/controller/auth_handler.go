package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/service"
	"go.uber.org/zap"
)

const refreshTokenCookie = "RefreshToken"

// refresh токен живёт 30 дней, как и в сервисе авторизации
const refreshTokenCookieMaxAge = 30 * 24 * 60 * 60

// setRefreshTokenCookie кладёт refresh токен в httpOnly cookie
func setRefreshTokenCookie(ctx *gin.Context, refreshToken string) {
	ctx.SetCookie(refreshTokenCookie, refreshToken, refreshTokenCookieMaxAge, "/", "", false, true)
}

// login проверяет логин и пароль веб-интерфейса и выдаёт пару токенов
func (c *Controller) login(ctx *gin.Context) {
	var request dto.Login
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid login request"})
		return
	}

	user, refreshToken, err := c.authService.Login(ctx.Request.Context(), request.Login, request.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if err != nil {
		c.logger.Error("Failed to login", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	setRefreshTokenCookie(ctx, refreshToken)
	ctx.JSON(http.StatusOK, user)
}

// loginBot выдаёт access токен по привязанному Telegram аккаунту
func (c *Controller) loginBot(ctx *gin.Context) {
	telegramID, ok := parseTelegramID(ctx)
	if !ok {
		return
	}

	user, err := c.authService.LoginBot(ctx.Request.Context(), telegramID)
	if errors.Is(err, service.ErrNotAuthorized) {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if err != nil {
		c.logger.Error("Failed to login via bot", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// refresh выдаёт новую пару токенов по refresh токену из cookie
func (c *Controller) refresh(ctx *gin.Context) {
	refreshToken, err := ctx.Cookie(refreshTokenCookie)
	if err != nil {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	studentID, err := strconv.Atoi(ctx.Query("studentId"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid studentId"})
		return
	}

	user, newRefreshToken, err := c.authService.Refresh(ctx.Request.Context(), refreshToken, studentID)
	if errors.Is(err, service.ErrInvalidRefreshToken) {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	if err != nil {
		c.logger.Error("Failed to refresh tokens", zap.Error(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	setRefreshTokenCookie(ctx, newRefreshToken)
	ctx.JSON(http.StatusOK, user)
}
