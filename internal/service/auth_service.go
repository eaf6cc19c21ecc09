package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/model"
	"go.uber.org/zap"
)

// Ошибки авторизации веб-интерфейса
var (
	ErrInvalidCredentials  = errors.New("invalid user login or password")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrNotAuthorized       = errors.New("not authorized student")
)

const (
	accessTokenTTL  = 60 * time.Minute
	refreshTokenTTL = 30 * 24 * time.Hour
)

// WebAuthenticationSource поставляет учётные данные веб-интерфейса
type WebAuthenticationSource interface {
	GetByLogin(ctx context.Context, login string) (*model.WebAuthentication, error)
}

// StudentIDSource поставляет студентов по ID и Telegram аккаунту
type StudentIDSource interface {
	GetByID(ctx context.Context, id int) (*model.Student, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.Student, error)
}

// AuthService выдаёт и проверяет JWT токены веб-интерфейса
type AuthService struct {
	webAuth       WebAuthenticationSource
	students      StudentIDSource
	accessSecret  []byte
	refreshSecret []byte
	logger        *zap.Logger
}

// NewAuthService создаёт новый сервис авторизации
func NewAuthService(
	webAuth WebAuthenticationSource,
	students StudentIDSource,
	accessSecret, refreshSecret string,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		webAuth:       webAuth,
		students:      students,
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		logger:        logger,
	}
}

// Login проверяет логин и пароль и выдаёт пользователя с парой токенов
func (s *AuthService) Login(ctx context.Context, login, password string) (*dto.User, string, error) {
	auth, err := s.webAuth.GetByLogin(ctx, login)
	if err != nil {
		return nil, "", fmt.Errorf("get web authentication: %w", err)
	}

	if auth == nil || !auth.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	student, err := s.students.GetByID(ctx, auth.StudentID)
	if err != nil {
		return nil, "", fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, "", ErrInvalidCredentials
	}

	return s.issueTokens(student)
}

// LoginBot выдаёт пользователя с access токеном по привязанному Telegram аккаунту
func (s *AuthService) LoginBot(ctx context.Context, telegramID int64) (*dto.User, error) {
	student, err := s.students.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get student by telegram id: %w", err)
	}
	if student == nil {
		return nil, ErrNotAuthorized
	}

	accessToken, err := s.signAccessToken(student.ID)
	if err != nil {
		return nil, err
	}

	return &dto.User{
		StudentID: student.ID,
		UserName:  student.Name,
		JwtToken:  accessToken,
	}, nil
}

// Refresh проверяет refresh токен и выдаёт новую пару токенов
func (s *AuthService) Refresh(ctx context.Context, refreshToken string, studentID int) (*dto.User, string, error) {
	if !s.validateRefreshToken(refreshToken, studentID) {
		return nil, "", ErrInvalidRefreshToken
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, "", fmt.Errorf("get student: %w", err)
	}
	if student == nil {
		return nil, "", ErrInvalidRefreshToken
	}

	return s.issueTokens(student)
}

// ParseAccessToken проверяет access токен и возвращает ID студента
func (s *AuthService) ParseAccessToken(tokenString string) (int, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return 0, fmt.Errorf("parse access token: %w", err)
	}
	if !token.Valid {
		return 0, fmt.Errorf("parse access token: invalid token")
	}

	id, ok := claims["id"].(string)
	if !ok {
		return 0, fmt.Errorf("parse access token: missing id claim")
	}

	studentID, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("parse access token: %w", err)
	}

	return studentID, nil
}

func (s *AuthService) issueTokens(student *model.Student) (*dto.User, string, error) {
	accessToken, err := s.signAccessToken(student.ID)
	if err != nil {
		return nil, "", err
	}

	refreshToken, err := s.signRefreshToken(student.ID)
	if err != nil {
		return nil, "", err
	}

	return &dto.User{
		StudentID: student.ID,
		UserName:  student.Name,
		JwtToken:  accessToken,
	}, refreshToken, nil
}

func (s *AuthService) signAccessToken(studentID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  strconv.Itoa(studentID),
		"exp": jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
	})

	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) signRefreshToken(studentID int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  strconv.Itoa(studentID),
		"exp": jwt.NewNumericDate(time.Now().Add(refreshTokenTTL)),
	})

	signed, err := token.SignedString(s.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) validateRefreshToken(tokenString string, studentID int) bool {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.refreshSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		s.logger.Debug("Refresh token validation failed", zap.Error(err))
		return false
	}

	id, ok := claims["id"].(string)
	if !ok {
		return false
	}

	return id == strconv.Itoa(studentID)
}
