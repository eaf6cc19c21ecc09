package model

import (
	"crypto/hmac"
	"crypto/sha512"
)

// WebAuthentication представляет учётные данные студента для входа в веб-интерфейс
type WebAuthentication struct {
	ID           int    `json:"-"`
	StudentID    int    `json:"-"`
	Login        string `json:"-"`
	PasswordSalt []byte `json:"-"`
	PasswordHash []byte `json:"-"`
}

// VerifyPassword проверяет пароль по HMAC-SHA512 хешу с солью
func (w *WebAuthentication) VerifyPassword(password string) bool {
	mac := hmac.New(sha512.New, w.PasswordSalt)
	mac.Write([]byte(password))
	return hmac.Equal(mac.Sum(nil), w.PasswordHash)
}
