package dto

import (
	"time"

	"github.com/olekhw/deputy_api/internal/model"
)

// Login запрос входа в веб-интерфейс
type Login struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// User авторизованный пользователь веб-интерфейса
type User struct {
	StudentID int    `json:"studentId"`
	UserName  string `json:"userName"`
	JwtToken  string `json:"jwtToken"`
}

// CoupleDate дата-исключение шаблона пары
type CoupleDate struct {
	ID   int       `json:"id"`
	Date time.Time `json:"date"`
}

// Couple шаблон пары с раздельными списками добавленных и убранных дат
type Couple struct {
	model.Couple
	AdditionalDates []CoupleDate `json:"additionalDates"`
	RemovedDates    []CoupleDate `json:"removedDates"`
}
