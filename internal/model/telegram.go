package model

// Telegram представляет привязку студента к Telegram аккаунту и его настройки бота
type Telegram struct {
	ID              int    `json:"id"`
	StudentID       int    `json:"studentId"`
	TelegramID      int64  `json:"telegramId"`
	Language        string `json:"language"`
	ScheduleCompact bool   `json:"scheduleCompact"`
	RemindDeadlines bool   `json:"remindDeadlines"`
}
