package dto

import "github.com/olekhw/deputy_api/internal/schedule"

// ScheduleDay расписание на один день для бота
type ScheduleDay struct {
	Date    string                `json:"date"` // формат dd.MM
	Couples []schedule.CoupleData `json:"couples"`
}

// ScheduleWeek расписание на неделю для бота
type ScheduleWeek struct {
	CoupleTimes  []string      `json:"coupleTimes"`
	ScheduleDays []ScheduleDay `json:"scheduleDays"`
}

// SubjectInformation сводка по предмету с количеством оставшихся дней занятий
type SubjectInformation struct {
	Name                string `json:"name"`
	ShortName           string `json:"shortName"`
	LaboratoryCount     int    `json:"laboratoryCount"`
	PracticalCount      int    `json:"practicalCount"`
	LaboratoryDaysCount int    `json:"laboratoryDaysCount"`
	PracticalDaysCount  int    `json:"practicalDaysCount"`
	LecturesDaysCount   int    `json:"lecturesDaysCount"`
}

// StudentInformation сводка по студенту для бота
type StudentInformation struct {
	Index      int    `json:"index"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Patronymic string `json:"patronymic"`
	Subgroup   string `json:"subgroup"`
}

// StudentContact контакт, который бот присылает при авторизации
type StudentContact struct {
	TelegramID int64  `json:"telegramId"`
	Phone      string `json:"phone"`
}

// StudentSettings настройки бота для студента
type StudentSettings struct {
	TelegramID      int64  `json:"telegramId"`
	Language        string `json:"language"`
	ScheduleCompact bool   `json:"scheduleCompact"`
	RemindDeadlines bool   `json:"remindDeadlines"`
}
