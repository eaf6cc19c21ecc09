package model

import "time"

// Couple представляет шаблон регулярной пары
type Couple struct {
	ID                    int        `json:"id"`
	DayOfWeekID           int        `json:"dayOfWeekId"` // 1 = понедельник, 7 = воскресенье
	CoupleTimeID          int        `json:"coupleTimeId"`
	SubjectID             int        `json:"subjectId"`
	SubjectTypeID         int        `json:"subjectTypeId"`
	SubgroupID            *int       `json:"subgroupId"` // nil - пара для всей группы
	StartDate             *time.Time `json:"startDate"`  // nil - пара без регулярных повторений
	EndDate               *time.Time `json:"endDate"`
	IsRolling             bool       `json:"isRolling"` // true - пара повторяется раз в две недели
	Cabinet               string     `json:"cabinet"`
	Link                  string     `json:"link"`
	AdditionalInformation string     `json:"additionalInformation"`

	// Связанные данные, заполняются репозиторием через JOIN
	Subject     *Subject     `json:"subject,omitempty"`
	SubjectType *SubjectType `json:"subjectType,omitempty"`
	CoupleTime  *CoupleTime  `json:"coupleTime,omitempty"`
}

// CoupleDate представляет исключение из регулярного расписания на конкретную дату
type CoupleDate struct {
	ID            int       `json:"id"`
	CoupleID      int       `json:"coupleId"`
	Date          time.Time `json:"date"`
	IsRemovedDate bool      `json:"isRemovedDate"` // true - убрать пару с даты, false - добавить пару на дату
}
