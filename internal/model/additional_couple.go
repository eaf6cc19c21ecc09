package model

import "time"

// AdditionalCouple представляет разовую пару вне регулярного расписания
type AdditionalCouple struct {
	ID                    int       `json:"id"`
	Date                  time.Time `json:"date"`
	Time                  string    `json:"time"` // формат HH:MM
	SubjectID             int       `json:"subjectId"`
	SubjectTypeID         int       `json:"subjectTypeId"`
	SubgroupID            *int      `json:"subgroupId"` // nil - пара для всей группы
	Cabinet               string    `json:"cabinet"`
	Link                  string    `json:"link"`
	AdditionalInformation string    `json:"additionalInformation"`

	// Связанные данные, заполняются репозиторием через JOIN
	Subject     *Subject     `json:"subject,omitempty"`
	SubjectType *SubjectType `json:"subjectType,omitempty"`
}
