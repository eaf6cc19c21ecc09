package model

import "time"

// WorkDeadline представляет дедлайн сдачи работы по предмету
type WorkDeadline struct {
	ID            int        `json:"id"`
	SubjectID     int        `json:"subjectId"`
	SubjectTypeID int        `json:"subjectTypeId"`
	Name          string     `json:"name"`
	Deadline      *time.Time `json:"deadline"` // nil - дедлайн ещё не назначен

	// Связанные данные, заполняются репозиторием через JOIN
	Subject     *Subject     `json:"subject,omitempty"`
	SubjectType *SubjectType `json:"subjectType,omitempty"`
}
