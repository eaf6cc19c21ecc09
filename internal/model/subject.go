package model

// Идентификаторы типов занятий
const (
	SubjectTypeLaboratory = 1
	SubjectTypePractical  = 2
	SubjectTypeLecture    = 3
)

// Subject представляет учебный предмет
type Subject struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	ShortName       string `json:"shortName"`
	LaboratoryCount int    `json:"laboratoryCount"`
	PracticalCount  int    `json:"practicalCount"`
}

// SubjectType представляет тип занятия (лабораторная, практика, лекция)
type SubjectType struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
}
