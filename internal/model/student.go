package model

// Student представляет студента группы
type Student struct {
	ID            int    `json:"id"`
	Index         int    `json:"index"` // номер в журнале группы
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	Patronymic    string `json:"patronymic"`
	SubgroupID    *int   `json:"subgroupId"` // nil - студент не закреплён за подгруппой
	TelegramPhone string `json:"telegramPhone"`
}

// Subgroup представляет подгруппу внутри учебной группы
type Subgroup struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
