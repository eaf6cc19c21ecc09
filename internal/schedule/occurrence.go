package schedule

import (
	"time"

	"github.com/olekhw/deputy_api/internal/model"
)

// DateOnly нормализует время к полуночи UTC, оставляя только календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsoWeekday возвращает номер дня недели: 1 = понедельник, 7 = воскресенье
func IsoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		return 7
	}
	return weekday
}

// IsVisible проверяет видимость пары для подгруппы студента.
// Пара без подгруппы видна всем; если подгруппа студента неизвестна,
// пара с подгруппой считается чужой.
func IsVisible(coupleSubgroupID, studentSubgroupID *int) bool {
	if coupleSubgroupID == nil {
		return true
	}
	if studentSubgroupID == nil {
		return false
	}
	return *coupleSubgroupID == *studentSubgroupID
}

// OccursOn решает, проходит ли пара по шаблону в указанную дату.
// Правила проверяются строго по приоритету, первое сработавшее решает:
//  1. добавляющее исключение на дату - пара есть, что бы ни говорил шаблон;
//  2. убирающее исключение на дату - пары нет;
//  3. шаблон без даты начала не генерирует регулярных пар;
//  4. дата вне границ шаблона - пары нет;
//  5. для "плавающей" пары нечётная неделя от даты начала - пары нет.
//
// Совпадение дня недели не проверяется: вызывающий обязан заранее отобрать
// шаблоны по дню недели даты.
func OccursOn(couple *model.Couple, exceptions []*model.CoupleDate, date time.Time) bool {
	date = DateOnly(date)

	for _, exception := range exceptions {
		if !exception.IsRemovedDate && DateOnly(exception.Date).Equal(date) {
			return true
		}
	}

	for _, exception := range exceptions {
		if exception.IsRemovedDate && DateOnly(exception.Date).Equal(date) {
			return false
		}
	}

	if couple.StartDate == nil {
		return false
	}

	startDate := DateOnly(*couple.StartDate)
	if date.Before(startDate) {
		return false
	}
	if couple.EndDate != nil && date.After(DateOnly(*couple.EndDate)) {
		return false
	}

	weekSpan := int(date.Sub(startDate)/(24*time.Hour)) / 7
	if couple.IsRolling && weekSpan%2 == 1 {
		return false
	}

	return true
}
