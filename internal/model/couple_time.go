package model

import "fmt"

// CoupleTime представляет фиксированный временной слот пары
type CoupleTime struct {
	ID        int    `json:"id"`
	Index     int    `json:"index"`     // порядковый номер пары, начиная с 1
	TimeStart string `json:"timeStart"` // формат HH:MM
	TimeEnd   string `json:"timeEnd"`   // формат HH:MM
}

// TimeRange возвращает диапазон времени пары
func (ct *CoupleTime) TimeRange() string {
	return fmt.Sprintf("%s-%s", ct.TimeStart, ct.TimeEnd)
}
