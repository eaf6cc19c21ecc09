package schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
)

// CoupleData представляет одну пару в расписании на день
type CoupleData struct {
	Subject               string `json:"subject"`
	SubjectType           string `json:"subjectType"`
	CoupleIndex           int    `json:"coupleIndex"` // номер слота с нуля, для выравнивания по колонкам
	Time                  string `json:"time"`
	IsMySubgroup          bool   `json:"isMySubgroup"`
	Cabinet               string `json:"cabinet"`
	Link                  string `json:"link"`
	AdditionalInformation string `json:"additionalInformation"`
}

// Day представляет расписание на один день
type Day struct {
	Date    time.Time
	Couples []CoupleData
}

// Week представляет расписание на календарную неделю с понедельника
type Week struct {
	CoupleTimes []string
	Days        []Day
}

// Resolver вычисляет расписание на день и неделю из шаблонов,
// исключений и разовых пар
type Resolver struct {
	couples    CoupleSource
	exceptions ExceptionSource
	additional AdditionalCoupleSource
	times      CoupleTimeSource
	logger     *zap.Logger
}

// NewResolver создаёт новый resolver расписания
func NewResolver(
	couples CoupleSource,
	exceptions ExceptionSource,
	additional AdditionalCoupleSource,
	times CoupleTimeSource,
	logger *zap.Logger,
) *Resolver {
	return &Resolver{
		couples:    couples,
		exceptions: exceptions,
		additional: additional,
		times:      times,
		logger:     logger,
	}
}

// ResolveDay возвращает упорядоченный список пар студента на дату.
// Пары чужой подгруппы не выбрасываются, а сортируются после своих.
func (r *Resolver) ResolveDay(ctx context.Context, subgroupID *int, date time.Time) (*Day, error) {
	date = DateOnly(date)

	couples, err := r.couples.ListByWeekday(ctx, IsoWeekday(date))
	if err != nil {
		return nil, fmt.Errorf("list couples by weekday: %w", err)
	}

	coupleIDs := make([]int, 0, len(couples))
	for _, couple := range couples {
		coupleIDs = append(coupleIDs, couple.ID)
	}

	exceptions, err := r.exceptions.MapByCoupleIDs(ctx, coupleIDs)
	if err != nil {
		return nil, fmt.Errorf("map couple exceptions: %w", err)
	}

	coupleData := make([]CoupleData, 0, len(couples))
	for _, couple := range couples {
		if !OccursOn(couple, exceptions[couple.ID], date) {
			continue
		}

		coupleData = append(coupleData, CoupleData{
			Subject:               couple.Subject.ShortName,
			SubjectType:           couple.SubjectType.ShortName,
			CoupleIndex:           couple.CoupleTime.Index - 1,
			Time:                  couple.CoupleTime.TimeStart,
			IsMySubgroup:          IsVisible(couple.SubgroupID, subgroupID),
			Cabinet:               couple.Cabinet,
			Link:                  couple.Link,
			AdditionalInformation: couple.AdditionalInformation,
		})
	}

	additionalCouples, err := r.additional.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list additional couples by date: %w", err)
	}

	for _, additional := range additionalCouples {
		coupleData = append(coupleData, CoupleData{
			Subject:               additional.Subject.ShortName,
			SubjectType:           additional.SubjectType.ShortName,
			Time:                  additional.Time,
			IsMySubgroup:          IsVisible(additional.SubgroupID, subgroupID),
			Cabinet:               additional.Cabinet,
			Link:                  additional.Link,
			AdditionalInformation: additional.AdditionalInformation,
		})
	}

	// Сначала пары своей подгруппы, внутри - по времени начала.
	// Формат времени фиксированной ширины, строкового сравнения достаточно.
	sort.SliceStable(coupleData, func(i, j int) bool {
		if coupleData[i].IsMySubgroup != coupleData[j].IsMySubgroup {
			return coupleData[i].IsMySubgroup
		}
		return coupleData[i].Time < coupleData[j].Time
	})

	return &Day{Date: date, Couples: coupleData}, nil
}

// ResolveWeek возвращает расписание на календарную неделю, содержащую дату.
// Неделя всегда начинается с понедельника и содержит ровно 7 дней.
func (r *Resolver) ResolveWeek(ctx context.Context, subgroupID *int, anchor time.Time) (*Week, error) {
	anchor = DateOnly(anchor)
	startOfWeek := anchor.AddDate(0, 0, -((IsoWeekday(anchor) + 6) % 7))

	week := &Week{Days: make([]Day, 0, 7)}

	for i := 0; i < 7; i++ {
		day, err := r.ResolveDay(ctx, subgroupID, startOfWeek.AddDate(0, 0, i))
		if err != nil {
			return nil, err
		}
		week.Days = append(week.Days, *day)
	}

	times, err := r.times.ListOrdered(ctx)
	if err != nil {
		return nil, fmt.Errorf("list couple times: %w", err)
	}

	for _, coupleTime := range times {
		week.CoupleTimes = append(week.CoupleTimes, coupleTime.TimeRange())
	}

	return week, nil
}
