package schedule

import (
	"context"
	"time"

	"github.com/olekhw/deputy_api/internal/model"
)

// CoupleSource поставляет шаблоны регулярных пар
type CoupleSource interface {
	ListByWeekday(ctx context.Context, weekday int) ([]*model.Couple, error)
	ListBySubjectAndType(ctx context.Context, subjectID, subjectTypeID int) ([]*model.Couple, error)
}

// ExceptionSource поставляет исключения по датам для шаблонов пар
type ExceptionSource interface {
	MapByCoupleIDs(ctx context.Context, coupleIDs []int) (map[int][]*model.CoupleDate, error)
}

// AdditionalCoupleSource поставляет разовые пары вне регулярного расписания
type AdditionalCoupleSource interface {
	ListByDate(ctx context.Context, date time.Time) ([]*model.AdditionalCouple, error)
	ListBySubjectAndType(ctx context.Context, subjectID, subjectTypeID int) ([]*model.AdditionalCouple, error)
}

// CoupleTimeSource поставляет временные слоты пар
type CoupleTimeSource interface {
	ListOrdered(ctx context.Context) ([]*model.CoupleTime, error)
}
