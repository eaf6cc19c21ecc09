package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository/base"
	"go.uber.org/zap"
)

// CoupleTimeRepository управляет временными слотами пар в базе данных
type CoupleTimeRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewCoupleTimeRepository создаёт новый репозиторий
func NewCoupleTimeRepository(pool *pgxpool.Pool, logger *zap.Logger) *CoupleTimeRepository {
	return &CoupleTimeRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// ListOrdered получает все временные слоты, упорядоченные по номеру пары
func (r *CoupleTimeRepository) ListOrdered(ctx context.Context) ([]*model.CoupleTime, error) {
	query := `
		SELECT id, index, to_char(time_start, 'HH24:MI'), to_char(time_end, 'HH24:MI')
		FROM couple_times
		ORDER BY index
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list couple times: %w", err)
	}
	defer rows.Close()

	var times []*model.CoupleTime
	for rows.Next() {
		coupleTime := &model.CoupleTime{}
		err := rows.Scan(&coupleTime.ID, &coupleTime.Index, &coupleTime.TimeStart, &coupleTime.TimeEnd)
		if err != nil {
			return nil, fmt.Errorf("scan couple time: %w", err)
		}
		times = append(times, coupleTime)
	}

	return times, rows.Err()
}
