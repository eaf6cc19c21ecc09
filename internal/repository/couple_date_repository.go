package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository/base"
	"go.uber.org/zap"
)

// CoupleDateRepository управляет исключениями из регулярного расписания.
// Исключения хранятся отдельным отношением couple_id -> даты и
// запрашиваются независимо от шаблонов.
type CoupleDateRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewCoupleDateRepository создаёт новый репозиторий
func NewCoupleDateRepository(pool *pgxpool.Pool, logger *zap.Logger) *CoupleDateRepository {
	return &CoupleDateRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// MapByCoupleIDs получает исключения для набора шаблонов, сгруппированные по couple_id
func (r *CoupleDateRepository) MapByCoupleIDs(ctx context.Context, coupleIDs []int) (map[int][]*model.CoupleDate, error) {
	result := make(map[int][]*model.CoupleDate)
	if len(coupleIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, couple_id, date, is_removed_date
		FROM couple_dates
		WHERE couple_id = ANY($1)
		ORDER BY date
	`

	rows, err := r.Query(ctx, query, coupleIDs)
	if err != nil {
		return nil, fmt.Errorf("map couple dates: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		coupleDate := &model.CoupleDate{}
		err := rows.Scan(&coupleDate.ID, &coupleDate.CoupleID, &coupleDate.Date, &coupleDate.IsRemovedDate)
		if err != nil {
			return nil, fmt.Errorf("scan couple date: %w", err)
		}
		result[coupleDate.CoupleID] = append(result[coupleDate.CoupleID], coupleDate)
	}

	return result, rows.Err()
}

// ListByCoupleID получает все исключения одного шаблона, упорядоченные по дате
func (r *CoupleDateRepository) ListByCoupleID(ctx context.Context, coupleID int) ([]*model.CoupleDate, error) {
	dates, err := r.MapByCoupleIDs(ctx, []int{coupleID})
	if err != nil {
		return nil, err
	}
	return dates[coupleID], nil
}

// ReplaceForCouple заменяет все исключения шаблона на переданный набор
func (r *CoupleDateRepository) ReplaceForCouple(ctx context.Context, coupleID int, dates []*model.CoupleDate) error {
	_, err := r.Exec(ctx, `DELETE FROM couple_dates WHERE couple_id = $1`, coupleID)
	if err != nil {
		return fmt.Errorf("delete couple dates: %w", err)
	}

	for _, coupleDate := range dates {
		err := r.QueryRow(
			ctx,
			`INSERT INTO couple_dates (couple_id, date, is_removed_date) VALUES ($1, $2, $3) RETURNING id`,
			coupleID,
			coupleDate.Date,
			coupleDate.IsRemovedDate,
		).Scan(&coupleDate.ID)
		if err != nil {
			return fmt.Errorf("insert couple date: %w", err)
		}
		coupleDate.CoupleID = coupleID
	}

	return nil
}
