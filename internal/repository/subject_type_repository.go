package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository/base"
	"go.uber.org/zap"
)

// SubjectTypeRepository управляет типами занятий в базе данных
type SubjectTypeRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewSubjectTypeRepository создаёт новый репозиторий
func NewSubjectTypeRepository(pool *pgxpool.Pool, logger *zap.Logger) *SubjectTypeRepository {
	return &SubjectTypeRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// List получает все типы занятий
func (r *SubjectTypeRepository) List(ctx context.Context) ([]*model.SubjectType, error) {
	rows, err := r.Query(ctx, `SELECT id, name, short_name FROM subject_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list subject types: %w", err)
	}
	defer rows.Close()

	var types []*model.SubjectType
	for rows.Next() {
		subjectType := &model.SubjectType{}
		err := rows.Scan(&subjectType.ID, &subjectType.Name, &subjectType.ShortName)
		if err != nil {
			return nil, fmt.Errorf("scan subject type: %w", err)
		}
		types = append(types, subjectType)
	}

	return types, rows.Err()
}
