package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository/base"
	"go.uber.org/zap"
)

// WorkDeadlineRepository управляет дедлайнами работ в базе данных
type WorkDeadlineRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewWorkDeadlineRepository создаёт новый репозиторий
func NewWorkDeadlineRepository(pool *pgxpool.Pool, logger *zap.Logger) *WorkDeadlineRepository {
	return &WorkDeadlineRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

const workDeadlineSelect = `
	SELECT wd.id, wd.subject_id, wd.subject_type_id, wd.name, wd.deadline,
	       s.id, s.name, s.short_name, s.laboratory_count, s.practical_count,
	       st.id, st.name, st.short_name
	FROM work_deadlines wd
	JOIN subjects s ON s.id = wd.subject_id
	JOIN subject_types st ON st.id = wd.subject_type_id
`

func scanWorkDeadline(row pgx.Row) (*model.WorkDeadline, error) {
	deadline := &model.WorkDeadline{
		Subject:     &model.Subject{},
		SubjectType: &model.SubjectType{},
	}

	err := row.Scan(
		&deadline.ID,
		&deadline.SubjectID,
		&deadline.SubjectTypeID,
		&deadline.Name,
		&deadline.Deadline,
		&deadline.Subject.ID,
		&deadline.Subject.Name,
		&deadline.Subject.ShortName,
		&deadline.Subject.LaboratoryCount,
		&deadline.Subject.PracticalCount,
		&deadline.SubjectType.ID,
		&deadline.SubjectType.Name,
		&deadline.SubjectType.ShortName,
	)
	if err != nil {
		return nil, err
	}

	return deadline, nil
}

func (r *WorkDeadlineRepository) list(ctx context.Context, query string, args ...any) ([]*model.WorkDeadline, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deadlines []*model.WorkDeadline
	for rows.Next() {
		deadline, err := scanWorkDeadline(rows)
		if err != nil {
			return nil, fmt.Errorf("scan work deadline: %w", err)
		}
		deadlines = append(deadlines, deadline)
	}

	return deadlines, rows.Err()
}

// List получает все дедлайны, ближайшие первыми
func (r *WorkDeadlineRepository) List(ctx context.Context) ([]*model.WorkDeadline, error) {
	deadlines, err := r.list(ctx, workDeadlineSelect+`ORDER BY wd.deadline NULLS LAST`)
	if err != nil {
		return nil, fmt.Errorf("list work deadlines: %w", err)
	}
	return deadlines, nil
}

// ListDueBetween получает дедлайны, попадающие в интервал дат включительно
func (r *WorkDeadlineRepository) ListDueBetween(ctx context.Context, from, to time.Time) ([]*model.WorkDeadline, error) {
	deadlines, err := r.list(ctx,
		workDeadlineSelect+`WHERE wd.deadline >= $1 AND wd.deadline <= $2 ORDER BY wd.deadline`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("list work deadlines due between: %w", err)
	}
	return deadlines, nil
}

// Create создаёт новый дедлайн
func (r *WorkDeadlineRepository) Create(ctx context.Context, deadline *model.WorkDeadline) error {
	query := `
		INSERT INTO work_deadlines (subject_id, subject_type_id, name, deadline)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.QueryRow(ctx, query, deadline.SubjectID, deadline.SubjectTypeID,
		deadline.Name, deadline.Deadline).Scan(&deadline.ID)
	if err != nil {
		return fmt.Errorf("create work deadline: %w", err)
	}

	return nil
}

// Update обновляет дедлайн
func (r *WorkDeadlineRepository) Update(ctx context.Context, deadline *model.WorkDeadline) error {
	query := `
		UPDATE work_deadlines
		SET subject_id = $2, subject_type_id = $3, name = $4, deadline = $5
		WHERE id = $1
	`

	affected, err := r.Exec(ctx, query, deadline.ID, deadline.SubjectID,
		deadline.SubjectTypeID, deadline.Name, deadline.Deadline)
	if err != nil {
		return fmt.Errorf("update work deadline: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update work deadline: no rows affected")
	}

	return nil
}

// Delete удаляет дедлайн
func (r *WorkDeadlineRepository) Delete(ctx context.Context, id int) error {
	affected, err := r.Exec(ctx, `DELETE FROM work_deadlines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work deadline: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete work deadline: no rows affected")
	}

	return nil
}
