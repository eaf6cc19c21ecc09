package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository/base"
	"go.uber.org/zap"
)

// CoupleRepository управляет шаблонами регулярных пар в базе данных
type CoupleRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewCoupleRepository создаёт новый репозиторий
func NewCoupleRepository(pool *pgxpool.Pool, logger *zap.Logger) *CoupleRepository {
	return &CoupleRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

const coupleSelect = `
	SELECT c.id, c.day_of_week, c.couple_time_id, c.subject_id, c.subject_type_id,
	       c.subgroup_id, c.start_date, c.end_date, c.is_rolling,
	       c.cabinet, c.link, c.additional_information,
	       s.id, s.name, s.short_name, s.laboratory_count, s.practical_count,
	       st.id, st.name, st.short_name,
	       ct.id, ct.index, to_char(ct.time_start, 'HH24:MI'), to_char(ct.time_end, 'HH24:MI')
	FROM couples c
	JOIN subjects s ON s.id = c.subject_id
	JOIN subject_types st ON st.id = c.subject_type_id
	JOIN couple_times ct ON ct.id = c.couple_time_id
`

func scanCouple(row pgx.Row) (*model.Couple, error) {
	couple := &model.Couple{
		Subject:     &model.Subject{},
		SubjectType: &model.SubjectType{},
		CoupleTime:  &model.CoupleTime{},
	}

	err := row.Scan(
		&couple.ID,
		&couple.DayOfWeekID,
		&couple.CoupleTimeID,
		&couple.SubjectID,
		&couple.SubjectTypeID,
		&couple.SubgroupID,
		&couple.StartDate,
		&couple.EndDate,
		&couple.IsRolling,
		&couple.Cabinet,
		&couple.Link,
		&couple.AdditionalInformation,
		&couple.Subject.ID,
		&couple.Subject.Name,
		&couple.Subject.ShortName,
		&couple.Subject.LaboratoryCount,
		&couple.Subject.PracticalCount,
		&couple.SubjectType.ID,
		&couple.SubjectType.Name,
		&couple.SubjectType.ShortName,
		&couple.CoupleTime.ID,
		&couple.CoupleTime.Index,
		&couple.CoupleTime.TimeStart,
		&couple.CoupleTime.TimeEnd,
	)
	if err != nil {
		return nil, err
	}

	return couple, nil
}

func (r *CoupleRepository) list(ctx context.Context, query string, args ...any) ([]*model.Couple, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var couples []*model.Couple
	for rows.Next() {
		couple, err := scanCouple(rows)
		if err != nil {
			return nil, fmt.Errorf("scan couple: %w", err)
		}
		couples = append(couples, couple)
	}

	return couples, rows.Err()
}

// ListByWeekday получает все шаблоны пар на день недели (1 = понедельник),
// упорядоченные по номеру слота
func (r *CoupleRepository) ListByWeekday(ctx context.Context, weekday int) ([]*model.Couple, error) {
	couples, err := r.list(ctx, coupleSelect+`WHERE c.day_of_week = $1 ORDER BY ct.index`, weekday)
	if err != nil {
		return nil, fmt.Errorf("list couples by weekday: %w", err)
	}
	return couples, nil
}

// ListBySubjectAndType получает все шаблоны пар предмета указанного типа занятия
func (r *CoupleRepository) ListBySubjectAndType(ctx context.Context, subjectID, subjectTypeID int) ([]*model.Couple, error) {
	couples, err := r.list(ctx,
		coupleSelect+`WHERE c.subject_id = $1 AND c.subject_type_id = $2 ORDER BY c.id`,
		subjectID, subjectTypeID)
	if err != nil {
		return nil, fmt.Errorf("list couples by subject and type: %w", err)
	}
	return couples, nil
}

// ListForEditor получает шаблоны пар на день недели для редактора расписания,
// упорядоченные по слоту и дате начала
func (r *CoupleRepository) ListForEditor(ctx context.Context, weekday int) ([]*model.Couple, error) {
	couples, err := r.list(ctx,
		coupleSelect+`WHERE c.day_of_week = $1 ORDER BY ct.index, c.start_date NULLS FIRST`,
		weekday)
	if err != nil {
		return nil, fmt.Errorf("list couples for editor: %w", err)
	}
	return couples, nil
}

// GetByID получает шаблон пары по ID
func (r *CoupleRepository) GetByID(ctx context.Context, id int) (*model.Couple, error) {
	couple, err := scanCouple(r.QueryRow(ctx, coupleSelect+`WHERE c.id = $1`, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get couple by id: %w", err)
	}
	return couple, nil
}

// Create создаёт новый шаблон пары
func (r *CoupleRepository) Create(ctx context.Context, couple *model.Couple) error {
	query := `
		INSERT INTO couples (day_of_week, couple_time_id, subject_id, subject_type_id,
		                     subgroup_id, start_date, end_date, is_rolling,
		                     cabinet, link, additional_information)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	err := r.QueryRow(
		ctx,
		query,
		couple.DayOfWeekID,
		couple.CoupleTimeID,
		couple.SubjectID,
		couple.SubjectTypeID,
		couple.SubgroupID,
		couple.StartDate,
		couple.EndDate,
		couple.IsRolling,
		couple.Cabinet,
		couple.Link,
		couple.AdditionalInformation,
	).Scan(&couple.ID)

	if err != nil {
		return fmt.Errorf("create couple: %w", err)
	}

	return nil
}

// Update обновляет шаблон пары
func (r *CoupleRepository) Update(ctx context.Context, couple *model.Couple) error {
	query := `
		UPDATE couples
		SET day_of_week = $2, couple_time_id = $3, subject_id = $4, subject_type_id = $5,
		    subgroup_id = $6, start_date = $7, end_date = $8, is_rolling = $9,
		    cabinet = $10, link = $11, additional_information = $12
		WHERE id = $1
	`

	affected, err := r.Exec(
		ctx,
		query,
		couple.ID,
		couple.DayOfWeekID,
		couple.CoupleTimeID,
		couple.SubjectID,
		couple.SubjectTypeID,
		couple.SubgroupID,
		couple.StartDate,
		couple.EndDate,
		couple.IsRolling,
		couple.Cabinet,
		couple.Link,
		couple.AdditionalInformation,
	)
	if err != nil {
		return fmt.Errorf("update couple: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update couple: no rows affected")
	}

	return nil
}

// Delete удаляет шаблон пары вместе с его исключениями
func (r *CoupleRepository) Delete(ctx context.Context, id int) error {
	affected, err := r.Exec(ctx, `DELETE FROM couples WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete couple: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete couple: no rows affected")
	}

	return nil
}
