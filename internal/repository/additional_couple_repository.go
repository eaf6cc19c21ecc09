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

// AdditionalCoupleRepository управляет разовыми парами в базе данных
type AdditionalCoupleRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewAdditionalCoupleRepository создаёт новый репозиторий
func NewAdditionalCoupleRepository(pool *pgxpool.Pool, logger *zap.Logger) *AdditionalCoupleRepository {
	return &AdditionalCoupleRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

const additionalCoupleSelect = `
	SELECT ac.id, ac.date, to_char(ac.time, 'HH24:MI'), ac.subject_id, ac.subject_type_id,
	       ac.subgroup_id, ac.cabinet, ac.link, ac.additional_information,
	       s.id, s.name, s.short_name, s.laboratory_count, s.practical_count,
	       st.id, st.name, st.short_name
	FROM additional_couples ac
	JOIN subjects s ON s.id = ac.subject_id
	JOIN subject_types st ON st.id = ac.subject_type_id
`

func scanAdditionalCouple(row pgx.Row) (*model.AdditionalCouple, error) {
	couple := &model.AdditionalCouple{
		Subject:     &model.Subject{},
		SubjectType: &model.SubjectType{},
	}

	err := row.Scan(
		&couple.ID,
		&couple.Date,
		&couple.Time,
		&couple.SubjectID,
		&couple.SubjectTypeID,
		&couple.SubgroupID,
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
	)
	if err != nil {
		return nil, err
	}

	return couple, nil
}

func (r *AdditionalCoupleRepository) list(ctx context.Context, query string, args ...any) ([]*model.AdditionalCouple, error) {
	rows, err := r.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var couples []*model.AdditionalCouple
	for rows.Next() {
		couple, err := scanAdditionalCouple(rows)
		if err != nil {
			return nil, fmt.Errorf("scan additional couple: %w", err)
		}
		couples = append(couples, couple)
	}

	return couples, rows.Err()
}

// List получает все разовые пары, упорядоченные по дате и времени
func (r *AdditionalCoupleRepository) List(ctx context.Context) ([]*model.AdditionalCouple, error) {
	couples, err := r.list(ctx, additionalCoupleSelect+`ORDER BY ac.date, ac.time`)
	if err != nil {
		return nil, fmt.Errorf("list additional couples: %w", err)
	}
	return couples, nil
}

// ListByDate получает разовые пары на дату
func (r *AdditionalCoupleRepository) ListByDate(ctx context.Context, date time.Time) ([]*model.AdditionalCouple, error) {
	couples, err := r.list(ctx, additionalCoupleSelect+`WHERE ac.date = $1 ORDER BY ac.time`, date)
	if err != nil {
		return nil, fmt.Errorf("list additional couples by date: %w", err)
	}
	return couples, nil
}

// ListBySubjectAndType получает разовые пары предмета указанного типа занятия
func (r *AdditionalCoupleRepository) ListBySubjectAndType(ctx context.Context, subjectID, subjectTypeID int) ([]*model.AdditionalCouple, error) {
	couples, err := r.list(ctx,
		additionalCoupleSelect+`WHERE ac.subject_id = $1 AND ac.subject_type_id = $2 ORDER BY ac.date`,
		subjectID, subjectTypeID)
	if err != nil {
		return nil, fmt.Errorf("list additional couples by subject and type: %w", err)
	}
	return couples, nil
}

// Create создаёт новую разовую пару
func (r *AdditionalCoupleRepository) Create(ctx context.Context, couple *model.AdditionalCouple) error {
	query := `
		INSERT INTO additional_couples (date, time, subject_id, subject_type_id,
		                                subgroup_id, cabinet, link, additional_information)
		VALUES ($1, $2::time, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.QueryRow(
		ctx,
		query,
		couple.Date,
		couple.Time,
		couple.SubjectID,
		couple.SubjectTypeID,
		couple.SubgroupID,
		couple.Cabinet,
		couple.Link,
		couple.AdditionalInformation,
	).Scan(&couple.ID)

	if err != nil {
		return fmt.Errorf("create additional couple: %w", err)
	}

	return nil
}

// Update обновляет разовую пару
func (r *AdditionalCoupleRepository) Update(ctx context.Context, couple *model.AdditionalCouple) error {
	query := `
		UPDATE additional_couples
		SET date = $2, time = $3::time, subject_id = $4, subject_type_id = $5,
		    subgroup_id = $6, cabinet = $7, link = $8, additional_information = $9
		WHERE id = $1
	`

	affected, err := r.Exec(
		ctx,
		query,
		couple.ID,
		couple.Date,
		couple.Time,
		couple.SubjectID,
		couple.SubjectTypeID,
		couple.SubgroupID,
		couple.Cabinet,
		couple.Link,
		couple.AdditionalInformation,
	)
	if err != nil {
		return fmt.Errorf("update additional couple: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update additional couple: no rows affected")
	}

	return nil
}

// Delete удаляет разовую пару
func (r *AdditionalCoupleRepository) Delete(ctx context.Context, id int) error {
	affected, err := r.Exec(ctx, `DELETE FROM additional_couples WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete additional couple: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete additional couple: no rows affected")
	}

	return nil
}
