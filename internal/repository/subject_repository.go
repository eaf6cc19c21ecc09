package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/repository/base"
	"go.uber.org/zap"
)

// SubjectRepository управляет предметами в базе данных
type SubjectRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewSubjectRepository создаёт новый репозиторий
func NewSubjectRepository(pool *pgxpool.Pool, logger *zap.Logger) *SubjectRepository {
	return &SubjectRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

// List получает все предметы
func (r *SubjectRepository) List(ctx context.Context) ([]*model.Subject, error) {
	query := `
		SELECT id, name, short_name, laboratory_count, practical_count
		FROM subjects
		ORDER BY name
	`

	rows, err := r.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*model.Subject
	for rows.Next() {
		subject := &model.Subject{}
		err := rows.Scan(&subject.ID, &subject.Name, &subject.ShortName,
			&subject.LaboratoryCount, &subject.PracticalCount)
		if err != nil {
			return nil, fmt.Errorf("scan subject: %w", err)
		}
		subjects = append(subjects, subject)
	}

	return subjects, rows.Err()
}

// GetByID получает предмет по ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int) (*model.Subject, error) {
	query := `
		SELECT id, name, short_name, laboratory_count, practical_count
		FROM subjects
		WHERE id = $1
	`

	subject := &model.Subject{}
	err := r.QueryRow(ctx, query, id).Scan(&subject.ID, &subject.Name, &subject.ShortName,
		&subject.LaboratoryCount, &subject.PracticalCount)

	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get subject by id: %w", err)
	}

	return subject, nil
}

// Create создаёт новый предмет
func (r *SubjectRepository) Create(ctx context.Context, subject *model.Subject) error {
	query := `
		INSERT INTO subjects (name, short_name, laboratory_count, practical_count)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.QueryRow(ctx, query, subject.Name, subject.ShortName,
		subject.LaboratoryCount, subject.PracticalCount).Scan(&subject.ID)
	if err != nil {
		return fmt.Errorf("create subject: %w", err)
	}

	return nil
}

// Update обновляет предмет
func (r *SubjectRepository) Update(ctx context.Context, subject *model.Subject) error {
	query := `
		UPDATE subjects
		SET name = $2, short_name = $3, laboratory_count = $4, practical_count = $5
		WHERE id = $1
	`

	affected, err := r.Exec(ctx, query, subject.ID, subject.Name, subject.ShortName,
		subject.LaboratoryCount, subject.PracticalCount)
	if err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update subject: no rows affected")
	}

	return nil
}

// Delete удаляет предмет
func (r *SubjectRepository) Delete(ctx context.Context, id int) error {
	affected, err := r.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete subject: no rows affected")
	}

	return nil
}
