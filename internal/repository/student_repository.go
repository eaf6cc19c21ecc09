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

// StudentRepository управляет студентами и подгруппами в базе данных
type StudentRepository struct {
	*base.Repository
	logger *zap.Logger
}

// NewStudentRepository создаёт новый репозиторий
func NewStudentRepository(pool *pgxpool.Pool, logger *zap.Logger) *StudentRepository {
	return &StudentRepository{
		Repository: base.NewRepository(pool),
		logger:     logger,
	}
}

const studentColumns = `id, index, name, surname, patronymic, subgroup_id, telegram_phone`

func scanStudent(row pgx.Row) (*model.Student, error) {
	student := &model.Student{}
	err := row.Scan(
		&student.ID,
		&student.Index,
		&student.Name,
		&student.Surname,
		&student.Patronymic,
		&student.SubgroupID,
		&student.TelegramPhone,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// List получает всех студентов, упорядоченных по номеру в журнале
func (r *StudentRepository) List(ctx context.Context) ([]*model.Student, error) {
	rows, err := r.Query(ctx, `SELECT `+studentColumns+` FROM students ORDER BY index`)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var students []*model.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// GetByID получает студента по ID
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	student, err := scanStudent(r.QueryRow(ctx, `SELECT `+studentColumns+` FROM students WHERE id = $1`, id))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get student by id: %w", err)
	}
	return student, nil
}

// GetByPhone получает студента по номеру телефона, привязанному к Telegram
func (r *StudentRepository) GetByPhone(ctx context.Context, phone string) (*model.Student, error) {
	student, err := scanStudent(r.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE telegram_phone = $1`, phone))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get student by phone: %w", err)
	}
	return student, nil
}

// GetByTelegramID получает студента по идентификатору Telegram аккаунта
func (r *StudentRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.Student, error) {
	query := `
		SELECT s.id, s.index, s.name, s.surname, s.patronymic, s.subgroup_id, s.telegram_phone
		FROM students s
		JOIN telegrams t ON t.student_id = s.id
		WHERE t.telegram_id = $1
	`

	student, err := scanStudent(r.QueryRow(ctx, query, telegramID))
	if base.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get student by telegram id: %w", err)
	}
	return student, nil
}

// Create создаёт нового студента
func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	query := `
		INSERT INTO students (index, name, surname, patronymic, subgroup_id, telegram_phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.QueryRow(ctx, query, student.Index, student.Name, student.Surname,
		student.Patronymic, student.SubgroupID, student.TelegramPhone).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}

	return nil
}

// Update обновляет студента
func (r *StudentRepository) Update(ctx context.Context, student *model.Student) error {
	query := `
		UPDATE students
		SET index = $2, name = $3, surname = $4, patronymic = $5, subgroup_id = $6, telegram_phone = $7
		WHERE id = $1
	`

	affected, err := r.Exec(ctx, query, student.ID, student.Index, student.Name,
		student.Surname, student.Patronymic, student.SubgroupID, student.TelegramPhone)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update student: no rows affected")
	}

	return nil
}

// Delete удаляет студента
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	affected, err := r.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("delete student: no rows affected")
	}

	return nil
}

// ListSubgroups получает все подгруппы
func (r *StudentRepository) ListSubgroups(ctx context.Context) ([]*model.Subgroup, error) {
	rows, err := r.Query(ctx, `SELECT id, name FROM subgroups ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list subgroups: %w", err)
	}
	defer rows.Close()

	var subgroups []*model.Subgroup
	for rows.Next() {
		subgroup := &model.Subgroup{}
		if err := rows.Scan(&subgroup.ID, &subgroup.Name); err != nil {
			return nil, fmt.Errorf("scan subgroup: %w", err)
		}
		subgroups = append(subgroups, subgroup)
	}

	return subgroups, rows.Err()
}
