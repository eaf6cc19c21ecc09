package service

import (
	"context"
	"fmt"
	"time"

	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/model"
	"github.com/olekhw/deputy_api/internal/schedule"
	"go.uber.org/zap"
)

// SubjectSource поставляет предметы
type SubjectSource interface {
	List(ctx context.Context) ([]*model.Subject, error)
}

// StudentListSource поставляет студентов и подгруппы
type StudentListSource interface {
	List(ctx context.Context) ([]*model.Student, error)
	ListSubgroups(ctx context.Context) ([]*model.Subgroup, error)
}

// InformationService отдаёт боту справочную информацию о предметах и студентах
type InformationService struct {
	subjects SubjectSource
	students StudentListSource
	counter  *schedule.Counter
	logger   *zap.Logger

	now func() time.Time
}

// NewInformationService создаёт новый справочный сервис
func NewInformationService(
	subjects SubjectSource,
	students StudentListSource,
	counter *schedule.Counter,
	logger *zap.Logger,
) *InformationService {
	return &InformationService{
		subjects: subjects,
		students: students,
		counter:  counter,
		logger:   logger,
		now:      time.Now,
	}
}

// GetSubjectsInformation возвращает сводку по каждому предмету:
// сколько календарных дней лабораторных, практик и лекций осталось с сегодняшнего дня
func (s *InformationService) GetSubjectsInformation(ctx context.Context) ([]*dto.SubjectInformation, error) {
	subjects, err := s.subjects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	today := schedule.DateOnly(s.now())
	result := make([]*dto.SubjectInformation, 0, len(subjects))

	for _, subject := range subjects {
		information := &dto.SubjectInformation{
			Name:            subject.Name,
			ShortName:       subject.ShortName,
			LaboratoryCount: subject.LaboratoryCount,
			PracticalCount:  subject.PracticalCount,
		}

		if information.LaboratoryDaysCount, err = s.counter.CountDays(ctx, subject.ID, model.SubjectTypeLaboratory, today); err != nil {
			return nil, fmt.Errorf("count laboratory days: %w", err)
		}
		if information.PracticalDaysCount, err = s.counter.CountDays(ctx, subject.ID, model.SubjectTypePractical, today); err != nil {
			return nil, fmt.Errorf("count practical days: %w", err)
		}
		if information.LecturesDaysCount, err = s.counter.CountDays(ctx, subject.ID, model.SubjectTypeLecture, today); err != nil {
			return nil, fmt.Errorf("count lecture days: %w", err)
		}

		result = append(result, information)
	}

	return result, nil
}

// GetStudentsInformation возвращает список студентов группы с названиями подгрупп
func (s *InformationService) GetStudentsInformation(ctx context.Context) ([]*dto.StudentInformation, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	subgroups, err := s.students.ListSubgroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subgroups: %w", err)
	}

	subgroupNames := make(map[int]string, len(subgroups))
	for _, subgroup := range subgroups {
		subgroupNames[subgroup.ID] = subgroup.Name
	}

	result := make([]*dto.StudentInformation, 0, len(students))
	for _, student := range students {
		information := &dto.StudentInformation{
			Index:      student.Index,
			Name:       student.Name,
			Surname:    student.Surname,
			Patronymic: student.Patronymic,
		}
		if student.SubgroupID != nil {
			information.Subgroup = subgroupNames[*student.SubgroupID]
		}
		result = append(result, information)
	}

	return result, nil
}

// GetSubjectDayCount возвращает количество оставшихся календарных дней занятий
// по предмету и типу занятия
func (s *InformationService) GetSubjectDayCount(ctx context.Context, subjectID, subjectTypeID int) (int, error) {
	count, err := s.counter.CountDays(ctx, subjectID, subjectTypeID, schedule.DateOnly(s.now()))
	if err != nil {
		return 0, fmt.Errorf("count subject days: %w", err)
	}
	return count, nil
}
