package app

import (
	"testing"
	"time"

	"github.com/olekhw/deputy_api/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatDeadlineReminder(t *testing.T) {
	deadline := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)

	text := formatDeadlineReminder([]*model.WorkDeadline{
		{
			Name:     "Лаб 1",
			Deadline: &deadline,
			Subject:  &model.Subject{ShortName: "Прог"},
		},
		{Name: "Без дати"},
	})

	assert.Contains(t, text, "Найближчі дедлайни")
	assert.Contains(t, text, "Прог, Лаб 1 — 05.03")
	assert.NotContains(t, text, "Без дати")
}
