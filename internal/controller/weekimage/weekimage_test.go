package weekimage

import (
	"bytes"
	"testing"

	"github.com/olekhw/deputy_api/internal/dto"
	"github.com/olekhw/deputy_api/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestRender(t *testing.T) {
	week := &dto.ScheduleWeek{
		CoupleTimes: []string{"08:30-10:05", "10:25-12:00"},
		ScheduleDays: []dto.ScheduleDay{
			{Date: "04.03", Couples: []schedule.CoupleData{
				{Subject: "Прог", SubjectType: "Лаб", CoupleIndex: 0, Time: "08:30", IsMySubgroup: true, Cabinet: "405"},
				{Subject: "Матан", SubjectType: "Лек", CoupleIndex: 1, Time: "10:25"},
			}},
			{Date: "05.03"}, {Date: "06.03"}, {Date: "07.03"},
			{Date: "08.03"}, {Date: "09.03"}, {Date: "10.03"},
		},
	}

	image, err := Render(week)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(image, pngSignature))
}

func TestRenderEmptyWeek(t *testing.T) {
	image, err := Render(&dto.ScheduleWeek{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(image, pngSignature))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "короткий", truncate("короткий", 10))
	assert.Equal(t, "дуже довг…", truncate("дуже довга назва предмета", 10))
}
