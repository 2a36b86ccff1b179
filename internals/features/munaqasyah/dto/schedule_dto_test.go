package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateScheduleRequest_ToModel(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	place := "  Masjid Utama "
	start := "07:45"

	m, err := CreateScheduleRequest{
		Title:        " Munaqasyah Juz 29-30 ",
		Date:         "2025-06-01",
		StartTime:    &start,
		Place:        &place,
		AcademicYear: "2024/2025",
	}.ToModel(uuid.New(), uuid.New(), loc)
	require.NoError(t, err)

	assert.Equal(t, "Munaqasyah Juz 29-30", m.MunaqasyahScheduleTitle)
	assert.Equal(t, "Masjid Utama", *m.MunaqasyahSchedulePlace)
	assert.Equal(t, "07:45", m.MunaqasyahScheduleStartTime.String())
	assert.Equal(t, loc, m.MunaqasyahScheduleDate.Location())
	assert.Zero(t, m.MunaqasyahScheduleQuota)
}

func TestRegisterStudentRequest_Validation(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(RegisterStudentRequest{StudentID: uuid.New(), Juz: []int64{29, 30}}))
	assert.Error(t, v.Struct(RegisterStudentRequest{StudentID: uuid.New()}))
	assert.Error(t, v.Struct(RegisterStudentRequest{StudentID: uuid.New(), Juz: []int64{31}}))
	assert.Error(t, v.Struct(RegisterStudentRequest{Juz: []int64{30}}), "student_id kosong")
}
