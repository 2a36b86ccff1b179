// file: internals/features/munaqasyah/dto/schedule_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"tahfidz_backend/internals/features/munaqasyah/model"
	"tahfidz_backend/internals/helpers/dbtime"
)

type CreateScheduleRequest struct {
	Title        string  `json:"title" validate:"required,min=3,max=150"`
	Date         string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime    *string `json:"start_time" validate:"omitempty,datetime=15:04"`
	Place        *string `json:"place" validate:"omitempty,max=150"`
	AcademicYear string  `json:"academic_year" validate:"required,len=9"` // "2024/2025"
	Quota        int     `json:"quota" validate:"gte=0,lte=1000"`
}

// ToModel: tanggal dibaca di timezone sekolah
func (r CreateScheduleRequest) ToModel(schoolID, createdBy uuid.UUID, loc *time.Location) (*model.MunaqasyahScheduleModel, error) {
	date, err := time.ParseInLocation(dbtime.DateLayout, strings.TrimSpace(r.Date), loc)
	if err != nil {
		return nil, err
	}

	m := &model.MunaqasyahScheduleModel{
		MunaqasyahScheduleSchoolID:     schoolID,
		MunaqasyahScheduleTitle:        strings.TrimSpace(r.Title),
		MunaqasyahScheduleDate:         date,
		MunaqasyahScheduleAcademicYear: strings.TrimSpace(r.AcademicYear),
		MunaqasyahScheduleQuota:        r.Quota,
		MunaqasyahScheduleCreatedBy:    createdBy,
	}
	if r.StartTime != nil {
		tod, err := dbtime.ParseTod(*r.StartTime)
		if err != nil {
			return nil, err
		}
		m.MunaqasyahScheduleStartTime = &tod
	}
	if r.Place != nil {
		if p := strings.TrimSpace(*r.Place); p != "" {
			m.MunaqasyahSchedulePlace = &p
		}
	}
	return m, nil
}

type RegisterStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Juz       []int64   `json:"juz" validate:"required,min=1,max=30,dive,min=1,max=30"`
}
