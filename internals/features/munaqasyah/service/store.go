// file: internals/features/munaqasyah/service/store.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"tahfidz_backend/internals/features/munaqasyah/model"
)

var (
	ErrDuplicateRegistration = errors.New("siswa sudah terdaftar pada jadwal ini")
	ErrQuotaFull             = errors.New("kuota jadwal munaqasyah sudah penuh")
)

type ScheduleFilter struct {
	SchoolID     uuid.UUID
	AcademicYear string
	Offset       int
	Limit        int
}

// Store = persistensi munaqasyah. Data tidak ada → gorm.ErrRecordNotFound.
type Store interface {
	CreateSchedule(ctx context.Context, m *model.MunaqasyahScheduleModel) error
	ListSchedules(ctx context.Context, f ScheduleFilter) ([]model.MunaqasyahScheduleModel, int64, error)
	GetSchedule(ctx context.Context, schoolID, id uuid.UUID) (*model.MunaqasyahScheduleModel, error)

	// CreateRegistration mengecek kuota & duplikat secara atomik (ErrQuotaFull / ErrDuplicateRegistration).
	CreateRegistration(ctx context.Context, m *model.MunaqasyahRegistrationModel, quota int) error
	GetRegistration(ctx context.Context, schoolID, id uuid.UUID) (*model.MunaqasyahRegistrationModel, error)
	ListRegistrations(ctx context.Context, schoolID, scheduleID uuid.UUID) ([]model.MunaqasyahRegistrationModel, error)

	// Save* mengganti nilai lama (penilaian ulang) dan memperbarui status pendaftaran.
	SaveTasmi(ctx context.Context, m *model.TasmiScoreModel, status string) error
	SaveMunaqasyah(ctx context.Context, m *model.MunaqasyahScoreModel, status string) error
	GetTasmi(ctx context.Context, registrationID uuid.UUID) (*model.TasmiScoreModel, error)
	GetMunaqasyah(ctx context.Context, registrationID uuid.UUID) (*model.MunaqasyahScoreModel, error)

	// SaveResult upsert per registration + status selesai.
	SaveResult(ctx context.Context, m *model.MunaqasyahResultModel) error
	GetResult(ctx context.Context, registrationID uuid.UUID) (*model.MunaqasyahResultModel, error)
	ListResultsBySchedule(ctx context.Context, schoolID, scheduleID uuid.UUID) ([]model.MunaqasyahResultModel, error)
}

// StudentDirectory: sumber nama siswa (snapshot saat mendaftar)
type StudentDirectory interface {
	StudentName(ctx context.Context, schoolID, studentID uuid.UUID) (string, error)
}
