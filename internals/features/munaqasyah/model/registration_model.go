// file: internals/features/munaqasyah/model/registration_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	RegistrationStatusTerdaftar  = "terdaftar"
	RegistrationStatusTasmi      = "tasmi"
	RegistrationStatusMunaqasyah = "munaqasyah"
	RegistrationStatusSelesai    = "selesai"
)

type MunaqasyahRegistrationModel struct {
	MunaqasyahRegistrationID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:munaqasyah_registration_id" json:"munaqasyah_registration_id"`
	MunaqasyahRegistrationSchoolID   uuid.UUID `gorm:"type:uuid;not null;column:munaqasyah_registration_school_id" json:"munaqasyah_registration_school_id"`
	MunaqasyahRegistrationScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_munaqasyah_registration_student;column:munaqasyah_registration_schedule_id" json:"munaqasyah_registration_schedule_id"`
	MunaqasyahRegistrationStudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_munaqasyah_registration_student;column:munaqasyah_registration_student_id" json:"munaqasyah_registration_student_id"`

	MunaqasyahRegistrationStudentName string `gorm:"type:varchar(120);not null;column:munaqasyah_registration_student_name" json:"munaqasyah_registration_student_name"`
	// juz yang diujikan, mis. {29,30}
	MunaqasyahRegistrationJuz    pq.Int64Array `gorm:"type:int[];not null;column:munaqasyah_registration_juz" json:"munaqasyah_registration_juz"`
	MunaqasyahRegistrationStatus string        `gorm:"type:varchar(12);not null;default:'terdaftar';column:munaqasyah_registration_status" json:"munaqasyah_registration_status"`

	MunaqasyahRegistrationCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:munaqasyah_registration_created_at" json:"munaqasyah_registration_created_at"`
	MunaqasyahRegistrationUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:munaqasyah_registration_updated_at" json:"munaqasyah_registration_updated_at"`
	MunaqasyahRegistrationDeletedAt gorm.DeletedAt `gorm:"column:munaqasyah_registration_deleted_at;index" json:"-"`
}

func (MunaqasyahRegistrationModel) TableName() string { return "munaqasyah_registrations" }
