// file: internals/features/munaqasyah/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidz_backend/internals/helpers/dbtime"
)

// MunaqasyahScheduleModel: jadwal ujian munaqasyah per sekolah
type MunaqasyahScheduleModel struct {
	MunaqasyahScheduleID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:munaqasyah_schedule_id" json:"munaqasyah_schedule_id"`
	MunaqasyahScheduleSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:munaqasyah_schedule_school_id" json:"munaqasyah_schedule_school_id"`

	MunaqasyahScheduleTitle        string      `gorm:"type:varchar(150);not null;column:munaqasyah_schedule_title" json:"munaqasyah_schedule_title"`
	MunaqasyahScheduleDate         time.Time   `gorm:"type:date;not null;column:munaqasyah_schedule_date" json:"munaqasyah_schedule_date"`
	MunaqasyahScheduleStartTime    *dbtime.Tod `gorm:"type:time;column:munaqasyah_schedule_start_time" json:"munaqasyah_schedule_start_time,omitempty"`
	MunaqasyahSchedulePlace        *string     `gorm:"type:varchar(150);column:munaqasyah_schedule_place" json:"munaqasyah_schedule_place,omitempty"`
	MunaqasyahScheduleAcademicYear string      `gorm:"type:varchar(9);not null;column:munaqasyah_schedule_academic_year" json:"munaqasyah_schedule_academic_year"`
	MunaqasyahScheduleQuota        int         `gorm:"not null;default:0;column:munaqasyah_schedule_quota" json:"munaqasyah_schedule_quota"` // 0 = tanpa batas

	MunaqasyahScheduleCreatedBy uuid.UUID `gorm:"type:uuid;not null;column:munaqasyah_schedule_created_by" json:"munaqasyah_schedule_created_by"`

	MunaqasyahScheduleCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:munaqasyah_schedule_created_at" json:"munaqasyah_schedule_created_at"`
	MunaqasyahScheduleUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:munaqasyah_schedule_updated_at" json:"munaqasyah_schedule_updated_at"`
	MunaqasyahScheduleDeletedAt gorm.DeletedAt `gorm:"column:munaqasyah_schedule_deleted_at;index" json:"-"`
}

func (MunaqasyahScheduleModel) TableName() string { return "munaqasyah_schedules" }
