// file: internals/features/munaqasyah/model/result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MunaqasyahResultModel: nilai akhir (0.7 tasmi + 0.3 munaqasyah) + snapshot rincian
type MunaqasyahResultModel struct {
	MunaqasyahResultID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:munaqasyah_result_id" json:"munaqasyah_result_id"`
	MunaqasyahResultRegistrationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:munaqasyah_result_registration_id" json:"munaqasyah_result_registration_id"`
	MunaqasyahResultSchoolID       uuid.UUID `gorm:"type:uuid;not null;column:munaqasyah_result_school_id" json:"munaqasyah_result_school_id"`
	MunaqasyahResultScheduleID     uuid.UUID `gorm:"type:uuid;not null;index;column:munaqasyah_result_schedule_id" json:"munaqasyah_result_schedule_id"`
	MunaqasyahResultStudentID      uuid.UUID `gorm:"type:uuid;not null;column:munaqasyah_result_student_id" json:"munaqasyah_result_student_id"`

	MunaqasyahResultTasmiScore      float64 `gorm:"type:numeric(5,1);not null;column:munaqasyah_result_tasmi_score" json:"munaqasyah_result_tasmi_score"`
	MunaqasyahResultMunaqasyahScore float64 `gorm:"type:numeric(5,1);not null;column:munaqasyah_result_munaqasyah_score" json:"munaqasyah_result_munaqasyah_score"`
	MunaqasyahResultFinalScore      float64 `gorm:"type:numeric(5,1);not null;column:munaqasyah_result_final_score" json:"munaqasyah_result_final_score"`
	MunaqasyahResultGrade           string  `gorm:"type:varchar(20);not null;column:munaqasyah_result_grade" json:"munaqasyah_result_grade"`
	MunaqasyahResultPassed          bool    `gorm:"not null;column:munaqasyah_result_passed" json:"munaqasyah_result_passed"`

	MunaqasyahResultBreakdown datatypes.JSON `gorm:"type:jsonb;column:munaqasyah_result_breakdown" json:"munaqasyah_result_breakdown"`

	MunaqasyahResultComputedAt time.Time `gorm:"type:timestamptz;not null;column:munaqasyah_result_computed_at" json:"munaqasyah_result_computed_at"`
}

func (MunaqasyahResultModel) TableName() string { return "munaqasyah_results" }
