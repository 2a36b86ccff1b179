// file: internals/features/students/model/student_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentHistoryModel = snapshot keanggotaan kelas per tahun ajaran.
// Siswa yang sudah naik kelas / lulus tetap muncul di rekap periode lama lewat tabel ini.
type StudentHistoryModel struct {
	StudentHistoryID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_history_id" json:"student_history_id"`
	StudentHistorySchoolID  uuid.UUID  `gorm:"type:uuid;not null;column:student_history_school_id" json:"student_history_school_id"`
	StudentHistoryStudentID uuid.UUID  `gorm:"type:uuid;not null;column:student_history_student_id" json:"student_history_student_id"`
	StudentHistoryClassID   uuid.UUID  `gorm:"type:uuid;not null;column:student_history_class_id" json:"student_history_class_id"`
	StudentHistoryTeacherID *uuid.UUID `gorm:"type:uuid;column:student_history_teacher_id" json:"student_history_teacher_id,omitempty"`

	// contoh: "2024/2025"
	StudentHistoryAcademicYear string `gorm:"type:varchar(9);not null;column:student_history_academic_year" json:"student_history_academic_year"`
	StudentHistoryNameSnapshot string `gorm:"type:varchar(120);not null;column:student_history_name_snapshot" json:"student_history_name_snapshot"`

	StudentHistoryCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:student_history_created_at" json:"student_history_created_at"`
}

func (StudentHistoryModel) TableName() string { return "student_histories" }
