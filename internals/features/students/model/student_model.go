// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel = siswa aktif (kelas & halaqah saat ini)
type StudentModel struct {
	StudentID       uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID  `gorm:"type:uuid;not null;column:student_school_id" json:"student_school_id"`
	StudentUserID   *uuid.UUID `gorm:"type:uuid;column:student_user_id" json:"student_user_id,omitempty"`

	StudentName string  `gorm:"type:varchar(120);not null;column:student_name" json:"student_name"`
	StudentNIS  *string `gorm:"type:varchar(30);column:student_nis" json:"student_nis,omitempty"`

	StudentClassID *uuid.UUID `gorm:"type:uuid;column:student_class_id" json:"student_class_id,omitempty"`
	// guru pembimbing halaqah
	StudentTeacherID *uuid.UUID `gorm:"type:uuid;column:student_teacher_id" json:"student_teacher_id,omitempty"`

	StudentIsActive bool `gorm:"not null;default:true;column:student_is_active" json:"student_is_active"`

	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
