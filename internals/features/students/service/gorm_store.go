// file: internals/features/students/service/gorm_store.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidz_backend/internals/features/students/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) HistoricalByClass(ctx context.Context, schoolID, classID uuid.UUID, academicYear string) ([]RosterEntry, error) {
	var rows []model.StudentHistoryModel
	if err := s.DB.WithContext(ctx).
		Where("student_history_school_id = ? AND student_history_class_id = ? AND student_history_academic_year = ?",
			schoolID, classID, academicYear).
		Order("student_history_name_snapshot ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]RosterEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, RosterEntry{
			StudentID: r.StudentHistoryStudentID,
			Name:      r.StudentHistoryNameSnapshot,
			ClassID:   r.StudentHistoryClassID,
			TeacherID: r.StudentHistoryTeacherID,
			Source:    SourceHistory,
		})
	}
	return out, nil
}

func (s *GormStore) ActiveByClass(ctx context.Context, schoolID, classID uuid.UUID) ([]RosterEntry, error) {
	var rows []model.StudentModel
	if err := s.DB.WithContext(ctx).
		Where("student_school_id = ? AND student_class_id = ? AND student_is_active = TRUE", schoolID, classID).
		Order("student_name ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]RosterEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, RosterEntry{
			StudentID: r.StudentID,
			Name:      r.StudentName,
			NIS:       r.StudentNIS,
			ClassID:   classID,
			TeacherID: r.StudentTeacherID,
			Source:    SourceActive,
		})
	}
	return out, nil
}

func (s *GormStore) StudentInSchool(ctx context.Context, schoolID, studentID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.StudentModel{}).
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		Count(&n).Error
	return n > 0, err
}

// Guru boleh akses siswa halaqah-nya sekarang, atau yang pernah dibimbing (riwayat).
func (s *GormStore) IsStudentOfTeacher(ctx context.Context, schoolID, studentID, teacherID uuid.UUID) (bool, error) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&model.StudentModel{}).
		Where("student_id = ? AND student_school_id = ? AND student_teacher_id = ?", studentID, schoolID, teacherID).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	err := s.DB.WithContext(ctx).Model(&model.StudentHistoryModel{}).
		Where("student_history_student_id = ? AND student_history_school_id = ? AND student_history_teacher_id = ?",
			studentID, schoolID, teacherID).
		Count(&n).Error
	return n > 0, err
}

func (s *GormStore) StudentName(ctx context.Context, schoolID, studentID uuid.UUID) (string, error) {
	var row model.StudentModel
	if err := s.DB.WithContext(ctx).
		Select("student_id", "student_name").
		Where("student_id = ? AND student_school_id = ?", studentID, schoolID).
		First(&row).Error; err != nil {
		return "", err
	}
	return row.StudentName, nil
}
