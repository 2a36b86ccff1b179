// file: internals/features/students/service/roster_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"tahfidz_backend/internals/features/progress/engine"
)

const (
	SourceHistory = "history"
	SourceActive  = "active"
)

type RosterEntry struct {
	StudentID uuid.UUID  `json:"student_id"`
	Name      string     `json:"name"`
	NIS       *string    `json:"nis,omitempty"`
	ClassID   uuid.UUID  `json:"class_id"`
	TeacherID *uuid.UUID `json:"teacher_id,omitempty"`
	Source    string     `json:"source"`
}

type Store interface {
	HistoricalByClass(ctx context.Context, schoolID, classID uuid.UUID, academicYear string) ([]RosterEntry, error)
	ActiveByClass(ctx context.Context, schoolID, classID uuid.UUID) ([]RosterEntry, error)
	StudentInSchool(ctx context.Context, schoolID, studentID uuid.UUID) (bool, error)
	IsStudentOfTeacher(ctx context.Context, schoolID, studentID, teacherID uuid.UUID) (bool, error)
	StudentName(ctx context.Context, schoolID, studentID uuid.UUID) (string, error)
}

type RosterService struct {
	Store Store
}

func NewRosterService(store Store) *RosterService {
	return &RosterService{Store: store}
}

// Roster: snapshot historis dulu, lalu siswa aktif; academicYear kosong = hanya aktif.
func (s *RosterService) Roster(ctx context.Context, schoolID, classID uuid.UUID, academicYear string) ([]RosterEntry, error) {
	var historical []RosterEntry
	if academicYear != "" {
		h, err := s.Store.HistoricalByClass(ctx, schoolID, classID, academicYear)
		if err != nil {
			return nil, fmt.Errorf("ambil riwayat kelas: %w", err)
		}
		historical = h
	}

	active, err := s.Store.ActiveByClass(ctx, schoolID, classID)
	if err != nil {
		return nil, fmt.Errorf("ambil siswa aktif: %w", err)
	}

	return engine.MergeStudentSources(historical, active, func(e RosterEntry) uuid.UUID { return e.StudentID }), nil
}

func (s *RosterService) StudentInSchool(ctx context.Context, schoolID, studentID uuid.UUID) (bool, error) {
	return s.Store.StudentInSchool(ctx, schoolID, studentID)
}

func (s *RosterService) IsStudentOfTeacher(ctx context.Context, schoolID, studentID, teacherID uuid.UUID) (bool, error) {
	return s.Store.IsStudentOfTeacher(ctx, schoolID, studentID, teacherID)
}

func (s *RosterService) StudentName(ctx context.Context, schoolID, studentID uuid.UUID) (string, error) {
	return s.Store.StudentName(ctx, schoolID, studentID)
}
