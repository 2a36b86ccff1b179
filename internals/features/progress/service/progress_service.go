// file: internals/features/progress/service/progress_service.go
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tahfidz_backend/internals/constants"
	"tahfidz_backend/internals/features/progress/engine"
	"tahfidz_backend/internals/features/progress/model"
	studentService "tahfidz_backend/internals/features/students/service"
)

// Period: filter waktu bukti; To eksklusif.
type Period struct {
	From *time.Time
	To   *time.Time
}

type EvidenceQuery struct {
	SchoolID  uuid.UUID
	StudentID uuid.UUID
	Period    Period
}

type Store interface {
	ListJuz(ctx context.Context) ([]model.JuzModel, error)
	ListJuzSurahRanges(ctx context.Context) ([]model.JuzSurahRangeRow, error)
	ListWafaBooks(ctx context.Context) ([]model.WafaBookModel, error)

	ListHafalanSetorans(ctx context.Context, q EvidenceQuery) ([]model.HafalanSetoranModel, error)
	ListTilawahRecords(ctx context.Context, q EvidenceQuery) ([]model.TilawahRecordModel, error)
	ListWafaRecords(ctx context.Context, q EvidenceQuery) ([]model.WafaRecordModel, error)
}

type Roster interface {
	Roster(ctx context.Context, schoolID, classID uuid.UUID, academicYear string) ([]studentService.RosterEntry, error)
}

type StudentProgress struct {
	StudentID   uuid.UUID      `json:"student_id"`
	Kind        CurriculumKind `json:"kind"`
	Summary     engine.Summary `json:"summary"`
	GeneratedAt time.Time      `json:"generated_at"`
}

type ClassProgressItem struct {
	Student studentService.RosterEntry `json:"student"`
	Summary engine.Summary             `json:"summary"`
}

type ProgressService struct {
	Store  Store
	Access StudentAccess
	Roster Roster
	Now    func() time.Time
}

func NewProgressService(store Store, access StudentAccess, roster Roster) *ProgressService {
	return &ProgressService{Store: store, Access: access, Roster: roster, Now: time.Now}
}

func (s *ProgressService) StudentProgress(ctx context.Context, v Viewer, kind CurriculumKind, requested *uuid.UUID, period Period) (*StudentProgress, error) {
	if err := validatePeriod(period); err != nil {
		return nil, err
	}
	studentID, err := ResolveStudent(ctx, s.Access, v, requested)
	if err != nil {
		return nil, err
	}

	cur, err := s.loadCurriculum(ctx, kind)
	if err != nil {
		return nil, err
	}
	evidence, err := s.loadEvidence(ctx, kind, cur, EvidenceQuery{SchoolID: v.SchoolID, StudentID: studentID, Period: period})
	if err != nil {
		return nil, err
	}

	return &StudentProgress{
		StudentID:   studentID,
		Kind:        kind,
		Summary:     engine.AggregateProgress(cur.units, evidence),
		GeneratedAt: s.Now(),
	}, nil
}

// ClassProgress: rekap satu kelas (roster historis + aktif). Guru hanya melihat siswa halaqah-nya.
func (s *ProgressService) ClassProgress(ctx context.Context, v Viewer, classID uuid.UUID, academicYear string, kind CurriculumKind, period Period) ([]ClassProgressItem, error) {
	if v.Role == constants.RoleSiswa {
		return nil, fiber.NewError(fiber.StatusForbidden, constants.RoleErrorTeacher("rekap kelas"))
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	roster, err := s.Roster.Roster(ctx, v.SchoolID, classID, academicYear)
	if err != nil {
		return nil, fmt.Errorf("roster kelas: %w", err)
	}
	cur, err := s.loadCurriculum(ctx, kind)
	if err != nil {
		return nil, err
	}

	out := make([]ClassProgressItem, 0, len(roster))
	for _, st := range roster {
		if v.Role == constants.RoleGuru && (st.TeacherID == nil || *st.TeacherID != v.TeacherID) {
			continue
		}
		evidence, err := s.loadEvidence(ctx, kind, cur, EvidenceQuery{SchoolID: v.SchoolID, StudentID: st.StudentID, Period: period})
		if err != nil {
			return nil, err
		}
		out = append(out, ClassProgressItem{
			Student: st,
			Summary: engine.AggregateProgress(cur.units, evidence),
		})
	}
	log.Printf("[SERVICE] ClassProgress class=%s kind=%s students=%d", classID, kind, len(out))
	return out, nil
}

/* =========================
   internal
========================= */

func validatePeriod(p Period) error {
	if p.From != nil && p.To != nil && !p.From.Before(*p.To) {
		return fiber.NewError(fiber.StatusBadRequest, "from harus sebelum to")
	}
	return nil
}

func (s *ProgressService) loadCurriculum(ctx context.Context, kind CurriculumKind) (*curriculum, error) {
	switch kind {
	case KindHafalan, KindTilawah:
		juz, err := s.Store.ListJuz(ctx)
		if err != nil {
			return nil, fmt.Errorf("ambil juz: %w", err)
		}
		ranges, err := s.Store.ListJuzSurahRanges(ctx)
		if err != nil {
			return nil, fmt.Errorf("ambil rentang surah: %w", err)
		}
		names := make(map[int]string, len(ranges))
		for _, r := range ranges {
			names[r.SurahID] = r.SurahNameLatin
		}
		cur := &curriculum{ranges: ranges, surahNames: names}
		if kind == KindHafalan {
			cur.units = BuildHafalanUnits(juz, ranges)
		} else {
			cur.units = BuildTilawahUnits(juz, ranges)
		}
		return cur, nil

	case KindWafa:
		books, err := s.Store.ListWafaBooks(ctx)
		if err != nil {
			return nil, fmt.Errorf("ambil buku wafa: %w", err)
		}
		names := make(map[int]string, len(books))
		for _, b := range books {
			names[b.WafaBookID] = b.WafaBookName
		}
		return &curriculum{units: BuildWafaUnits(books), bookNames: names}, nil
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("kind tidak dikenal: %q", kind))
}

func (s *ProgressService) loadEvidence(ctx context.Context, kind CurriculumKind, cur *curriculum, q EvidenceQuery) ([]engine.CompletionRecord, error) {
	switch kind {
	case KindHafalan:
		rows, err := s.Store.ListHafalanSetorans(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("ambil setoran hafalan: %w", err)
		}
		return HafalanEvidence(rows, cur.ranges, cur.surahNames), nil
	case KindTilawah:
		rows, err := s.Store.ListTilawahRecords(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("ambil catatan tilawah: %w", err)
		}
		return TilawahEvidence(rows, cur.surahNames), nil
	case KindWafa:
		rows, err := s.Store.ListWafaRecords(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("ambil catatan wafa: %w", err)
		}
		return WafaEvidence(rows, cur.bookNames), nil
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("kind tidak dikenal: %q", kind))
}
