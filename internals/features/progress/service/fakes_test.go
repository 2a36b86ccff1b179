package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tahfidz_backend/internals/features/progress/model"
	studentService "tahfidz_backend/internals/features/students/service"
)

func ip(v int) *int { return &v }

type fakeStore struct {
	juz     []model.JuzModel
	ranges  []model.JuzSurahRangeRow
	books   []model.WafaBookModel
	hafalan map[uuid.UUID][]model.HafalanSetoranModel
	tilawah map[uuid.UUID][]model.TilawahRecordModel
	wafa    map[uuid.UUID][]model.WafaRecordModel
	lastQ   EvidenceQuery
	queries int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		juz: []model.JuzModel{
			{JuzID: 30, JuzName: "Juz 30", JuzPageStart: 582, JuzPageEnd: 604},
			{JuzID: 29, JuzName: "Juz 29", JuzPageStart: 562, JuzPageEnd: 581},
		},
		ranges: []model.JuzSurahRangeRow{
			{JuzID: 29, SurahID: 67, AyatStart: 1, AyatEnd: 30, SurahNameLatin: "Al-Mulk"},
			{JuzID: 29, SurahID: 68, AyatStart: 1, AyatEnd: 52, SurahNameLatin: "Al-Qalam"},
			{JuzID: 30, SurahID: 78, AyatStart: 1, AyatEnd: 40, SurahNameLatin: "An-Naba"},
			{JuzID: 30, SurahID: 79, AyatStart: 1, AyatEnd: 46, SurahNameLatin: "An-Nazi'at"},
		},
		books: []model.WafaBookModel{
			{WafaBookID: 1, WafaBookName: "Wafa 1", WafaBookPageCount: 40},
			{WafaBookID: 2, WafaBookName: "Wafa 2", WafaBookPageCount: 40},
		},
		hafalan: map[uuid.UUID][]model.HafalanSetoranModel{},
		tilawah: map[uuid.UUID][]model.TilawahRecordModel{},
		wafa:    map[uuid.UUID][]model.WafaRecordModel{},
	}
}

func (f *fakeStore) ListJuz(context.Context) ([]model.JuzModel, error) { return f.juz, nil }
func (f *fakeStore) ListJuzSurahRanges(context.Context) ([]model.JuzSurahRangeRow, error) {
	return f.ranges, nil
}
func (f *fakeStore) ListWafaBooks(context.Context) ([]model.WafaBookModel, error) { return f.books, nil }

func (f *fakeStore) ListHafalanSetorans(_ context.Context, q EvidenceQuery) ([]model.HafalanSetoranModel, error) {
	f.lastQ, f.queries = q, f.queries+1
	return f.hafalan[q.StudentID], nil
}
func (f *fakeStore) ListTilawahRecords(_ context.Context, q EvidenceQuery) ([]model.TilawahRecordModel, error) {
	f.lastQ, f.queries = q, f.queries+1
	return f.tilawah[q.StudentID], nil
}
func (f *fakeStore) ListWafaRecords(_ context.Context, q EvidenceQuery) ([]model.WafaRecordModel, error) {
	f.lastQ, f.queries = q, f.queries+1
	return f.wafa[q.StudentID], nil
}

type fakeAccess struct {
	inSchool  map[uuid.UUID]bool
	ofTeacher map[uuid.UUID]uuid.UUID // student → teacher
}

func (f fakeAccess) StudentInSchool(_ context.Context, _, studentID uuid.UUID) (bool, error) {
	return f.inSchool[studentID], nil
}

func (f fakeAccess) IsStudentOfTeacher(_ context.Context, _, studentID, teacherID uuid.UUID) (bool, error) {
	t, ok := f.ofTeacher[studentID]
	return ok && t == teacherID, nil
}

type fakeRoster []studentService.RosterEntry

func (f fakeRoster) Roster(context.Context, uuid.UUID, uuid.UUID, string) ([]studentService.RosterEntry, error) {
	return f, nil
}

func fixedNow() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }
