package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahfidz_backend/internals/constants"
	"tahfidz_backend/internals/features/progress/engine"
	"tahfidz_backend/internals/features/progress/model"
	studentService "tahfidz_backend/internals/features/students/service"
)

func requireStatus(t *testing.T, err error, code int) {
	t.Helper()
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe), "want *fiber.Error, got %v", err)
	assert.Equal(t, code, fe.Code)
}

func TestResolveStudent(t *testing.T) {
	ctx := context.Background()
	school := uuid.New()
	me, other, teacher := uuid.New(), uuid.New(), uuid.New()
	access := fakeAccess{
		inSchool:  map[uuid.UUID]bool{me: true},
		ofTeacher: map[uuid.UUID]uuid.UUID{me: teacher},
	}

	t.Run("siswa default ke diri sendiri", func(t *testing.T) {
		id, err := ResolveStudent(ctx, access, Viewer{Role: constants.RoleSiswa, SchoolID: school, StudentID: me}, nil)
		require.NoError(t, err)
		assert.Equal(t, me, id)
	})
	t.Run("siswa lain ditolak", func(t *testing.T) {
		_, err := ResolveStudent(ctx, access, Viewer{Role: constants.RoleSiswa, SchoolID: school, StudentID: me}, &other)
		requireStatus(t, err, fiber.StatusForbidden)
	})
	t.Run("guru halaqah sendiri", func(t *testing.T) {
		id, err := ResolveStudent(ctx, access, Viewer{Role: constants.RoleGuru, SchoolID: school, TeacherID: teacher}, &me)
		require.NoError(t, err)
		assert.Equal(t, me, id)
	})
	t.Run("guru bukan halaqah-nya", func(t *testing.T) {
		_, err := ResolveStudent(ctx, access, Viewer{Role: constants.RoleGuru, SchoolID: school, TeacherID: uuid.New()}, &me)
		requireStatus(t, err, fiber.StatusForbidden)
	})
	t.Run("guru tanpa student_id", func(t *testing.T) {
		_, err := ResolveStudent(ctx, access, Viewer{Role: constants.RoleGuru, SchoolID: school, TeacherID: teacher}, nil)
		requireStatus(t, err, fiber.StatusBadRequest)
	})
	t.Run("koordinator siswa sekolah lain", func(t *testing.T) {
		_, err := ResolveStudent(ctx, access, Viewer{Role: constants.RoleKoordinator, SchoolID: school}, &other)
		requireStatus(t, err, fiber.StatusNotFound)
	})
	t.Run("admin siswa sekolah", func(t *testing.T) {
		id, err := ResolveStudent(ctx, access, Viewer{Role: constants.RoleAdmin, SchoolID: school}, &me)
		require.NoError(t, err)
		assert.Equal(t, me, id)
	})
	t.Run("role asing", func(t *testing.T) {
		_, err := ResolveStudent(ctx, access, Viewer{Role: "wali"}, &me)
		requireStatus(t, err, fiber.StatusForbidden)
	})
}

func TestStudentProgress_Tilawah(t *testing.T) {
	store := newFakeStore()
	me := uuid.New()
	store.tilawah[me] = []model.TilawahRecordModel{
		{TilawahRecordJuzID: 30, TilawahRecordSurahID: 78, TilawahRecordAyatStart: ip(1), TilawahRecordAyatEnd: ip(40)},
		{TilawahRecordJuzID: 30, TilawahRecordSurahID: 79, TilawahRecordAyatStart: ip(1), TilawahRecordAyatEnd: ip(7)},
	}
	svc := NewProgressService(store, fakeAccess{}, fakeRoster{})
	svc.Now = fixedNow

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.StudentProgress(context.Background(),
		Viewer{Role: constants.RoleSiswa, SchoolID: uuid.New(), StudentID: me},
		KindTilawah, nil, Period{From: &from})
	require.NoError(t, err)

	assert.Equal(t, me, got.StudentID)
	assert.Equal(t, fixedNow(), got.GeneratedAt)
	assert.Equal(t, &from, store.lastQ.Period.From)

	require.Len(t, got.Summary.Entries, 2)
	assert.Equal(t, 29, got.Summary.Entries[0].UnitID)
	assert.Equal(t, engine.StatusBelumDimulai, got.Summary.Entries[0].Status)

	juz30 := got.Summary.Entries[1]
	assert.Equal(t, 47, juz30.CompletedCount)
	assert.Equal(t, 86, juz30.TotalCount)
	assert.InDelta(t, 54.65, juz30.Percent, 1e-9)
	require.NotNil(t, got.Summary.CurrentUnitID)
	assert.Equal(t, 30, *got.Summary.CurrentUnitID)
	assert.Equal(t, "An-Nazi'at 1-7", got.Summary.LastLabel)
}

func TestStudentProgress_HafalanSelesai(t *testing.T) {
	store := newFakeStore()
	me := uuid.New()
	store.hafalan[me] = []model.HafalanSetoranModel{
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 78, HafalanSetoranStatus: model.SetoranStatusLulus},
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 78, HafalanSetoranStatus: model.SetoranStatusLulus},
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 79, HafalanSetoranStatus: model.SetoranStatusLulus},
	}
	svc := NewProgressService(store, fakeAccess{}, fakeRoster{})

	got, err := svc.StudentProgress(context.Background(),
		Viewer{Role: constants.RoleSiswa, StudentID: me}, KindHafalan, nil, Period{})
	require.NoError(t, err)

	juz30 := got.Summary.Entries[1]
	assert.Equal(t, 2, juz30.CompletedCount)
	assert.Equal(t, engine.StatusSelesai, juz30.Status)
	assert.Nil(t, got.Summary.CurrentUnitID)
	assert.Equal(t, "An-Nazi'at", got.Summary.LastLabel)
}

func TestStudentProgress_InvalidPeriod(t *testing.T) {
	from := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, -1)
	svc := NewProgressService(newFakeStore(), fakeAccess{}, fakeRoster{})

	_, err := svc.StudentProgress(context.Background(),
		Viewer{Role: constants.RoleSiswa, StudentID: uuid.New()}, KindWafa, nil, Period{From: &from, To: &to})
	requireStatus(t, err, fiber.StatusBadRequest)
}

func TestClassProgress(t *testing.T) {
	store := newFakeStore()
	teacher := uuid.New()
	a, b := uuid.New(), uuid.New()
	store.wafa[a] = []model.WafaRecordModel{{WafaRecordBookID: 1, WafaRecordPageStart: ip(1), WafaRecordPageEnd: ip(40)}}
	store.wafa[b] = []model.WafaRecordModel{{WafaRecordBookID: 2, WafaRecordPageStart: ip(1), WafaRecordPageEnd: ip(10)}}

	roster := fakeRoster{
		{StudentID: a, Name: "Aisyah", TeacherID: &teacher, Source: studentService.SourceHistory},
		{StudentID: b, Name: "Bilal", Source: studentService.SourceActive},
	}
	svc := NewProgressService(store, fakeAccess{}, roster)

	t.Run("koordinator melihat semua", func(t *testing.T) {
		got, err := svc.ClassProgress(context.Background(), Viewer{Role: constants.RoleKoordinator}, uuid.New(), "2024/2025", KindWafa, Period{})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, store.queries)
		assert.Equal(t, engine.StatusSelesai, got[0].Summary.Entries[0].Status)
		assert.Equal(t, 25.0, got[1].Summary.Entries[1].Percent)
		assert.Equal(t, "Wafa 2 hal. 1-10", got[1].Summary.LastLabel)
	})

	t.Run("guru hanya halaqah-nya", func(t *testing.T) {
		got, err := svc.ClassProgress(context.Background(), Viewer{Role: constants.RoleGuru, TeacherID: teacher}, uuid.New(), "", KindWafa, Period{})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a, got[0].Student.StudentID)
	})

	t.Run("siswa ditolak", func(t *testing.T) {
		_, err := svc.ClassProgress(context.Background(), Viewer{Role: constants.RoleSiswa}, uuid.New(), "", KindWafa, Period{})
		requireStatus(t, err, fiber.StatusForbidden)
	})
}
