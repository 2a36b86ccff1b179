package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tahfidz_backend/internals/features/progress/engine"
	"tahfidz_backend/internals/features/progress/model"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Tilawah ")
	require.NoError(t, err)
	assert.Equal(t, KindTilawah, k)

	_, err = ParseKind("murojaah")
	assert.Error(t, err)
}

func TestBuildUnits(t *testing.T) {
	f := newFakeStore()

	hafalan := BuildHafalanUnits(f.juz, f.ranges)
	require.Len(t, hafalan, 2)
	assert.Equal(t, engine.KindDiscrete, hafalan[0].Kind)
	assert.Equal(t, 2, hafalan[0].TotalCount())

	tilawah := BuildTilawahUnits(f.juz, f.ranges)
	require.Len(t, tilawah, 2)
	assert.Equal(t, 30, tilawah[0].ID)
	assert.Equal(t, 86, tilawah[0].TotalCount())
	assert.Equal(t, 82, tilawah[1].TotalCount())

	wafa := BuildWafaUnits(f.books)
	require.Len(t, wafa, 2)
	assert.Equal(t, 40, wafa[1].TotalCount())
	assert.Nil(t, wafa[1].SubRanges[0].SubUnitID)
}

func TestHafalanEvidence_LulusOncePerSurah(t *testing.T) {
	rows := []model.HafalanSetoranModel{
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 78, HafalanSetoranStatus: model.SetoranStatusUlang},
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 78, HafalanSetoranStatus: model.SetoranStatusLulus},
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 78, HafalanSetoranStatus: model.SetoranStatusLulus},
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 114, HafalanSetoranStatus: model.SetoranStatusLulus},
	}
	ranges := []model.JuzSurahRangeRow{
		{JuzID: 30, SurahID: 78, AyatStart: 1, AyatEnd: 40},
		{JuzID: 30, SurahID: 114, AyatStart: 1, AyatEnd: 6},
	}
	got := HafalanEvidence(rows, ranges, map[int]string{78: "An-Naba"})
	require.Len(t, got, 2)
	assert.Equal(t, "An-Naba", got[0].Label)
	assert.Equal(t, "Surah 114", got[1].Label)
}

func TestHafalanEvidence_SurahOutsideJuzIgnored(t *testing.T) {
	f := newFakeStore()
	rows := []model.HafalanSetoranModel{
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 2, HafalanSetoranStatus: model.SetoranStatusLulus},
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 67, HafalanSetoranStatus: model.SetoranStatusLulus},
		{HafalanSetoranJuzID: 1, HafalanSetoranSurahID: 1, HafalanSetoranStatus: model.SetoranStatusLulus},
		{HafalanSetoranJuzID: 30, HafalanSetoranSurahID: 78, HafalanSetoranStatus: model.SetoranStatusLulus},
	}
	got := HafalanEvidence(rows, f.ranges, nil)
	require.Len(t, got, 1)
	assert.Equal(t, 30, got[0].UnitID)
	assert.Equal(t, 78, *got[0].SubUnitID)

	sum := engine.AggregateProgress(BuildHafalanUnits(f.juz, f.ranges), got)
	require.Len(t, sum.Entries, 2)
	assert.Equal(t, 0, sum.Entries[0].CompletedCount) // juz 29
	assert.Equal(t, 1, sum.Entries[1].CompletedCount) // juz 30
	assert.Equal(t, engine.StatusSedangDijalani, sum.Entries[1].Status)
}

func TestTilawahAndWafaEvidenceLabels(t *testing.T) {
	til := TilawahEvidence([]model.TilawahRecordModel{
		{TilawahRecordJuzID: 30, TilawahRecordSurahID: 78, TilawahRecordAyatStart: ip(1), TilawahRecordAyatEnd: ip(20)},
		{TilawahRecordJuzID: 30, TilawahRecordSurahID: 79},
	}, map[int]string{78: "An-Naba", 79: "An-Nazi'at"})
	require.Len(t, til, 2)
	assert.Equal(t, "An-Naba 1-20", til[0].Label)
	assert.Equal(t, "An-Nazi'at", til[1].Label)
	assert.Nil(t, til[1].RangeStart)

	wafa := WafaEvidence([]model.WafaRecordModel{
		{WafaRecordBookID: 3, WafaRecordPageStart: ip(10), WafaRecordPageEnd: ip(12)},
	}, map[int]string{})
	require.Len(t, wafa, 1)
	assert.Equal(t, "Wafa 3 hal. 10-12", wafa[0].Label)
}
