// file: internals/features/progress/service/curriculum.go
package service

import (
	"fmt"
	"strings"

	"tahfidz_backend/internals/features/progress/engine"
	"tahfidz_backend/internals/features/progress/model"
)

type CurriculumKind string

const (
	KindHafalan CurriculumKind = "hafalan"
	KindTilawah CurriculumKind = "tilawah"
	KindWafa    CurriculumKind = "wafa"
)

func ParseKind(s string) (CurriculumKind, error) {
	switch k := CurriculumKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindHafalan, KindTilawah, KindWafa:
		return k, nil
	}
	return "", fmt.Errorf("kind tidak dikenal: %q (hafalan|tilawah|wafa)", s)
}

// curriculum = unit + lookup nama untuk label bukti
type curriculum struct {
	units      []engine.CurriculumUnit
	ranges     []model.JuzSurahRangeRow
	surahNames map[int]string
	bookNames  map[int]string
}

/* =========================
   Builders
========================= */

// BuildHafalanUnits: satu unit per juz, target = jumlah surah (potongan) di juz tsb.
func BuildHafalanUnits(juz []model.JuzModel, ranges []model.JuzSurahRangeRow) []engine.CurriculumUnit {
	perJuz := make(map[int]int, len(juz))
	for _, r := range ranges {
		perJuz[r.JuzID]++
	}

	units := make([]engine.CurriculumUnit, 0, len(juz))
	for _, j := range juz {
		units = append(units, engine.CurriculumUnit{
			ID:           j.JuzID,
			Name:         j.JuzName,
			Kind:         engine.KindDiscrete,
			SubUnitCount: perJuz[j.JuzID],
		})
	}
	return units
}

// BuildTilawahUnits: satu unit per juz, sub-range = rentang ayat tiap surah di juz tsb.
func BuildTilawahUnits(juz []model.JuzModel, ranges []model.JuzSurahRangeRow) []engine.CurriculumUnit {
	perJuz := make(map[int][]engine.SubRange, len(juz))
	for _, r := range ranges {
		surahID := r.SurahID
		perJuz[r.JuzID] = append(perJuz[r.JuzID], engine.SubRange{
			SubUnitID: &surahID,
			Start:     r.AyatStart,
			End:       r.AyatEnd,
		})
	}

	units := make([]engine.CurriculumUnit, 0, len(juz))
	for _, j := range juz {
		units = append(units, engine.CurriculumUnit{
			ID:        j.JuzID,
			Name:      j.JuzName,
			Kind:      engine.KindRange,
			SubRanges: perJuz[j.JuzID],
		})
	}
	return units
}

// BuildWafaUnits: satu unit per buku, satu sub-range [1, jumlah halaman].
func BuildWafaUnits(books []model.WafaBookModel) []engine.CurriculumUnit {
	units := make([]engine.CurriculumUnit, 0, len(books))
	for _, b := range books {
		units = append(units, engine.CurriculumUnit{
			ID:        b.WafaBookID,
			Name:      b.WafaBookName,
			Kind:      engine.KindRange,
			SubRanges: []engine.SubRange{{Start: 1, End: b.WafaBookPageCount}},
		})
	}
	return units
}

/* =========================
   Evidence → CompletionRecord
========================= */

type hafalanKey struct{ juz, surah int }

// HafalanEvidence: hanya setoran lulus, satu per (juz, surah); setoran lulus pertama yang dipakai.
// Pasangan (juz, surah) yang tidak ada di rentang kurikulum diabaikan.
func HafalanEvidence(rows []model.HafalanSetoranModel, ranges []model.JuzSurahRangeRow, surahNames map[int]string) []engine.CompletionRecord {
	inJuz := make(map[hafalanKey]struct{}, len(ranges))
	for _, r := range ranges {
		inJuz[hafalanKey{r.JuzID, r.SurahID}] = struct{}{}
	}

	seen := make(map[hafalanKey]struct{}, len(rows))
	out := make([]engine.CompletionRecord, 0, len(rows))
	for _, r := range rows {
		if r.HafalanSetoranStatus != model.SetoranStatusLulus {
			continue
		}
		k := hafalanKey{r.HafalanSetoranJuzID, r.HafalanSetoranSurahID}
		if _, ok := inJuz[k]; !ok {
			continue
		}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}

		surahID := r.HafalanSetoranSurahID
		out = append(out, engine.CompletionRecord{
			UnitID:    r.HafalanSetoranJuzID,
			SubUnitID: &surahID,
			Label:     surahLabel(surahNames, surahID),
		})
	}
	return out
}

// TilawahEvidence: apa adanya (overlap antar catatan tidak digabung).
func TilawahEvidence(rows []model.TilawahRecordModel, surahNames map[int]string) []engine.CompletionRecord {
	out := make([]engine.CompletionRecord, 0, len(rows))
	for _, r := range rows {
		surahID := r.TilawahRecordSurahID
		label := surahLabel(surahNames, surahID)
		if r.TilawahRecordAyatStart != nil && r.TilawahRecordAyatEnd != nil {
			label = fmt.Sprintf("%s %d-%d", label, *r.TilawahRecordAyatStart, *r.TilawahRecordAyatEnd)
		}
		out = append(out, engine.CompletionRecord{
			UnitID:     r.TilawahRecordJuzID,
			SubUnitID:  &surahID,
			RangeStart: r.TilawahRecordAyatStart,
			RangeEnd:   r.TilawahRecordAyatEnd,
			Label:      label,
		})
	}
	return out
}

func WafaEvidence(rows []model.WafaRecordModel, bookNames map[int]string) []engine.CompletionRecord {
	out := make([]engine.CompletionRecord, 0, len(rows))
	for _, r := range rows {
		name, ok := bookNames[r.WafaRecordBookID]
		if !ok {
			name = fmt.Sprintf("Wafa %d", r.WafaRecordBookID)
		}
		label := name
		if r.WafaRecordPageStart != nil && r.WafaRecordPageEnd != nil {
			label = fmt.Sprintf("%s hal. %d-%d", name, *r.WafaRecordPageStart, *r.WafaRecordPageEnd)
		}
		out = append(out, engine.CompletionRecord{
			UnitID:     r.WafaRecordBookID,
			RangeStart: r.WafaRecordPageStart,
			RangeEnd:   r.WafaRecordPageEnd,
			Label:      label,
		})
	}
	return out
}

func surahLabel(names map[int]string, id int) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return fmt.Sprintf("Surah %d", id)
}
