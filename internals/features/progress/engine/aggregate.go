// file: internals/features/progress/engine/aggregate.go
package engine

import (
	"cmp"
	"math"
	"slices"
)

/*
Agregator progres kurikulum (hafalan, tilawah, wafa).

Satu implementasi untuk semua role: filter per role (siswa/guru/koordinator)
dilakukan di service saat mengambil bukti, bukan di sini.

Catatan: irisan rentang yang tumpang tindih TIDAK di-dedup, sehingga
CompletedCount bisa melebihi TotalCount (Percent > 100). Grafik lama
bergantung pada angka ini, jangan di-clamp.
*/

func ComputeUnitProgress(unit CurriculumUnit, evidence []CompletionRecord) UnitProgress {
	total := unit.TotalCount()

	var completed int
	if unit.Kind == KindDiscrete {
		completed = countMatching(unit, evidence)
	} else {
		completed = sumOverlap(unit, evidence)
	}

	percent := 0.0
	if total > 0 {
		percent = RoundTo(float64(completed)/float64(total)*100, 2)
	}

	return UnitProgress{
		UnitID:         unit.ID,
		Name:           unit.Name,
		CompletedCount: completed,
		TotalCount:     total,
		Percent:        percent,
		Status:         statusOf(completed, total),
	}
}

// AggregateProgress memproses unit dari ID terkecil. CurrentUnitID adalah
// unit SEDANG_DIJALANI terakhir yang ditemui; LastLabel diambil dari bukti
// terakhir (urutan slice) pada unit tertinggi yang sudah ada progresnya.
func AggregateProgress(units []CurriculumUnit, evidence []CompletionRecord) Summary {
	ordered := slices.Clone(units)
	slices.SortStableFunc(ordered, func(a, b CurriculumUnit) int { return cmp.Compare(a.ID, b.ID) })

	entries := make([]UnitProgress, 0, len(ordered))
	for _, u := range ordered {
		entries = append(entries, ComputeUnitProgress(u, evidence))
	}

	return Summary{
		Entries:       entries,
		CurrentUnitID: foldCurrentUnit(entries),
		LastLabel:     lastLabel(ordered, entries, evidence),
	}
}

func foldCurrentUnit(entries []UnitProgress) *int {
	var current *int
	for _, e := range entries {
		if e.Status == StatusSedangDijalani {
			id := e.UnitID
			current = &id
		}
	}
	return current
}

func lastLabel(ordered []CurriculumUnit, entries []UnitProgress, evidence []CompletionRecord) string {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Status == StatusBelumDimulai {
			continue
		}
		unit := ordered[i]
		label := ""
		for _, r := range evidence {
			if recordTouchesUnit(unit, r) {
				label = r.Label
			}
		}
		return label
	}
	return ""
}

// MergeStudentSources menggabungkan data historis lalu aktif; kemunculan pertama menang.
func MergeStudentSources[T any, K comparable](historical, active []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(historical)+len(active))
	out := make([]T, 0, len(historical)+len(active))
	for _, src := range [][]T{historical, active} {
		for _, s := range src {
			k := key(s)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// RoundTo membulatkan half away from zero.
func RoundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

/* =========================
   internal
========================= */

func statusOf(completed, total int) Status {
	switch {
	case total > 0 && completed >= total:
		return StatusSelesai
	case completed > 0:
		return StatusSedangDijalani
	default:
		return StatusBelumDimulai
	}
}

func countMatching(unit CurriculumUnit, evidence []CompletionRecord) int {
	n := 0
	for _, r := range evidence {
		if r.UnitID == unit.ID {
			n++
		}
	}
	return n
}

func sumOverlap(unit CurriculumUnit, evidence []CompletionRecord) int {
	sum := 0
	for _, r := range evidence {
		if r.RangeStart == nil || r.RangeEnd == nil {
			continue
		}
		for _, s := range unit.SubRanges {
			if !recordMatchesSubRange(unit, s, r) {
				continue
			}
			sum += overlap(*r.RangeStart, *r.RangeEnd, s.Start, s.End)
		}
	}
	return sum
}

// Sub-range yang terikat surah dicocokkan lewat SubUnitID (ayat lintas juz tetap terhitung);
// selain itu lewat UnitID.
func recordMatchesSubRange(unit CurriculumUnit, s SubRange, r CompletionRecord) bool {
	if s.SubUnitID != nil {
		return r.SubUnitID != nil && *r.SubUnitID == *s.SubUnitID
	}
	return r.UnitID == unit.ID
}

func recordTouchesUnit(unit CurriculumUnit, r CompletionRecord) bool {
	if unit.Kind == KindDiscrete {
		return r.UnitID == unit.ID
	}
	if r.RangeStart == nil || r.RangeEnd == nil {
		return false
	}
	for _, s := range unit.SubRanges {
		if recordMatchesSubRange(unit, s, r) && overlap(*r.RangeStart, *r.RangeEnd, s.Start, s.End) > 0 {
			return true
		}
	}
	return false
}

func overlap(aStart, aEnd, bStart, bEnd int) int {
	return max(0, min(aEnd, bEnd)-max(aStart, bStart)+1)
}
