// file: internals/features/munaqasyah/scoring/calculator.go
package scoring

import (
	"fmt"
	"math"
)

/*
Kalkulator nilai Tasmi & Munaqasyah.

Semua fungsi murni: tidak ada I/O, tidak ada state, aman dipanggil paralel.
Validasi input dilakukan caller lewat ValidateTasmiDetails / ValidateMunaqasyahDetails
sebelum memanggil agregator.
*/

/* =========================
   Tasmi
========================= */

// ScoreTasmiUnit menghitung nilai satu surah.
// Persentase TIDAK di-clamp di sini; clamp dilakukan saat agregasi.
func ScoreTasmiUnit(in ScoreDetailInput) (rawTotal, percentage float64) {
	rawTotal = math.Max(0, in.InitialScore-
		float64(TasmiMinorWeight*in.MinorSum())-
		float64(TasmiMajorWeight*in.MajorSum()))

	if in.InitialScore > 0 {
		percentage = rawTotal / in.InitialScore * 100
	}
	return rawTotal, percentage
}

// AggregateTasmi: input kosong → hasil kosong (bukan error).
func AggregateTasmi(details []ScoreDetailInput) StageResult {
	if len(details) == 0 {
		return StageResult{PerUnit: []UnitScore{}, TotalScore: 0}
	}

	per := make([]UnitScore, 0, len(details))
	for _, d := range details {
		raw, pct := ScoreTasmiUnit(d)
		per = append(per, UnitScore{UnitID: d.UnitID, RawTotal: raw, Percentage: round1(pct)})
	}
	return StageResult{PerUnit: per, TotalScore: averageScore(per)}
}

/* =========================
   Munaqasyah
========================= */

func ScoreMunaqasyahQuestion(in ScoreDetailInput) (rawTotal, percentage float64) {
	rawTotal = math.Max(0, float64(MunaqasyahBase-
		MunaqasyahMinorWeight*in.MinorSum()-
		MunaqasyahMajorWeight*in.MajorSum()))
	percentage = rawTotal / MunaqasyahBase * 100
	return rawTotal, percentage
}

// AggregateMunaqasyah wajib menerima tepat 5 soal. Selain itu ErrQuestionCount:
// ini pelanggaran format ujian, bukan masalah kualitas data.
func AggregateMunaqasyah(details []ScoreDetailInput) (StageResult, error) {
	if len(details) != MunaqasyahQuestionCount {
		return StageResult{}, fmt.Errorf("%w (diterima %d)", ErrQuestionCount, len(details))
	}

	per := make([]UnitScore, 0, len(details))
	for _, d := range details {
		raw, pct := ScoreMunaqasyahQuestion(d)
		per = append(per, UnitScore{UnitID: d.UnitID, RawTotal: raw, Percentage: round1(pct)})
	}
	return StageResult{PerUnit: per, TotalScore: averageScore(per)}, nil
}

/* =========================
   Predikat & nilai akhir
========================= */

func GradeFromScore(score float64) Grade {
	switch {
	case score >= MumtazMin:
		return GradeMumtaz
	case score >= JayyidJiddanMin:
		return GradeJayyidJiddan
	case score >= JayyidMin:
		return GradeJayyid
	default:
		return GradeTidakLulus
	}
}

// FinalScore = 70% Tasmi + 30% Munaqasyah.
func FinalScore(tasmi, munaqasyah float64) float64 {
	return round1(clamp100(tasmi*TasmiWeight + munaqasyah*MunaqasyahWeight))
}

/* =========================
   Helpers
========================= */

func averageScore(per []UnitScore) float64 {
	if len(per) == 0 {
		return 0
	}
	var sum float64
	for _, u := range per {
		sum += u.Percentage
	}
	return round1(clamp100(sum / float64(len(per))))
}

func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
