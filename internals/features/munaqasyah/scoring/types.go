// file: internals/features/munaqasyah/scoring/types.go
package scoring

import "errors"

/* =========================================================
   Konstanta penilaian
========================================================= */

const (
	// Tasmi: bobot kesalahan
	TasmiMinorWeight = 2
	TasmiMajorWeight = 5

	// Nilai awal tasmi: 1..1000, maksimal satu angka desimal (kolom numeric(5,1))
	TasmiMinInitialScore = 1.0
	TasmiMaxInitialScore = 1000.0

	// Munaqasyah: nilai dasar tetap per soal
	MunaqasyahBase          = 50
	MunaqasyahMinorWeight   = 2
	MunaqasyahMajorWeight   = 3
	MunaqasyahQuestionCount = 5

	// Bobot nilai akhir
	TasmiWeight      = 0.7
	MunaqasyahWeight = 0.3

	// Batas bawah tiap predikat (inklusif)
	MumtazMin       = 91.0
	JayyidJiddanMin = 85.0
	JayyidMin       = 80.0
)

// ErrQuestionCount dikembalikan AggregateMunaqasyah kalau jumlah soal != 5.
var ErrQuestionCount = errors.New("munaqasyah harus terdiri dari tepat 5 soal")

// ScoreDetailInput adalah satu baris penilaian: satu surah (Tasmi)
// atau satu nomor soal 1..5 (Munaqasyah).
type ScoreDetailInput struct {
	UnitID       int     `json:"unit_id"`
	InitialScore float64 `json:"initial_score"` // hanya Tasmi

	// kelas "ringan"
	Minor1 int `json:"minor_1"`
	Minor2 int `json:"minor_2"`
	Minor3 int `json:"minor_3"`

	// kelas "berat"
	Major1 int `json:"major_1"`
	Major2 int `json:"major_2"`

	Note *string `json:"note,omitempty"`
}

func (in ScoreDetailInput) MinorSum() int { return in.Minor1 + in.Minor2 + in.Minor3 }
func (in ScoreDetailInput) MajorSum() int { return in.Major1 + in.Major2 }

func (in ScoreDetailInput) hasNegativePenalty() bool {
	return in.Minor1 < 0 || in.Minor2 < 0 || in.Minor3 < 0 || in.Major1 < 0 || in.Major2 < 0
}

/* =========================================================
   Predikat
========================================================= */

type Grade string

const (
	GradeMumtaz       Grade = "MUMTAZ"
	GradeJayyidJiddan Grade = "JAYYID_JIDDAN"
	GradeJayyid       Grade = "JAYYID"
	GradeTidakLulus   Grade = "TIDAK_LULUS"
)

// Rank: TIDAK_LULUS < JAYYID < JAYYID_JIDDAN < MUMTAZ
func (g Grade) Rank() int {
	switch g {
	case GradeMumtaz:
		return 3
	case GradeJayyidJiddan:
		return 2
	case GradeJayyid:
		return 1
	default:
		return 0
	}
}

func (g Grade) Passed() bool { return g.Rank() > 0 }

// Label untuk tampilan rapor.
func (g Grade) Label() string {
	switch g {
	case GradeMumtaz:
		return "Mumtaz"
	case GradeJayyidJiddan:
		return "Jayyid Jiddan"
	case GradeJayyid:
		return "Jayyid"
	default:
		return "Tidak Lulus"
	}
}

/* =========================================================
   Hasil
========================================================= */

type UnitScore struct {
	UnitID     int     `json:"unit_id"`
	RawTotal   float64 `json:"raw_total"`
	Percentage float64 `json:"percentage"`
}

type StageResult struct {
	PerUnit    []UnitScore `json:"per_unit"`
	TotalScore float64     `json:"total_score"`
}

// Percentages mengembalikan daftar persentase per unit sesuai urutan input.
func (r StageResult) Percentages() []float64 {
	out := make([]float64, 0, len(r.PerUnit))
	for _, u := range r.PerUnit {
		out = append(out, u.Percentage)
	}
	return out
}

type ValidationResult struct {
	IsValid bool   `json:"is_valid"`
	Error   string `json:"error,omitempty"`
}

func valid() ValidationResult { return ValidationResult{IsValid: true} }

func invalid(msg string) ValidationResult { return ValidationResult{IsValid: false, Error: msg} }
