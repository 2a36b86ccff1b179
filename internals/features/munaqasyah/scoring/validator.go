// file: internals/features/munaqasyah/scoring/validator.go
package scoring

import (
	"fmt"
	"math"
)

// ValidateTasmiDetails tidak pernah panic; hasil dikembalikan ke caller
// untuk diputuskan jadi response apa.
func ValidateTasmiDetails(details []ScoreDetailInput) ValidationResult {
	if len(details) == 0 {
		return invalid("detail nilai tasmi wajib diisi")
	}
	for i, d := range details {
		if !(d.InitialScore >= TasmiMinInitialScore) {
			return invalid(fmt.Sprintf("nilai awal pada baris %d minimal 1", i+1))
		}
		if d.InitialScore > TasmiMaxInitialScore {
			return invalid(fmt.Sprintf("nilai awal pada baris %d maksimal %.0f", i+1, TasmiMaxInitialScore))
		}
		if !oneDecimal(d.InitialScore) {
			return invalid(fmt.Sprintf("nilai awal pada baris %d maksimal satu angka desimal", i+1))
		}
		if d.hasNegativePenalty() {
			return invalid(fmt.Sprintf("jumlah kesalahan pada baris %d tidak boleh negatif", i+1))
		}
	}
	return valid()
}

func ValidateMunaqasyahDetails(details []ScoreDetailInput) ValidationResult {
	if len(details) == 0 {
		return invalid("detail nilai munaqasyah wajib diisi")
	}
	if len(details) != MunaqasyahQuestionCount {
		return invalid(fmt.Sprintf("munaqasyah harus %d soal, diterima %d", MunaqasyahQuestionCount, len(details)))
	}
	for i, d := range details {
		if d.hasNegativePenalty() {
			return invalid(fmt.Sprintf("jumlah kesalahan pada soal %d tidak boleh negatif", i+1))
		}
	}
	return valid()
}

// oneDecimal: toleransi kecil untuk representasi float (mis. 92.3*10).
func oneDecimal(v float64) bool {
	return math.Abs(v*10-math.Round(v*10)) < 1e-6
}
