package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTasmiDetails(t *testing.T) {
	tests := []struct {
		name    string
		details []ScoreDetailInput
		valid   bool
	}{
		{name: "empty", details: nil, valid: false},
		{name: "initial below one", details: []ScoreDetailInput{{UnitID: 78, InitialScore: 0.5}}, valid: false},
		{name: "negative penalty", details: []ScoreDetailInput{{UnitID: 78, InitialScore: 100, Major2: -1}}, valid: false},
		{name: "initial above max", details: []ScoreDetailInput{{UnitID: 78, InitialScore: 10000}}, valid: false},
		{name: "initial two decimals", details: []ScoreDetailInput{{UnitID: 78, InitialScore: 33.33}}, valid: false},
		{name: "initial one decimal", details: []ScoreDetailInput{{UnitID: 78, InitialScore: 92.3}}, valid: true},
		{name: "initial at max", details: []ScoreDetailInput{{UnitID: 78, InitialScore: TasmiMaxInitialScore}}, valid: true},
		{name: "ok", details: []ScoreDetailInput{{UnitID: 78, InitialScore: 100, Minor1: 2}}, valid: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateTasmiDetails(tc.details)
			assert.Equal(t, tc.valid, res.IsValid)
			if tc.valid {
				assert.Empty(t, res.Error)
			} else {
				assert.NotEmpty(t, res.Error)
			}
		})
	}
}

func TestValidateMunaqasyahDetails(t *testing.T) {
	assert.False(t, ValidateMunaqasyahDetails(nil).IsValid)
	assert.False(t, ValidateMunaqasyahDetails(make([]ScoreDetailInput, 4)).IsValid)
	assert.False(t, ValidateMunaqasyahDetails(make([]ScoreDetailInput, 6)).IsValid)

	neg := fiveQuestions(0, 0)
	neg[3].Minor3 = -2
	res := ValidateMunaqasyahDetails(neg)
	assert.False(t, res.IsValid)
	assert.Contains(t, res.Error, "soal 4")

	// nilai awal tidak dipakai munaqasyah, jadi 0 tetap valid
	assert.True(t, ValidateMunaqasyahDetails(fiveQuestions(1, 1)).IsValid)
}
