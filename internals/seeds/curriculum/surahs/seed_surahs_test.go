package surahs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJuzSurahs_DataFile(t *testing.T) {
	content, err := os.ReadFile("data_juz_surahs.json")
	require.NoError(t, err)

	surahs, ranges, err := ParseJuzSurahs(content)
	require.NoError(t, err)
	assert.Len(t, surahs, 114)
	assert.Len(t, ranges, 135)

	perJuz := map[int]int{}
	perSurah := map[int]int{}
	total := 0
	for _, r := range ranges {
		perJuz[r.JuzSurahRangeJuzID]++
		n := r.JuzSurahRangeAyatEnd - r.JuzSurahRangeAyatStart + 1
		perSurah[r.JuzSurahRangeSurahID] += n
		total += n
	}
	for juz := 1; juz <= 30; juz++ {
		assert.GreaterOrEqual(t, perJuz[juz], 1, "juz %d tanpa rentang surah", juz)
	}
	assert.Len(t, perJuz, 30)
	assert.Equal(t, 2, perJuz[1]) // Al-Fatihah + Al-Baqarah 1-141
	assert.Equal(t, 11, perJuz[29])
	assert.Equal(t, 37, perJuz[30])

	// tiap surah tertutup penuh, tanpa tumpang tindih antar juz
	for _, s := range surahs {
		assert.Equal(t, s.SurahAyatCount, perSurah[s.SurahID], "surah %d", s.SurahID)
	}
	assert.Equal(t, 6236, total)
}

func TestParseJuzSurahs_RejectsBadRange(t *testing.T) {
	_, _, err := ParseJuzSurahs([]byte(`[{"juz_id":30,"surahs":[
		{"surah_id":112,"surah_name":"الإخلاص","surah_name_latin":"Al-Ikhlas","surah_ayat_count":4,"ayat_start":1,"ayat_end":5}
	]}]`))
	assert.Error(t, err)
}
