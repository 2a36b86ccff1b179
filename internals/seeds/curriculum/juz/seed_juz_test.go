package juz

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJuz_DataFile(t *testing.T) {
	content, err := os.ReadFile("data_juz.json")
	require.NoError(t, err)

	rows, err := ParseJuz(content)
	require.NoError(t, err)
	require.Len(t, rows, 30)

	assert.Equal(t, 1, rows[0].JuzPageStart)
	assert.Equal(t, 604, rows[29].JuzPageEnd)
	for i := 1; i < len(rows); i++ {
		assert.Equal(t, rows[i-1].JuzPageEnd+1, rows[i].JuzPageStart, "juz %d", rows[i].JuzID)
	}
}

func TestParseJuz_Invalid(t *testing.T) {
	_, err := ParseJuz([]byte(`[{"juz_id":31,"juz_name":"Juz 31","juz_page_start":1,"juz_page_end":2}]`))
	assert.Error(t, err)

	_, err = ParseJuz([]byte(`{bukan json`))
	assert.Error(t, err)
}
