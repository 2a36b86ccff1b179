package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTod(t *testing.T) {
	tod, err := ParseTod("07:30")
	require.NoError(t, err)
	assert.Equal(t, "07:30", tod.String())

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:30:00", v)

	var scanned Tod
	require.NoError(t, scanned.Scan(time.Date(2024, 1, 2, 13, 15, 0, 0, time.UTC)))
	assert.Equal(t, "13:15", scanned.String())

	_, err = ParseTod("25:99")
	assert.Error(t, err)

	var fromJSON struct {
		Start Tod `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"08:00:00"}`), &fromJSON))
	assert.Equal(t, "08:00", fromJSON.Start.String())
}
