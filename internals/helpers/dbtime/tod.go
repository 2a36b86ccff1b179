// file: internals/helpers/dbtime/tod.go
package dbtime

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Tod = time of day untuk kolom TIME (jam mulai sesi ujian, dsb).
type Tod struct{ time.Time }

const todLayout = "15:04"

// ParseTod menerima "HH:MM" atau "HH:MM:SS".
func ParseTod(s string) (Tod, error) {
	var t Tod
	if err := t.parse(s); err != nil {
		return Tod{}, err
	}
	return t, nil
}

func (t *Tod) parse(s string) error {
	s = strings.TrimSpace(s)
	if len(s) == 5 {
		s += ":00"
	}
	tt, err := time.Parse("15:04:05", s)
	if err != nil {
		return fmt.Errorf("tod: format jam tidak valid %q", s)
	}
	t.Time = tt
	return nil
}

func (t *Tod) Scan(v any) error {
	switch x := v.(type) {
	case time.Time:
		t.Time = time.Date(0, 1, 1, x.Hour(), x.Minute(), x.Second(), 0, time.UTC)
		return nil
	case []byte:
		return t.parse(string(x))
	case string:
		return t.parse(x)
	case nil:
		t.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("tod: unsupported Scan type %T", v)
	}
}

func (t Tod) Value() (driver.Value, error) {
	return t.Format("15:04:05"), nil
}

func (t Tod) String() string { return t.Format(todLayout) }

func (t Tod) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *Tod) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return t.parse(s)
}
