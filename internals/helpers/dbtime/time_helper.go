// file: internals/helpers/dbtime/time_helper.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	LocSchoolTimezone = "school_timezone" // string, misal "Asia/Jakarta"
	LocSchoolLoc      = "school_loc"      // *time.Location

	DefaultTimezone = "Asia/Jakarta"
	DateLayout      = "2006-01-02"
)

// GetSchoolLocation:
// 1) c.Locals("school_loc") kalau sudah ada
// 2) c.Locals("school_timezone") (string) → LoadLocation
// 3) Asia/Jakarta, lalu time.UTC
func GetSchoolLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return defaultLocation()
	}
	if v := c.Locals(LocSchoolLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}
	if v, ok := c.Locals(LocSchoolTimezone).(string); ok && strings.TrimSpace(v) != "" {
		if loc, err := time.LoadLocation(strings.TrimSpace(v)); err == nil {
			c.Locals(LocSchoolLoc, loc)
			return loc
		}
	}
	loc := defaultLocation()
	c.Locals(LocSchoolLoc, loc)
	return loc
}

func defaultLocation() *time.Location {
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func ToSchoolTime(c *fiber.Ctx, t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.In(GetSchoolLocation(c))
}

func ToSchoolTimePtr(c *fiber.Ctx, t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := ToSchoolTime(c, *t)
	return &v
}

// ParseDateQuery membaca ?key=YYYY-MM-DD di timezone sekolah.
// Kosong → (nil, nil). toEndOfDay=true menggeser ke awal hari berikutnya
// supaya bisa dipakai sebagai batas eksklusif "< to".
func ParseDateQuery(c *fiber.Ctx, key string, toEndOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, raw, GetSchoolLocation(c))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, key+" harus format YYYY-MM-DD")
	}
	if toEndOfDay {
		t = t.AddDate(0, 0, 1)
	}
	return &t, nil
}
