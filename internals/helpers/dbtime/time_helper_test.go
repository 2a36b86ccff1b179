package dbtime

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateQuery(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		from, err := ParseDateQuery(c, "from", false)
		if err != nil {
			return err
		}
		to, err := ParseDateQuery(c, "to", true)
		if err != nil {
			return err
		}
		out := fiber.Map{}
		if from != nil {
			out["from"] = from.Format(DateLayout)
		}
		if to != nil {
			out["to"] = to.Format(DateLayout)
		}
		return c.JSON(out)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?from=2024-07-01&to=2024-12-31", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/?from=01-07-2024", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetSchoolLocation_Default(t *testing.T) {
	assert.NotNil(t, GetSchoolLocation(nil))
}
