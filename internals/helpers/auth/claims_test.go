package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaimsFromLocals(t *testing.T) {
	uid := uuid.New()
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		c.Locals(LocUserID, uid.String())
		c.Locals(LocRole, " Guru ")
		c.Locals(LocSchoolID, "bukan-uuid")

		got, err := GetUserIDFromToken(c)
		require.NoError(t, err)
		assert.Equal(t, uid, got)

		assert.Equal(t, "guru", GetRole(c))
		assert.True(t, HasAnyRole(c, "koordinator", "GURU"))
		assert.False(t, HasAnyRole(c, "siswa"))

		_, err = GetSchoolIDFromToken(c)
		assert.Error(t, err)

		_, err = GetStudentIDFromToken(c)
		var fe *fiber.Error
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}
