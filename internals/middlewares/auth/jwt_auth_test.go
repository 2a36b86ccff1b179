package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperAuth "tahfidz_backend/internals/helpers/auth"
)

const testSecret = "rahasia-test"

func signToken(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/me",
		AuthJWT(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}),
		func(c *fiber.Ctx) error {
			uid, _ := helperAuth.GetUserIDFromToken(c)
			return c.JSON(fiber.Map{"user_id": uid.String(), "role": helperAuth.GetRole(c)})
		})
	app.Get("/guru",
		AuthJWT(AuthJWTOpts{Secret: testSecret}),
		OnlyRoles("khusus guru", "guru", "koordinator"),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusNoContent) })
	return app
}

func TestAuthJWT(t *testing.T) {
	app := newTestApp()
	uid := uuid.New().String()
	valid := signToken(t, jwt.MapClaims{"id": uid, "role": "Guru", "exp": time.Now().Add(time.Hour).Unix()}, testSecret)

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{name: "no token", status: fiber.StatusUnauthorized},
		{name: "bad format", header: "Token abc", status: fiber.StatusUnauthorized},
		{name: "wrong secret", header: "Bearer " + signToken(t, jwt.MapClaims{"id": uid}, "lain"), status: fiber.StatusUnauthorized},
		{name: "expired", header: "Bearer " + signToken(t, jwt.MapClaims{"id": uid, "exp": time.Now().Add(-time.Hour).Unix()}, testSecret), status: fiber.StatusUnauthorized},
		{name: "missing user id", header: "Bearer " + signToken(t, jwt.MapClaims{"role": "guru"}, testSecret), status: fiber.StatusUnauthorized},
		{name: "valid bearer", header: "Bearer  " + valid, status: fiber.StatusOK},
		{name: "cookie fallback", cookie: valid, status: fiber.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.Header.Set("Cookie", "access_token="+tc.cookie)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
		})
	}
}

func TestOnlyRoles(t *testing.T) {
	app := newTestApp()
	uid := uuid.New().String()

	req := httptest.NewRequest("GET", "/guru", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"id": uid, "role": "guru"}, testSecret))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest("GET", "/guru", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"id": uid, "role": "siswa"}, testSecret))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/guru", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"id": uid}, testSecret))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
