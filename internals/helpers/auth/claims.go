// file: internals/helpers/auth/claims.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Nama locals yang diisi middleware AuthJWT
const (
	LocUserID    = "user_id"    // string UUID
	LocRole      = "userRole"   // string, lihat constants.Role*
	LocUserName  = "user_name"  // string
	LocSchoolID  = "school_id"  // string UUID
	LocTeacherID = "teacher_id" // string UUID (guru)
	LocStudentID = "student_id" // string UUID (siswa)
	LocClaims    = "jwt_claims" // jwt.MapClaims mentah
)

func parseUUIDLocal(c *fiber.Ctx, key string) (uuid.UUID, error) {
	switch v := c.Locals(key).(type) {
	case uuid.UUID:
		if v == uuid.Nil {
			break
		}
		return v, nil
	case string:
		id, err := uuid.Parse(strings.TrimSpace(v))
		if err != nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak valid dalam token")
		}
		return id, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ditemukan di token")
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error)    { return parseUUIDLocal(c, LocUserID) }
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error)  { return parseUUIDLocal(c, LocSchoolID) }
func GetTeacherIDFromToken(c *fiber.Ctx) (uuid.UUID, error) { return parseUUIDLocal(c, LocTeacherID) }
func GetStudentIDFromToken(c *fiber.Ctx) (uuid.UUID, error) { return parseUUIDLocal(c, LocStudentID) }

// GetRole selalu lowercase; kosong kalau tidak ada.
func GetRole(c *fiber.Ctx) string {
	if s, ok := c.Locals(LocRole).(string); ok {
		return strings.ToLower(strings.TrimSpace(s))
	}
	return ""
}

func HasAnyRole(c *fiber.Ctx, roles ...string) bool {
	role := GetRole(c)
	if role == "" {
		return false
	}
	for _, r := range roles {
		if strings.EqualFold(role, r) {
			return true
		}
	}
	return false
}
