package constants

import "fmt"

const (
	RoleSiswa       = "siswa"
	RoleGuru        = "guru"
	RoleKoordinator = "koordinator"
	RoleAdmin       = "admin"
)

// Template pesan error role
const (
	ErrOnlyTeachersCanAccess    = "❌ Hanya guru, koordinator, atau admin yang boleh mengakses fitur %s."
	ErrOnlyCoordinatorCanAccess = "❌ Hanya koordinator atau admin yang boleh mengakses fitur %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorCoordinator(feature string) string {
	return fmt.Sprintf(ErrOnlyCoordinatorCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleSiswa,
		RoleGuru,
		RoleKoordinator,
		RoleAdmin,
	}

	TeacherAndAbove = []string{
		RoleGuru,
		RoleKoordinator,
		RoleAdmin,
	}

	CoordinatorAndAbove = []string{
		RoleKoordinator,
		RoleAdmin,
	}
)
