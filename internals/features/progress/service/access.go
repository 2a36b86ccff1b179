// file: internals/features/progress/service/access.go
package service

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tahfidz_backend/internals/constants"
)

// Viewer = identitas pemanggil dari token
type Viewer struct {
	Role      string
	SchoolID  uuid.UUID
	TeacherID uuid.UUID // diisi untuk guru
	StudentID uuid.UUID // diisi untuk siswa
}

type StudentAccess interface {
	StudentInSchool(ctx context.Context, schoolID, studentID uuid.UUID) (bool, error)
	IsStudentOfTeacher(ctx context.Context, schoolID, studentID, teacherID uuid.UUID) (bool, error)
}

// ResolveStudent menentukan siswa yang boleh dilihat pemanggil.
//   - siswa       → hanya dirinya (student_id lain = 403)
//   - guru        → wajib student_id, harus siswa halaqah-nya
//   - koordinator → wajib student_id, siswa di sekolah yang sama
func ResolveStudent(ctx context.Context, access StudentAccess, v Viewer, requested *uuid.UUID) (uuid.UUID, error) {
	switch v.Role {
	case constants.RoleSiswa:
		if v.StudentID == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "student_id tidak ditemukan di token")
		}
		if requested != nil && *requested != v.StudentID {
			return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Siswa hanya boleh melihat progres sendiri")
		}
		return v.StudentID, nil

	case constants.RoleGuru:
		if requested == nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "student_id wajib diisi")
		}
		ok, err := access.IsStudentOfTeacher(ctx, v.SchoolID, *requested, v.TeacherID)
		if err != nil {
			return uuid.Nil, fmt.Errorf("cek halaqah guru: %w", err)
		}
		if !ok {
			return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Siswa ini bukan anggota halaqah Anda")
		}
		return *requested, nil

	case constants.RoleKoordinator, constants.RoleAdmin:
		if requested == nil {
			return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "student_id wajib diisi")
		}
		ok, err := access.StudentInSchool(ctx, v.SchoolID, *requested)
		if err != nil {
			return uuid.Nil, fmt.Errorf("cek siswa sekolah: %w", err)
		}
		if !ok {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return *requested, nil
	}
	return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Role tidak dikenali")
}
