// file: internals/features/progress/route/progress_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidz_backend/internals/constants"
	"tahfidz_backend/internals/features/progress/controller"
	"tahfidz_backend/internals/features/progress/service"
	studentService "tahfidz_backend/internals/features/students/service"
	authMiddleware "tahfidz_backend/internals/middlewares/auth"
)

func newController(db *gorm.DB) *controller.ProgressController {
	roster := studentService.NewRosterService(studentService.NewGormStore(db))
	svc := service.NewProgressService(service.NewGormStore(db), roster, roster)
	return controller.NewProgressController(svc)
}

// ProgressUserRoutes: semua role login (siswa dibatasi ke dirinya di service)
func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	g := r.Group("/progress")
	g.Get("/class/:class_id",
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("rekap progres kelas"), constants.TeacherAndAbove...),
		ctl.GetClassProgress,
	)
	g.Get("/:kind", ctl.GetStudentProgress)
}
