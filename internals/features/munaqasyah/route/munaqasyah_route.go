// file: internals/features/munaqasyah/route/munaqasyah_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidz_backend/internals/features/munaqasyah/controller"
	"tahfidz_backend/internals/features/munaqasyah/service"
	studentService "tahfidz_backend/internals/features/students/service"
	"tahfidz_backend/internals/middlewares"
)

func newController(db *gorm.DB) *controller.MunaqasyahController {
	students := studentService.NewRosterService(studentService.NewGormStore(db))
	return controller.NewMunaqasyahController(service.NewMunaqasyahService(service.NewGormStore(db), students))
}

// MunaqasyahUserRoutes: semua role login (siswa hanya hasil sendiri)
func MunaqasyahUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)
	r.Get("/munaqasyah/registrations/:registration_id/result", ctl.GetResult)
}

// MunaqasyahTeacherRoutes: penguji (guru, koordinator, admin)
func MunaqasyahTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	g := r.Group("/munaqasyah")
	g.Get("/schedules", ctl.ListSchedules)
	g.Get("/schedules/:schedule_id/registrations", ctl.ListRegistrations)
	g.Get("/schedules/:schedule_id/results", ctl.ListResultsBySchedule)
	g.Post("/preview", ctl.Preview)

	writes := g.Group("/registrations/:registration_id", middlewares.ScoreWriteRateLimiter())
	writes.Post("/tasmi", ctl.SubmitTasmi)
	writes.Post("/munaqasyah", ctl.SubmitMunaqasyah)
	writes.Post("/recompute", ctl.RecomputeResult)
}

// MunaqasyahCoordinatorRoutes: kelola jadwal & pendaftaran
func MunaqasyahCoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := newController(db)

	g := r.Group("/munaqasyah")
	g.Post("/schedules", ctl.CreateSchedule)
	g.Post("/schedules/:schedule_id/registrations", ctl.RegisterStudent)
}
