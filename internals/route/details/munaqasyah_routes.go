package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	munaqasyahRoute "tahfidz_backend/internals/features/munaqasyah/route"
)

func MunaqasyahUserRoutes(r fiber.Router, db *gorm.DB) {
	munaqasyahRoute.MunaqasyahUserRoutes(r, db)
}

func MunaqasyahTeacherRoutes(r fiber.Router, db *gorm.DB) {
	munaqasyahRoute.MunaqasyahTeacherRoutes(r, db)
}

func MunaqasyahCoordinatorRoutes(r fiber.Router, db *gorm.DB) {
	munaqasyahRoute.MunaqasyahCoordinatorRoutes(r, db)
}
