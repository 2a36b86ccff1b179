package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	progressRoute "tahfidz_backend/internals/features/progress/route"
)

func ProgressUserRoutes(r fiber.Router, db *gorm.DB) {
	progressRoute.ProgressUserRoutes(r, db)
}
