// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"tahfidz_backend/internals/configs"
	"tahfidz_backend/internals/constants"
	authMiddleware "tahfidz_backend/internals/middlewares/auth"
	routeDetails "tahfidz_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===================== GROUPS =====================

	// semua role login (siswa, guru, koordinator, admin)
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	private := app.Group("/api/u", jwt)

	// penguji & pembimbing
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t", jwt,
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("penilaian munaqasyah"), constants.TeacherAndAbove...),
	)

	// koordinator tahfidz / admin sekolah
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", jwt,
		authMiddleware.OnlyRoles(constants.RoleErrorCoordinator("pengelolaan munaqasyah"), constants.CoordinatorAndAbove...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Progress routes...")
	routeDetails.ProgressUserRoutes(private, db)

	log.Println("[INFO] Mounting Munaqasyah routes...")
	routeDetails.MunaqasyahUserRoutes(private, db)
	routeDetails.MunaqasyahTeacherRoutes(teacher, db)
	routeDetails.MunaqasyahCoordinatorRoutes(admin, db)
}
