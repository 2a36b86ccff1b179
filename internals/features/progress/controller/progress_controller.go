// file: internals/features/progress/controller/progress_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tahfidz_backend/internals/constants"
	"tahfidz_backend/internals/features/progress/service"
	helper "tahfidz_backend/internals/helpers"
	helperAuth "tahfidz_backend/internals/helpers/auth"
	"tahfidz_backend/internals/helpers/dbtime"
)

type ProgressController struct {
	Service *service.ProgressService
}

func NewProgressController(svc *service.ProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

// viewerFromToken: isi Viewer sesuai role (guru → teacher_id, siswa → student_id)
func viewerFromToken(c *fiber.Ctx) (service.Viewer, error) {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return service.Viewer{}, err
	}
	v := service.Viewer{Role: helperAuth.GetRole(c), SchoolID: schoolID}

	switch v.Role {
	case constants.RoleGuru:
		if v.TeacherID, err = helperAuth.GetTeacherIDFromToken(c); err != nil {
			return service.Viewer{}, err
		}
	case constants.RoleSiswa:
		if v.StudentID, err = helperAuth.GetStudentIDFromToken(c); err != nil {
			return service.Viewer{}, err
		}
	}
	return v, nil
}

func parsePeriod(c *fiber.Ctx) (service.Period, error) {
	from, err := dbtime.ParseDateQuery(c, "from", false)
	if err != nil {
		return service.Period{}, err
	}
	to, err := dbtime.ParseDateQuery(c, "to", true)
	if err != nil {
		return service.Period{}, err
	}
	return service.Period{From: from, To: to}, nil
}

// GET /progress/:kind?student_id=&from=&to=
func (ctl *ProgressController) GetStudentProgress(c *fiber.Ctx) error {
	kind, err := service.ParseKind(c.Params("kind"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	v, err := viewerFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	period, err := parsePeriod(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var requested *uuid.UUID
	if raw := strings.TrimSpace(c.Query("student_id")); raw != "" {
		id, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		requested = &id
	}

	res, err := ctl.Service.StudentProgress(c.UserContext(), v, kind, requested, period)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Progres berhasil diambil", res)
}

// GET /progress/class/:class_id?kind=&academic_year=&from=&to=
func (ctl *ProgressController) GetClassProgress(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	kind, err := service.ParseKind(c.Query("kind", string(service.KindHafalan)))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	v, err := viewerFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	period, err := parsePeriod(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	items, err := ctl.Service.ClassProgress(c.UserContext(), v, classID, strings.TrimSpace(c.Query("academic_year")), kind, period)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Rekap progres kelas", items, nil)
}
