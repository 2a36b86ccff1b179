// file: internals/features/munaqasyah/controller/munaqasyah_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tahfidz_backend/internals/constants"
	"tahfidz_backend/internals/features/munaqasyah/dto"
	"tahfidz_backend/internals/features/munaqasyah/service"
	helper "tahfidz_backend/internals/helpers"
	helperAuth "tahfidz_backend/internals/helpers/auth"
	"tahfidz_backend/internals/helpers/dbtime"
)

type MunaqasyahController struct {
	Service *service.MunaqasyahService
}

func NewMunaqasyahController(svc *service.MunaqasyahService) *MunaqasyahController {
	return &MunaqasyahController{Service: svc}
}

// single validator instance for this package
var validate = validator.New()

func actorFromToken(c *fiber.Ctx) (service.Actor, error) {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return service.Actor{}, err
	}
	a := service.Actor{UserID: userID, Role: helperAuth.GetRole(c), SchoolID: schoolID}
	if a.Role == constants.RoleSiswa {
		if a.StudentID, err = helperAuth.GetStudentIDFromToken(c); err != nil {
			return service.Actor{}, err
		}
	}
	return a, nil
}

func parseIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" tidak valid")
	}
	return id, nil
}

/* =========================
   Jadwal
========================= */

// POST /munaqasyah/schedules
func (ctl *MunaqasyahController) CreateSchedule(c *fiber.Ctx) error {
	a, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	m, err := req.ToModel(a.SchoolID, a.UserID, dbtime.GetSchoolLocation(c))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Service.CreateSchedule(c.UserContext(), m); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Jadwal munaqasyah berhasil dibuat", m)
}

// GET /munaqasyah/schedules?academic_year=&page=&per_page=
func (ctl *MunaqasyahController) ListSchedules(c *fiber.Ctx) error {
	a, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	rows, total, err := ctl.Service.ListSchedules(c.UserContext(), service.ScheduleFilter{
		SchoolID:     a.SchoolID,
		AcademicYear: strings.TrimSpace(c.Query("academic_year")),
		Offset:       p.Offset,
		Limit:        p.Limit,
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	pg := helper.BuildPagination(total, p, len(rows))
	return helper.JsonList(c, "Daftar jadwal munaqasyah", rows, &pg)
}

/* =========================
   Pendaftaran
========================= */

// POST /munaqasyah/schedules/:schedule_id/registrations
func (ctl *MunaqasyahController) RegisterStudent(c *fiber.Ctx) error {
	a, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	scheduleID, err := parseIDParam(c, "schedule_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.RegisterStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	reg, err := ctl.Service.RegisterStudent(c.UserContext(), a, scheduleID, req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Siswa berhasil didaftarkan", reg)
}

// GET /munaqasyah/schedules/:schedule_id/registrations
func (ctl *MunaqasyahController) ListRegistrations(c *fiber.Ctx) error {
	a, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	scheduleID, err := parseIDParam(c, "schedule_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := ctl.Service.ListRegistrations(c.UserContext(), a, scheduleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Daftar peserta munaqasyah", rows, nil)
}

/* =========================
   Penilaian
========================= */

func (ctl *MunaqasyahController) parseScoreRequest(c *fiber.Ctx) (service.Actor, uuid.UUID, *dto.SubmitScoreRequest, error) {
	a, err := actorFromToken(c)
	if err != nil {
		return a, uuid.Nil, nil, err
	}
	regID, err := parseIDParam(c, "registration_id")
	if err != nil {
		return a, uuid.Nil, nil, err
	}
	var req dto.SubmitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return a, uuid.Nil, nil, fiber.NewError(fiber.StatusBadRequest, "Body tidak valid")
	}
	return a, regID, &req, nil
}

// POST /munaqasyah/registrations/:registration_id/tasmi
func (ctl *MunaqasyahController) SubmitTasmi(c *fiber.Ctx) error {
	a, regID, req, err := ctl.parseScoreRequest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	res, err := ctl.Service.SubmitTasmi(c.UserContext(), a, regID, req.Details)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Nilai tasmi' tersimpan", fiber.Map{"result": res})
}

// POST /munaqasyah/registrations/:registration_id/munaqasyah
func (ctl *MunaqasyahController) SubmitMunaqasyah(c *fiber.Ctx) error {
	a, regID, req, err := ctl.parseScoreRequest(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	res, err := ctl.Service.SubmitMunaqasyah(c.UserContext(), a, regID, req.Details)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Nilai munaqasyah tersimpan", fiber.Map{"result": res})
}

// POST /munaqasyah/registrations/:registration_id/recompute
func (ctl *MunaqasyahController) RecomputeResult(c *fiber.Ctx) error {
	a, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	regID, err := parseIDParam(c, "registration_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res, err := ctl.Service.RecomputeResult(c.UserContext(), a, regID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if res == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Tasmi' dan munaqasyah harus dinilai lebih dulu")
	}
	return helper.JsonUpdated(c, "Nilai akhir dihitung ulang", res)
}

// POST /munaqasyah/preview
func (ctl *MunaqasyahController) Preview(c *fiber.Ctx) error {
	var req dto.PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	res, err := ctl.Service.Preview(req.Stage, req.Details)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Preview nilai", res)
}

/* =========================
   Hasil
========================= */

// GET /munaqasyah/registrations/:registration_id/result
func (ctl *MunaqasyahController) GetResult(c *fiber.Ctx) error {
	a, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	regID, err := parseIDParam(c, "registration_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res, err := ctl.Service.GetResult(c.UserContext(), a, regID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Hasil munaqasyah", res)
}

// GET /munaqasyah/schedules/:schedule_id/results
func (ctl *MunaqasyahController) ListResultsBySchedule(c *fiber.Ctx) error {
	a, err := actorFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	scheduleID, err := parseIDParam(c, "schedule_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	rows, err := ctl.Service.ListResultsBySchedule(c.UserContext(), a, scheduleID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "Hasil munaqasyah per jadwal", rows, nil)
}
