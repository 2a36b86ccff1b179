// file: internals/features/munaqasyah/service/munaqasyah_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tahfidz_backend/internals/constants"
	"tahfidz_backend/internals/features/munaqasyah/dto"
	"tahfidz_backend/internals/features/munaqasyah/model"
	"tahfidz_backend/internals/features/munaqasyah/scoring"
)

// Actor = pemanggil (dari token)
type Actor struct {
	UserID    uuid.UUID
	Role      string
	SchoolID  uuid.UUID
	StudentID uuid.UUID // diisi untuk siswa
}

type MunaqasyahService struct {
	Store    Store
	Students StudentDirectory
	Now      func() time.Time
}

func NewMunaqasyahService(store Store, students StudentDirectory) *MunaqasyahService {
	return &MunaqasyahService{Store: store, Students: students, Now: time.Now}
}

/* =========================
   Jadwal & pendaftaran
========================= */

func (s *MunaqasyahService) CreateSchedule(ctx context.Context, m *model.MunaqasyahScheduleModel) error {
	if err := s.Store.CreateSchedule(ctx, m); err != nil {
		return fmt.Errorf("simpan jadwal: %w", err)
	}
	log.Printf("[SERVICE] CreateSchedule id=%s school=%s date=%s",
		m.MunaqasyahScheduleID, m.MunaqasyahScheduleSchoolID, m.MunaqasyahScheduleDate.Format("2006-01-02"))
	return nil
}

func (s *MunaqasyahService) ListSchedules(ctx context.Context, f ScheduleFilter) ([]model.MunaqasyahScheduleModel, int64, error) {
	rows, total, err := s.Store.ListSchedules(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("ambil jadwal: %w", err)
	}
	return rows, total, nil
}

func (s *MunaqasyahService) RegisterStudent(ctx context.Context, a Actor, scheduleID uuid.UUID, req dto.RegisterStudentRequest) (*model.MunaqasyahRegistrationModel, error) {
	sch, err := s.Store.GetSchedule(ctx, a.SchoolID, scheduleID)
	if err != nil {
		return nil, notFoundOr(err, "Jadwal munaqasyah tidak ditemukan")
	}

	name, err := s.Students.StudentName(ctx, a.SchoolID, req.StudentID)
	if err != nil {
		return nil, notFoundOr(err, "Siswa tidak ditemukan")
	}

	reg := &model.MunaqasyahRegistrationModel{
		MunaqasyahRegistrationSchoolID:    a.SchoolID,
		MunaqasyahRegistrationScheduleID:  sch.MunaqasyahScheduleID,
		MunaqasyahRegistrationStudentID:   req.StudentID,
		MunaqasyahRegistrationStudentName: name,
		MunaqasyahRegistrationJuz:         req.Juz,
		MunaqasyahRegistrationStatus:      model.RegistrationStatusTerdaftar,
	}
	switch err := s.Store.CreateRegistration(ctx, reg, sch.MunaqasyahScheduleQuota); {
	case errors.Is(err, ErrDuplicateRegistration):
		return nil, fiber.NewError(fiber.StatusConflict, ErrDuplicateRegistration.Error())
	case errors.Is(err, ErrQuotaFull):
		return nil, fiber.NewError(fiber.StatusConflict, ErrQuotaFull.Error())
	case err != nil:
		return nil, fmt.Errorf("simpan pendaftaran: %w", err)
	}
	return reg, nil
}

func (s *MunaqasyahService) ListRegistrations(ctx context.Context, a Actor, scheduleID uuid.UUID) ([]model.MunaqasyahRegistrationModel, error) {
	if _, err := s.Store.GetSchedule(ctx, a.SchoolID, scheduleID); err != nil {
		return nil, notFoundOr(err, "Jadwal munaqasyah tidak ditemukan")
	}
	rows, err := s.Store.ListRegistrations(ctx, a.SchoolID, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("ambil pendaftaran: %w", err)
	}
	return rows, nil
}

/* =========================
   Penilaian
========================= */

func (s *MunaqasyahService) SubmitTasmi(ctx context.Context, a Actor, registrationID uuid.UUID, details []scoring.ScoreDetailInput) (*dto.ResultResponse, error) {
	reg, err := s.Store.GetRegistration(ctx, a.SchoolID, registrationID)
	if err != nil {
		return nil, notFoundOr(err, "Pendaftaran munaqasyah tidak ditemukan")
	}
	if vr := scoring.ValidateTasmiDetails(details); !vr.IsValid {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, vr.Error)
	}

	stage := scoring.AggregateTasmi(details)
	header := &model.TasmiScoreModel{
		TasmiScoreRegistrationID: reg.MunaqasyahRegistrationID,
		TasmiScoreExaminerID:     a.UserID,
		TasmiScoreTotal:          stage.TotalScore,
		TasmiScoreCreatedAt:      s.Now(),
		Details:                  tasmiDetailRows(details, stage),
	}
	if err := s.Store.SaveTasmi(ctx, header, model.RegistrationStatusTasmi); err != nil {
		return nil, fmt.Errorf("simpan nilai tasmi: %w", err)
	}
	log.Printf("[SERVICE] SubmitTasmi reg=%s total=%.1f", registrationID, stage.TotalScore)

	return s.recompute(ctx, reg)
}

// SubmitMunaqasyah: wajib sudah ada nilai tasmi.
func (s *MunaqasyahService) SubmitMunaqasyah(ctx context.Context, a Actor, registrationID uuid.UUID, details []scoring.ScoreDetailInput) (*dto.ResultResponse, error) {
	reg, err := s.Store.GetRegistration(ctx, a.SchoolID, registrationID)
	if err != nil {
		return nil, notFoundOr(err, "Pendaftaran munaqasyah tidak ditemukan")
	}
	if _, err := s.Store.GetTasmi(ctx, registrationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusConflict, "Tasmi' belum dinilai")
		}
		return nil, fmt.Errorf("ambil nilai tasmi: %w", err)
	}
	if vr := scoring.ValidateMunaqasyahDetails(details); !vr.IsValid {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, vr.Error)
	}

	stage, err := scoring.AggregateMunaqasyah(details)
	if err != nil {
		return nil, scoringError(err)
	}
	header := &model.MunaqasyahScoreModel{
		MunaqasyahScoreRegistrationID: reg.MunaqasyahRegistrationID,
		MunaqasyahScoreExaminerID:     a.UserID,
		MunaqasyahScoreTotal:          stage.TotalScore,
		MunaqasyahScoreCreatedAt:      s.Now(),
		Details:                       munaqasyahDetailRows(details, stage),
	}
	if err := s.Store.SaveMunaqasyah(ctx, header, model.RegistrationStatusMunaqasyah); err != nil {
		return nil, fmt.Errorf("simpan nilai munaqasyah: %w", err)
	}
	log.Printf("[SERVICE] SubmitMunaqasyah reg=%s total=%.1f", registrationID, stage.TotalScore)

	return s.recompute(ctx, reg)
}

// RecomputeResult menghitung ulang nilai akhir dari rincian tersimpan.
// Nil (tanpa error) kalau salah satu tahap belum dinilai.
func (s *MunaqasyahService) RecomputeResult(ctx context.Context, a Actor, registrationID uuid.UUID) (*dto.ResultResponse, error) {
	reg, err := s.Store.GetRegistration(ctx, a.SchoolID, registrationID)
	if err != nil {
		return nil, notFoundOr(err, "Pendaftaran munaqasyah tidak ditemukan")
	}
	return s.recompute(ctx, reg)
}

func (s *MunaqasyahService) recompute(ctx context.Context, reg *model.MunaqasyahRegistrationModel) (*dto.ResultResponse, error) {
	tasmi, err := s.Store.GetTasmi(ctx, reg.MunaqasyahRegistrationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ambil nilai tasmi: %w", err)
	}
	munaqasyah, err := s.Store.GetMunaqasyah(ctx, reg.MunaqasyahRegistrationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ambil nilai munaqasyah: %w", err)
	}

	tasmiStage := scoring.AggregateTasmi(tasmiInputs(tasmi.Details))
	munaqasyahStage, err := scoring.AggregateMunaqasyah(munaqasyahInputs(munaqasyah.Details))
	if err != nil {
		return nil, scoringError(err)
	}

	final := scoring.FinalScore(tasmiStage.TotalScore, munaqasyahStage.TotalScore)
	grade := scoring.GradeFromScore(final)
	breakdown := &dto.ResultBreakdown{
		Tasmi:            tasmiStage,
		Munaqasyah:       munaqasyahStage,
		TasmiWeight:      scoring.TasmiWeight,
		MunaqasyahWeight: scoring.MunaqasyahWeight,
	}
	raw, err := sonic.Marshal(breakdown)
	if err != nil {
		return nil, fmt.Errorf("encode breakdown: %w", err)
	}

	res := &model.MunaqasyahResultModel{
		MunaqasyahResultRegistrationID:  reg.MunaqasyahRegistrationID,
		MunaqasyahResultSchoolID:        reg.MunaqasyahRegistrationSchoolID,
		MunaqasyahResultScheduleID:      reg.MunaqasyahRegistrationScheduleID,
		MunaqasyahResultStudentID:       reg.MunaqasyahRegistrationStudentID,
		MunaqasyahResultTasmiScore:      tasmiStage.TotalScore,
		MunaqasyahResultMunaqasyahScore: munaqasyahStage.TotalScore,
		MunaqasyahResultFinalScore:      final,
		MunaqasyahResultGrade:           string(grade),
		MunaqasyahResultPassed:          grade.Passed(),
		MunaqasyahResultBreakdown:       datatypes.JSON(raw),
		MunaqasyahResultComputedAt:      s.Now(),
	}
	if err := s.Store.SaveResult(ctx, res); err != nil {
		return nil, fmt.Errorf("simpan hasil munaqasyah: %w", err)
	}
	log.Printf("[SERVICE] Result reg=%s final=%.1f grade=%s", reg.MunaqasyahRegistrationID, final, grade)

	out := dto.NewResultResponse(*res, breakdown)
	return &out, nil
}

/* =========================
   Hasil
========================= */

// GetResult: siswa hanya boleh melihat hasilnya sendiri.
func (s *MunaqasyahService) GetResult(ctx context.Context, a Actor, registrationID uuid.UUID) (*dto.ResultResponse, error) {
	reg, err := s.Store.GetRegistration(ctx, a.SchoolID, registrationID)
	if err != nil {
		return nil, notFoundOr(err, "Pendaftaran munaqasyah tidak ditemukan")
	}
	if a.Role == constants.RoleSiswa && reg.MunaqasyahRegistrationStudentID != a.StudentID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Siswa hanya boleh melihat hasil sendiri")
	}

	res, err := s.Store.GetResult(ctx, registrationID)
	if err != nil {
		return nil, notFoundOr(err, "Hasil munaqasyah belum tersedia")
	}
	out := dto.NewResultResponse(*res, decodeBreakdown(res.MunaqasyahResultBreakdown))
	return &out, nil
}

func (s *MunaqasyahService) ListResultsBySchedule(ctx context.Context, a Actor, scheduleID uuid.UUID) ([]dto.ResultResponse, error) {
	if _, err := s.Store.GetSchedule(ctx, a.SchoolID, scheduleID); err != nil {
		return nil, notFoundOr(err, "Jadwal munaqasyah tidak ditemukan")
	}
	rows, err := s.Store.ListResultsBySchedule(ctx, a.SchoolID, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("ambil hasil munaqasyah: %w", err)
	}
	out := make([]dto.ResultResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.NewResultResponse(r, nil))
	}
	return out, nil
}

// Preview: hitung tanpa menyimpan.
func (s *MunaqasyahService) Preview(stage string, details []scoring.ScoreDetailInput) (*dto.StageResponse, error) {
	switch stage {
	case dto.StageTasmi:
		if vr := scoring.ValidateTasmiDetails(details); !vr.IsValid {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, vr.Error)
		}
		return &dto.StageResponse{Stage: stage, Result: scoring.AggregateTasmi(details)}, nil
	case dto.StageMunaqasyah:
		if vr := scoring.ValidateMunaqasyahDetails(details); !vr.IsValid {
			return nil, fiber.NewError(fiber.StatusUnprocessableEntity, vr.Error)
		}
		res, err := scoring.AggregateMunaqasyah(details)
		if err != nil {
			return nil, scoringError(err)
		}
		return &dto.StageResponse{Stage: stage, Result: res}, nil
	}
	return nil, fiber.NewError(fiber.StatusBadRequest, "stage harus tasmi atau munaqasyah")
}

/* =========================
   helpers
========================= */

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, msg)
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func scoringError(err error) error {
	if errors.Is(err, scoring.ErrQuestionCount) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
	}
	return err
}

func decodeBreakdown(raw datatypes.JSON) *dto.ResultBreakdown {
	if len(raw) == 0 {
		return nil
	}
	var b dto.ResultBreakdown
	if err := sonic.Unmarshal(raw, &b); err != nil {
		log.Printf("[WARN] breakdown rusak: %v", err)
		return nil
	}
	return &b
}
