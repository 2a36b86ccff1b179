// file: internals/features/munaqasyah/dto/score_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"tahfidz_backend/internals/features/munaqasyah/model"
	"tahfidz_backend/internals/features/munaqasyah/scoring"
)

const (
	StageTasmi      = "tasmi"
	StageMunaqasyah = "munaqasyah"
)

// SubmitScoreRequest: tasmi → unit_id = surah; munaqasyah → unit_id = nomor soal (1..5).
// Penalti negatif / jumlah soal dicek oleh scoring.Validate*.
type SubmitScoreRequest struct {
	Details []scoring.ScoreDetailInput `json:"details" validate:"required,min=1,dive"`
}

type PreviewRequest struct {
	Stage   string                     `json:"stage" validate:"required,oneof=tasmi munaqasyah"`
	Details []scoring.ScoreDetailInput `json:"details" validate:"required,min=1"`
}

// ResultBreakdown disimpan ke kolom JSONB munaqasyah_result_breakdown
type ResultBreakdown struct {
	Tasmi            scoring.StageResult `json:"tasmi"`
	Munaqasyah       scoring.StageResult `json:"munaqasyah"`
	TasmiWeight      float64             `json:"tasmi_weight"`
	MunaqasyahWeight float64             `json:"munaqasyah_weight"`
}

type ResultResponse struct {
	RegistrationID  uuid.UUID        `json:"registration_id"`
	ScheduleID      uuid.UUID        `json:"schedule_id"`
	StudentID       uuid.UUID        `json:"student_id"`
	TasmiScore      float64          `json:"tasmi_score"`
	MunaqasyahScore float64          `json:"munaqasyah_score"`
	FinalScore      float64          `json:"final_score"`
	Grade           scoring.Grade    `json:"grade"`
	GradeLabel      string           `json:"grade_label"`
	Passed          bool             `json:"passed"`
	Breakdown       *ResultBreakdown `json:"breakdown,omitempty"`
	ComputedAt      time.Time        `json:"computed_at"`
}

func NewResultResponse(m model.MunaqasyahResultModel, breakdown *ResultBreakdown) ResultResponse {
	g := scoring.Grade(m.MunaqasyahResultGrade)
	return ResultResponse{
		RegistrationID:  m.MunaqasyahResultRegistrationID,
		ScheduleID:      m.MunaqasyahResultScheduleID,
		StudentID:       m.MunaqasyahResultStudentID,
		TasmiScore:      m.MunaqasyahResultTasmiScore,
		MunaqasyahScore: m.MunaqasyahResultMunaqasyahScore,
		FinalScore:      m.MunaqasyahResultFinalScore,
		Grade:           g,
		GradeLabel:      g.Label(),
		Passed:          m.MunaqasyahResultPassed,
		Breakdown:       breakdown,
		ComputedAt:      m.MunaqasyahResultComputedAt,
	}
}

type StageResponse struct {
	Stage  string              `json:"stage"`
	Result scoring.StageResult `json:"result"`
}
