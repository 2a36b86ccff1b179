// file: internals/features/munaqasyah/model/score_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Tasmi' (per surah)
========================= */

type TasmiScoreModel struct {
	TasmiScoreID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tasmi_score_id" json:"tasmi_score_id"`
	TasmiScoreRegistrationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:tasmi_score_registration_id" json:"tasmi_score_registration_id"`
	TasmiScoreExaminerID     uuid.UUID `gorm:"type:uuid;not null;column:tasmi_score_examiner_id" json:"tasmi_score_examiner_id"`
	TasmiScoreTotal          float64   `gorm:"type:numeric(5,1);not null;column:tasmi_score_total" json:"tasmi_score_total"`

	TasmiScoreCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:tasmi_score_created_at" json:"tasmi_score_created_at"`

	Details []TasmiScoreDetailModel `gorm:"foreignKey:TasmiScoreDetailScoreID;references:TasmiScoreID" json:"details,omitempty"`
}

func (TasmiScoreModel) TableName() string { return "tasmi_scores" }

type TasmiScoreDetailModel struct {
	TasmiScoreDetailID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tasmi_score_detail_id" json:"tasmi_score_detail_id"`
	TasmiScoreDetailScoreID uuid.UUID `gorm:"type:uuid;not null;index;column:tasmi_score_detail_score_id" json:"tasmi_score_detail_score_id"`
	TasmiScoreDetailSurahID int       `gorm:"not null;column:tasmi_score_detail_surah_id" json:"tasmi_score_detail_surah_id"`

	TasmiScoreDetailInitial float64 `gorm:"type:numeric(5,1);not null;column:tasmi_score_detail_initial" json:"tasmi_score_detail_initial"`
	TasmiScoreDetailMinor1  int     `gorm:"not null;default:0;column:tasmi_score_detail_minor_1" json:"tasmi_score_detail_minor_1"`
	TasmiScoreDetailMinor2  int     `gorm:"not null;default:0;column:tasmi_score_detail_minor_2" json:"tasmi_score_detail_minor_2"`
	TasmiScoreDetailMinor3  int     `gorm:"not null;default:0;column:tasmi_score_detail_minor_3" json:"tasmi_score_detail_minor_3"`
	TasmiScoreDetailMajor1  int     `gorm:"not null;default:0;column:tasmi_score_detail_major_1" json:"tasmi_score_detail_major_1"`
	TasmiScoreDetailMajor2  int     `gorm:"not null;default:0;column:tasmi_score_detail_major_2" json:"tasmi_score_detail_major_2"`
	TasmiScoreDetailNote    *string `gorm:"type:text;column:tasmi_score_detail_note" json:"tasmi_score_detail_note,omitempty"`

	TasmiScoreDetailRawTotal   float64 `gorm:"type:numeric(6,1);not null;column:tasmi_score_detail_raw_total" json:"tasmi_score_detail_raw_total"`
	TasmiScoreDetailPercentage float64 `gorm:"type:numeric(6,1);not null;column:tasmi_score_detail_percentage" json:"tasmi_score_detail_percentage"`
}

func (TasmiScoreDetailModel) TableName() string { return "tasmi_score_details" }

/* =========================
   Munaqasyah (5 soal)
========================= */

type MunaqasyahScoreModel struct {
	MunaqasyahScoreID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:munaqasyah_score_id" json:"munaqasyah_score_id"`
	MunaqasyahScoreRegistrationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:munaqasyah_score_registration_id" json:"munaqasyah_score_registration_id"`
	MunaqasyahScoreExaminerID     uuid.UUID `gorm:"type:uuid;not null;column:munaqasyah_score_examiner_id" json:"munaqasyah_score_examiner_id"`
	MunaqasyahScoreTotal          float64   `gorm:"type:numeric(5,1);not null;column:munaqasyah_score_total" json:"munaqasyah_score_total"`

	MunaqasyahScoreCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:munaqasyah_score_created_at" json:"munaqasyah_score_created_at"`

	Details []MunaqasyahScoreDetailModel `gorm:"foreignKey:MunaqasyahScoreDetailScoreID;references:MunaqasyahScoreID" json:"details,omitempty"`
}

func (MunaqasyahScoreModel) TableName() string { return "munaqasyah_scores" }

type MunaqasyahScoreDetailModel struct {
	MunaqasyahScoreDetailID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:munaqasyah_score_detail_id" json:"munaqasyah_score_detail_id"`
	MunaqasyahScoreDetailScoreID    uuid.UUID `gorm:"type:uuid;not null;index;column:munaqasyah_score_detail_score_id" json:"munaqasyah_score_detail_score_id"`
	MunaqasyahScoreDetailQuestionNo int       `gorm:"not null;column:munaqasyah_score_detail_question_no" json:"munaqasyah_score_detail_question_no"`

	MunaqasyahScoreDetailMinor1 int     `gorm:"not null;default:0;column:munaqasyah_score_detail_minor_1" json:"munaqasyah_score_detail_minor_1"`
	MunaqasyahScoreDetailMinor2 int     `gorm:"not null;default:0;column:munaqasyah_score_detail_minor_2" json:"munaqasyah_score_detail_minor_2"`
	MunaqasyahScoreDetailMinor3 int     `gorm:"not null;default:0;column:munaqasyah_score_detail_minor_3" json:"munaqasyah_score_detail_minor_3"`
	MunaqasyahScoreDetailMajor1 int     `gorm:"not null;default:0;column:munaqasyah_score_detail_major_1" json:"munaqasyah_score_detail_major_1"`
	MunaqasyahScoreDetailMajor2 int     `gorm:"not null;default:0;column:munaqasyah_score_detail_major_2" json:"munaqasyah_score_detail_major_2"`
	MunaqasyahScoreDetailNote   *string `gorm:"type:text;column:munaqasyah_score_detail_note" json:"munaqasyah_score_detail_note,omitempty"`

	MunaqasyahScoreDetailRawTotal   float64 `gorm:"type:numeric(6,1);not null;column:munaqasyah_score_detail_raw_total" json:"munaqasyah_score_detail_raw_total"`
	MunaqasyahScoreDetailPercentage float64 `gorm:"type:numeric(6,1);not null;column:munaqasyah_score_detail_percentage" json:"munaqasyah_score_detail_percentage"`
}

func (MunaqasyahScoreDetailModel) TableName() string { return "munaqasyah_score_details" }
