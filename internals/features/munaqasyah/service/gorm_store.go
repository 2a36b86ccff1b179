// file: internals/features/munaqasyah/service/gorm_store.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidz_backend/internals/features/munaqasyah/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

/* =========================
   Jadwal
========================= */

func (s *GormStore) CreateSchedule(ctx context.Context, m *model.MunaqasyahScheduleModel) error {
	return s.DB.WithContext(ctx).Create(m).Error
}

func (s *GormStore) ListSchedules(ctx context.Context, f ScheduleFilter) ([]model.MunaqasyahScheduleModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.MunaqasyahScheduleModel{}).
		Where("munaqasyah_schedule_school_id = ?", f.SchoolID)
	if f.AcademicYear != "" {
		q = q.Where("munaqasyah_schedule_academic_year = ?", f.AcademicYear)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []model.MunaqasyahScheduleModel
	if err := q.Order("munaqasyah_schedule_date DESC, munaqasyah_schedule_created_at DESC").
		Offset(f.Offset).Limit(f.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *GormStore) GetSchedule(ctx context.Context, schoolID, id uuid.UUID) (*model.MunaqasyahScheduleModel, error) {
	var m model.MunaqasyahScheduleModel
	if err := s.DB.WithContext(ctx).
		Where("munaqasyah_schedule_id = ? AND munaqasyah_schedule_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

/* =========================
   Pendaftaran
========================= */

func (s *GormStore) CreateRegistration(ctx context.Context, m *model.MunaqasyahRegistrationModel, quota int) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// kunci baris jadwal supaya cek kuota tidak balapan
		var sch model.MunaqasyahScheduleModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("munaqasyah_schedule_id = ?", m.MunaqasyahRegistrationScheduleID).
			First(&sch).Error; err != nil {
			return err
		}

		var dup int64
		if err := tx.Model(&model.MunaqasyahRegistrationModel{}).
			Where("munaqasyah_registration_schedule_id = ? AND munaqasyah_registration_student_id = ?",
				m.MunaqasyahRegistrationScheduleID, m.MunaqasyahRegistrationStudentID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrDuplicateRegistration
		}

		if quota > 0 {
			var n int64
			if err := tx.Model(&model.MunaqasyahRegistrationModel{}).
				Where("munaqasyah_registration_schedule_id = ?", m.MunaqasyahRegistrationScheduleID).
				Count(&n).Error; err != nil {
				return err
			}
			if n >= int64(quota) {
				return ErrQuotaFull
			}
		}
		return tx.Create(m).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateRegistration
	}
	return err
}

func (s *GormStore) GetRegistration(ctx context.Context, schoolID, id uuid.UUID) (*model.MunaqasyahRegistrationModel, error) {
	var m model.MunaqasyahRegistrationModel
	if err := s.DB.WithContext(ctx).
		Where("munaqasyah_registration_id = ? AND munaqasyah_registration_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) ListRegistrations(ctx context.Context, schoolID, scheduleID uuid.UUID) ([]model.MunaqasyahRegistrationModel, error) {
	var rows []model.MunaqasyahRegistrationModel
	err := s.DB.WithContext(ctx).
		Where("munaqasyah_registration_school_id = ? AND munaqasyah_registration_schedule_id = ?", schoolID, scheduleID).
		Order("munaqasyah_registration_student_name ASC").
		Find(&rows).Error
	return rows, err
}

func setRegistrationStatus(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.MunaqasyahRegistrationModel{}).
		Where("munaqasyah_registration_id = ?", id).
		Updates(map[string]any{
			"munaqasyah_registration_status":     status,
			"munaqasyah_registration_updated_at": time.Now(),
		}).Error
}

/* =========================
   Nilai
========================= */

func (s *GormStore) SaveTasmi(ctx context.Context, m *model.TasmiScoreModel, status string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old []uuid.UUID
		if err := tx.Model(&model.TasmiScoreModel{}).
			Where("tasmi_score_registration_id = ?", m.TasmiScoreRegistrationID).
			Pluck("tasmi_score_id", &old).Error; err != nil {
			return err
		}
		if len(old) > 0 {
			if err := tx.Where("tasmi_score_detail_score_id IN ?", old).Delete(&model.TasmiScoreDetailModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("tasmi_score_id IN ?", old).Delete(&model.TasmiScoreModel{}).Error; err != nil {
				return err
			}
		}
		// Create ikut menyimpan Details (association)
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return setRegistrationStatus(tx, m.TasmiScoreRegistrationID, status)
	})
}

func (s *GormStore) SaveMunaqasyah(ctx context.Context, m *model.MunaqasyahScoreModel, status string) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old []uuid.UUID
		if err := tx.Model(&model.MunaqasyahScoreModel{}).
			Where("munaqasyah_score_registration_id = ?", m.MunaqasyahScoreRegistrationID).
			Pluck("munaqasyah_score_id", &old).Error; err != nil {
			return err
		}
		if len(old) > 0 {
			if err := tx.Where("munaqasyah_score_detail_score_id IN ?", old).Delete(&model.MunaqasyahScoreDetailModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("munaqasyah_score_id IN ?", old).Delete(&model.MunaqasyahScoreModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		return setRegistrationStatus(tx, m.MunaqasyahScoreRegistrationID, status)
	})
}

func (s *GormStore) GetTasmi(ctx context.Context, registrationID uuid.UUID) (*model.TasmiScoreModel, error) {
	var m model.TasmiScoreModel
	if err := s.DB.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("tasmi_score_detail_surah_id ASC") }).
		Where("tasmi_score_registration_id = ?", registrationID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) GetMunaqasyah(ctx context.Context, registrationID uuid.UUID) (*model.MunaqasyahScoreModel, error) {
	var m model.MunaqasyahScoreModel
	if err := s.DB.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB { return db.Order("munaqasyah_score_detail_question_no ASC") }).
		Where("munaqasyah_score_registration_id = ?", registrationID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

/* =========================
   Hasil
========================= */

func (s *GormStore) SaveResult(ctx context.Context, m *model.MunaqasyahResultModel) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "munaqasyah_result_registration_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"munaqasyah_result_tasmi_score",
				"munaqasyah_result_munaqasyah_score",
				"munaqasyah_result_final_score",
				"munaqasyah_result_grade",
				"munaqasyah_result_passed",
				"munaqasyah_result_breakdown",
				"munaqasyah_result_computed_at",
			}),
		}).Create(m).Error; err != nil {
			return err
		}
		return setRegistrationStatus(tx, m.MunaqasyahResultRegistrationID, model.RegistrationStatusSelesai)
	})
}

func (s *GormStore) GetResult(ctx context.Context, registrationID uuid.UUID) (*model.MunaqasyahResultModel, error) {
	var m model.MunaqasyahResultModel
	if err := s.DB.WithContext(ctx).
		Where("munaqasyah_result_registration_id = ?", registrationID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *GormStore) ListResultsBySchedule(ctx context.Context, schoolID, scheduleID uuid.UUID) ([]model.MunaqasyahResultModel, error) {
	var rows []model.MunaqasyahResultModel
	err := s.DB.WithContext(ctx).
		Where("munaqasyah_result_school_id = ? AND munaqasyah_result_schedule_id = ?", schoolID, scheduleID).
		Order("munaqasyah_result_final_score DESC").
		Find(&rows).Error
	return rows, err
}
