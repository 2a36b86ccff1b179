// file: internals/features/progress/service/gorm_store.go
package service

import (
	"context"

	"gorm.io/gorm"

	"tahfidz_backend/internals/features/progress/model"
)

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) ListJuz(ctx context.Context) ([]model.JuzModel, error) {
	var rows []model.JuzModel
	err := s.DB.WithContext(ctx).Order("juz_id ASC").Find(&rows).Error
	return rows, err
}

func (s *GormStore) ListJuzSurahRanges(ctx context.Context) ([]model.JuzSurahRangeRow, error) {
	var rows []model.JuzSurahRangeRow
	err := s.DB.WithContext(ctx).
		Table("juz_surah_ranges AS r").
		Select(`r.juz_surah_range_juz_id, r.juz_surah_range_surah_id,
			r.juz_surah_range_ayat_start, r.juz_surah_range_ayat_end,
			s.surah_name_latin`).
		Joins("JOIN surahs AS s ON s.surah_id = r.juz_surah_range_surah_id").
		Order("r.juz_surah_range_juz_id ASC, r.juz_surah_range_surah_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (s *GormStore) ListWafaBooks(ctx context.Context) ([]model.WafaBookModel, error) {
	var rows []model.WafaBookModel
	err := s.DB.WithContext(ctx).Order("wafa_book_id ASC").Find(&rows).Error
	return rows, err
}

// scopeEvidence: filter sekolah + siswa + periode (to eksklusif), urut waktu input.
func scopeEvidence(prefix string, q EvidenceQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where(prefix+"_school_id = ? AND "+prefix+"_student_id = ?", q.SchoolID, q.StudentID)
		if q.Period.From != nil {
			db = db.Where(prefix+"_created_at >= ?", *q.Period.From)
		}
		if q.Period.To != nil {
			db = db.Where(prefix+"_created_at < ?", *q.Period.To)
		}
		return db.Order(prefix + "_created_at ASC")
	}
}

func (s *GormStore) ListHafalanSetorans(ctx context.Context, q EvidenceQuery) ([]model.HafalanSetoranModel, error) {
	var rows []model.HafalanSetoranModel
	err := s.DB.WithContext(ctx).
		Scopes(scopeEvidence("hafalan_setoran", q)).
		Where("hafalan_setoran_status = ?", model.SetoranStatusLulus).
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) ListTilawahRecords(ctx context.Context, q EvidenceQuery) ([]model.TilawahRecordModel, error) {
	var rows []model.TilawahRecordModel
	err := s.DB.WithContext(ctx).Scopes(scopeEvidence("tilawah_record", q)).Find(&rows).Error
	return rows, err
}

func (s *GormStore) ListWafaRecords(ctx context.Context, q EvidenceQuery) ([]model.WafaRecordModel, error) {
	var rows []model.WafaRecordModel
	err := s.DB.WithContext(ctx).Scopes(scopeEvidence("wafa_record", q)).Find(&rows).Error
	return rows, err
}
