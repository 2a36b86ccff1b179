// file: internals/features/progress/model/evidence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SetoranStatusLulus = "lulus"
	SetoranStatusUlang = "ulang"
)

// HafalanSetoranModel: satu setoran hafalan per surah (status lulus / ulang)
type HafalanSetoranModel struct {
	HafalanSetoranID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:hafalan_setoran_id" json:"hafalan_setoran_id"`
	HafalanSetoranSchoolID  uuid.UUID `gorm:"type:uuid;not null;column:hafalan_setoran_school_id" json:"hafalan_setoran_school_id"`
	HafalanSetoranStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:hafalan_setoran_student_id" json:"hafalan_setoran_student_id"`
	HafalanSetoranTeacherID uuid.UUID `gorm:"type:uuid;not null;column:hafalan_setoran_teacher_id" json:"hafalan_setoran_teacher_id"`

	HafalanSetoranJuzID   int     `gorm:"not null;column:hafalan_setoran_juz_id" json:"hafalan_setoran_juz_id"`
	HafalanSetoranSurahID int     `gorm:"not null;column:hafalan_setoran_surah_id" json:"hafalan_setoran_surah_id"`
	HafalanSetoranStatus  string  `gorm:"type:varchar(10);not null;check:hafalan_setoran_status IN ('lulus','ulang');column:hafalan_setoran_status" json:"hafalan_setoran_status"`
	HafalanSetoranNote    *string `gorm:"type:text;column:hafalan_setoran_note" json:"hafalan_setoran_note,omitempty"`

	HafalanSetoranCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:hafalan_setoran_created_at" json:"hafalan_setoran_created_at"`
	HafalanSetoranDeletedAt gorm.DeletedAt `gorm:"column:hafalan_setoran_deleted_at;index" json:"-"`
}

func (HafalanSetoranModel) TableName() string { return "hafalan_setorans" }

// TilawahRecordModel: bacaan tilawah dari ayat_start s/d ayat_end dalam satu surah
type TilawahRecordModel struct {
	TilawahRecordID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tilawah_record_id" json:"tilawah_record_id"`
	TilawahRecordSchoolID  uuid.UUID `gorm:"type:uuid;not null;column:tilawah_record_school_id" json:"tilawah_record_school_id"`
	TilawahRecordStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:tilawah_record_student_id" json:"tilawah_record_student_id"`
	TilawahRecordTeacherID uuid.UUID `gorm:"type:uuid;not null;column:tilawah_record_teacher_id" json:"tilawah_record_teacher_id"`

	TilawahRecordJuzID     int  `gorm:"not null;column:tilawah_record_juz_id" json:"tilawah_record_juz_id"`
	TilawahRecordSurahID   int  `gorm:"not null;column:tilawah_record_surah_id" json:"tilawah_record_surah_id"`
	TilawahRecordAyatStart *int `gorm:"column:tilawah_record_ayat_start" json:"tilawah_record_ayat_start,omitempty"`
	TilawahRecordAyatEnd   *int `gorm:"column:tilawah_record_ayat_end" json:"tilawah_record_ayat_end,omitempty"`

	TilawahRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:tilawah_record_created_at" json:"tilawah_record_created_at"`
	TilawahRecordDeletedAt gorm.DeletedAt `gorm:"column:tilawah_record_deleted_at;index" json:"-"`
}

func (TilawahRecordModel) TableName() string { return "tilawah_records" }

// WafaRecordModel: halaman buku Wafa yang sudah dibaca
type WafaRecordModel struct {
	WafaRecordID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:wafa_record_id" json:"wafa_record_id"`
	WafaRecordSchoolID  uuid.UUID `gorm:"type:uuid;not null;column:wafa_record_school_id" json:"wafa_record_school_id"`
	WafaRecordStudentID uuid.UUID `gorm:"type:uuid;not null;index;column:wafa_record_student_id" json:"wafa_record_student_id"`
	WafaRecordTeacherID uuid.UUID `gorm:"type:uuid;not null;column:wafa_record_teacher_id" json:"wafa_record_teacher_id"`

	WafaRecordBookID    int  `gorm:"not null;column:wafa_record_book_id" json:"wafa_record_book_id"`
	WafaRecordPageStart *int `gorm:"column:wafa_record_page_start" json:"wafa_record_page_start,omitempty"`
	WafaRecordPageEnd   *int `gorm:"column:wafa_record_page_end" json:"wafa_record_page_end,omitempty"`

	WafaRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:wafa_record_created_at" json:"wafa_record_created_at"`
	WafaRecordDeletedAt gorm.DeletedAt `gorm:"column:wafa_record_deleted_at;index" json:"-"`
}

func (WafaRecordModel) TableName() string { return "wafa_records" }
