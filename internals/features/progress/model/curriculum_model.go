// file: internals/features/progress/model/curriculum_model.go
package model

// JuzModel: 30 juz, halaman mengikuti mushaf Madinah
type JuzModel struct {
	JuzID        int    `gorm:"primaryKey;autoIncrement:false;column:juz_id" json:"juz_id"`
	JuzName      string `gorm:"type:varchar(50);not null;column:juz_name" json:"juz_name"`
	JuzPageStart int    `gorm:"not null;column:juz_page_start" json:"juz_page_start"`
	JuzPageEnd   int    `gorm:"not null;column:juz_page_end" json:"juz_page_end"`
}

func (JuzModel) TableName() string { return "juz" }

type SurahModel struct {
	SurahID        int    `gorm:"primaryKey;autoIncrement:false;column:surah_id" json:"surah_id"`
	SurahName      string `gorm:"type:varchar(50);not null;column:surah_name" json:"surah_name"`
	SurahNameLatin  string `gorm:"type:varchar(50);not null;column:surah_name_latin" json:"surah_name_latin"`
	SurahAyatCount  int    `gorm:"not null;column:surah_ayat_count" json:"surah_ayat_count"`
}

func (SurahModel) TableName() string { return "surahs" }

// JuzSurahRangeModel: potongan ayat suatu surah yang berada di dalam juz
// (surah panjang bisa terbelah ke beberapa juz).
type JuzSurahRangeModel struct {
	JuzSurahRangeID        int `gorm:"primaryKey;column:juz_surah_range_id" json:"juz_surah_range_id"`
	JuzSurahRangeJuzID     int `gorm:"not null;uniqueIndex:uq_juz_surah_range;column:juz_surah_range_juz_id" json:"juz_id"`
	JuzSurahRangeSurahID   int `gorm:"not null;uniqueIndex:uq_juz_surah_range;column:juz_surah_range_surah_id" json:"surah_id"`
	JuzSurahRangeAyatStart int `gorm:"not null;column:juz_surah_range_ayat_start" json:"ayat_start"`
	JuzSurahRangeAyatEnd   int `gorm:"not null;column:juz_surah_range_ayat_end" json:"ayat_end"`
}

func (JuzSurahRangeModel) TableName() string { return "juz_surah_ranges" }

// JuzSurahRangeRow: hasil join ranges + surahs (untuk label)
type JuzSurahRangeRow struct {
	JuzID          int    `gorm:"column:juz_surah_range_juz_id"`
	SurahID        int    `gorm:"column:juz_surah_range_surah_id"`
	AyatStart      int    `gorm:"column:juz_surah_range_ayat_start"`
	AyatEnd        int    `gorm:"column:juz_surah_range_ayat_end"`
	SurahNameLatin string `gorm:"column:surah_name_latin"`
}

type WafaBookModel struct {
	WafaBookID        int    `gorm:"primaryKey;autoIncrement:false;column:wafa_book_id" json:"wafa_book_id"`
	WafaBookName      string `gorm:"type:varchar(80);not null;column:wafa_book_name" json:"wafa_book_name"`
	WafaBookPageCount int    `gorm:"not null;column:wafa_book_page_count" json:"wafa_book_page_count"`
}

func (WafaBookModel) TableName() string { return "wafa_books" }
