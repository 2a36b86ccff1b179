package seeds

import (
	"fmt"
	"log"
	"path/filepath"

	"gorm.io/gorm"

	"tahfidz_backend/internals/configs"
	munaqasyahModel "tahfidz_backend/internals/features/munaqasyah/model"
	progressModel "tahfidz_backend/internals/features/progress/model"
	studentModel "tahfidz_backend/internals/features/students/model"
	"tahfidz_backend/internals/seeds/curriculum/juz"
	"tahfidz_backend/internals/seeds/curriculum/surahs"
	"tahfidz_backend/internals/seeds/curriculum/wafa"
)

// Models: semua tabel yang dikelola backend ini
func Models() []any {
	return []any{
		&studentModel.StudentModel{},
		&studentModel.StudentHistoryModel{},

		&progressModel.JuzModel{},
		&progressModel.SurahModel{},
		&progressModel.JuzSurahRangeModel{},
		&progressModel.WafaBookModel{},
		&progressModel.HafalanSetoranModel{},
		&progressModel.TilawahRecordModel{},
		&progressModel.WafaRecordModel{},

		&munaqasyahModel.MunaqasyahScheduleModel{},
		&munaqasyahModel.MunaqasyahRegistrationModel{},
		&munaqasyahModel.TasmiScoreModel{},
		&munaqasyahModel.TasmiScoreDetailModel{},
		&munaqasyahModel.MunaqasyahScoreModel{},
		&munaqasyahModel.MunaqasyahScoreDetailModel{},
		&munaqasyahModel.MunaqasyahResultModel{},
	}
}

// Migrate: hanya untuk dev / staging (DB_AUTO_MIGRATE=true)
func Migrate(db *gorm.DB) error {
	log.Println("[INFO] AutoMigrate tabel...")
	return db.AutoMigrate(Models()...)
}

func RunAllSeeds(db *gorm.DB) error {
	dir := configs.GetEnv("SEED_DIR", "internals/seeds")

	//* Kurikulum
	if err := juz.SeedJuzFromJSON(db, filepath.Join(dir, "curriculum/juz/data_juz.json")); err != nil {
		return fmt.Errorf("seed juz: %w", err)
	}
	if err := surahs.SeedJuzSurahsFromJSON(db, filepath.Join(dir, "curriculum/surahs/data_juz_surahs.json")); err != nil {
		return fmt.Errorf("seed surah: %w", err)
	}
	if err := wafa.SeedWafaBooksFromJSON(db, filepath.Join(dir, "curriculum/wafa/data_wafa_books.json")); err != nil {
		return fmt.Errorf("seed wafa: %w", err)
	}
	return nil
}
