package surahs

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidz_backend/internals/features/progress/model"
)

type SurahSeed struct {
	SurahID        int    `json:"surah_id"`
	SurahName      string `json:"surah_name"`
	SurahNameLatin string `json:"surah_name_latin"`
	SurahAyatCount int    `json:"surah_ayat_count"`
	AyatStart      int    `json:"ayat_start"`
	AyatEnd        int    `json:"ayat_end"`
}

type JuzSurahSeed struct {
	JuzID  int         `json:"juz_id"`
	Surahs []SurahSeed `json:"surahs"`
}

// ParseJuzSurahs: surah unik + rentang ayat per juz
func ParseJuzSurahs(content []byte) ([]model.SurahModel, []model.JuzSurahRangeModel, error) {
	var data []JuzSurahSeed
	if err := sonic.Unmarshal(content, &data); err != nil {
		return nil, nil, fmt.Errorf("decode JSON surah: %w", err)
	}

	seen := map[int]struct{}{}
	var surahs []model.SurahModel
	var ranges []model.JuzSurahRangeModel
	for _, j := range data {
		for _, s := range j.Surahs {
			if s.AyatStart < 1 || s.AyatEnd < s.AyatStart || s.AyatEnd > s.SurahAyatCount {
				return nil, nil, fmt.Errorf("rentang ayat tidak valid: juz %d surah %d (%d-%d)", j.JuzID, s.SurahID, s.AyatStart, s.AyatEnd)
			}
			if _, ok := seen[s.SurahID]; !ok {
				seen[s.SurahID] = struct{}{}
				surahs = append(surahs, model.SurahModel{
					SurahID:        s.SurahID,
					SurahName:      s.SurahName,
					SurahNameLatin: s.SurahNameLatin,
					SurahAyatCount: s.SurahAyatCount,
				})
			}
			ranges = append(ranges, model.JuzSurahRangeModel{
				JuzSurahRangeJuzID:     j.JuzID,
				JuzSurahRangeSurahID:   s.SurahID,
				JuzSurahRangeAyatStart: s.AyatStart,
				JuzSurahRangeAyatEnd:   s.AyatEnd,
			})
		}
	}
	return surahs, ranges, nil
}

func SeedJuzSurahsFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca file JSON: %w", err)
	}
	surahs, ranges, err := ParseJuzSurahs(content)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&surahs)
		if res.Error != nil {
			return fmt.Errorf("insert surah: %w", res.Error)
		}
		log.Printf("✅ Surah: %d baru (dari %d)", res.RowsAffected, len(surahs))

		res = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "juz_surah_range_juz_id"}, {Name: "juz_surah_range_surah_id"}},
			DoNothing: true,
		}).Create(&ranges)
		if res.Error != nil {
			return fmt.Errorf("insert rentang surah: %w", res.Error)
		}
		log.Printf("✅ Rentang juz-surah: %d baru (dari %d)", res.RowsAffected, len(ranges))
		return nil
	})
}
