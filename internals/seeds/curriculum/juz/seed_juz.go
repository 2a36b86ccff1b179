package juz

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidz_backend/internals/features/progress/model"
)

type JuzSeed struct {
	JuzID        int    `json:"juz_id"`
	JuzName      string `json:"juz_name"`
	JuzPageStart int    `json:"juz_page_start"`
	JuzPageEnd   int    `json:"juz_page_end"`
}

func ParseJuz(content []byte) ([]model.JuzModel, error) {
	var data []JuzSeed
	if err := sonic.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("decode JSON juz: %w", err)
	}

	out := make([]model.JuzModel, 0, len(data))
	for _, j := range data {
		if j.JuzID < 1 || j.JuzID > 30 || j.JuzPageEnd < j.JuzPageStart {
			return nil, fmt.Errorf("data juz tidak valid: %+v", j)
		}
		out = append(out, model.JuzModel{
			JuzID:        j.JuzID,
			JuzName:      j.JuzName,
			JuzPageStart: j.JuzPageStart,
			JuzPageEnd:   j.JuzPageEnd,
		})
	}
	return out, nil
}

// SeedJuzFromJSON: idempotent (ON CONFLICT DO NOTHING)
func SeedJuzFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca file JSON: %w", err)
	}
	rows, err := ParseJuz(content)
	if err != nil {
		return err
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert juz: %w", res.Error)
	}
	log.Printf("✅ Juz: %d baru (dari %d)", res.RowsAffected, len(rows))
	return nil
}
