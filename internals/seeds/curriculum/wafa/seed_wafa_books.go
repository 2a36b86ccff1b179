package wafa

import (
	"fmt"
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tahfidz_backend/internals/features/progress/model"
)

type WafaBookSeed struct {
	WafaBookID        int    `json:"wafa_book_id"`
	WafaBookName      string `json:"wafa_book_name"`
	WafaBookPageCount int    `json:"wafa_book_page_count"`
}

func ParseWafaBooks(content []byte) ([]model.WafaBookModel, error) {
	var data []WafaBookSeed
	if err := sonic.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("decode JSON wafa: %w", err)
	}
	out := make([]model.WafaBookModel, 0, len(data))
	for _, b := range data {
		if b.WafaBookPageCount < 1 {
			return nil, fmt.Errorf("jumlah halaman buku %q harus > 0", b.WafaBookName)
		}
		out = append(out, model.WafaBookModel(b))
	}
	return out, nil
}

func SeedWafaBooksFromJSON(db *gorm.DB, filePath string) error {
	log.Println("📥 Membaca file:", filePath)

	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("baca file JSON: %w", err)
	}
	rows, err := ParseWafaBooks(content)
	if err != nil {
		return err
	}

	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows)
	if res.Error != nil {
		return fmt.Errorf("insert buku wafa: %w", res.Error)
	}
	log.Printf("✅ Buku Wafa: %d baru (dari %d)", res.RowsAffected, len(rows))
	return nil
}
