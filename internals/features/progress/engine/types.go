// file: internals/features/progress/engine/types.go
package engine

type Kind int

const (
	// KindDiscrete: hitung jumlah bukti (mis. setoran hafalan per surah).
	KindDiscrete Kind = iota
	// KindRange: jumlahkan irisan rentang ayat/halaman.
	KindRange
)

func (k Kind) String() string {
	if k == KindRange {
		return "range"
	}
	return "discrete"
}

type Status string

const (
	StatusBelumDimulai   Status = "BELUM_DIMULAI"
	StatusSedangDijalani Status = "SEDANG_DIJALANI"
	StatusSelesai        Status = "SELESAI"
)

// SubRange adalah bagian wajib dari satu unit, mis. An-Naba ayat 1-40 di Juz 30,
// atau halaman 1-44 di buku Wafa. SubUnitID diisi kalau rentang terikat ke surah.
type SubRange struct {
	SubUnitID *int `json:"sub_unit_id,omitempty"`
	Start     int  `json:"start"`
	End       int  `json:"end"`
}

func (s SubRange) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start + 1
}

type CurriculumUnit struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Kind         Kind       `json:"kind"`
	SubUnitCount int        `json:"sub_unit_count"`
	SubRanges    []SubRange `json:"sub_ranges,omitempty"`
}

// TotalCount: jumlah item yang dibutuhkan untuk 100%.
func (u CurriculumUnit) TotalCount() int {
	if u.Kind == KindDiscrete {
		return u.SubUnitCount
	}
	total := 0
	for _, s := range u.SubRanges {
		total += s.Len()
	}
	return total
}

// CompletionRecord adalah bukti yang sudah tersimpan (setoran lulus, catatan tilawah, dsb).
type CompletionRecord struct {
	UnitID     int    `json:"unit_id"`
	SubUnitID  *int   `json:"sub_unit_id,omitempty"`
	RangeStart *int   `json:"range_start,omitempty"`
	RangeEnd   *int   `json:"range_end,omitempty"`
	Label      string `json:"label"`
}

type UnitProgress struct {
	UnitID         int     `json:"unit_id"`
	Name           string  `json:"name"`
	CompletedCount int     `json:"completed_count"`
	TotalCount     int     `json:"total_count"`
	Percent        float64 `json:"percent"`
	Status         Status  `json:"status"`
}

type Summary struct {
	Entries       []UnitProgress `json:"entries"`
	CurrentUnitID *int           `json:"current_unit_id"`
	LastLabel     string         `json:"last_label"`
}
