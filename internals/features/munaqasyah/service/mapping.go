// file: internals/features/munaqasyah/service/mapping.go
package service

import (
	"tahfidz_backend/internals/features/munaqasyah/model"
	"tahfidz_backend/internals/features/munaqasyah/scoring"
)

func tasmiDetailRows(in []scoring.ScoreDetailInput, stage scoring.StageResult) []model.TasmiScoreDetailModel {
	out := make([]model.TasmiScoreDetailModel, 0, len(in))
	for i, d := range in {
		out = append(out, model.TasmiScoreDetailModel{
			TasmiScoreDetailSurahID:    d.UnitID,
			TasmiScoreDetailInitial:    d.InitialScore,
			TasmiScoreDetailMinor1:     d.Minor1,
			TasmiScoreDetailMinor2:     d.Minor2,
			TasmiScoreDetailMinor3:     d.Minor3,
			TasmiScoreDetailMajor1:     d.Major1,
			TasmiScoreDetailMajor2:     d.Major2,
			TasmiScoreDetailNote:       d.Note,
			TasmiScoreDetailRawTotal:   stage.PerUnit[i].RawTotal,
			TasmiScoreDetailPercentage: stage.PerUnit[i].Percentage,
		})
	}
	return out
}

func tasmiInputs(rows []model.TasmiScoreDetailModel) []scoring.ScoreDetailInput {
	out := make([]scoring.ScoreDetailInput, 0, len(rows))
	for _, r := range rows {
		out = append(out, scoring.ScoreDetailInput{
			UnitID:       r.TasmiScoreDetailSurahID,
			InitialScore: r.TasmiScoreDetailInitial,
			Minor1:       r.TasmiScoreDetailMinor1,
			Minor2:       r.TasmiScoreDetailMinor2,
			Minor3:       r.TasmiScoreDetailMinor3,
			Major1:       r.TasmiScoreDetailMajor1,
			Major2:       r.TasmiScoreDetailMajor2,
			Note:         r.TasmiScoreDetailNote,
		})
	}
	return out
}

func munaqasyahDetailRows(in []scoring.ScoreDetailInput, stage scoring.StageResult) []model.MunaqasyahScoreDetailModel {
	out := make([]model.MunaqasyahScoreDetailModel, 0, len(in))
	for i, d := range in {
		out = append(out, model.MunaqasyahScoreDetailModel{
			MunaqasyahScoreDetailQuestionNo: d.UnitID,
			MunaqasyahScoreDetailMinor1:     d.Minor1,
			MunaqasyahScoreDetailMinor2:     d.Minor2,
			MunaqasyahScoreDetailMinor3:     d.Minor3,
			MunaqasyahScoreDetailMajor1:     d.Major1,
			MunaqasyahScoreDetailMajor2:     d.Major2,
			MunaqasyahScoreDetailNote:       d.Note,
			MunaqasyahScoreDetailRawTotal:   stage.PerUnit[i].RawTotal,
			MunaqasyahScoreDetailPercentage: stage.PerUnit[i].Percentage,
		})
	}
	return out
}

func munaqasyahInputs(rows []model.MunaqasyahScoreDetailModel) []scoring.ScoreDetailInput {
	out := make([]scoring.ScoreDetailInput, 0, len(rows))
	for _, r := range rows {
		out = append(out, scoring.ScoreDetailInput{
			UnitID: r.MunaqasyahScoreDetailQuestionNo,
			Minor1: r.MunaqasyahScoreDetailMinor1,
			Minor2: r.MunaqasyahScoreDetailMinor2,
			Minor3: r.MunaqasyahScoreDetailMinor3,
			Major1: r.MunaqasyahScoreDetailMajor1,
			Major2: r.MunaqasyahScoreDetailMajor2,
			Note:   r.MunaqasyahScoreDetailNote,
		})
	}
	return out
}
