package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tahfidz_backend/internals/features/munaqasyah/model"
)

type memStore struct {
	schedules     map[uuid.UUID]*model.MunaqasyahScheduleModel
	registrations map[uuid.UUID]*model.MunaqasyahRegistrationModel
	tasmi         map[uuid.UUID]*model.TasmiScoreModel
	munaqasyah    map[uuid.UUID]*model.MunaqasyahScoreModel
	results       map[uuid.UUID]*model.MunaqasyahResultModel
	saveResults   int
}

func newMemStore() *memStore {
	return &memStore{
		schedules:     map[uuid.UUID]*model.MunaqasyahScheduleModel{},
		registrations: map[uuid.UUID]*model.MunaqasyahRegistrationModel{},
		tasmi:         map[uuid.UUID]*model.TasmiScoreModel{},
		munaqasyah:    map[uuid.UUID]*model.MunaqasyahScoreModel{},
		results:       map[uuid.UUID]*model.MunaqasyahResultModel{},
	}
}

func (m *memStore) CreateSchedule(_ context.Context, s *model.MunaqasyahScheduleModel) error {
	if s.MunaqasyahScheduleID == uuid.Nil {
		s.MunaqasyahScheduleID = uuid.New()
	}
	m.schedules[s.MunaqasyahScheduleID] = s
	return nil
}

func (m *memStore) ListSchedules(_ context.Context, f ScheduleFilter) ([]model.MunaqasyahScheduleModel, int64, error) {
	var out []model.MunaqasyahScheduleModel
	for _, s := range m.schedules {
		if s.MunaqasyahScheduleSchoolID == f.SchoolID &&
			(f.AcademicYear == "" || s.MunaqasyahScheduleAcademicYear == f.AcademicYear) {
			out = append(out, *s)
		}
	}
	return out, int64(len(out)), nil
}

func (m *memStore) GetSchedule(_ context.Context, schoolID, id uuid.UUID) (*model.MunaqasyahScheduleModel, error) {
	s, ok := m.schedules[id]
	if !ok || s.MunaqasyahScheduleSchoolID != schoolID {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (m *memStore) CreateRegistration(_ context.Context, r *model.MunaqasyahRegistrationModel, quota int) error {
	n := 0
	for _, x := range m.registrations {
		if x.MunaqasyahRegistrationScheduleID != r.MunaqasyahRegistrationScheduleID {
			continue
		}
		if x.MunaqasyahRegistrationStudentID == r.MunaqasyahRegistrationStudentID {
			return ErrDuplicateRegistration
		}
		n++
	}
	if quota > 0 && n >= quota {
		return ErrQuotaFull
	}
	r.MunaqasyahRegistrationID = uuid.New()
	m.registrations[r.MunaqasyahRegistrationID] = r
	return nil
}

func (m *memStore) GetRegistration(_ context.Context, schoolID, id uuid.UUID) (*model.MunaqasyahRegistrationModel, error) {
	r, ok := m.registrations[id]
	if !ok || r.MunaqasyahRegistrationSchoolID != schoolID {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (m *memStore) ListRegistrations(_ context.Context, _, scheduleID uuid.UUID) ([]model.MunaqasyahRegistrationModel, error) {
	var out []model.MunaqasyahRegistrationModel
	for _, r := range m.registrations {
		if r.MunaqasyahRegistrationScheduleID == scheduleID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *memStore) setStatus(id uuid.UUID, status string) {
	if r, ok := m.registrations[id]; ok {
		r.MunaqasyahRegistrationStatus = status
	}
}

func (m *memStore) SaveTasmi(_ context.Context, s *model.TasmiScoreModel, status string) error {
	m.tasmi[s.TasmiScoreRegistrationID] = s
	m.setStatus(s.TasmiScoreRegistrationID, status)
	return nil
}

func (m *memStore) SaveMunaqasyah(_ context.Context, s *model.MunaqasyahScoreModel, status string) error {
	m.munaqasyah[s.MunaqasyahScoreRegistrationID] = s
	m.setStatus(s.MunaqasyahScoreRegistrationID, status)
	return nil
}

func (m *memStore) GetTasmi(_ context.Context, id uuid.UUID) (*model.TasmiScoreModel, error) {
	if s, ok := m.tasmi[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) GetMunaqasyah(_ context.Context, id uuid.UUID) (*model.MunaqasyahScoreModel, error) {
	if s, ok := m.munaqasyah[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) SaveResult(_ context.Context, r *model.MunaqasyahResultModel) error {
	m.saveResults++
	m.results[r.MunaqasyahResultRegistrationID] = r
	m.setStatus(r.MunaqasyahResultRegistrationID, model.RegistrationStatusSelesai)
	return nil
}

func (m *memStore) GetResult(_ context.Context, id uuid.UUID) (*model.MunaqasyahResultModel, error) {
	if r, ok := m.results[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memStore) ListResultsBySchedule(_ context.Context, _, scheduleID uuid.UUID) ([]model.MunaqasyahResultModel, error) {
	var out []model.MunaqasyahResultModel
	for _, r := range m.results {
		if r.MunaqasyahResultScheduleID == scheduleID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type directory map[uuid.UUID]string

func (d directory) StudentName(_ context.Context, _, id uuid.UUID) (string, error) {
	if n, ok := d[id]; ok {
		return n, nil
	}
	return "", gorm.ErrRecordNotFound
}
