package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"med-reminders/internal/domain/doses"
)

var (
	ErrNotFound = errors.New("not found")
)

type dosesRepo struct {
	mu   sync.RWMutex
	byID map[string]doses.DoseRecord
}

func NewDosesRepo() doses.Repository {
	return &dosesRepo{
		byID: make(map[string]doses.DoseRecord),
	}
}

// CreateBatch valida el lote completo antes de insertar: o entra todo
// o no entra nada.
func (r *dosesRepo) CreateBatch(ctx context.Context, recs []doses.DoseRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range recs {
		if rec.ID == "" {
			return errors.New("dose id required")
		}
		if _, exists := r.byID[rec.ID]; exists {
			return errors.New("dose already exists")
		}
	}

	for _, rec := range recs {
		r.byID[rec.ID] = rec
	}
	return nil
}

func (r *dosesRepo) GetByID(ctx context.Context, id string) (doses.DoseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[id]
	if !ok {
		return doses.DoseRecord{}, ErrNotFound
	}
	return rec, nil
}

func (r *dosesRepo) ListScheduledTimes(ctx context.Context, patientID, medicationID string) ([]time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]time.Time, 0)
	for _, rec := range r.byID {
		if rec.PatientID == patientID && rec.MedicationID == medicationID {
			out = append(out, rec.ScheduledAt)
		}
	}
	return out, nil
}

func (r *dosesRepo) ListByPatient(ctx context.Context, patientID string, filter doses.ListFilter) ([]doses.DoseRecord, error) {
	return r.ListByPatients(ctx, []string{patientID}, filter)
}

func (r *dosesRepo) ListByPatients(ctx context.Context, patientIDs []string, filter doses.ListFilter) ([]doses.DoseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(patientIDs))
	for _, pid := range patientIDs {
		wanted[pid] = struct{}{}
	}

	out := make([]doses.DoseRecord, 0)
	for _, rec := range r.byID {
		if _, ok := wanted[rec.PatientID]; !ok {
			continue
		}
		if filter.From != nil && rec.ScheduledAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && rec.ScheduledAt.After(*filter.To) {
			continue
		}
		out = append(out, rec)
	}

	// Orden por scheduled_at asc, igual que el adapter de Postgres.
	sort.Slice(out, func(i, j int) bool {
		return out[i].ScheduledAt.Before(out[j].ScheduledAt)
	})

	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}

	return out, nil
}

func (r *dosesRepo) MarkTaken(ctx context.Context, id string, completedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.byID[id]
	if !ok {
		return ErrNotFound
	}
	if rec.CompletedAt != nil {
		return doses.ErrAlreadyCompleted
	}

	t := completedAt
	rec.CompletedAt = &t
	r.byID[id] = rec
	return nil
}
