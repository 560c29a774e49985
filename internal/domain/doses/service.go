package doses

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSchedule: intervalo fuera de {4,8,12,24,48} o duración < 1 día.
	ErrInvalidSchedule = errors.New("invalid schedule parameters")

	// ErrAllDuplicates: todos los candidatos ya existían; no se creó nada.
	// No es una falla, pero el caller debe poder distinguir "ya estaba
	// programado completo" de "programé N dosis nuevas".
	ErrAllDuplicates = errors.New("all candidate doses already scheduled")

	// ErrAlreadyCompleted: intento de completar dos veces la misma dosis.
	ErrAlreadyCompleted = errors.New("dose already completed")
)

// DefaultHistoryDays es la ventana de historial de la app original.
const DefaultHistoryDays = 30

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (a Assignment) validate() error {
	if strings.TrimSpace(a.PatientID) == "" || strings.TrimSpace(a.MedicationID) == "" {
		return ErrInvalidInput
	}
	if a.StartAt.IsZero() {
		return ErrInvalidInput
	}
	if a.Amount <= 0 || strings.TrimSpace(a.Unit) == "" {
		return ErrInvalidInput
	}
	if !intervalAllowed(a.IntervalHours) {
		return ErrInvalidSchedule
	}
	if a.DurationDays < 1 {
		return ErrInvalidSchedule
	}
	return nil
}

// Generate expande la asignación en DoseRecords, excluyendo los horarios que
// ya existen para el par (paciente, medicamento), e inserta el resto como un
// solo lote. La exclusión es por igualdad exacta de timestamp, sin ventana
// de tolerancia.
func (s *Service) Generate(ctx context.Context, in Assignment) (GenerationResult, error) {
	if err := in.validate(); err != nil {
		return GenerationResult{}, err
	}

	existing, err := s.repo.ListScheduledTimes(ctx, in.PatientID, in.MedicationID)
	if err != nil {
		return GenerationResult{}, err
	}

	taken := make(map[int64]struct{}, len(existing))
	for _, t := range existing {
		taken[t.UnixNano()] = struct{}{}
	}

	route := in.Route
	if route == "" {
		route = RouteOral
	}

	now := s.now()
	candidates := ExpandSchedule(in.StartAt, in.IntervalHours, in.DurationDays)

	created := make([]DoseRecord, 0, len(candidates))
	skipped := 0

	for _, at := range candidates {
		if _, dup := taken[at.UnixNano()]; dup {
			skipped++
			continue
		}
		created = append(created, DoseRecord{
			ID:           uuid.NewString(),
			PatientID:    in.PatientID,
			MedicationID: in.MedicationID,
			ScheduledAt:  at,
			Amount:       in.Amount,
			Unit:         strings.TrimSpace(in.Unit),
			Route:        route,
			CreatedAt:    now,
		})
	}

	if len(created) == 0 {
		return GenerationResult{SkippedDuplicates: skipped}, ErrAllDuplicates
	}

	if err := s.repo.CreateBatch(ctx, created); err != nil {
		return GenerationResult{}, err
	}

	return GenerationResult{Created: created, SkippedDuplicates: skipped}, nil
}

// MarkTaken registra la toma de una dosis: completed_at pasa de nil a now
// exactamente una vez. El update lo aplica el store y se relee el record.
func (s *Service) MarkTaken(ctx context.Context, id string) (DoseRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DoseRecord{}, ErrInvalidInput
	}

	if err := s.repo.MarkTaken(ctx, id, s.now()); err != nil {
		return DoseRecord{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (DoseRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DoseRecord{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, filter ListFilter) ([]DoseRecord, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPatient(ctx, patientID, filter)
}

// History devuelve las dosis de los últimos `days` días agrupadas por día,
// más reciente primero. days <= 0 usa la ventana por defecto (30 días).
func (s *Service) History(ctx context.Context, patientID string, days int) ([]DayGroup, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, ErrInvalidInput
	}
	if days <= 0 {
		days = DefaultHistoryDays
	}

	from := s.now().AddDate(0, 0, -days)
	recs, err := s.repo.ListByPatient(ctx, patientID, ListFilter{From: &from})
	if err != nil {
		return nil, err
	}
	return GroupByDay(recs, DayOrderDesc), nil
}

// Calendar devuelve las dosis entre from y to agrupadas por día ascendente.
func (s *Service) Calendar(ctx context.Context, patientID string, from, to time.Time) ([]DayGroup, error) {
	if strings.TrimSpace(patientID) == "" {
		return nil, ErrInvalidInput
	}
	filter := ListFilter{}
	if !from.IsZero() {
		filter.From = &from
	}
	if !to.IsZero() {
		filter.To = &to
	}

	recs, err := s.repo.ListByPatient(ctx, patientID, filter)
	if err != nil {
		return nil, err
	}
	return GroupByDay(recs, DayOrderAsc), nil
}

// GroupSchedule devuelve las dosis de varios pacientes agrupadas por
// paciente, en orden de primera aparición (la vista de turno del cuidador).
func (s *Service) GroupSchedule(ctx context.Context, patientIDs []string, filter ListFilter) ([]PatientGroup, error) {
	if len(patientIDs) == 0 {
		return []PatientGroup{}, nil
	}

	recs, err := s.repo.ListByPatients(ctx, patientIDs, filter)
	if err != nil {
		return nil, err
	}
	return GroupByPatient(recs), nil
}
