package doses

import (
	"context"
	"time"
)

// Repository es el "dose store" externo. El core no implementa locking:
// si dos generaciones corren en paralelo para el mismo (paciente,
// medicamento), la supresión de duplicados es best-effort y la unicidad
// fuerte queda del lado del store (constraint sobre
// (patient_id, medication_id, scheduled_at)).
type Repository interface {
	// CreateBatch inserta el lote completo o nada.
	CreateBatch(ctx context.Context, recs []DoseRecord) error

	GetByID(ctx context.Context, id string) (DoseRecord, error)

	// ListScheduledTimes devuelve los horarios ya programados para el par
	// (paciente, medicamento). Se consulta una sola vez por generación.
	ListScheduledTimes(ctx context.Context, patientID, medicationID string) ([]time.Time, error)

	ListByPatient(ctx context.Context, patientID string, filter ListFilter) ([]DoseRecord, error)
	ListByPatients(ctx context.Context, patientIDs []string, filter ListFilter) ([]DoseRecord, error)

	// MarkTaken setea completed_at solo si sigue en nil.
	// Devuelve ErrAlreadyCompleted si ya estaba completada.
	MarkTaken(ctx context.Context, id string, completedAt time.Time) error
}

type ListFilter struct {
	From  *time.Time
	To    *time.Time
	Limit int
}
