package doses

import "time"

// DoseRecord es la unidad persistida: una toma programada de un medicamento
// para un paciente. ScheduledAt es inmutable una vez creada; CompletedAt
// pasa de nil a valor exactamente una vez (no hay "des-tomar").
type DoseRecord struct {
	ID           string
	PatientID    string
	MedicationID string

	ScheduledAt time.Time
	CompletedAt *time.Time

	// Copiados de la asignación al crear; inmutables.
	Amount float64
	Unit   string
	Route  Route

	CreatedAt time.Time
}

// Assignment describe un curso de medicación a expandir en DoseRecords.
type Assignment struct {
	PatientID    string
	MedicationID string

	Route  Route
	Amount float64
	Unit   string // "mg", "ml", etc.

	// StartAt es la fecha y hora de la primera dosis (ancla).
	StartAt       time.Time
	IntervalHours int // 4, 8, 12, 24, 48
	DurationDays  int // >= 1
}

// GenerationResult reporta qué creó el generador.
// Created preserva el orden cronológico de los candidatos.
type GenerationResult struct {
	Created           []DoseRecord
	SkippedDuplicates int
}
