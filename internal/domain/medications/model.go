package medications

import "time"

// Medication es una entrada del catálogo de medicamentos asignables.
// El nombre se resuelve desde acá; los DoseRecords solo guardan la referencia.
type Medication struct {
	ID   string
	Name string

	CreatedAt time.Time
}
