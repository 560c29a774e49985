package patients

import "time"

// Patient representa a una persona bajo cuidado dentro de un grupo.
// Los cuidadores del mismo grupo son quienes pueden ver y programar
// sus medicamentos.
type Patient struct {
	ID      string
	GroupID string

	Name      string
	BirthDate *time.Time
	Notes     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
