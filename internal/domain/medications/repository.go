package medications

import "context"

type Repository interface {
	Create(ctx context.Context, m Medication) error
	GetByID(ctx context.Context, id string) (Medication, error)

	// List filtra por substring del nombre (case-insensitive) si query != "".
	List(ctx context.Context, query string, limit int) ([]Medication, error)
}
