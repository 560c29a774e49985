package postgres

import (
	"context"
	"database/sql"
	"strings"

	"med-reminders/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (id, name, created_at)
		VALUES ($1,$2,$3)
	`,
		m.ID,
		m.Name,
		m.CreatedAt,
	)
	return err
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at
		FROM medications
		WHERE id = $1
	`, id)

	var m medications.Medication
	if err := row.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return medications.Medication{}, ErrNotFound
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) List(ctx context.Context, query string, limit int) ([]medications.Medication, error) {
	if limit <= 0 {
		limit = 50
	}

	sb := strings.Builder{}
	sb.WriteString(`SELECT id, name, created_at FROM medications`)

	args := []any{}
	if q := strings.TrimSpace(query); q != "" {
		sb.WriteString(` WHERE name ILIKE $1`)
		args = append(args, "%"+q+"%")
		sb.WriteString(` ORDER BY name ASC LIMIT $2`)
	} else {
		sb.WriteString(` ORDER BY name ASC LIMIT $1`)
	}
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		var m medications.Medication
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
