package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"med-reminders/internal/domain/doses"
)

type DosesRepo struct {
	db *sql.DB
}

func NewDosesRepo(db *sql.DB) *DosesRepo {
	return &DosesRepo{db: db}
}

const doseColumns = `
	id, patient_id, medication_id,
	scheduled_at, completed_at,
	amount, unit, route,
	created_at
`

// CreateBatch inserta el lote dentro de una transacción: o entran todas
// las dosis o ninguna.
func (r *DosesRepo) CreateBatch(ctx context.Context, recs []doses.DoseRecord) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, rec := range recs {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO dose_records (
				id, patient_id, medication_id,
				scheduled_at, completed_at,
				amount, unit, route,
				status,
				created_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		`,
			rec.ID,
			rec.PatientID,
			rec.MedicationID,
			rec.ScheduledAt,
			rec.CompletedAt,
			rec.Amount,
			rec.Unit,
			string(rec.Route),
			// status redundante para lectores externos; el core nunca lo lee.
			string(doses.StatusPending),
			rec.CreatedAt,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *DosesRepo) GetByID(ctx context.Context, id string) (doses.DoseRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return doses.DoseRecord{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+doseColumns+`
		FROM dose_records
		WHERE id = $1
	`, id)

	rec, err := scanDose(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return doses.DoseRecord{}, ErrNotFound
		}
		return doses.DoseRecord{}, err
	}
	return rec, nil
}

func (r *DosesRepo) ListScheduledTimes(ctx context.Context, patientID, medicationID string) ([]time.Time, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT scheduled_at
		FROM dose_records
		WHERE patient_id = $1 AND medication_id = $2
	`, patientID, medicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *DosesRepo) ListByPatient(ctx context.Context, patientID string, filter doses.ListFilter) ([]doses.DoseRecord, error) {
	patientID = strings.TrimSpace(patientID)
	if patientID == "" {
		return nil, nil
	}
	return r.list(ctx, []string{patientID}, filter)
}

func (r *DosesRepo) ListByPatients(ctx context.Context, patientIDs []string, filter doses.ListFilter) ([]doses.DoseRecord, error) {
	if len(patientIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, patientIDs, filter)
}

func (r *DosesRepo) list(ctx context.Context, patientIDs []string, filter doses.ListFilter) ([]doses.DoseRecord, error) {
	sb := strings.Builder{}
	sb.WriteString(`
		SELECT ` + doseColumns + `
		FROM dose_records
		WHERE patient_id IN (`)

	args := []any{}
	argN := 1

	placeholders := make([]string, 0, len(patientIDs))
	for _, pid := range patientIDs {
		placeholders = append(placeholders, fmt.Sprintf("$%d", argN))
		args = append(args, pid)
		argN++
	}
	sb.WriteString(strings.Join(placeholders, ",") + ")")

	if filter.From != nil {
		sb.WriteString(fmt.Sprintf(" AND scheduled_at >= $%d", argN))
		args = append(args, *filter.From)
		argN++
	}
	if filter.To != nil {
		sb.WriteString(fmt.Sprintf(" AND scheduled_at <= $%d", argN))
		args = append(args, *filter.To)
		argN++
	}

	sb.WriteString(" ORDER BY scheduled_at ASC")

	if filter.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argN))
		args = append(args, filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]doses.DoseRecord, 0)
	for rows.Next() {
		rec, err := scanDose(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// MarkTaken es condicional: solo completa dosis sin completed_at.
// También refresca la columna status redundante para lectores externos.
func (r *DosesRepo) MarkTaken(ctx context.Context, id string, completedAt time.Time) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE dose_records
		SET completed_at = $2, status = $3
		WHERE id = $1 AND completed_at IS NULL
	`, id, completedAt, string(doses.StatusTaken))
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		// Distinguir "no existe" de "ya estaba completada".
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM dose_records WHERE id = $1`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return doses.ErrAlreadyCompleted
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDose(row rowScanner) (doses.DoseRecord, error) {
	var rec doses.DoseRecord
	var route string
	var completedAt sql.NullTime

	if err := row.Scan(
		&rec.ID,
		&rec.PatientID,
		&rec.MedicationID,
		&rec.ScheduledAt,
		&completedAt,
		&rec.Amount,
		&rec.Unit,
		&route,
		&rec.CreatedAt,
	); err != nil {
		return doses.DoseRecord{}, err
	}

	rec.Route = doses.Route(route)
	if completedAt.Valid {
		t := completedAt.Time
		rec.CompletedAt = &t
	}
	return rec, nil
}
