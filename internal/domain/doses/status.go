package doses

import (
	"sort"
	"time"
)

// ResolveStatus deriva el estado visible de una dosis respecto a "now".
//
// Reglas (en este orden):
//   - scheduled_at > now        => pending, incluso si hubiera completed_at
//     (no existe "tomar antes de tiempo" en este modelo)
//   - completed_at == nil       => skipped (pasó la hora sin registro)
//   - completed_at != nil       => taken
func ResolveStatus(rec DoseRecord, now time.Time) DisplayStatus {
	if rec.ScheduledAt.After(now) {
		return StatusPending
	}
	if rec.CompletedAt == nil {
		return StatusSkipped
	}
	return StatusTaken
}

// MarkTaken aplica la transición one-way de completado sobre el record.
// Falla con ErrAlreadyCompleted si ya tiene completed_at; no toca
// scheduled_at. No juzga la veracidad del "tomado": es un hecho registrado.
func MarkTaken(rec DoseRecord, completedAt time.Time) (DoseRecord, error) {
	if rec.CompletedAt != nil {
		return rec, ErrAlreadyCompleted
	}
	t := completedAt
	rec.CompletedAt = &t
	return rec, nil
}

// DayGroup agrupa las dosis de un día calendario.
type DayGroup struct {
	// Day es la fecha local (YYYY-MM-DD) de scheduled_at, no de completed_at.
	Day     string
	Records []DoseRecord
}

// PatientGroup agrupa las dosis de un paciente.
type PatientGroup struct {
	PatientID string
	Records   []DoseRecord
}

// GroupByDay agrupa records por día calendario local de scheduled_at.
// El orden de los días lo decide el caller (asc para calendario,
// desc para historial). Dentro de cada día, ascendente por scheduled_at.
func GroupByDay(records []DoseRecord, order DayOrder) []DayGroup {
	byDay := make(map[string][]DoseRecord)
	keys := make([]string, 0)

	for _, rec := range records {
		key := rec.ScheduledAt.Local().Format("2006-01-02")
		if _, ok := byDay[key]; !ok {
			keys = append(keys, key)
		}
		byDay[key] = append(byDay[key], rec)
	}

	sort.Strings(keys)
	if order == DayOrderDesc {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	out := make([]DayGroup, 0, len(keys))
	for _, key := range keys {
		recs := byDay[key]
		sort.Slice(recs, func(i, j int) bool {
			return recs[i].ScheduledAt.Before(recs[j].ScheduledAt)
		})
		out = append(out, DayGroup{Day: key, Records: recs})
	}

	return out
}

// GroupByPatient agrupa records por paciente, en orden de primera aparición
// en la entrada (estable, no alfabético). Dentro de cada paciente,
// ascendente por scheduled_at.
func GroupByPatient(records []DoseRecord) []PatientGroup {
	byPatient := make(map[string][]DoseRecord)
	order := make([]string, 0)

	for _, rec := range records {
		if _, ok := byPatient[rec.PatientID]; !ok {
			order = append(order, rec.PatientID)
		}
		byPatient[rec.PatientID] = append(byPatient[rec.PatientID], rec)
	}

	out := make([]PatientGroup, 0, len(order))
	for _, pid := range order {
		recs := byPatient[pid]
		sort.Slice(recs, func(i, j int) bool {
			return recs[i].ScheduledAt.Before(recs[j].ScheduledAt)
		})
		out = append(out, PatientGroup{PatientID: pid, Records: recs})
	}

	return out
}
