package doses

import (
	"errors"
	"testing"
	"time"
)

func TestResolveStatus_FutureIsPending(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	rec := DoseRecord{ScheduledAt: now.Add(1 * time.Hour)}
	if got := ResolveStatus(rec, now); got != StatusPending {
		t.Fatalf("expected pending, got %s", got)
	}

	// futuro manda incluso con completed_at seteado
	done := now.Add(-10 * time.Minute)
	rec.CompletedAt = &done
	if got := ResolveStatus(rec, now); got != StatusPending {
		t.Fatalf("expected pending for future dose with completed_at, got %s", got)
	}
}

func TestResolveStatus_PastWithoutCompletionIsSkipped(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	rec := DoseRecord{ScheduledAt: now.Add(-1 * time.Hour)}
	if got := ResolveStatus(rec, now); got != StatusSkipped {
		t.Fatalf("expected skipped, got %s", got)
	}
}

func TestResolveStatus_PastWithCompletionIsTaken(t *testing.T) {
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)
	done := now.Add(-30 * time.Minute)

	rec := DoseRecord{ScheduledAt: now.Add(-1 * time.Hour), CompletedAt: &done}
	if got := ResolveStatus(rec, now); got != StatusTaken {
		t.Fatalf("expected taken, got %s", got)
	}
}

func TestResolveStatus_ExactlyNowIsNotPending(t *testing.T) {
	// scheduled_at == now no es futuro: sin completed_at cuenta como skipped
	now := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	rec := DoseRecord{ScheduledAt: now}
	if got := ResolveStatus(rec, now); got != StatusSkipped {
		t.Fatalf("expected skipped at exact boundary, got %s", got)
	}
}

func TestMarkTaken_OneWay(t *testing.T) {
	at := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	rec := DoseRecord{ID: "d1", ScheduledAt: at.Add(-1 * time.Hour)}

	updated, err := MarkTaken(rec, at)
	if err != nil {
		t.Fatalf("MarkTaken error: %v", err)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(at) {
		t.Fatalf("expected completed_at %s, got %v", at, updated.CompletedAt)
	}

	_, err = MarkTaken(updated, at.Add(5*time.Minute))
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("expected ErrAlreadyCompleted, got %v", err)
	}
	// el segundo intento no debe haber movido el timestamp original
	if !updated.CompletedAt.Equal(at) {
		t.Fatalf("completed_at changed on rejected second mark")
	}
}

func TestGroupByDay_OrderAndWithinDay(t *testing.T) {
	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	// entrada desordenada a propósito
	recs := []DoseRecord{
		{ID: "b", ScheduledAt: day2.Add(8 * time.Hour)},
		{ID: "a", ScheduledAt: day1.Add(20 * time.Hour)},
		{ID: "c", ScheduledAt: day1.Add(8 * time.Hour)},
		{ID: "d", ScheduledAt: day2.Add(20 * time.Hour)},
	}

	asc := GroupByDay(recs, DayOrderAsc)
	if len(asc) != 2 {
		t.Fatalf("expected 2 day groups, got %d", len(asc))
	}
	if asc[0].Day >= asc[1].Day {
		t.Fatalf("expected ascending days, got %s then %s", asc[0].Day, asc[1].Day)
	}
	// dentro del día siempre ascendente por scheduled_at
	if asc[0].Records[0].ID != "c" || asc[0].Records[1].ID != "a" {
		t.Fatalf("expected within-day asc order [c a], got [%s %s]", asc[0].Records[0].ID, asc[0].Records[1].ID)
	}

	desc := GroupByDay(recs, DayOrderDesc)
	if desc[0].Day <= desc[1].Day {
		t.Fatalf("expected descending days, got %s then %s", desc[0].Day, desc[1].Day)
	}
	// desc invierte días pero no el orden interno
	if desc[0].Records[0].ID != "b" || desc[0].Records[1].ID != "d" {
		t.Fatalf("expected within-day asc order [b d], got [%s %s]", desc[0].Records[0].ID, desc[0].Records[1].ID)
	}
}

func TestGroupByDay_Empty(t *testing.T) {
	got := GroupByDay(nil, DayOrderAsc)
	if len(got) != 0 {
		t.Fatalf("expected no groups, got %d", len(got))
	}
}

func TestGroupByPatient_FirstSeenOrder(t *testing.T) {
	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	recs := []DoseRecord{
		{ID: "1", PatientID: "p-zeta", ScheduledAt: base.Add(2 * time.Hour)},
		{ID: "2", PatientID: "p-alfa", ScheduledAt: base},
		{ID: "3", PatientID: "p-zeta", ScheduledAt: base},
		{ID: "4", PatientID: "p-alfa", ScheduledAt: base.Add(1 * time.Hour)},
	}

	got := GroupByPatient(recs)
	if len(got) != 2 {
		t.Fatalf("expected 2 patient groups, got %d", len(got))
	}
	// orden de primera aparición, no alfabético
	if got[0].PatientID != "p-zeta" || got[1].PatientID != "p-alfa" {
		t.Fatalf("expected first-seen order [p-zeta p-alfa], got [%s %s]", got[0].PatientID, got[1].PatientID)
	}
	if got[0].Records[0].ID != "3" || got[0].Records[1].ID != "1" {
		t.Fatalf("expected within-patient asc order [3 1], got [%s %s]", got[0].Records[0].ID, got[0].Records[1].ID)
	}
}
