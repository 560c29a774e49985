package doses

import (
	"testing"
	"time"
)

func TestExpandSchedule_TwelveHours_TwoDays(t *testing.T) {
	anchor := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	got := ExpandSchedule(anchor, 12, 2)

	want := []time.Time{
		time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 20, 0, 0, 0, time.UTC),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d doses, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("dose %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestExpandSchedule_CountPerInterval(t *testing.T) {
	anchor := time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC)

	cases := []struct {
		interval int
		days     int
		want     int
	}{
		{4, 1, 6},
		{8, 1, 3},
		{12, 1, 2},
		{24, 1, 1},
		{4, 3, 18},
		{24, 7, 7},
	}

	for _, c := range cases {
		got := ExpandSchedule(anchor, c.interval, c.days)
		if len(got) != c.want {
			t.Fatalf("interval=%d days=%d: expected %d doses, got %d", c.interval, c.days, c.want, len(got))
		}
	}
}

func TestExpandSchedule_RolloverCarriesIntoNextDay(t *testing.T) {
	// ancla a las 23:00 con intervalo de 8h: 23:00, 07:00 del día siguiente, 15:00 del día siguiente
	anchor := time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC)

	got := ExpandSchedule(anchor, 8, 1)

	want := []time.Time{
		time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 7, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 15, 0, 0, 0, time.UTC),
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d doses, got %d", len(want), len(got))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("dose %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestExpandSchedule_RolloverAcrossMonthEnd(t *testing.T) {
	// time.Date normaliza día+carry también sobre el fin de mes
	anchor := time.Date(2025, 1, 31, 22, 0, 0, 0, time.UTC)

	got := ExpandSchedule(anchor, 12, 1)

	want := []time.Time{
		time.Date(2025, 1, 31, 22, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC),
	}

	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Fatalf("dose %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestExpandSchedule_FortyEightHours_OnePerDay(t *testing.T) {
	// intervalos > 24h: una sola toma por día, a la hora ancla
	anchor := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	got := ExpandSchedule(anchor, 48, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 doses, got %d", len(got))
	}
	for i, at := range got {
		if at.Hour() != 9 {
			t.Fatalf("dose %d: expected hour 9, got %d", i, at.Hour())
		}
		if at.Day() != 1+i {
			t.Fatalf("dose %d: expected day %d, got %d", i, 1+i, at.Day())
		}
	}
}

func TestExpandSchedule_PreservesMinutesAndLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*3600)
	anchor := time.Date(2025, 6, 15, 14, 45, 30, 0, loc)

	got := ExpandSchedule(anchor, 8, 1)

	for i, at := range got {
		if at.Minute() != 45 || at.Second() != 30 {
			t.Fatalf("dose %d: expected minutes/seconds 45:30, got %02d:%02d", i, at.Minute(), at.Second())
		}
		if at.Location() != loc {
			t.Fatalf("dose %d: expected location %v, got %v", i, loc, at.Location())
		}
	}
}
