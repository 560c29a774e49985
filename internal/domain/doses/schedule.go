package doses

import "time"

// ExpandSchedule expande un ancla + intervalo + duración en la lista
// ordenada de horarios absolutos de dosis.
//
// Para cada día d en [0, durationDays) y cada offset h en [0, 24) avanzando
// de intervalHours: candidato = ancla + d días + h horas. Si la hora del día
// pasa de 24, el exceso se arrastra a la fecha (hora siempre normalizada a
// [0,24), el overflow avanza el día).
//
// Asume intervalHours y durationDays ya validados (ver Assignment.validate).
func ExpandSchedule(anchor time.Time, intervalHours, durationDays int) []time.Time {
	perDay := 24 / intervalHours
	if perDay < 1 {
		// intervalos > 24h producen una sola toma por día, a la hora ancla
		perDay = 1
	}

	out := make([]time.Time, 0, durationDays*perDay)

	for d := 0; d < durationDays; d++ {
		for h := 0; h < 24; h += intervalHours {
			hour := anchor.Hour() + h
			carry := hour / 24
			hour = hour % 24

			t := time.Date(
				anchor.Year(), anchor.Month(), anchor.Day()+d+carry,
				hour, anchor.Minute(), anchor.Second(), anchor.Nanosecond(),
				anchor.Location(),
			)
			out = append(out, t)
		}
	}

	return out
}
