package doses

// DisplayStatus es el estado derivado de una dosis.
// Nunca se persiste como fuente de verdad: se calcula al leer,
// comparando scheduled_at y completed_at contra "now".
type DisplayStatus string

const (
	StatusPending DisplayStatus = "pending"
	StatusTaken   DisplayStatus = "taken"
	StatusSkipped DisplayStatus = "skipped"
)

// Route define la vía de administración.
// @Enum oral, intravenous, intramuscular, subcutaneous, topical, inhaled, other
type Route string

const (
	RouteOral          Route = "oral"
	RouteIntravenous   Route = "intravenous"
	RouteIntramuscular Route = "intramuscular"
	RouteSubcutaneous  Route = "subcutaneous"
	RouteTopical       Route = "topical"
	RouteInhaled       Route = "inhaled"
	RouteOther         Route = "other"
)

// DayOrder define la dirección al agrupar por día.
// Historial usa desc (día más reciente primero); calendario usa asc.
type DayOrder string

const (
	DayOrderAsc  DayOrder = "asc"
	DayOrderDesc DayOrder = "desc"
)

// AllowedIntervals son los intervalos de repetición soportados, en horas.
var AllowedIntervals = []int{4, 8, 12, 24, 48}

func intervalAllowed(hours int) bool {
	for _, h := range AllowedIntervals {
		if h == hours {
			return true
		}
	}
	return false
}
