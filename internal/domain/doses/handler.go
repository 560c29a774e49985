package doses

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"med-reminders/internal/domain/medications"
	"med-reminders/internal/domain/patients"
	"med-reminders/internal/middleware"
	"med-reminders/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, patientsSvc *patients.Service, medsSvc *medications.Service, caps capabilities.Resolver) {
	r.Route("/patients/{patientID}/doses", func(dr chi.Router) {
		dr.Post("/", generateDosesHandler(svc, patientsSvc, medsSvc))
		dr.Get("/", listDosesHandler(svc, patientsSvc))
		dr.Get("/history", historyHandler(svc, patientsSvc, caps))
		dr.Get("/calendar", calendarHandler(svc, patientsSvc))
	})

	// Marcar dosis tomada
	r.Post("/doses/{doseID}/taken", markTakenHandler(svc, patientsSvc))

	// Vista de turno: dosis de todos los pacientes del grupo, por paciente
	r.Get("/me/schedule", groupScheduleHandler(svc, patientsSvc))
}

// assignmentRequest es el cuerpo para programar un curso de medicación.
type assignmentRequest struct {
	MedicationID  string  `json:"medication_id"`
	Route         Route   `json:"route" enums:"oral,intravenous,intramuscular,subcutaneous,topical,inhaled,other"`
	Amount        float64 `json:"amount"`
	Unit          string  `json:"unit"` // "mg", "ml", etc.
	StartAt       string  `json:"start_at"` // RFC3339, primera dosis
	IntervalHours int     `json:"interval_hours" enums:"4,8,12,24,48"`
	DurationDays  int     `json:"duration_days"`
}

type doseResponse struct {
	ID           string        `json:"id"`
	PatientID    string        `json:"patient_id"`
	MedicationID string        `json:"medication_id"`
	ScheduledAt  time.Time     `json:"scheduled_at"`
	CompletedAt  *time.Time    `json:"completed_at,omitempty"`
	Amount       float64       `json:"amount"`
	Unit         string        `json:"unit"`
	Route        Route         `json:"route"`
	Status       DisplayStatus `json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

type generationResponse struct {
	Created           []doseResponse `json:"created"`
	SkippedDuplicates int            `json:"skipped_duplicates"`
	// FirstDoseAt es el primer horario creado (orden cronológico preservado).
	FirstDoseAt *time.Time `json:"first_dose_at,omitempty"`
}

type dayGroupResponse struct {
	Day   string         `json:"day"` // YYYY-MM-DD local
	Doses []doseResponse `json:"doses"`
}

type patientGroupResponse struct {
	PatientID string         `json:"patient_id"`
	Doses     []doseResponse `json:"doses"`
}

// generateDosesHandler godoc
// @Summary Programar curso de medicación
// @Description Expande la asignación (ancla + intervalo + días) en dosis programadas para el paciente, saltando horarios ya existentes para el mismo medicamento. Devuelve 409 si todos los candidatos ya existían.
// @Tags doses
// @Accept json
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param payload body assignmentRequest true "Asignación; start_at en RFC3339; interval_hours en {4,8,12,24,48}; duration_days >= 1"
// @Success 201 {object} generationResponse
// @Failure 400 {string} string "invalid json / parámetros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "patient not found / medication not found"
// @Failure 409 {object} generationResponse "todas las dosis ya estaban programadas"
// @Router /patients/{patientID}/doses [post]
func generateDosesHandler(svc *Service, patientsSvc *patients.Service, medsSvc *medications.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID, ok := authorizePatient(w, r, patientsSvc)
		if !ok {
			return
		}

		var req assignmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		startAt, err := time.Parse(time.RFC3339, req.StartAt)
		if err != nil {
			http.Error(w, "start_at must be RFC3339", http.StatusBadRequest)
			return
		}

		// El medicamento debe existir en el catálogo antes de programar.
		if _, err := medsSvc.GetByID(r.Context(), req.MedicationID); err != nil {
			http.Error(w, "medication not found", http.StatusNotFound)
			return
		}

		res, err := svc.Generate(r.Context(), Assignment{
			PatientID:     patientID,
			MedicationID:  req.MedicationID,
			Route:         req.Route,
			Amount:        req.Amount,
			Unit:          req.Unit,
			StartAt:       startAt,
			IntervalHours: req.IntervalHours,
			DurationDays:  req.DurationDays,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrAllDuplicates):
				writeJSON(w, http.StatusConflict, toGenerationResponse(res, svc.now()))
			case errors.Is(err, ErrInvalidSchedule), errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusCreated, toGenerationResponse(res, svc.now()))
	}
}

// listDosesHandler godoc
// @Summary Listar dosis de un paciente
// @Description Lista las dosis con su estado derivado (pending/taken/skipped). Permite filtrar por rango y por estado.
// @Tags doses
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param from query string false "Fecha/hora mínima scheduled_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima scheduled_at (RFC3339)"
// @Param limit query int false "Máximo de dosis a devolver (1-500). Por defecto 200"
// @Param status query string false "pending | taken | skipped"
// @Success 200 {array} doseResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID}/doses [get]
func listDosesHandler(svc *Service, patientsSvc *patients.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID, ok := authorizePatient(w, r, patientsSvc)
		if !ok {
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		recs, err := svc.ListByPatient(r.Context(), patientID, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := svc.now()
		wantStatus := DisplayStatus(strings.TrimSpace(r.URL.Query().Get("status")))

		out := make([]doseResponse, 0, len(recs))
		for _, rec := range recs {
			resp := toDoseResponse(rec, now)
			if wantStatus != "" && resp.Status != wantStatus {
				continue
			}
			out = append(out, resp)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// historyHandler godoc
// @Summary Historial de dosis por día
// @Description Dosis de los últimos N días agrupadas por día calendario, día más reciente primero. N > 30 requiere la feature `history:extended`; sin ella la ventana se limita a 30 días.
// @Tags doses
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param days query int false "Ventana en días. Por defecto 30"
// @Success 200 {array} dayGroupResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID}/doses/history [get]
func historyHandler(svc *Service, patientsSvc *patients.Service, caps capabilities.Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		patientID, ok := authorizePatient(w, r, patientsSvc)
		if !ok {
			return
		}

		days := 0
		if v := r.URL.Query().Get("days"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				days = n
			}
		}

		// Ventanas extendidas solo con la feature del plan; si no, se
		// recorta a la ventana por defecto en vez de fallar.
		if days > DefaultHistoryDays {
			allowed := false
			if caps != nil {
				if has, err := caps.Has(r.Context(), claims.UserID, capabilities.FeatureExtendedHistory); err == nil {
					allowed = has
				}
			}
			if !allowed {
				days = DefaultHistoryDays
			}
		}

		groups, err := svc.History(r.Context(), patientID, days)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toDayGroupResponses(groups, svc.now()))
	}
}

// calendarHandler godoc
// @Summary Calendario de dosis por día
// @Description Dosis entre from y to agrupadas por día calendario ascendente, con estado derivado por dosis.
// @Tags doses
// @Produce json
// @Param patientID path string true "ID del paciente"
// @Param from query string false "Inicio del rango (RFC3339)"
// @Param to query string false "Fin del rango (RFC3339)"
// @Success 200 {array} dayGroupResponse
// @Failure 400 {string} string "rango inválido"
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "patient not found"
// @Router /patients/{patientID}/doses/calendar [get]
func calendarHandler(svc *Service, patientsSvc *patients.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patientID, ok := authorizePatient(w, r, patientsSvc)
		if !ok {
			return
		}

		var from, to time.Time
		if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "from must be RFC3339", http.StatusBadRequest)
				return
			}
			from = t
		}
		if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				http.Error(w, "to must be RFC3339", http.StatusBadRequest)
				return
			}
			to = t
		}

		groups, err := svc.Calendar(r.Context(), patientID, from, to)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toDayGroupResponses(groups, svc.now()))
	}
}

// markTakenHandler godoc
// @Summary Marcar dosis como tomada
// @Description Setea completed_at exactamente una vez. Un segundo intento devuelve 409.
// @Tags doses
// @Produce json
// @Param doseID path string true "ID de la dosis"
// @Success 200 {object} doseResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "dose not found"
// @Failure 409 {string} string "dose already completed"
// @Router /doses/{doseID}/taken [post]
func markTakenHandler(svc *Service, patientsSvc *patients.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.GroupID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		doseID := chi.URLParam(r, "doseID")

		rec, err := svc.GetByID(r.Context(), doseID)
		if err != nil {
			http.Error(w, "dose not found", http.StatusNotFound)
			return
		}

		groupID, err := patientsSvc.GroupOf(r.Context(), rec.PatientID)
		if err != nil || groupID != claims.GroupID {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		updated, err := svc.MarkTaken(r.Context(), doseID)
		if err != nil {
			if errors.Is(err, ErrAlreadyCompleted) {
				http.Error(w, "dose already completed", http.StatusConflict)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, toDoseResponse(updated, svc.now()))
	}
}

// groupScheduleHandler godoc
// @Summary Agenda del grupo por paciente
// @Description Dosis de todos los pacientes del grupo del cuidador, agrupadas por paciente en orden de aparición. Acepta from/to/limit.
// @Tags doses
// @Produce json
// @Param from query string false "Fecha/hora mínima scheduled_at (RFC3339)"
// @Param to query string false "Fecha/hora máxima scheduled_at (RFC3339)"
// @Param limit query int false "Máximo de dosis (1-500). Por defecto 200"
// @Success 200 {array} patientGroupResponse
// @Failure 400 {string} string "filtros inválidos"
// @Failure 401 {string} string "unauthorized"
// @Router /me/schedule [get]
func groupScheduleHandler(svc *Service, patientsSvc *patients.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.GroupID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		list, err := patientsSvc.ListByGroup(r.Context(), claims.GroupID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ids := make([]string, 0, len(list))
		for _, p := range list {
			ids = append(ids, p.ID)
		}

		groups, err := svc.GroupSchedule(r.Context(), ids, filter)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		now := svc.now()
		out := make([]patientGroupResponse, 0, len(groups))
		for _, g := range groups {
			pg := patientGroupResponse{PatientID: g.PatientID, Doses: make([]doseResponse, 0, len(g.Records))}
			for _, rec := range g.Records {
				pg.Doses = append(pg.Doses, toDoseResponse(rec, now))
			}
			out = append(out, pg)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// authorizePatient resuelve el patientID de la URL y valida que pertenezca
// al grupo del cuidador autenticado. Escribe la respuesta de error si falla.
func authorizePatient(w http.ResponseWriter, r *http.Request, patientsSvc *patients.Service) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.GroupID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}

	patientID := chi.URLParam(r, "patientID")
	p, err := patientsSvc.GetByID(r.Context(), patientID)
	if err != nil {
		http.Error(w, "patient not found", http.StatusNotFound)
		return "", false
	}
	if p.GroupID != claims.GroupID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return "", false
	}

	return patientID, true
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := 200
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	return filter, nil
}

func toDoseResponse(rec DoseRecord, now time.Time) doseResponse {
	return doseResponse{
		ID:           rec.ID,
		PatientID:    rec.PatientID,
		MedicationID: rec.MedicationID,
		ScheduledAt:  rec.ScheduledAt,
		CompletedAt:  rec.CompletedAt,
		Amount:       rec.Amount,
		Unit:         rec.Unit,
		Route:        rec.Route,
		Status:       ResolveStatus(rec, now),
		CreatedAt:    rec.CreatedAt,
	}
}

func toGenerationResponse(res GenerationResult, now time.Time) generationResponse {
	out := generationResponse{
		Created:           make([]doseResponse, 0, len(res.Created)),
		SkippedDuplicates: res.SkippedDuplicates,
	}
	for _, rec := range res.Created {
		out.Created = append(out.Created, toDoseResponse(rec, now))
	}
	if len(res.Created) > 0 {
		first := res.Created[0].ScheduledAt
		out.FirstDoseAt = &first
	}
	return out
}

func toDayGroupResponses(groups []DayGroup, now time.Time) []dayGroupResponse {
	out := make([]dayGroupResponse, 0, len(groups))
	for _, g := range groups {
		dg := dayGroupResponse{Day: g.Day, Doses: make([]doseResponse, 0, len(g.Records))}
		for _, rec := range g.Records {
			dg.Doses = append(dg.Doses, toDoseResponse(rec, now))
		}
		out = append(out, dg)
	}
	return out
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
