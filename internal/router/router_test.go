package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"med-reminders/internal/router"
)

func TestHTTP_EndToEnd_DoseLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	caregiverID := "caregiver-1"
	groupID := "group-1"

	// 1) Cuidador registra paciente
	patientID := createPatient(t, ts.URL, caregiverID, groupID, map[string]any{
		"name":       "Elena",
		"birth_date": "1948-05-20",
		"notes":      "test",
	})

	// 2) Agrega medicamento al catálogo
	medicationID := createMedication(t, ts.URL, caregiverID, groupID, "Amoxicilina 500mg")

	// 3) Programa curso: cada 12h por 2 días => 4 dosis
	startAt := time.Now().UTC().Add(-26 * time.Hour).Truncate(time.Second)
	var gen struct {
		Created []struct {
			ID          string    `json:"id"`
			ScheduledAt time.Time `json:"scheduled_at"`
			Status      string    `json:"status"`
		} `json:"created"`
		SkippedDuplicates int        `json:"skipped_duplicates"`
		FirstDoseAt       *time.Time `json:"first_dose_at"`
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/doses", caregiverID, groupID, map[string]any{
			"medication_id":  medicationID,
			"route":          "oral",
			"amount":         500,
			"unit":           "mg",
			"start_at":       startAt.Format(time.RFC3339),
			"interval_hours": 12,
			"duration_days":  2,
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 generate doses, got %d body=%s", st, string(body))
		}
		if err := json.Unmarshal(body, &gen); err != nil {
			t.Fatalf("generate response unmarshal: %v body=%s", err, string(body))
		}
		if len(gen.Created) != 4 {
			t.Fatalf("expected 4 doses created, got %d", len(gen.Created))
		}
		if gen.SkippedDuplicates != 0 {
			t.Fatalf("expected 0 skipped, got %d", gen.SkippedDuplicates)
		}
		if gen.FirstDoseAt == nil || !gen.FirstDoseAt.Equal(startAt) {
			t.Fatalf("expected first_dose_at %s, got %v", startAt, gen.FirstDoseAt)
		}
	}

	// 4) Repetir la misma asignación => 409, nada nuevo
	{
		st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/doses", caregiverID, groupID, map[string]any{
			"medication_id":  medicationID,
			"route":          "oral",
			"amount":         500,
			"unit":           "mg",
			"start_at":       startAt.Format(time.RFC3339),
			"interval_hours": 12,
			"duration_days":  2,
		})
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on duplicate course, got %d body=%s", st, string(body))
		}
	}

	// 5) Listar dosis: la primera (26h atrás) aún sin tomar => skipped;
	//    la última (startAt+36h) es futura => pending
	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/doses", caregiverID, groupID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list doses, got %d body=%s", st, string(body))
		}
		var list []struct {
			ID          string    `json:"id"`
			ScheduledAt time.Time `json:"scheduled_at"`
			Status      string    `json:"status"`
		}
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("list unmarshal: %v body=%s", err, string(body))
		}
		if len(list) != 4 {
			t.Fatalf("expected 4 doses listed, got %d", len(list))
		}
		if list[0].Status != "skipped" {
			t.Fatalf("expected first dose skipped, got %s", list[0].Status)
		}
		if list[3].Status != "pending" {
			t.Fatalf("expected last dose pending, got %s", list[3].Status)
		}
	}

	// 6) Marcar la primera dosis como tomada
	firstDoseID := gen.Created[0].ID
	{
		st, body := doReq(t, ts.URL, "POST", "/doses/"+firstDoseID+"/taken", caregiverID, groupID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 mark taken, got %d body=%s", st, string(body))
		}
		var dose struct {
			Status      string     `json:"status"`
			CompletedAt *time.Time `json:"completed_at"`
		}
		_ = json.Unmarshal(body, &dose)
		if dose.Status != "taken" {
			t.Fatalf("expected status taken, got %s", dose.Status)
		}
		if dose.CompletedAt == nil {
			t.Fatalf("expected completed_at set")
		}
	}

	// 7) Segundo intento => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/doses/"+firstDoseID+"/taken", caregiverID, groupID, nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 on second mark taken, got %d", st)
		}
	}

	// 8) Historial: agrupado por día, día más reciente primero
	{
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/doses/history", caregiverID, groupID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d body=%s", st, string(body))
		}
		var groups []struct {
			Day   string `json:"day"`
			Doses []struct {
				Status string `json:"status"`
			} `json:"doses"`
		}
		if err := json.Unmarshal(body, &groups); err != nil {
			t.Fatalf("history unmarshal: %v body=%s", err, string(body))
		}
		if len(groups) < 2 {
			t.Fatalf("expected at least 2 day groups, got %d", len(groups))
		}
		for i := 1; i < len(groups); i++ {
			if groups[i-1].Day <= groups[i].Day {
				t.Fatalf("expected descending days, got %s then %s", groups[i-1].Day, groups[i].Day)
			}
		}
	}

	// 9) Calendario con rango: agrupado ascendente
	{
		from := startAt.Add(-1 * time.Hour).Format(time.RFC3339)
		to := startAt.Add(48 * time.Hour).Format(time.RFC3339)
		st, body := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/doses/calendar?from="+from+"&to="+to, caregiverID, groupID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 calendar, got %d body=%s", st, string(body))
		}
		var groups []struct {
			Day string `json:"day"`
		}
		if err := json.Unmarshal(body, &groups); err != nil {
			t.Fatalf("calendar unmarshal: %v body=%s", err, string(body))
		}
		for i := 1; i < len(groups); i++ {
			if groups[i-1].Day >= groups[i].Day {
				t.Fatalf("expected ascending days, got %s then %s", groups[i-1].Day, groups[i].Day)
			}
		}
	}

	// 10) Agenda del grupo: las dosis del paciente aparecen bajo su ID
	{
		st, body := doReq(t, ts.URL, "GET", "/me/schedule", caregiverID, groupID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 group schedule, got %d body=%s", st, string(body))
		}
		var groups []struct {
			PatientID string `json:"patient_id"`
			Doses     []struct {
				ID string `json:"id"`
			} `json:"doses"`
		}
		if err := json.Unmarshal(body, &groups); err != nil {
			t.Fatalf("schedule unmarshal: %v body=%s", err, string(body))
		}
		if len(groups) != 1 || groups[0].PatientID != patientID {
			t.Fatalf("expected single group for %s, got %+v", patientID, groups)
		}
		if len(groups[0].Doses) != 4 {
			t.Fatalf("expected 4 doses in group schedule, got %d", len(groups[0].Doses))
		}
	}
}

func TestHTTP_CrossGroupAccessDenied(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	patientID := createPatient(t, ts.URL, "caregiver-a", "group-a", map[string]any{
		"name": "Elena",
	})
	medicationID := createMedication(t, ts.URL, "caregiver-a", "group-a", "Losartán 50mg")

	st, body := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/doses", "caregiver-a", "group-a", map[string]any{
		"medication_id":  medicationID,
		"amount":         50,
		"unit":           "mg",
		"start_at":       time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339),
		"interval_hours": 24,
		"duration_days":  1,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 generate, got %d body=%s", st, string(body))
	}
	var gen struct {
		Created []struct {
			ID string `json:"id"`
		} `json:"created"`
	}
	_ = json.Unmarshal(body, &gen)

	// Cuidador de otro grupo no ve al paciente ni sus dosis
	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/"+patientID, "caregiver-b", "group-b", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 cross-group profile, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/doses", "caregiver-b", "group-b", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 cross-group doses, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/doses/"+gen.Created[0].ID+"/taken", "caregiver-b", "group-b", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 cross-group mark taken, got %d", st)
		}
	}

	// Sin claims => 401
	{
		st, _ := doReq(t, ts.URL, "GET", "/patients/"+patientID+"/doses", "", "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without auth, got %d", st)
		}
	}
}

func TestHTTP_Generate_ValidationErrors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	patientID := createPatient(t, ts.URL, "caregiver-1", "group-1", map[string]any{
		"name": "Elena",
	})
	medicationID := createMedication(t, ts.URL, "caregiver-1", "group-1", "Ibuprofeno 400mg")

	// intervalo no soportado
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/doses", "caregiver-1", "group-1", map[string]any{
			"medication_id":  medicationID,
			"amount":         400,
			"unit":           "mg",
			"start_at":       time.Now().UTC().Format(time.RFC3339),
			"interval_hours": 6,
			"duration_days":  3,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for interval 6, got %d", st)
		}
	}

	// medicamento inexistente
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/doses", "caregiver-1", "group-1", map[string]any{
			"medication_id":  "no-such-med",
			"amount":         400,
			"unit":           "mg",
			"start_at":       time.Now().UTC().Format(time.RFC3339),
			"interval_hours": 8,
			"duration_days":  3,
		})
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown medication, got %d", st)
		}
	}

	// start_at inválido
	{
		st, _ := doReq(t, ts.URL, "POST", "/patients/"+patientID+"/doses", "caregiver-1", "group-1", map[string]any{
			"medication_id":  medicationID,
			"amount":         400,
			"unit":           "mg",
			"start_at":       "2025-01-01",
			"interval_hours": 8,
			"duration_days":  3,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for non-RFC3339 start_at, got %d", st)
		}
	}
}

func TestHTTP_MedicationCatalogSearch(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	createMedication(t, ts.URL, "caregiver-1", "group-1", "Paracetamol 500mg")
	createMedication(t, ts.URL, "caregiver-1", "group-1", "Amoxicilina 500mg")

	st, body := doReq(t, ts.URL, "GET", "/medications?q=paraceta", "caregiver-1", "group-1", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 search, got %d body=%s", st, string(body))
	}
	var list []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("search unmarshal: %v body=%s", err, string(body))
	}
	if len(list) != 1 || list[0].Name != "Paracetamol 500mg" {
		t.Fatalf("expected single Paracetamol match, got %+v", list)
	}
}

func createPatient(t *testing.T, baseURL, userID, groupID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/patients", userID, groupID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create patient, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create patient: missing id body=%s", string(body))
	}
	return resp.ID
}

func createMedication(t *testing.T, baseURL, userID, groupID, name string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/medications", userID, groupID, map[string]any{
		"name": name,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create medication, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create medication: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID, debugGroupID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
		req.Header.Set("X-Debug-Group-ID", debugGroupID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
