package router

import (
	"database/sql"
	"net/http"
	"os"

	mem "med-reminders/internal/adapters/storage/memory"
	pg "med-reminders/internal/adapters/storage/postgres"
	"med-reminders/internal/domain/doses"
	"med-reminders/internal/domain/medications"
	"med-reminders/internal/domain/patients"
	"med-reminders/internal/middleware"
	"med-reminders/internal/platform/logger"
	"med-reminders/internal/ports/auth"
	"med-reminders/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: resolver de features por plan. nil => ventana de
	// historial por defecto.
	Capabilities capabilities.Resolver

	// Opcional: logger de requests. nil => sin request log.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	if opts.Logger != nil {
		r.Use(middleware.RequestLog(opts.Logger))
	}

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	var (
		patientsRepo    patients.Repository
		medicationsRepo medications.Repository
		dosesRepo       doses.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		patientsRepo = pg.NewPatientsRepo(db)
		medicationsRepo = pg.NewMedicationsRepo(db)
		dosesRepo = pg.NewDosesRepo(db)
	} else {
		patientsRepo = mem.NewPatientsRepo()
		medicationsRepo = mem.NewMedicationsRepo()
		dosesRepo = mem.NewDosesRepo()
	}

	// Services por módulo
	patientsSvc := patients.NewService(patientsRepo)
	medicationsSvc := medications.NewService(medicationsRepo)
	dosesSvc := doses.NewService(dosesRepo)

	// Rutas por módulo
	patients.RegisterRoutes(r, patientsSvc)
	medications.RegisterRoutes(r, medicationsSvc)
	doses.RegisterRoutes(r, dosesSvc, patientsSvc, medicationsSvc, opts.Capabilities)

	return r
}
