package main

import (
	"net/http"
	"os"
	"time"

	_ "med-reminders/docs"
	"med-reminders/internal/adapters/auth/supabase"
	"med-reminders/internal/adapters/capabilities/plansfeatures"
	"med-reminders/internal/platform/logger"
	"med-reminders/internal/ports/auth"
	"med-reminders/internal/ports/capabilities"
	"med-reminders/internal/router"
)

// @title Med Reminders API
// @version 1.0
// @description API de recordatorios de medicación por grupos de cuidado: pacientes, catálogo de medicamentos y programación de dosis con estado derivado.
// @BasePath /
func main() {
	lg := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Verifier de Supabase solo si hay config; si no, modo dev
	// (headers X-Debug-User-ID / X-Debug-Group-ID).
	var verifier auth.AuthVerifier
	if url := os.Getenv("SUPABASE_URL"); url != "" {
		client, err := supabase.NewClient(supabase.Config{
			BaseURL: url,
			AnonKey: os.Getenv("SUPABASE_ANON_KEY"),
		})
		if err != nil {
			lg.Error("invalid supabase config", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		if client.IsConfigured() {
			verifier = supabase.NewVerifier(client)
		}
	}

	var caps capabilities.Resolver
	if url := os.Getenv("PLANS_BASE_URL"); url != "" {
		client, err := plansfeatures.NewClient(plansfeatures.Config{
			BaseURL: url,
			APIKey:  os.Getenv("PLANS_API_KEY"),
		})
		if err != nil {
			lg.Error("invalid plans-features config", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		caps = plansfeatures.NewResolver(client)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Capabilities: caps,
		Logger:       lg,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": addr, "dev_auth": verifier == nil})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
