package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/blogem/logtrail/config"
	"github.com/blogem/logtrail/controllers"
	"github.com/blogem/logtrail/database"
	"github.com/blogem/logtrail/logged"
	"github.com/blogem/logtrail/metrics"
	authmiddleware "github.com/blogem/logtrail/middleware"
	"github.com/blogem/logtrail/repositories"
	"github.com/blogem/logtrail/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database
	if err := database.InitializeDatabase(cfg.DBPath); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	reg := prometheus.NewRegistry()
	m := metrics.NewMetrics()
	if err := m.Register(reg); err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	srvs, err := setupServices(context.Background(), database.GetDB(), cfg.LoggedHosts, m)
	if err != nil {
		log.Fatalf("Failed to setup services: %v", err)
	}

	// Initialize controllers
	ctrl := controllers.NewControllers(srvs)

	// Set up router
	r, err := setupRouter(ctrl, cfg, reg)
	if err != nil {
		log.Fatalf("Failed to setup router: %v", err)
	}

	log.Printf("Logtrail starting on port %s (database: %s)", cfg.Port, cfg.DBPath)
	for _, ht := range srvs.Hosts.HostTypes() {
		log.Printf("Serving log trails of %s from %s", ht.Name, ht.RelationTable)
	}

	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}

// setupServices registers every logged host type and makes sure its relation
// table exists before any entry is appended
func setupServices(ctx context.Context, db *sql.DB, extraHosts []string, m *metrics.Metrics) (*services.Services, error) {
	repos := repositories.NewRepositories(db)
	hosts := logged.NewRegistry()

	for _, name := range extraHosts {
		if _, err := hosts.Register(name); err != nil {
			return nil, fmt.Errorf("failed to register host type: %w", err)
		}
	}

	srvs, err := services.NewServices(repos, hosts, m)
	if err != nil {
		return nil, err
	}

	for _, ht := range hosts.HostTypes() {
		if err := repos.Logs.EnsureRelation(ctx, ht); err != nil {
			return nil, err
		}
	}

	return srvs, nil
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, cfg *config.Config, gatherer prometheus.Gatherer) (*chi.Mux, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// Session middleware
	sessionHandler, err := session.Sessioner(session.Options{
		Provider:       "memory",
		ProviderConfig: "",
		CookieName:     "logtrail_session",
		Secure:         cfg.UseHTTPS,
		Gclifetime:     cfg.SessionLifetime,
		Maxlifetime:    cfg.SessionLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}
	r.Use(sessionHandler)

	// PUBLIC ROUTES (no authentication required)
	r.Get("/health", ctrl.Health.Index)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Post("/login", ctrl.Session.Login)
	r.Post("/logout", ctrl.Session.Logout)

	r.Get("/team", ctrl.Team.Index)
	r.Get("/team/{id}", ctrl.Team.Show)
	r.Get("/logs/{host}/{id}", ctrl.Logs.List)
	r.Get("/log/{logID}", ctrl.Logs.Show)

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(authmiddleware.RequireAuth)
		r.Use(authmiddleware.AuditLogger(log.New(os.Stderr, "", log.LstdFlags)))

		r.Post("/team", ctrl.Team.Create)
		r.Post("/team/{id}", ctrl.Team.Update)
		r.Post("/team/{id}/delete", ctrl.Team.Delete)
		r.Post("/team/{id}/activate", ctrl.Team.Activate)
		r.Post("/team/{id}/deactivate", ctrl.Team.Deactivate)

		r.Post("/logs/{host}/{id}", ctrl.Logs.Create)
	})

	return r, nil
}
