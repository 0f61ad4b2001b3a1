package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/reboundcg/lead-portal/internal/config"
	"github.com/reboundcg/lead-portal/internal/infra/database"
	"github.com/reboundcg/lead-portal/internal/infra/http/handlers"
	"github.com/reboundcg/lead-portal/internal/infra/http/middleware"
	"github.com/reboundcg/lead-portal/internal/infra/mail"
	"github.com/reboundcg/lead-portal/internal/infra/queue"
	"github.com/reboundcg/lead-portal/internal/logging"
	"github.com/reboundcg/lead-portal/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	log := logging.New(cfg.Logging)

	db, err := database.NewDBConnection(cfg.Database.URL)
	if err != nil {
		log.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
		log.Error("migrations failed", "err", err)
		os.Exit(1)
	}
	if version, dirty, err := database.MigrationVersion(cfg.Database.URL, cfg.Database.MigrationsPath); err == nil {
		log.Info("schema ready", "version", version, "dirty", dirty)
	}

	// The queue is advisory. A down broker means no skip-trace notices, not
	// a down portal.
	var producer usecase.QueueProducerInterface
	rabbitMQ, err := queue.NewRabbitMQ(cfg.Queue.User, cfg.Queue.Pass, cfg.Queue.Host, cfg.Queue.Port)
	if err != nil {
		log.Error("rabbitmq unavailable, skip-trace notices disabled", "err", err)
		rabbitMQ = nil
	} else {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()
		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	}

	leadRepo := database.NewLeadRepository(db)
	contactRepo := database.NewContactRepository(db)
	noteRepo := database.NewNoteRepository(db)
	userRepo := database.NewUserRepository(db)

	if rabbitMQ != nil && cfg.Mail.Host != "" && cfg.Mail.NotifyTo != "" {
		sender := mail.NewEmailSender(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.User, cfg.Mail.Password, cfg.Mail.From)
		worker := queue.NewWorker(rabbitMQ.Ch, sender, cfg.Mail.NotifyTo, log)
		go worker.Start(queue.QueueName)
	}

	saveSkipTraceUC := usecase.NewSaveSkipTraceUseCase(leadRepo, contactRepo, producer, log)
	noteUC := usecase.NewNoteUseCase(noteRepo, log)
	leadOpsUC := usecase.NewLeadOpsUseCase(leadRepo, log)
	transferUC := usecase.NewTransferUseCase(leadRepo)

	portfolioHandler := handlers.NewPortfolioHandler(leadRepo, userRepo, log)
	leadHandler := handlers.NewLeadHandler(leadRepo, contactRepo, noteUC, leadOpsUC, log)
	skipTraceHandler := handlers.NewSkipTraceHandler(saveSkipTraceUC)
	noteHandler := handlers.NewNoteHandler(noteUC)
	transferHandler := handlers.NewTransferHandler(leadRepo, transferUC, log)

	healthHandler := handlers.NewHealthHandler(db, nil)
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: strings.Split(cfg.HTTP.AllowedOriginsCSV, ","),
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.OperatorHeader},
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Operator(userRepo))

		r.Get("/portfolio", portfolioHandler.GetPortfolio)
		r.Get("/leads", portfolioHandler.ListLeads)
		r.Get("/leads/{id}", leadHandler.GetLead)
		r.Patch("/leads/{id}/status", leadHandler.UpdateStatus)
		r.Patch("/leads/{id}/assignee", leadHandler.Assign)
		r.Delete("/leads/{id}", leadHandler.Delete)
		r.Post("/leads/bulk/assign", leadHandler.BulkAssign)
		r.Post("/leads/bulk/delete", leadHandler.BulkDelete)

		r.Post("/leads/{id}/skiptrace", skipTraceHandler.Save)

		r.Get("/leads/{id}/notes", noteHandler.List)
		r.Post("/leads/{id}/notes", noteHandler.Create)
		r.Put("/notes/{id}", noteHandler.Update)
		r.Delete("/notes/{id}", noteHandler.Delete)

		r.Get("/export", transferHandler.Export)
		r.Post("/import", transferHandler.Import)
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	log.Info("lead portal listening", "addr", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
