package main

import (
	"context"
	"errors"
	"hos-recap-service/internal/adapters/publisher"
	"hos-recap-service/internal/adapters/repositories"
	"hos-recap-service/internal/api"
	"hos-recap-service/internal/config"
	"hos-recap-service/internal/platform/db"
	"hos-recap-service/internal/platform/metrics"
	"hos-recap-service/internal/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, NATS, Prometheus) behind ports and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sqlDB, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer sqlDB.Close()

	if err := repositories.InitSchema(ctx, sqlDB); err != nil {
		log.Fatal(err)
	}
	repo := repositories.NewPostgresTripRepository(sqlDB)

	collector := metrics.NewCollector()
	if cfg.MetricsAddr != "" {
		msrv := collector.Serve(cfg.MetricsAddr)
		defer shutdown(msrv)
	}

	builder := &services.SheetBuilder{Metrics: collector}

	// Sheet publication is optional; without NATS_URL sheets are only served over HTTP.
	if cfg.NATSURL != "" {
		pub, err := publisher.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubjectPrefix, cfg.LogNATSSubjects, collector)
		if err != nil {
			log.Fatal(err)
		}
		defer pub.Close()
		builder.Publisher = pub
		log.Printf("nats publisher ready url=%s prefix=%s", cfg.NATSURL, cfg.NATSSubjectPrefix)
	}

	router := api.NewRouter(repo, repo, builder)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server listening addr=:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdown(srv)
}

func shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown addr=%s err=%v", srv.Addr, err)
	}
}
