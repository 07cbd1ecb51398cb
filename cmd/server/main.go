// Command server exposes the conjugation engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/conjugate?root=<root>&stem=<n>[&context=<ctx>][&dialect=<id>]&q=<query>
//	GET  /api/table?root=<root>&stem=<n>[&context=<ctx>][&dialect=<id>]
//	GET  /api/participle?root=<root>&stem=<n>[&context=<ctx>][&dialect=<id>][&voice=passive]
//	GET  /api/verbal-nouns?root=<root>&stem=<n>[&context=<ctx>][&dialect=<id>]
//	GET  /api/dialects
//	GET  /api/catalog
//	GET  /metrics
//
// The query of /api/conjugate is either q in the compact notation
// ("jussive passive 3fs") or the separate tense, mood, voice, person,
// gender and numerus parameters.
package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/openarabic/conjugation"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	addr := flag.String("addr", "", "listen address (overrides the config)")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides the config)")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		loaded, err := LoadConfig(*configPath)
		if err != nil {
			slog.Error("Failed to load config", slog.String("path", *configPath), slog.Any("error", err))
			os.Exit(1)
		}
		cfg = loaded
	}
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	start := time.Now()
	conj := conjugation.New()
	if _, err := conjugation.Catalog(); err != nil {
		logger.Error("Failed to load catalog", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Rule tables built", slog.Duration("took", time.Since(start)))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(cfg, conj, logger, reg),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}
	logger.Info("Listening", slog.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", slog.Any("error", err))
		os.Exit(1)
	}
}
