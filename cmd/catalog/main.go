package main

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"OnlineStore/internal/catalog"
	"OnlineStore/internal/config"
	"OnlineStore/pkg/kit"
)

func main() {
	service := "catalog"

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := kit.NewLogger(service, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	store := catalog.NewMemStore()
	if cfg.Seed {
		store = catalog.NewStore()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &catalog.Server{Store: store, Log: logger}
	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            logger,
		Service:        service,
		APIPrefix:      cfg.APIPrefix,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	logger.Info("catalog ready",
		zap.Int("products", store.Len()),
		zap.String("api_prefix", cfg.APIPrefix),
	)

	err = kit.RunHTTPServer(kit.ServerConfig{
		Addr:              cfg.Addr(),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.ShutdownTimeout,
	}, h, logger)
	if err != nil {
		logger.Fatal("http server stopped", zap.Error(err))
	}
}
