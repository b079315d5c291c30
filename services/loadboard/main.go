// Copyright (C) 2026 Acme Logistics (engineering@acmelogistics.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AcmeLogistics/loadboard/services/loadboard/callstore"
	"github.com/AcmeLogistics/loadboard/services/loadboard/catalog"
	"github.com/AcmeLogistics/loadboard/services/loadboard/config"
	"github.com/AcmeLogistics/loadboard/services/loadboard/fmcsa"
	"github.com/AcmeLogistics/loadboard/services/loadboard/handlers"
	"github.com/AcmeLogistics/loadboard/services/loadboard/observability"
	"github.com/AcmeLogistics/loadboard/services/loadboard/routes"
	"github.com/AcmeLogistics/loadboard/services/loadboard/search"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func initTracer(ctx context.Context, endpoint string) (func(context.Context), error) {
	conn, err := grpc.NewClient(endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("loadboard-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.APIKey == "" {
		slog.Warn("INTERNAL_API_KEY is not set; all API requests will be rejected")
	}

	ctx := context.Background()

	// Tracing is opt-in: no endpoint, no tracer.
	if cfg.OTLPEndpoint != "" {
		cleanup, err := initTracer(ctx, cfg.OTLPEndpoint)
		if err != nil {
			log.Fatalf("failed to setup the OTLP tracer: %v", err)
		}
		defer cleanup(ctx)
	}

	cat, err := catalog.Load(cfg.CSVPath)
	if err != nil {
		log.Fatalf("Failed to load the load board CSV: %v", err)
	}
	slog.Info("Load board catalog loaded", "path", cat.Path(), "loads", cat.Len())
	go func() {
		if err := cat.Watch(ctx); err != nil {
			slog.Warn("Catalog file watcher stopped", "error", err)
		}
	}()

	var store callstore.Store
	switch cfg.CallStore.Backend {
	case "badger":
		badgerStore, err := callstore.OpenBadger(cfg.CallStore.Path, logger)
		if err != nil {
			log.Fatalf("Failed to open the badger call store: %v", err)
		}
		store = badgerStore
		slog.Info("Using badger call store", "path", cfg.CallStore.Path)
	default:
		store = callstore.NewMemoryStore()
		slog.Info("Using in-memory call store")
	}
	defer store.Close()

	var carrierClient handlers.CarrierValidator
	if cfg.FMCSAAPIKey != "" {
		carrierClient = fmcsa.NewClient(cfg.FMCSAAPIKey)
	} else {
		slog.Warn("FMCSA_API_KEY is not set; carrier validation is disabled")
	}

	var sink observability.CallOutcomeSink
	if cfg.Influx.URL != "" {
		influx := observability.NewInfluxSink(observability.InfluxConfig{
			URL:    cfg.Influx.URL,
			Token:  cfg.Influx.Token,
			Org:    cfg.Influx.Org,
			Bucket: cfg.Influx.Bucket,
		})
		defer influx.Close()
		sink = influx
		slog.Info("Recording call outcomes to InfluxDB", "url", cfg.Influx.URL)
	}

	metrics := observability.InitMetrics()

	router := gin.Default()
	if cfg.OTLPEndpoint != "" {
		router.Use(otelgin.Middleware("loadboard-service"))
	}
	routes.SetupRoutes(router, routes.Deps{
		Search:         search.NewEngine(cat.Loads()),
		Store:          store,
		Feed:           callstore.NewFeed(),
		FMCSA:          carrierClient,
		Sink:           sink,
		Metrics:        metrics,
		APIKey:         cfg.APIKey,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", promhttp.Handler())

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Starting the loadboard API", "port", cfg.Port)
		return router.Run(":" + cfg.Port)
	})
	g.Go(func() error {
		slog.Info("Serving Prometheus metrics", "port", cfg.MetricsPort)
		return http.ListenAndServe(":"+cfg.MetricsPort, metricsMux)
	})
	if err := g.Wait(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
