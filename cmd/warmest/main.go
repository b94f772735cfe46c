// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains warmest-data main function to start the service.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"time"

	"github.com/ashr123/warmest-data/internal"
	"github.com/ashr123/warmest-data/internal/clients/jaeger"
	redisclient "github.com/ashr123/warmest-data/internal/clients/redis"
	"github.com/ashr123/warmest-data/internal/env"
	"github.com/ashr123/warmest-data/internal/server"
	httpserver "github.com/ashr123/warmest-data/internal/server/http"
	wdlog "github.com/ashr123/warmest-data/logger"
	pkgevents "github.com/ashr123/warmest-data/pkg/events"
	"github.com/ashr123/warmest-data/pkg/uuid"
	"github.com/ashr123/warmest-data/warmest"
	"github.com/ashr123/warmest-data/warmest/api"
	"github.com/ashr123/warmest-data/warmest/events"
	"github.com/ashr123/warmest-data/warmest/memory"
	"github.com/ashr123/warmest-data/warmest/redis"
	"github.com/ashr123/warmest-data/warmest/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

const (
	svcName        = "warmest-data"
	envPrefixHTTP  = "WD_HTTP_"
	defSvcHTTPPort = "8080"

	memoryBackend = "memory"
	redisBackend  = "redis"
)

type config struct {
	LogLevel       string        `env:"WD_LOG_LEVEL"          envDefault:"info"`
	Backend        string        `env:"WD_BACKEND"            envDefault:"memory"`
	RedisURL       string        `env:"WD_REDIS_URL"          envDefault:"redis://localhost:6379/0"`
	RedisKeyPrefix string        `env:"WD_REDIS_KEY_PREFIX"   envDefault:"warmest"`
	RedisWait      time.Duration `env:"WD_REDIS_WAIT"         envDefault:"30s"`
	ESURL          string        `env:"WD_ES_URL"             envDefault:""`
	ESStream       string        `env:"WD_ES_STREAM"          envDefault:"warmestdata.events"`
	JaegerURL      url.URL       `env:"WD_JAEGER_URL"         envDefault:""`
	TraceRatio     float64       `env:"WD_JAEGER_TRACE_RATIO" envDefault:"1.0"`
	InstanceID     string        `env:"WD_INSTANCE_ID"        envDefault:""`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)

	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	logger, err := wdlog.New(os.Stdout, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer wdlog.ExitWithError(&exitCode)

	if cfg.InstanceID == "" {
		if cfg.InstanceID, err = uuid.New().ID(); err != nil {
			logger.Error(fmt.Sprintf("failed to generate instanceID: %s", err))
			exitCode = 1
			return
		}
	}

	repo, closeRepo, err := newRepository(cfg, logger)
	if err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}
	defer closeRepo()

	tp := jaeger.NewNoopProvider()
	if cfg.JaegerURL != (url.URL{}) {
		sdkTP, err := jaeger.NewProvider(ctx, svcName, cfg.JaegerURL, cfg.InstanceID, cfg.TraceRatio)
		if err != nil {
			logger.Error(fmt.Sprintf("failed to init Jaeger: %s", err))
			exitCode = 1
			return
		}
		defer func() {
			if err := sdkTP.Shutdown(context.Background()); err != nil {
				logger.Error(fmt.Sprintf("error shutting down tracer provider: %v", err))
			}
		}()
		tp = sdkTP
	}
	tracer := tp.Tracer(svcName)

	svc, closeSvc, err := newService(ctx, repo, tracer, cfg, logger)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create %s service: %s", svcName, err))
		exitCode = 1
		return
	}
	defer closeSvc()

	httpServerConfig := server.Config{Port: defSvcHTTPPort}
	if err := env.Parse(&httpServerConfig, env.Options{Prefix: envPrefixHTTP}); err != nil {
		logger.Error(fmt.Sprintf("failed to load %s HTTP server configuration : %s", svcName, err))
		exitCode = 1
		return
	}

	httpSvr := httpserver.New(ctx, cancel, svcName, httpServerConfig, api.MakeHandler(svc, logger, cfg.InstanceID), logger)

	g.Go(func() error {
		return httpSvr.Start()
	})

	g.Go(func() error {
		return server.StopSignalHandler(ctx, cancel, logger, svcName, httpSvr)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("%s service terminated: %s", svcName, err))
	}
}

func newRepository(cfg config, logger *slog.Logger) (warmest.Repository, func(), error) {
	switch cfg.Backend {
	case memoryBackend:
		logger.Info("Using in-memory data structure")
		return memory.New(), func() {}, nil
	case redisBackend:
		notify := func(err error, next time.Duration) {
			logger.Info(fmt.Sprintf("Redis not ready: %s, next try in %s", err, next))
		}
		client, err := redisclient.ConnectWithRetry(cfg.RedisURL, cfg.RedisWait, notify)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		logger.Info(fmt.Sprintf("Using redis data structure with key prefix %q", cfg.RedisKeyPrefix))
		closeFn := func() {
			if err := client.Close(); err != nil {
				logger.Error(fmt.Sprintf("failed to close redis client: %s", err))
			}
		}
		return redis.New(client, cfg.RedisKeyPrefix), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q, expected %s or %s", cfg.Backend, memoryBackend, redisBackend)
	}
}

func newService(ctx context.Context, repo warmest.Repository, tracer trace.Tracer, cfg config, logger *slog.Logger) (warmest.Service, func(), error) {
	repo = tracing.New(repo, tracer)
	prometheus.MustRegister(api.SizeGauge("warmest", repo))

	svc := warmest.NewService(repo)
	closeFn := func() {}

	if cfg.ESURL != "" {
		var publisher pkgevents.Publisher
		var err error
		svc, publisher, err = events.NewEventStoreMiddleware(ctx, svc, cfg.ESURL, cfg.ESStream)
		if err != nil {
			return nil, nil, err
		}
		closeFn = func() {
			if err := publisher.Close(); err != nil {
				logger.Error(fmt.Sprintf("failed to close event publisher: %s", err))
			}
		}
		logger.Info(fmt.Sprintf("Publishing events to stream %s", cfg.ESStream))
	}

	svc = api.LoggingMiddleware(svc, logger)
	counter, latency := internal.MakeMetrics("warmest", "api")
	svc = api.MetricsMiddleware(svc, counter, latency)

	return svc, closeFn, nil
}
