// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"math"
	"time"

	"github.com/ashr123/warmest-data/warmest"
	"github.com/go-kit/kit/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

const sizeTimeout = time.Second

var _ warmest.Service = (*metricsMiddleware)(nil)

type metricsMiddleware struct {
	counter metrics.Counter
	latency metrics.Histogram
	svc     warmest.Service
}

// MetricsMiddleware instruments warmest data service by tracking request count and latency.
func MetricsMiddleware(svc warmest.Service, counter metrics.Counter, latency metrics.Histogram) warmest.Service {
	return &metricsMiddleware{
		counter: counter,
		latency: latency,
		svc:     svc,
	}
}

// Put instruments Put method with metrics.
func (ms *metricsMiddleware) Put(ctx context.Context, key string, value int) (*int, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "put").Add(1)
		ms.latency.With("method", "put").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Put(ctx, key, value)
}

// Get instruments Get method with metrics.
func (ms *metricsMiddleware) Get(ctx context.Context, key string) (int, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "get").Add(1)
		ms.latency.With("method", "get").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Get(ctx, key)
}

// Remove instruments Remove method with metrics.
func (ms *metricsMiddleware) Remove(ctx context.Context, key string) (*int, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "remove").Add(1)
		ms.latency.With("method", "remove").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Remove(ctx, key)
}

// Warmest instruments Warmest method with metrics.
func (ms *metricsMiddleware) Warmest(ctx context.Context) (*string, error) {
	defer func(begin time.Time) {
		ms.counter.With("method", "warmest").Add(1)
		ms.latency.With("method", "warmest").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Warmest(ctx)
}

// Clear instruments Clear method with metrics.
func (ms *metricsMiddleware) Clear(ctx context.Context) error {
	defer func(begin time.Time) {
		ms.counter.With("method", "clear").Add(1)
		ms.latency.With("method", "clear").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return ms.svc.Clear(ctx)
}

// SizeGauge returns a gauge reporting the number of stored keys on every
// scrape. A failed lookup is reported as NaN.
func SizeGauge(namespace string, repo warmest.Repository) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "data",
		Name:      "keys",
		Help:      "Number of stored keys.",
	}, func() float64 {
		ctx, cancel := context.WithTimeout(context.Background(), sizeTimeout)
		defer cancel()
		n, err := repo.Len(ctx)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	})
}
