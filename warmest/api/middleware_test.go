// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/ashr123/warmest-data/internal/testsutil"
	"github.com/ashr123/warmest-data/logger"
	"github.com/ashr123/warmest-data/warmest/api"
	"github.com/ashr123/warmest-data/warmest/memory"
	"github.com/ashr123/warmest-data/warmest/mocks"
	"github.com/go-kit/kit/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recorder implements both metrics.Counter and metrics.Histogram and keeps
// one count per "method" label value.
type recorder struct {
	mu     *sync.Mutex
	method string
	counts map[string]int
}

func newRecorder() *recorder {
	return &recorder{mu: &sync.Mutex{}, counts: map[string]int{}}
}

func (r *recorder) with(labelValues ...string) *recorder {
	method := r.method
	for i := 0; i+1 < len(labelValues); i += 2 {
		if labelValues[i] == "method" {
			method = labelValues[i+1]
		}
	}
	return &recorder{mu: r.mu, method: method, counts: r.counts}
}

func (r *recorder) record() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[r.method]++
}

type counter struct{ *recorder }

func (c counter) With(labelValues ...string) metrics.Counter {
	return counter{c.with(labelValues...)}
}

func (c counter) Add(float64) {
	c.record()
}

type histogram struct{ *recorder }

func (h histogram) With(labelValues ...string) metrics.Histogram {
	return histogram{h.with(labelValues...)}
}

func (h histogram) Observe(float64) {
	h.record()
}

func TestMetricsMiddleware(t *testing.T) {
	svc := new(mocks.Service)
	c, l := newRecorder(), newRecorder()
	msvc := api.MetricsMiddleware(svc, counter{c}, histogram{l})
	ctx := context.Background()

	svc.On("Put", mock.Anything, "a", 1).Return(nil, nil)
	svc.On("Get", mock.Anything, "a").Return(1, nil)
	svc.On("Remove", mock.Anything, "a").Return(testsutil.IntPtr(1), nil)
	svc.On("Warmest", mock.Anything).Return(nil, nil)
	svc.On("Clear", mock.Anything).Return(nil)

	_, _ = msvc.Put(ctx, "a", 1)
	_, _ = msvc.Put(ctx, "a", 1)
	_, _ = msvc.Get(ctx, "a")
	_, _ = msvc.Remove(ctx, "a")
	_, _ = msvc.Warmest(ctx)
	_ = msvc.Clear(ctx)

	want := map[string]int{"put": 2, "get": 1, "remove": 1, "warmest": 1, "clear": 1}
	assert.Equal(t, want, c.counts)
	assert.Equal(t, want, l.counts)
}

func TestLoggingMiddleware(t *testing.T) {
	svc := new(mocks.Service)
	var buf bytes.Buffer
	log, err := logger.New(&buf, "info")
	require.Nil(t, err)
	lsvc := api.LoggingMiddleware(svc, log)
	ctx := context.Background()

	svc.On("Put", mock.Anything, "a", 1).Return(testsutil.IntPtr(0), nil)
	svc.On("Get", mock.Anything, "a").Return(0, errBackend)

	_, err = lsvc.Put(ctx, "a", 1)
	require.Nil(t, err)
	_, err = lsvc.Get(ctx, "a")
	require.NotNil(t, err)

	dec := json.NewDecoder(&buf)
	var entries []map[string]interface{}
	for dec.More() {
		var entry map[string]interface{}
		require.Nil(t, dec.Decode(&entry))
		entries = append(entries, entry)
	}
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Put value completed successfully", entries[0]["msg"])
	assert.Equal(t, "a", entries[0]["key"])
	assert.Equal(t, true, entries[0]["replaced"])
	assert.NotEmpty(t, entries[0]["duration"])

	assert.Equal(t, "WARN", entries[1]["level"])
	assert.Equal(t, "Get value failed", entries[1]["msg"])
	assert.Contains(t, fmt.Sprint(entries[1]["error"]), errBackend.Error())
}

func TestSizeGauge(t *testing.T) {
	ctx := context.Background()
	repo := memory.New()
	gauge := api.SizeGauge("test", repo)
	assert.Equal(t, float64(0), testutil.ToFloat64(gauge))

	for _, key := range []string{"a", "b", "c"} {
		_, err := repo.Put(ctx, key, 1)
		require.Nil(t, err)
	}
	assert.Equal(t, float64(3), testutil.ToFloat64(gauge))

	_, err := repo.Remove(ctx, "a")
	require.Nil(t, err)
	assert.Equal(t, float64(2), testutil.ToFloat64(gauge))

	failing := new(mocks.Repository)
	failing.On("Len", mock.Anything).Return(0, errBackend)
	assert.True(t, math.IsNaN(testutil.ToFloat64(api.SizeGauge("test", failing))))
}
