// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package tracing_test

import (
	"context"
	"testing"

	"github.com/ashr123/warmest-data/internal/testsutil"
	"github.com/ashr123/warmest-data/pkg/errors"
	"github.com/ashr123/warmest-data/warmest/mocks"
	"github.com/ashr123/warmest-data/warmest/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var mockCtx = mock.Anything

func TestSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	repo := new(mocks.Repository)
	trepo := tracing.New(repo, tp.Tracer("warmest"))
	ctx := context.Background()
	errBackend := errors.New("backend unavailable")

	repo.On("Put", mockCtx, "a", 100).Return(nil, nil)
	repo.On("Get", mockCtx, "a").Return(testsutil.IntPtr(100), nil)
	repo.On("Remove", mockCtx, "a").Return(nil, errBackend)
	repo.On("Warmest", mockCtx).Return(testsutil.StringPtr("a"), nil)
	repo.On("Len", mockCtx).Return(1, nil)
	repo.On("Clear", mockCtx).Return(nil)

	_, err := trepo.Put(ctx, "a", 100)
	require.Nil(t, err)
	_, err = trepo.Get(ctx, "a")
	require.Nil(t, err)
	_, err = trepo.Remove(ctx, "a")
	require.NotNil(t, err)
	_, err = trepo.Warmest(ctx)
	require.Nil(t, err)
	_, err = trepo.Len(ctx)
	require.Nil(t, err)
	require.Nil(t, trepo.Clear(ctx))

	spans := recorder.Ended()
	require.Len(t, spans, 6)

	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name()
	}
	assert.Equal(t, []string{"put_op", "get_op", "remove_op", "warmest_op", "len_op", "clear_op"}, names)

	assert.Contains(t, spans[0].Attributes(), attribute.String("key", "a"))
	assert.Contains(t, spans[0].Attributes(), attribute.Int("value", 100))
	assert.Contains(t, spans[1].Attributes(), attribute.Bool("found", true))
	assert.Equal(t, codes.Error, spans[2].Status().Code)
	assert.Equal(t, codes.Unset, spans[3].Status().Code)
}
