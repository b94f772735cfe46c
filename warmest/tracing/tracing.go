// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package tracing contains middlewares that will add spans
// to existing traces.
package tracing

import (
	"context"

	"github.com/ashr123/warmest-data/warmest"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	putOp     = "put_op"
	getOp     = "get_op"
	removeOp  = "remove_op"
	warmestOp = "warmest_op"
	lenOp     = "len_op"
	clearOp   = "clear_op"
)

var _ warmest.Repository = (*repositoryMiddleware)(nil)

type repositoryMiddleware struct {
	tracer trace.Tracer
	repo   warmest.Repository
}

// New returns a repository that adds a span to the context of every call.
func New(repo warmest.Repository, tracer trace.Tracer) warmest.Repository {
	return &repositoryMiddleware{
		tracer: tracer,
		repo:   repo,
	}
}

func (rm *repositoryMiddleware) Put(ctx context.Context, key string, value int) (*int, error) {
	ctx, span := createSpan(ctx, rm.tracer, putOp, attribute.String("key", key), attribute.Int("value", value))
	defer span.End()

	prev, err := rm.repo.Put(ctx, key, value)
	recordError(span, err)

	return prev, err
}

func (rm *repositoryMiddleware) Get(ctx context.Context, key string) (*int, error) {
	ctx, span := createSpan(ctx, rm.tracer, getOp, attribute.String("key", key))
	defer span.End()

	val, err := rm.repo.Get(ctx, key)
	span.SetAttributes(attribute.Bool("found", val != nil))
	recordError(span, err)

	return val, err
}

func (rm *repositoryMiddleware) Remove(ctx context.Context, key string) (*int, error) {
	ctx, span := createSpan(ctx, rm.tracer, removeOp, attribute.String("key", key))
	defer span.End()

	prev, err := rm.repo.Remove(ctx, key)
	span.SetAttributes(attribute.Bool("found", prev != nil))
	recordError(span, err)

	return prev, err
}

func (rm *repositoryMiddleware) Warmest(ctx context.Context) (*string, error) {
	ctx, span := createSpan(ctx, rm.tracer, warmestOp)
	defer span.End()

	key, err := rm.repo.Warmest(ctx)
	recordError(span, err)

	return key, err
}

func (rm *repositoryMiddleware) Len(ctx context.Context) (int, error) {
	ctx, span := createSpan(ctx, rm.tracer, lenOp)
	defer span.End()

	n, err := rm.repo.Len(ctx)
	recordError(span, err)

	return n, err
}

func (rm *repositoryMiddleware) Clear(ctx context.Context) error {
	ctx, span := createSpan(ctx, rm.tracer, clearOp)
	defer span.End()

	err := rm.repo.Clear(ctx)
	recordError(span, err)

	return err
}

func createSpan(ctx context.Context, tracer trace.Tracer, opName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, opName, trace.WithAttributes(attrs...), trace.WithSpanKind(trace.SpanKindClient))
}

func recordError(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
