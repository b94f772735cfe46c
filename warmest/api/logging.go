// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"log/slog"
	"time"

	"github.com/ashr123/warmest-data/warmest"
)

var _ warmest.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger *slog.Logger
	svc    warmest.Service
}

// LoggingMiddleware adds logging facilities to the warmest data service.
func LoggingMiddleware(svc warmest.Service, logger *slog.Logger) warmest.Service {
	return &loggingMiddleware{logger, svc}
}

// Put logs the put request. It logs the key, whether a previous value was
// replaced and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) Put(ctx context.Context, key string, value int) (prev *int, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("key", key),
			slog.Int("value", value),
			slog.Bool("replaced", prev != nil),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Put value failed", args...)
			return
		}
		lm.logger.Info("Put value completed successfully", args...)
	}(time.Now())

	return lm.svc.Put(ctx, key, value)
}

// Get logs the get request. It logs the key and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) Get(ctx context.Context, key string) (val int, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("key", key),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Get value failed", args...)
			return
		}
		lm.logger.Info("Get value completed successfully", args...)
	}(time.Now())

	return lm.svc.Get(ctx, key)
}

// Remove logs the remove request. It logs the key and the time it took to complete the request.
// If the request fails, it logs the error.
func (lm *loggingMiddleware) Remove(ctx context.Context, key string) (prev *int, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.String("key", key),
			slog.Bool("found", prev != nil),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Remove value failed", args...)
			return
		}
		lm.logger.Info("Remove value completed successfully", args...)
	}(time.Now())

	return lm.svc.Remove(ctx, key)
}

func (lm *loggingMiddleware) Warmest(ctx context.Context) (key *string, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if key != nil {
			args = append(args, slog.String("key", *key))
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Get warmest key failed", args...)
			return
		}
		lm.logger.Info("Get warmest key completed successfully", args...)
	}(time.Now())

	return lm.svc.Warmest(ctx)
}

func (lm *loggingMiddleware) Clear(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Clear data failed", args...)
			return
		}
		lm.logger.Info("Clear data completed successfully", args...)
	}(time.Now())

	return lm.svc.Clear(ctx)
}
