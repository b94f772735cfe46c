// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	warmestdata "github.com/ashr123/warmest-data"
	"github.com/ashr123/warmest-data/internal/api"
	"github.com/ashr123/warmest-data/pkg/apiutil"
	"github.com/ashr123/warmest-data/pkg/errors"
	"github.com/ashr123/warmest-data/warmest"
	"github.com/go-chi/chi/v5"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	svcName  = "warmest-data"
	keyParam = "key"
)

// MakeHandler returns a HTTP handler for API endpoints.
func MakeHandler(svc warmest.Service, logger *slog.Logger, instanceID string) http.Handler {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(apiutil.LoggingErrorEncoder(logger, api.EncodeError)),
	}

	mux := chi.NewRouter()

	mux.Delete("/data", otelhttp.NewHandler(kithttp.NewServer(
		clearEndpoint(svc),
		decodeEmpty,
		api.EncodeResponse,
		opts...,
	), "clear").ServeHTTP)

	put := otelhttp.NewHandler(kithttp.NewServer(
		putEndpoint(svc),
		decodePut,
		api.EncodeResponse,
		opts...,
	), "put").ServeHTTP
	get := otelhttp.NewHandler(kithttp.NewServer(
		getEndpoint(svc),
		decodeKey,
		api.EncodeResponse,
		opts...,
	), "get").ServeHTTP
	remove := otelhttp.NewHandler(kithttp.NewServer(
		removeEndpoint(svc),
		decodeKey,
		api.EncodeResponse,
		opts...,
	), "remove").ServeHTTP

	// "/data/" carries an empty key and must fail validation, never reach clear.
	for _, pattern := range []string{"/data/", "/data/{" + keyParam + "}"} {
		mux.Put(pattern, put)
		mux.Get(pattern, get)
		mux.Delete(pattern, remove)
	}

	mux.Get("/warmest", otelhttp.NewHandler(kithttp.NewServer(
		warmestEndpoint(svc),
		decodeEmpty,
		api.EncodeResponse,
		opts...,
	), "warmest").ServeHTTP)

	mux.Get("/health", warmestdata.Health(svcName, instanceID))
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func decodePut(_ context.Context, r *http.Request) (interface{}, error) {
	if !strings.Contains(r.Header.Get("Content-Type"), api.ContentType) {
		return nil, errors.Wrap(apiutil.ErrValidation, apiutil.ErrUnsupportedContentType)
	}

	key, err := readKey(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(errors.ErrMalformedEntity, err))
	}

	req := putReq{key: key}
	if err := json.Unmarshal(body, &req.value); err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, errors.Wrap(apiutil.ErrInvalidValue, err))
	}

	return req, nil
}

func decodeKey(_ context.Context, r *http.Request) (interface{}, error) {
	key, err := readKey(r)
	if err != nil {
		return nil, errors.Wrap(apiutil.ErrValidation, err)
	}

	return keyReq{key: key}, nil
}

func decodeEmpty(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}

// readKey returns the decoded key. Chi matches on the raw path when the
// request carries escaped separators, so the parameter is still encoded then.
func readKey(r *http.Request) (string, error) {
	key := chi.URLParam(r, keyParam)
	if r.URL.RawPath == "" {
		return key, nil
	}

	key, err := url.PathUnescape(key)
	if err != nil {
		return "", errors.Wrap(apiutil.ErrMissingKey, err)
	}

	return key, nil
}
