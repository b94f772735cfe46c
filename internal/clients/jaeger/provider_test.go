// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package jaeger_test

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/ashr123/warmest-data/internal/clients/jaeger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	cases := []struct {
		desc    string
		svcName string
		url     url.URL
		err     bool
	}{
		{
			desc:    "empty url",
			svcName: "warmest-data",
			url:     url.URL{},
			err:     true,
		},
		{
			desc:    "empty service name",
			svcName: "",
			url:     url.URL{Scheme: "http", Host: "localhost:4318", Path: "/v1/traces"},
			err:     true,
		},
		{
			desc:    "unsupported scheme",
			svcName: "warmest-data",
			url:     url.URL{Scheme: "udp", Host: "localhost:6831"},
			err:     true,
		},
		{
			desc:    "valid http url",
			svcName: "warmest-data",
			url:     url.URL{Scheme: "http", Host: "localhost:4318", Path: "/v1/traces"},
			err:     false,
		},
	}

	for _, tc := range cases {
		tp, err := jaeger.NewProvider(context.Background(), tc.svcName, tc.url, "instance", 1.0)
		if tc.err {
			assert.NotNil(t, err, fmt.Sprintf("%s: expected error", tc.desc))
			continue
		}
		require.Nil(t, err, fmt.Sprintf("%s: unexpected error %s", tc.desc, err))
		assert.NotNil(t, tp.Tracer("test"), tc.desc)
		_ = tp.Shutdown(context.Background())
	}
}

func TestNewNoopProvider(t *testing.T) {
	tp := jaeger.NewNoopProvider()
	_, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	assert.False(t, span.SpanContext().IsValid())
}
