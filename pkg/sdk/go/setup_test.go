// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"net/http/httptest"
	"testing"

	"github.com/ashr123/warmest-data/internal/testsutil"
	"github.com/ashr123/warmest-data/logger"
	sdk "github.com/ashr123/warmest-data/pkg/sdk/go"
	"github.com/ashr123/warmest-data/warmest"
	"github.com/ashr123/warmest-data/warmest/api"
	"github.com/ashr123/warmest-data/warmest/memory"
)

var instanceID = testsutil.GenerateUUID(&testing.T{})

func newServer() *httptest.Server {
	svc := warmest.NewService(memory.New())
	return httptest.NewServer(api.MakeHandler(svc, logger.NewMock(), instanceID))
}

func newSDK(t *testing.T) sdk.SDK {
	ts := newServer()
	t.Cleanup(ts.Close)

	return sdk.NewSDK(sdk.Config{
		URL:             ts.URL,
		TLSVerification: false,
	})
}
