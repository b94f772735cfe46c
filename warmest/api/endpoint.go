// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"

	"github.com/ashr123/warmest-data/pkg/apiutil"
	"github.com/ashr123/warmest-data/pkg/errors"
	"github.com/ashr123/warmest-data/warmest"
	"github.com/go-kit/kit/endpoint"
)

func putEndpoint(svc warmest.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(putReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		prev, err := svc.Put(ctx, req.key, *req.value)
		if err != nil {
			return nil, err
		}

		return valueRes{value: prev}, nil
	}
}

func getEndpoint(svc warmest.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(keyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		val, err := svc.Get(ctx, req.key)
		if err != nil {
			return nil, err
		}

		return valueRes{value: &val}, nil
	}
}

func removeEndpoint(svc warmest.Service) endpoint.Endpoint {
	return func(ctx context.Context, request interface{}) (interface{}, error) {
		req := request.(keyReq)
		if err := req.validate(); err != nil {
			return nil, errors.Wrap(apiutil.ErrValidation, err)
		}

		prev, err := svc.Remove(ctx, req.key)
		if err != nil {
			return nil, err
		}

		return valueRes{value: prev}, nil
	}
}

func warmestEndpoint(svc warmest.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		key, err := svc.Warmest(ctx)
		if err != nil {
			return nil, err
		}

		return warmestRes{key: key}, nil
	}
}

func clearEndpoint(svc warmest.Service) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := svc.Clear(ctx); err != nil {
			return nil, err
		}

		return clearRes{}, nil
	}
}
