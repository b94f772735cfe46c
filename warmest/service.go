// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package warmest

import (
	"context"

	"github.com/ashr123/warmest-data/pkg/errors"
)

var _ Service = (*service)(nil)

type service struct {
	repo Repository
}

// NewService returns a new warmest data service.
func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (svc *service) Put(ctx context.Context, key string, value int) (*int, error) {
	if key == "" {
		return nil, errors.ErrMalformedEntity
	}

	prev, err := svc.repo.Put(ctx, key, value)
	if err != nil {
		return nil, errors.Wrap(ErrPut, err)
	}

	return prev, nil
}

func (svc *service) Get(ctx context.Context, key string) (int, error) {
	if key == "" {
		return 0, errors.ErrMalformedEntity
	}

	val, err := svc.repo.Get(ctx, key)
	if err != nil {
		return 0, errors.Wrap(ErrGet, err)
	}
	if val == nil {
		return 0, errors.ErrNotFound
	}

	return *val, nil
}

func (svc *service) Remove(ctx context.Context, key string) (*int, error) {
	if key == "" {
		return nil, errors.ErrMalformedEntity
	}

	prev, err := svc.repo.Remove(ctx, key)
	if err != nil {
		return nil, errors.Wrap(ErrRemove, err)
	}

	return prev, nil
}

func (svc *service) Warmest(ctx context.Context) (*string, error) {
	key, err := svc.repo.Warmest(ctx)
	if err != nil {
		return nil, errors.Wrap(ErrWarmest, err)
	}

	return key, nil
}

func (svc *service) Clear(ctx context.Context) error {
	if err := svc.repo.Clear(ctx); err != nil {
		return errors.Wrap(ErrClear, err)
	}

	return nil
}
