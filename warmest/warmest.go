// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package warmest

import (
	"context"

	"github.com/ashr123/warmest-data/pkg/errors"
)

var (
	// ErrPut indicates a backend failure while storing a value.
	ErrPut = errors.New("failed to put value")

	// ErrGet indicates a backend failure while reading a value.
	ErrGet = errors.New("failed to get value")

	// ErrRemove indicates a backend failure while removing a value.
	ErrRemove = errors.New("failed to remove value")

	// ErrWarmest indicates a backend failure while reading the warmest key.
	ErrWarmest = errors.New("failed to retrieve warmest key")

	// ErrClear indicates a backend failure while clearing the structure.
	ErrClear = errors.New("failed to clear data")
)

// Repository is a key to integer store that tracks which key was touched
// most recently. Put and Get make the key the warmest one; Remove unlinks it
// so that its colder neighbour becomes warmest. A nil result means the key,
// or the warmest key, is absent. All operations run in constant time.
//
//go:generate mockery --name Repository --output=./mocks --filename repository.go --quiet --note "Copyright (c) Abstract Machines"
type Repository interface {
	// Put stores value under key and returns the value it replaced.
	Put(ctx context.Context, key string, value int) (*int, error)

	// Get returns the value stored under key.
	Get(ctx context.Context, key string) (*int, error)

	// Remove deletes key and returns its last value.
	Remove(ctx context.Context, key string) (*int, error)

	// Warmest returns the most recently put or read key.
	Warmest(ctx context.Context) (*string, error)

	// Len returns the number of stored keys.
	Len(ctx context.Context) (int, error)

	// Clear removes every key.
	Clear(ctx context.Context) error
}

// Service specifies an API that must be fulfilled by the domain service
// implementation, and all of its decorators (e.g. logging & metrics).
//
//go:generate mockery --name Service --output=./mocks --filename service.go --quiet --note "Copyright (c) Abstract Machines"
type Service interface {
	// Put stores value under key and returns the value it replaced, if any.
	Put(ctx context.Context, key string, value int) (*int, error)

	// Get returns the value stored under key and makes the key warmest.
	// It fails with errors.ErrNotFound when the key is absent.
	Get(ctx context.Context, key string) (int, error)

	// Remove deletes key and returns its last value, if any.
	Remove(ctx context.Context, key string) (*int, error)

	// Warmest returns the warmest key, or nil when nothing is stored.
	Warmest(ctx context.Context) (*string, error)

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}
