// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package redis contains the Redis implementation of the warmest data
// repository. The recency list lives in three hashes and one string key and
// is only mutated by Lua scripts, so each operation is atomic across every
// service replica sharing the database.
package redis

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"

	"github.com/ashr123/warmest-data/pkg/errors"
	"github.com/ashr123/warmest-data/warmest"
	"github.com/go-redis/redis/v8"
)

// DefaultPrefix is the name prefix of the structure keys.
const DefaultPrefix = "warmest"

// ErrInvalidValue indicates a stored value that is not a decimal integer.
var ErrInvalidValue = errors.New("stored value is not an integer")

var (
	//go:embed scripts/list.lua
	listLua string
	//go:embed scripts/put.lua
	putLua string
	//go:embed scripts/get.lua
	getLua string
	//go:embed scripts/remove.lua
	removeLua string
	//go:embed scripts/warmest.lua
	warmestLua string

	putScript     = redis.NewScript(listLua + putLua)
	getScript     = redis.NewScript(listLua + getLua)
	removeScript  = redis.NewScript(listLua + removeLua)
	warmestScript = redis.NewScript(warmestLua)
)

var _ warmest.Repository = (*repository)(nil)

type repository struct {
	client *redis.Client
	keys   Keys
}

// Keys holds the names of the four Redis keys backing one structure.
type Keys struct {
	Data string
	Prev string
	Next string
	Tail string
}

// NewKeys returns the structure key names for prefix.
func NewKeys(prefix string) Keys {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return Keys{
		Data: fmt.Sprintf("%s:data", prefix),
		Prev: fmt.Sprintf("%s:prev", prefix),
		Next: fmt.Sprintf("%s:next", prefix),
		Tail: fmt.Sprintf("%s:tail", prefix),
	}
}

func (k Keys) list() []string {
	return []string{k.Data, k.Prev, k.Next, k.Tail}
}

// New returns a Redis backed repository storing its keys under prefix.
func New(client *redis.Client, prefix string) warmest.Repository {
	return &repository{
		client: client,
		keys:   NewKeys(prefix),
	}
}

func (r *repository) Put(ctx context.Context, key string, value int) (*int, error) {
	return r.run(ctx, putScript, key, value)
}

func (r *repository) Get(ctx context.Context, key string) (*int, error) {
	return r.run(ctx, getScript, key)
}

func (r *repository) Remove(ctx context.Context, key string) (*int, error) {
	return r.run(ctx, removeScript, key)
}

func (r *repository) Warmest(ctx context.Context) (*string, error) {
	key, err := warmestScript.Run(ctx, r.client, []string{r.keys.Tail}).Text()
	switch {
	case err == redis.Nil:
		return nil, nil
	case err != nil:
		return nil, err
	}

	return &key, nil
}

func (r *repository) Len(ctx context.Context) (int, error) {
	n, err := r.client.HLen(ctx, r.keys.Data).Result()
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

func (r *repository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.keys.list()...).Err()
}

// run executes script with EVALSHA, loading it with EVAL on a cache miss.
func (r *repository) run(ctx context.Context, script *redis.Script, args ...interface{}) (*int, error) {
	res, err := script.Run(ctx, r.client, r.keys.list(), args...).Text()
	switch {
	case err == redis.Nil:
		return nil, nil
	case err != nil:
		return nil, err
	}

	val, err := strconv.Atoi(res)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidValue, err)
	}

	return &val, nil
}
