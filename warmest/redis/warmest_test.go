// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package redis_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ashr123/warmest-data/internal/testsutil"
	"github.com/ashr123/warmest-data/pkg/errors"
	"github.com/ashr123/warmest-data/warmest"
	wredis "github.com/ashr123/warmest-data/warmest/redis"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iterations = 200

func setup(t *testing.T, prefix string) (*miniredis.Miniredis, *redis.Client, warmest.Repository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client, wredis.New(client, prefix)
}

func newRepo(t *testing.T) warmest.Repository {
	_, _, repo := setup(t, "")
	return repo
}

func TestScenarios(t *testing.T) {
	testsutil.RunRepositoryScenarios(t, newRepo)
}

func TestLenAndClear(t *testing.T) {
	testsutil.RunLenAndClear(t, newRepo)
}

func TestConcurrency(t *testing.T) {
	testsutil.RunConcurrencyScenarios(t, newRepo, iterations)
}

func TestNewKeys(t *testing.T) {
	cases := []struct {
		desc   string
		prefix string
		keys   wredis.Keys
	}{
		{
			desc:   "default prefix",
			prefix: "",
			keys:   wredis.Keys{Data: "warmest:data", Prev: "warmest:prev", Next: "warmest:next", Tail: "warmest:tail"},
		},
		{
			desc:   "custom prefix",
			prefix: "tenant1",
			keys:   wredis.Keys{Data: "tenant1:data", Prev: "tenant1:prev", Next: "tenant1:next", Tail: "tenant1:tail"},
		},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.keys, wredis.NewKeys(tc.prefix), tc.desc)
	}
}

func TestLayout(t *testing.T) {
	mr, _, repo := setup(t, "")
	ctx := context.Background()

	for i, k := range []string{"a", "b", "c"} {
		_, err := repo.Put(ctx, k, (i+1)*100)
		require.Nil(t, err)
	}

	assert.Equal(t, "100", mr.HGet("warmest:data", "a"))
	assert.Equal(t, "200", mr.HGet("warmest:data", "b"))
	assert.Equal(t, "300", mr.HGet("warmest:data", "c"))
	assert.Equal(t, "a", mr.HGet("warmest:prev", "b"))
	assert.Equal(t, "b", mr.HGet("warmest:prev", "c"))
	assert.Equal(t, "b", mr.HGet("warmest:next", "a"))
	assert.Equal(t, "c", mr.HGet("warmest:next", "b"))
	tail, err := mr.Get("warmest:tail")
	require.Nil(t, err)
	assert.Equal(t, "c", tail)

	// a b c -> b c a
	_, err = repo.Get(ctx, "a")
	require.Nil(t, err)
	assert.Equal(t, "", mr.HGet("warmest:prev", "b"), "new head keeps no prev link")
	assert.Equal(t, "c", mr.HGet("warmest:prev", "a"))
	assert.Equal(t, "a", mr.HGet("warmest:next", "c"))
	assert.Equal(t, "", mr.HGet("warmest:next", "a"), "tail keeps no next link")
	tail, err = mr.Get("warmest:tail")
	require.Nil(t, err)
	assert.Equal(t, "a", tail)

	// b c a -> b a
	_, err = repo.Remove(ctx, "c")
	require.Nil(t, err)
	assert.Equal(t, "", mr.HGet("warmest:data", "c"))
	assert.Equal(t, "b", mr.HGet("warmest:prev", "a"))
	assert.Equal(t, "a", mr.HGet("warmest:next", "b"))
	assert.Equal(t, "", mr.HGet("warmest:prev", "c"))
	assert.Equal(t, "", mr.HGet("warmest:next", "c"))

	require.Nil(t, repo.Clear(ctx))
	for _, k := range []string{"warmest:data", "warmest:prev", "warmest:next", "warmest:tail"} {
		assert.False(t, mr.Exists(k), fmt.Sprintf("%s should be deleted", k))
	}
}

func TestPrefixIsolation(t *testing.T) {
	mr, client, first := setup(t, "first")
	second := wredis.New(client, "second")
	ctx := context.Background()

	_, err := first.Put(ctx, "a", 1)
	require.Nil(t, err)
	_, err = second.Put(ctx, "b", 2)
	require.Nil(t, err)

	v, err := first.Get(ctx, "b")
	require.Nil(t, err)
	assert.Nil(t, v)

	w, err := second.Warmest(ctx)
	require.Nil(t, err)
	require.NotNil(t, w)
	assert.Equal(t, "b", *w)

	require.Nil(t, first.Clear(ctx))
	assert.True(t, mr.Exists("second:data"))
	assert.False(t, mr.Exists("first:data"))
}

func TestInvalidStoredValue(t *testing.T) {
	mr, _, repo := setup(t, "")
	ctx := context.Background()

	_, err := repo.Put(ctx, "a", 1)
	require.Nil(t, err)
	mr.HSet("warmest:data", "a", "not-a-number")

	_, err = repo.Get(ctx, "a")
	assert.True(t, errors.Contains(err, wredis.ErrInvalidValue), fmt.Sprintf("expected %s got %s", wredis.ErrInvalidValue, err))
}

func TestScriptCacheMiss(t *testing.T) {
	_, client, repo := setup(t, "")
	ctx := context.Background()

	_, err := repo.Put(ctx, "a", 1)
	require.Nil(t, err)
	require.Nil(t, client.ScriptFlush(ctx).Err())

	v, err := repo.Get(ctx, "a")
	require.Nil(t, err, fmt.Sprintf("unexpected error after script flush: %s", err))
	require.NotNil(t, v)
	assert.Equal(t, 1, *v)
}

func TestUnavailable(t *testing.T) {
	mr, _, repo := setup(t, "")
	ctx := context.Background()
	mr.Close()

	_, err := repo.Put(ctx, "a", 1)
	assert.NotNil(t, err, "put")
	_, err = repo.Get(ctx, "a")
	assert.NotNil(t, err, "get")
	_, err = repo.Remove(ctx, "a")
	assert.NotNil(t, err, "remove")
	_, err = repo.Warmest(ctx)
	assert.NotNil(t, err, "warmest")
	_, err = repo.Len(ctx)
	assert.NotNil(t, err, "len")
	assert.NotNil(t, repo.Clear(ctx), "clear")
}
