// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package testsutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/ashr123/warmest-data/warmest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RepositoryFactory returns an empty repository for a single test case.
type RepositoryFactory func(t *testing.T) warmest.Repository

type opKind int

const (
	opPut opKind = iota
	opGet
	opRemove
	opWarmest
)

// step is one repository call with its expected result: nil for absent,
// an int for values, a string for the warmest key.
type step struct {
	op    opKind
	key   string
	value int
	want  interface{}
}

func put(key string, value int, want interface{}) step {
	return step{op: opPut, key: key, value: value, want: want}
}

func get(key string, want interface{}) step {
	return step{op: opGet, key: key, want: want}
}

func remove(key string, want interface{}) step {
	return step{op: opRemove, key: key, want: want}
}

func warmestIs(want interface{}) step {
	return step{op: opWarmest, want: want}
}

func (s step) String() string {
	switch s.op {
	case opPut:
		return fmt.Sprintf("put(%s, %d)", s.key, s.value)
	case opGet:
		return fmt.Sprintf("get(%s)", s.key)
	case opRemove:
		return fmt.Sprintf("remove(%s)", s.key)
	default:
		return "warmest()"
	}
}

func (s step) run(ctx context.Context, repo warmest.Repository) (interface{}, error) {
	switch s.op {
	case opPut:
		v, err := repo.Put(ctx, s.key, s.value)
		return deref(v), err
	case opGet:
		v, err := repo.Get(ctx, s.key)
		return deref(v), err
	case opRemove:
		v, err := repo.Remove(ctx, s.key)
		return deref(v), err
	default:
		k, err := repo.Warmest(ctx)
		if k == nil {
			return nil, err
		}
		return *k, err
	}
}

func deref(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// abc puts a=100, b=200 and c=300 into an empty repository.
var abc = []step{
	put("a", 100, nil),
	put("b", 200, nil),
	put("c", 300, nil),
}

func join(groups ...[]step) []step {
	var ret []step
	for _, g := range groups {
		ret = append(ret, g...)
	}
	return ret
}

// RunRepositoryScenarios checks the single-client contract of a repository.
func RunRepositoryScenarios(t *testing.T, newRepo RepositoryFactory) {
	cases := []struct {
		desc  string
		steps []step
	}{
		{
			desc:  "warmest of empty repository is absent",
			steps: []step{warmestIs(nil)},
		},
		{
			desc:  "put new key returns absent",
			steps: []step{put("a", 100, nil)},
		},
		{
			desc:  "put makes key warmest",
			steps: []step{put("a", 100, nil), warmestIs("a")},
		},
		{
			desc:  "put existing key returns previous value",
			steps: []step{put("a", 100, nil), put("a", 101, 100)},
		},
		{
			desc:  "put same value returns previous value",
			steps: []step{put("a", 100, nil), put("a", 101, 100), put("a", 101, 101)},
		},
		{
			desc:  "get returns latest value",
			steps: []step{put("a", 100, nil), put("a", 101, 100), get("a", 101)},
		},
		{
			desc:  "get keeps key warmest",
			steps: []step{put("a", 100, nil), put("a", 101, 100), get("a", 101), warmestIs("a")},
		},
		{
			desc:  "remove returns latest value",
			steps: []step{put("a", 100, nil), put("a", 101, 100), remove("a", 101)},
		},
		{
			desc:  "remove missing key returns absent",
			steps: []step{put("a", 100, nil), remove("a", 100), remove("a", nil)},
		},
		{
			desc:  "warmest after removing only key is absent",
			steps: []step{put("a", 100, nil), remove("a", 100), warmestIs(nil)},
		},
		{
			desc:  "put first of many keys returns absent",
			steps: []step{put("a", 100, nil)},
		},
		{
			desc:  "put second key returns absent",
			steps: []step{put("a", 100, nil), put("b", 200, nil)},
		},
		{
			desc:  "put third key returns absent",
			steps: abc,
		},
		{
			desc:  "warmest after many puts is last key",
			steps: join(abc, []step{warmestIs("c")}),
		},
		{
			desc:  "remove middle key returns its value",
			steps: join(abc, []step{remove("b", 200)}),
		},
		{
			desc:  "removing middle key keeps warmest",
			steps: join(abc, []step{remove("b", 200), warmestIs("c")}),
		},
		{
			desc:  "remove warmest key returns its value",
			steps: join(abc, []step{remove("b", 200), remove("c", 300)}),
		},
		{
			desc:  "removing warmest key promotes colder neighbour",
			steps: join(abc, []step{remove("b", 200), remove("c", 300), warmestIs("a")}),
		},
		{
			desc:  "remove remaining key returns its value",
			steps: join(abc, []step{remove("b", 200), remove("c", 300), remove("a", 100)}),
		},
		{
			desc:  "warmest after removing all keys is absent",
			steps: join(abc, []step{remove("b", 200), remove("c", 300), remove("a", 100), warmestIs(nil)}),
		},
		{
			desc:  "remove already removed key returns absent",
			steps: join(abc, []step{remove("b", 200), remove("c", 300), remove("a", 100), remove("a", nil)}),
		},
		{
			desc:  "get missing key returns absent and keeps order",
			steps: join(abc, []step{get("x", nil), warmestIs("c")}),
		},
		{
			desc:  "get cold key makes it warmest",
			steps: join(abc, []step{get("a", 100), warmestIs("a"), remove("a", 100), warmestIs("c")}),
		},
		{
			desc:  "put existing cold key makes it warmest",
			steps: join(abc, []step{put("b", 201, 200), warmestIs("b"), remove("b", 201), warmestIs("c")}),
		},
		{
			desc:  "removing head keeps the rest linked",
			steps: join(abc, []step{remove("a", 100), remove("c", 300), warmestIs("b"), remove("b", 200), warmestIs(nil)}),
		},
		{
			desc:  "reinserting removed key appends it as warmest",
			steps: join(abc, []step{remove("a", 100), put("a", 1, nil), warmestIs("a"), remove("a", 1), warmestIs("c")}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()
			for i, s := range tc.steps {
				got, err := s.run(ctx, repo)
				require.Nil(t, err, fmt.Sprintf("step %d %s: unexpected error: %s", i, s, err))
				assert.Equal(t, s.want, got, fmt.Sprintf("step %d %s: expected %v got %v", i, s, s.want, got))
			}
		})
	}
}

// RunLenAndClear checks the bookkeeping operations of a repository.
func RunLenAndClear(t *testing.T, newRepo RepositoryFactory) {
	repo := newRepo(t)
	ctx := context.Background()

	n, err := repo.Len(ctx)
	require.Nil(t, err)
	assert.Equal(t, 0, n)

	for _, s := range abc {
		_, err := s.run(ctx, repo)
		require.Nil(t, err)
	}
	_, err = repo.Put(ctx, "a", 1)
	require.Nil(t, err)

	n, err = repo.Len(ctx)
	require.Nil(t, err)
	assert.Equal(t, 3, n)

	err = repo.Clear(ctx)
	require.Nil(t, err, fmt.Sprintf("clear: unexpected error: %s", err))

	n, err = repo.Len(ctx)
	require.Nil(t, err)
	assert.Equal(t, 0, n)

	key, err := repo.Warmest(ctx)
	require.Nil(t, err)
	assert.Nil(t, key)

	val, err := repo.Get(ctx, "a")
	require.Nil(t, err)
	assert.Nil(t, val)

	prev, err := repo.Put(ctx, "d", 400)
	require.Nil(t, err)
	assert.Nil(t, prev)
	key, err = repo.Warmest(ctx)
	require.Nil(t, err)
	require.NotNil(t, key)
	assert.Equal(t, "d", *key)
}
