// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ashr123/warmest-data/internal/testsutil"
	"github.com/ashr123/warmest-data/pkg/errors"
	sdk "github.com/ashr123/warmest-data/pkg/sdk/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPut(t *testing.T) {
	wdsdk := newSDK(t)

	cases := []struct {
		desc   string
		key    string
		value  int
		prev   *int
		status int
		err    error
	}{
		{
			desc:  "put new key",
			key:   "a",
			value: 100,
			prev:  nil,
		},
		{
			desc:  "overwrite key",
			key:   "a",
			value: 101,
			prev:  testsutil.IntPtr(100),
		},
		{
			desc:  "overwrite key with the same value",
			key:   "a",
			value: 101,
			prev:  testsutil.IntPtr(101),
		},
		{
			desc:  "put key that needs escaping",
			key:   "a b/c?d",
			value: -5,
			prev:  nil,
		},
		{
			desc:  "put with empty key",
			key:   "",
			value: 1,
			err:   sdk.ErrEmptyKey,
		},
		{
			desc:   "put with too long key",
			key:    strings.Repeat("k", 1025),
			value:  1,
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			prev, err := wdsdk.Put(tc.key, tc.value)
			switch {
			case tc.err != nil:
				assert.True(t, errors.Contains(err, tc.err), fmt.Sprintf("expected error %s, got %s", tc.err, err))
			case tc.status != 0:
				require.NotNil(t, err)
				assert.Equal(t, tc.status, err.StatusCode())
			default:
				require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
				assert.Equal(t, tc.prev, prev)
			}
		})
	}
}

func TestGet(t *testing.T) {
	wdsdk := newSDK(t)

	_, err := wdsdk.Put("a", 100)
	require.Nil(t, err)
	_, err = wdsdk.Put("b", 200)
	require.Nil(t, err)

	cases := []struct {
		desc    string
		key     string
		value   int
		warmest string
		status  int
	}{
		{
			desc:    "get cold key",
			key:     "a",
			value:   100,
			warmest: "a",
		},
		{
			desc:    "get another key",
			key:     "b",
			value:   200,
			warmest: "b",
		},
		{
			desc:    "get missing key",
			key:     "missing",
			status:  http.StatusNotFound,
			warmest: "b",
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			value, err := wdsdk.Get(tc.key)
			if tc.status != 0 {
				require.NotNil(t, err)
				assert.Equal(t, tc.status, err.StatusCode())
				assert.Contains(t, err.Error(), errors.ErrNotFound.Error())
			} else {
				require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
				assert.Equal(t, tc.value, value)
			}

			key, err := wdsdk.Warmest()
			require.Nil(t, err)
			require.NotNil(t, key)
			assert.Equal(t, tc.warmest, *key)
		})
	}
}

func TestRemove(t *testing.T) {
	wdsdk := newSDK(t)

	for i, key := range []string{"a", "b", "c"} {
		_, err := wdsdk.Put(key, (i+1)*100)
		require.Nil(t, err)
	}

	cases := []struct {
		desc    string
		key     string
		prev    *int
		warmest *string
	}{
		{
			desc:    "remove middle key",
			key:     "b",
			prev:    testsutil.IntPtr(200),
			warmest: testsutil.StringPtr("c"),
		},
		{
			desc:    "remove warmest key",
			key:     "c",
			prev:    testsutil.IntPtr(300),
			warmest: testsutil.StringPtr("a"),
		},
		{
			desc:    "remove last key",
			key:     "a",
			prev:    testsutil.IntPtr(100),
			warmest: nil,
		},
		{
			desc:    "remove missing key",
			key:     "a",
			prev:    nil,
			warmest: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			prev, err := wdsdk.Remove(tc.key)
			require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
			assert.Equal(t, tc.prev, prev)

			key, err := wdsdk.Warmest()
			require.Nil(t, err)
			assert.Equal(t, tc.warmest, key)
		})
	}
}

func TestClearAndDrain(t *testing.T) {
	wdsdk := newSDK(t)

	put := func() {
		for i, key := range []string{"a", "b", "c"} {
			_, err := wdsdk.Put(key, i)
			require.Nil(t, err)
		}
	}

	put()
	err := wdsdk.Clear()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	key, err := wdsdk.Warmest()
	require.Nil(t, err)
	assert.Nil(t, key)

	put()
	_, err = wdsdk.Get("a")
	require.Nil(t, err)
	keys, err := wdsdk.Drain()
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, []string{"a", "c", "b"}, keys)

	keys, err = wdsdk.Drain()
	require.Nil(t, err)
	assert.Empty(t, keys)
}

func TestUnreachable(t *testing.T) {
	ts := newServer()
	ts.Close()
	wdsdk := sdk.NewSDK(sdk.Config{URL: ts.URL})

	_, err := wdsdk.Warmest()
	require.NotNil(t, err)
	assert.Equal(t, 0, err.StatusCode())
}
