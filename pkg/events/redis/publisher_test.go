// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package redis_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ashr123/warmest-data/pkg/events/redis"
	goredis "github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	streamName  = "warmestdata.eventstest"
	flushPeriod = 50 * time.Millisecond
)

type testEvent struct {
	Data map[string]interface{}
}

func (te testEvent) Encode() (map[string]interface{}, error) {
	data := make(map[string]interface{})
	for k, v := range te.Data {
		switch v.(type) {
		case string, int64:
			data[k] = v
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			data[k] = string(b)
		}
	}

	return data, nil
}

func setup(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestNewPublisher(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := redis.NewPublisher(ctx, "http://invalid.url", streamName, flushPeriod)
	assert.NotNil(t, err, "expected error on invalid url")

	mr, _ := setup(t)
	publisher, err := redis.NewPublisher(ctx, "redis://"+mr.Addr()+"/0", streamName, flushPeriod)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Nil(t, publisher.Close())
}

func TestPublish(t *testing.T) {
	mr, client := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, err := redis.NewPublisher(ctx, "redis://"+mr.Addr()+"/0", streamName, flushPeriod)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	defer publisher.Close()

	cases := []struct {
		desc  string
		event map[string]interface{}
		err   error
	}{
		{
			desc: "publish event successfully",
			event: map[string]interface{}{
				"operation": "data.put",
				"key":       "a",
				"value":     int64(100),
			},
			err: nil,
		},
		{
			desc:  "publish with nil event",
			event: nil,
			err:   nil,
		},
		{
			desc: "publish event with nested value",
			event: map[string]interface{}{
				"operation": "data.remove",
				"key":       "b",
				"meta":      map[string]string{"source": "test"},
			},
			err: nil,
		},
		{
			desc: "publish event with unsupported value",
			event: map[string]interface{}{
				"operation": "data.put",
				"key":       make(chan int),
			},
			err: fmt.Errorf("json: unsupported type: chan int"),
		},
	}

	for _, tc := range cases {
		before, err := client.XLen(ctx, streamName).Result()
		require.Nil(t, err)

		err = publisher.Publish(ctx, testEvent{Data: tc.event})
		if tc.err != nil {
			assert.ErrorContains(t, err, tc.err.Error(), tc.desc)
			continue
		}
		require.Nil(t, err, fmt.Sprintf("%s: unexpected error: %s", tc.desc, err))

		msgs, err := client.XRevRangeN(ctx, streamName, "+", "-", 1).Result()
		require.Nil(t, err)
		require.Len(t, msgs, 1, tc.desc)
		after, err := client.XLen(ctx, streamName).Result()
		require.Nil(t, err)
		assert.Equal(t, before+1, after, tc.desc)

		received := msgs[0].Values
		roa, err := strconv.ParseInt(received["occurred_at"].(string), 10, 64)
		require.Nil(t, err, tc.desc)
		assert.WithinRange(t, time.Unix(0, roa), time.Now().Add(-time.Second), time.Now().Add(time.Second), tc.desc)
		if op, ok := tc.event["operation"]; ok {
			assert.Equal(t, op, received["operation"], tc.desc)
			assert.Equal(t, tc.event["key"], received["key"], tc.desc)
		}
	}
}

func TestUnavailablePublish(t *testing.T) {
	mr, client := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	publisher, err := redis.NewPublisher(ctx, "redis://"+mr.Addr()+"/0", streamName, flushPeriod)
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	defer publisher.Close()

	mr.Close()

	const n = 5
	for i := 0; i < n; i++ {
		event := testEvent{Data: map[string]interface{}{
			"operation": "data.put",
			"key":       fmt.Sprintf("key-%d", i),
			"value":     int64(i),
		}}
		err := publisher.Publish(ctx, event)
		assert.Nil(t, err, "events are buffered while redis is unavailable")
	}

	require.Nil(t, mr.Restart())

	assert.Eventually(t, func() bool {
		l, err := client.XLen(ctx, streamName).Result()
		return err == nil && l == n
	}, 5*time.Second, flushPeriod, "buffered events were not flushed")
}
