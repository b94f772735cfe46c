// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package redis

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
)

const pingTimeout = 5 * time.Second

// Connect create new RedisDB client and connect to RedisDB server.
func Connect(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}

// ConnectWithRetry calls Connect with exponential backoff until it succeeds
// or maxElapsed passes. Malformed URLs fail immediately. notify, when not nil,
// is called after every failed attempt.
func ConnectWithRetry(url string, maxElapsed time.Duration, notify backoff.Notify) (*redis.Client, error) {
	if _, err := redis.ParseURL(url); err != nil {
		return nil, err
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = maxElapsed

	var client *redis.Client
	op := func() error {
		c, err := Connect(url)
		if err != nil {
			return err
		}
		client = c
		return nil
	}
	if err := backoff.RetryNotify(op, bo, notify); err != nil {
		return nil, err
	}

	return client, nil
}
