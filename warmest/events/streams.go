// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"context"

	"github.com/ashr123/warmest-data/pkg/events"
	"github.com/ashr123/warmest-data/pkg/events/redis"
	"github.com/ashr123/warmest-data/warmest"
)

// DefaultStream is the name of the stream data changes are appended to.
const DefaultStream = "warmestdata.events"

var _ warmest.Service = (*eventStore)(nil)

type eventStore struct {
	events.Publisher
	svc warmest.Service
}

// NewEventStoreMiddleware returns wrapper around warmest service that sends
// data change events to a Redis stream. The returned publisher owns the
// stream connection and must be closed by the caller.
func NewEventStoreMiddleware(ctx context.Context, svc warmest.Service, url, stream string) (warmest.Service, events.Publisher, error) {
	publisher, err := redis.NewPublisher(ctx, url, stream, events.UnpublishedEventsCheckInterval)
	if err != nil {
		return nil, nil, err
	}

	return New(svc, publisher), publisher, nil
}

// New returns wrapper around warmest service that publishes data change
// events with publisher. Reads are not published.
func New(svc warmest.Service, publisher events.Publisher) warmest.Service {
	return &eventStore{
		svc:       svc,
		Publisher: publisher,
	}
}

func (es *eventStore) Put(ctx context.Context, key string, value int) (*int, error) {
	prev, err := es.svc.Put(ctx, key, value)
	if err != nil {
		return prev, err
	}

	event := putEvent{
		key:      key,
		value:    value,
		previous: prev,
	}
	if err := es.Publish(ctx, event); err != nil {
		return prev, err
	}

	return prev, nil
}

func (es *eventStore) Get(ctx context.Context, key string) (int, error) {
	return es.svc.Get(ctx, key)
}

func (es *eventStore) Remove(ctx context.Context, key string) (*int, error) {
	prev, err := es.svc.Remove(ctx, key)
	if err != nil {
		return prev, err
	}
	if prev == nil {
		return nil, nil
	}

	event := removeEvent{
		key:      key,
		previous: prev,
	}
	if err := es.Publish(ctx, event); err != nil {
		return prev, err
	}

	return prev, nil
}

func (es *eventStore) Warmest(ctx context.Context) (*string, error) {
	return es.svc.Warmest(ctx)
}

func (es *eventStore) Clear(ctx context.Context) error {
	if err := es.svc.Clear(ctx); err != nil {
		return err
	}

	return es.Publish(ctx, clearEvent{})
}
