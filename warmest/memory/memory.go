// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package memory contains the in-process implementation of the warmest data
// repository: a hash map indexing the nodes of a doubly linked recency list.
package memory

import (
	"context"
	"sync"

	"github.com/ashr123/warmest-data/warmest"
)

var _ warmest.Repository = (*repository)(nil)

type node struct {
	key   string
	value int
	prev  *node
	next  *node
}

// repository keeps the list ordered from coldest (head) to warmest (tail).
type repository struct {
	mu    sync.RWMutex
	nodes map[string]*node
	head  *node
	tail  *node
}

// New returns an empty in-memory repository.
func New() warmest.Repository {
	return &repository{
		nodes: make(map[string]*node),
	}
}

func (r *repository) Put(_ context.Context, key string, value int) (*int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n, ok := r.nodes[key]; ok {
		prev := n.value
		n.value = value
		r.moveToTail(n)
		return &prev, nil
	}

	n := &node{key: key, value: value}
	r.nodes[key] = n
	r.attachToTail(n)

	return nil, nil
}

// Get takes the write lock since a read reorders the list.
func (r *repository) Get(_ context.Context, key string) (*int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[key]
	if !ok {
		return nil, nil
	}
	r.moveToTail(n)
	val := n.value

	return &val, nil
}

func (r *repository) Remove(_ context.Context, key string) (*int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.nodes[key]
	if !ok {
		return nil, nil
	}
	r.detach(n)
	delete(r.nodes, key)
	val := n.value

	return &val, nil
}

func (r *repository) Warmest(_ context.Context) (*string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.tail == nil {
		return nil, nil
	}
	key := r.tail.key

	return &key, nil
}

func (r *repository) Len(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.nodes), nil
}

func (r *repository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nodes = make(map[string]*node)
	r.head = nil
	r.tail = nil

	return nil
}

func (r *repository) detach(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		r.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		r.tail = n.prev
	}
	n.prev = nil
	n.next = nil
}

func (r *repository) attachToTail(n *node) {
	n.prev = r.tail
	n.next = nil
	if r.tail != nil {
		r.tail.next = n
	} else {
		r.head = n
	}
	r.tail = n
}

func (r *repository) moveToTail(n *node) {
	if n == r.tail {
		return
	}
	r.detach(n)
	r.attachToTail(n)
}
