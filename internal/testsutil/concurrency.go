// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package testsutil

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ashr123/warmest-data/warmest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const (
	workers         = 10
	deadlockTimeout = 60 * time.Second
)

// race runs fns concurrently, releasing them together, and returns the first
// error. It fails the test if they do not finish within deadlockTimeout.
func race(t *testing.T, fns ...func() error) error {
	start := make(chan struct{})
	var g errgroup.Group
	for _, fn := range fns {
		fn := fn
		g.Go(func() error {
			<-start
			return fn()
		})
	}
	close(start)

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		return err
	case <-time.After(deadlockTimeout):
		t.Fatalf("goroutines did not complete in %s: possible deadlock", deadlockTimeout)
		return nil
	}
}

func expectOneOf(op string, got *int, allowAbsent bool, want ...int) error {
	if got == nil {
		if allowAbsent {
			return nil
		}
		return fmt.Errorf("%s: unexpected absent value", op)
	}
	for _, w := range want {
		if *got == w {
			return nil
		}
	}
	return fmt.Errorf("%s: unexpected value %d, want one of %v", op, *got, want)
}

// RunConcurrencyScenarios checks that concurrent callers only ever observe
// complete operations. Each scenario repeats its race iterations times.
func RunConcurrencyScenarios(t *testing.T, newRepo RepositoryFactory, iterations int) {
	ctx := context.Background()

	t.Run("get racing put on the warmest key", func(t *testing.T) {
		repo := newRepo(t)
		for i := 0; i < iterations; i++ {
			_, err := repo.Put(ctx, "key", 100)
			require.Nil(t, err)

			err = race(t,
				func() error {
					v, err := repo.Get(ctx, "key")
					if err != nil {
						return err
					}
					return expectOneOf("get", v, false, 100, 999)
				},
				func() error {
					_, err := repo.Put(ctx, "key", 999)
					return err
				},
			)
			require.Nil(t, err, fmt.Sprintf("iteration %d: %s", i, err))

			_, err = repo.Remove(ctx, "key")
			require.Nil(t, err)
		}
	})

	t.Run("get racing remove on the warmest key", func(t *testing.T) {
		repo := newRepo(t)
		for i := 0; i < iterations; i++ {
			_, err := repo.Put(ctx, "key", 100)
			require.Nil(t, err)

			err = race(t,
				func() error {
					v, err := repo.Get(ctx, "key")
					if err != nil {
						return err
					}
					return expectOneOf("get", v, true, 100)
				},
				func() error {
					_, err := repo.Remove(ctx, "key")
					return err
				},
			)
			require.Nil(t, err, fmt.Sprintf("iteration %d: %s", i, err))

			_, err = repo.Remove(ctx, "key")
			require.Nil(t, err)
		}
	})

	t.Run("get racing remove on a cold key", func(t *testing.T) {
		repo := newRepo(t)
		for i := 0; i < iterations; i++ {
			_, err := repo.Put(ctx, "key", 100)
			require.Nil(t, err)
			_, err = repo.Put(ctx, "other", 200)
			require.Nil(t, err)

			err = race(t,
				func() error {
					v, err := repo.Get(ctx, "key")
					if err != nil {
						return err
					}
					return expectOneOf("get", v, true, 100)
				},
				func() error {
					_, err := repo.Remove(ctx, "key")
					return err
				},
			)
			require.Nil(t, err, fmt.Sprintf("iteration %d: %s", i, err))

			v, err := repo.Get(ctx, "key")
			require.Nil(t, err)
			require.Nil(t, v, fmt.Sprintf("iteration %d: key should be removed", i))

			w, err := repo.Warmest(ctx)
			require.Nil(t, err)
			require.NotNil(t, w)
			require.Equal(t, "other", *w, fmt.Sprintf("iteration %d: list must only hold other", i))

			_, err = repo.Remove(ctx, "other")
			require.Nil(t, err)
		}
	})

	t.Run("concurrent gets on the same cold key", func(t *testing.T) {
		repo := newRepo(t)
		for i := 0; i < iterations; i++ {
			for v, k := range []string{"a", "b", "c"} {
				_, err := repo.Put(ctx, k, v+1)
				require.Nil(t, err)
			}

			getA := func() error {
				v, err := repo.Get(ctx, "a")
				if err != nil {
					return err
				}
				return expectOneOf("get", v, false, 1)
			}
			err := race(t, getA, getA)
			require.Nil(t, err, fmt.Sprintf("iteration %d: %s", i, err))

			w, err := repo.Warmest(ctx)
			require.Nil(t, err)
			require.NotNil(t, w)
			require.Equal(t, "a", *w, fmt.Sprintf("iteration %d: a should be warmest", i))

			for _, k := range []string{"a", "b", "c"} {
				_, err := repo.Remove(ctx, k)
				require.Nil(t, err)
			}
		}
	})

	t.Run("get racing put on a cold key", func(t *testing.T) {
		repo := newRepo(t)
		for i := 0; i < iterations; i++ {
			_, err := repo.Put(ctx, "key1", 100)
			require.Nil(t, err)
			_, err = repo.Put(ctx, "key2", 200)
			require.Nil(t, err)

			err = race(t,
				func() error {
					v, err := repo.Get(ctx, "key1")
					if err != nil {
						return err
					}
					return expectOneOf("get", v, false, 100, 999)
				},
				func() error {
					_, err := repo.Put(ctx, "key1", 999)
					return err
				},
			)
			require.Nil(t, err, fmt.Sprintf("iteration %d: %s", i, err))

			w, err := repo.Warmest(ctx)
			require.Nil(t, err)
			require.NotNil(t, w)
			require.Equal(t, "key1", *w, fmt.Sprintf("iteration %d: key1 should be warmest", i))

			_, err = repo.Remove(ctx, "key1")
			require.Nil(t, err)
			_, err = repo.Remove(ctx, "key2")
			require.Nil(t, err)
		}
	})

	t.Run("put racing remove on the same key", func(t *testing.T) {
		repo := newRepo(t)
		for i := 0; i < iterations; i++ {
			_, err := repo.Put(ctx, "key", 100)
			require.Nil(t, err)

			err = race(t,
				func() error {
					_, err := repo.Put(ctx, "key", 200)
					return err
				},
				func() error {
					_, err := repo.Remove(ctx, "key")
					return err
				},
			)
			require.Nil(t, err, fmt.Sprintf("iteration %d: %s", i, err))

			v, err := repo.Get(ctx, "key")
			require.Nil(t, err)
			require.Nil(t, expectOneOf("get", v, true, 200), fmt.Sprintf("iteration %d", i))

			_, err = repo.Remove(ctx, "key")
			require.Nil(t, err)
		}
	})

	t.Run("no deadlock under high contention", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Put(ctx, "target", 42)
		require.Nil(t, err)
		_, err = repo.Put(ctx, "other", 99)
		require.Nil(t, err)

		fns := make([]func() error, workers)
		for w := range fns {
			fns[w] = func() error {
				for i := 0; i < iterations; i++ {
					if _, err := repo.Put(ctx, "other", 99); err != nil {
						return err
					}
					v, err := repo.Get(ctx, "target")
					if err != nil {
						return err
					}
					if err := expectOneOf("get", v, false, 42); err != nil {
						return err
					}
				}
				return nil
			}
		}
		assert.Nil(t, race(t, fns...))
	})

	t.Run("per goroutine keys do not interfere", func(t *testing.T) {
		repo := newRepo(t)
		fns := make([]func() error, workers)
		for w := range fns {
			key := fmt.Sprintf("worker-%d", w)
			fns[w] = func() error {
				for i := 0; i < iterations; i++ {
					prev, err := repo.Put(ctx, key, i)
					if err != nil {
						return err
					}
					if prev != nil {
						return fmt.Errorf("%s: put %d returned %d, want absent", key, i, *prev)
					}
					if err := checkValue(ctx, repo, key, i); err != nil {
						return err
					}
					removed, err := repo.Remove(ctx, key)
					if err != nil {
						return err
					}
					if err := expectOneOf("remove "+key, removed, false, i); err != nil {
						return err
					}
					v, err := repo.Get(ctx, key)
					if err != nil {
						return err
					}
					if v != nil {
						return fmt.Errorf("%s: get after remove returned %d", key, *v)
					}
				}
				return nil
			}
		}
		assert.Nil(t, race(t, fns...))

		n, err := repo.Len(ctx)
		require.Nil(t, err)
		assert.Equal(t, 0, n)
	})

	t.Run("missing key stays absent under heavy writes", func(t *testing.T) {
		repo := newRepo(t)
		fns := make([]func() error, workers)
		for w := range fns {
			w := w
			fns[w] = func() error {
				for i := 0; i < iterations; i++ {
					if w%2 == 0 {
						if _, err := repo.Put(ctx, fmt.Sprintf("write-key-%d-%d", w, i%10), i); err != nil {
							return err
						}
						continue
					}
					v, err := repo.Get(ctx, fmt.Sprintf("never-inserted-%d", w))
					if err != nil {
						return err
					}
					if v != nil {
						return fmt.Errorf("never inserted key returned %d", *v)
					}
				}
				return nil
			}
		}
		assert.Nil(t, race(t, fns...))
	})

	t.Run("put after concurrent chaos becomes warmest", func(t *testing.T) {
		repo := newRepo(t)
		for k := 0; k < 10; k++ {
			_, err := repo.Put(ctx, fmt.Sprintf("key%d", k), k)
			require.Nil(t, err)
		}

		var ops atomic.Int64
		fns := make([]func() error, workers)
		for w := range fns {
			seed := int64(w)
			fns[w] = func() error {
				rng := rand.New(rand.NewSource(seed))
				for i := 0; i < iterations; i++ {
					key := fmt.Sprintf("key%d", rng.Intn(10))
					var err error
					switch rng.Intn(3) {
					case 0:
						_, err = repo.Put(ctx, key, rng.Intn(1000))
					case 1:
						_, err = repo.Get(ctx, key)
					default:
						_, err = repo.Remove(ctx, key)
					}
					if err != nil {
						return err
					}
					ops.Add(1)
				}
				return nil
			}
		}
		require.Nil(t, race(t, fns...))
		assert.Equal(t, int64(workers*iterations), ops.Load())

		_, err := repo.Put(ctx, "final-key", 9999)
		require.Nil(t, err)
		w, err := repo.Warmest(ctx)
		require.Nil(t, err)
		require.NotNil(t, w)
		assert.Equal(t, "final-key", *w)

		// Draining the list from the warmest end must visit every stored key once.
		n, err := repo.Len(ctx)
		require.Nil(t, err)
		drained := 0
		for {
			w, err := repo.Warmest(ctx)
			require.Nil(t, err)
			if w == nil {
				break
			}
			v, err := repo.Remove(ctx, *w)
			require.Nil(t, err)
			require.NotNil(t, v, fmt.Sprintf("warmest key %s has no value", *w))
			drained++
			require.LessOrEqual(t, drained, n, "list holds more keys than the map")
		}
		assert.Equal(t, n, drained)
	})
}

func checkValue(ctx context.Context, repo warmest.Repository, key string, want int) error {
	v, err := repo.Get(ctx, key)
	if err != nil {
		return err
	}
	return expectOneOf("get "+key, v, false, want)
}
