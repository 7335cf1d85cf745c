/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import (
	"maps"

	"github.com/sasha-s/go-deadlock"

	"github.com/ARM-software/golang-utils/reducers/commonerrors"
)

type concurrentMap[K comparable, V any] struct {
	mu deadlock.RWMutex
	m  map[K]V
}

func newConcurrentMap[K comparable, V any]() *concurrentMap[K, V] {
	return &concurrentMap[K, V]{
		mu: deadlock.RWMutex{},
		m:  map[K]V{},
	}
}

// update replaces the value of k by the one returned by f. Nothing is stored if f fails.
func (c *concurrentMap[K, V]) update(k K, f func(v V, found bool) (V, error)) error {
	defer c.mu.Unlock()
	c.mu.Lock()
	v, found := c.m[k]
	v, err := f(v, found)
	if err != nil {
		return err
	}
	c.m[k] = v
	return nil
}

func (c *concurrentMap[K, V]) getOrCreate(k K, create func() V) V {
	defer c.mu.Unlock()
	c.mu.Lock()
	v, found := c.m[k]
	if !found {
		v = create()
		c.m[k] = v
	}
	return v
}

func (c *concurrentMap[K, V]) snapshot() map[K]V {
	defer c.mu.RUnlock()
	c.mu.RLock()
	return maps.Clone(c.m)
}

func toConcurrentMap[T any, K comparable, V any](key func(T) K, value func(T) V, merge func(k K, existing, v V) (V, error)) Reducer[T, map[K]V] {
	put := func(m *concurrentMap[K, V], k K, v V) error {
		return m.update(k, func(existing V, found bool) (V, error) {
			if !found {
				return v, nil
			}
			return merge(k, existing, v)
		})
	}
	return New[T, *concurrentMap[K, V], map[K]V](newConcurrentMap[K, V], func(m *concurrentMap[K, V], e T) (*concurrentMap[K, V], error) {
		return m, put(m, key(e), value(e))
	}, func(l, r *concurrentMap[K, V]) (*concurrentMap[K, V], error) {
		for k, v := range r.snapshot() {
			err := put(l, k, v)
			if err != nil {
				return l, err
			}
		}
		return l, nil
	}, func(m *concurrentMap[K, V]) (map[K]V, error) {
		return m.snapshot(), nil
	}, Unordered|Concurrent)
}

// ToConcurrentMap is similar to ToMap but elements may be folded concurrently into the same state.
func ToConcurrentMap[T any, K comparable, V any](key func(T) K, value func(T) V) Reducer[T, map[K]V] {
	return toConcurrentMap(key, value, func(k K, existing, _ V) (V, error) {
		return existing, commonerrors.Newf(commonerrors.ErrConflict, "duplicate key %v", k)
	})
}

// ToConcurrentMapMerging is similar to ToMapMerging but elements may be folded concurrently into the same state. The
// order in which values sharing a key are merged is not defined, so merge should be commutative.
func ToConcurrentMapMerging[T any, K comparable, V any](key func(T) K, value func(T) V, merge func(V, V) V) Reducer[T, map[K]V] {
	return toConcurrentMap(key, value, func(_ K, existing, v V) (V, error) {
		return merge(existing, v), nil
	})
}

// GroupingByConcurrent is similar to GroupingBy but elements may be folded concurrently into the same state. Folds into
// a group are serialised unless r is itself concurrent.
func GroupingByConcurrent[T any, K comparable, R any](classifier func(T) K, r Reducer[T, R]) (grouping Reducer[T, map[K]R]) {
	if r.Check() != nil {
		return
	}
	concurrent := r.characteristics.Has(Concurrent)
	return New[T, *concurrentMap[K, any], map[K]R](newConcurrentMap[K, any], func(groups *concurrentMap[K, any], e T) (*concurrentMap[K, any], error) {
		k := classifier(e)
		if concurrent {
			s := groups.getOrCreate(k, r.Create)
			if r.IsFinished(s) {
				return groups, nil
			}
			_, err := r.Fold(s, e)
			return groups, err
		}
		return groups, groups.update(k, func(s any, found bool) (any, error) {
			if !found {
				s = r.Create()
			}
			if r.IsFinished(s) {
				return s, nil
			}
			return r.Fold(s, e)
		})
	}, func(l, rg *concurrentMap[K, any]) (*concurrentMap[K, any], error) {
		for k, rs := range rg.snapshot() {
			err := l.update(k, func(ls any, found bool) (any, error) {
				if !found {
					return rs, nil
				}
				return r.Merge(ls, rs)
			})
			if err != nil {
				return l, err
			}
		}
		return l, nil
	}, func(groups *concurrentMap[K, any]) (result map[K]R, err error) {
		snapshot := groups.snapshot()
		result = make(map[K]R, len(snapshot))
		for k, s := range snapshot {
			result[k], err = r.Finish(s)
			if err != nil {
				return
			}
		}
		return
	}, Unordered|Concurrent)
}
