/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import "github.com/ARM-software/golang-utils/reducers/commonerrors"

// ToMap builds a map from the keys and values computed for each element. Two elements with the same key make the
// reduction fail with commonerrors.ErrConflict.
func ToMap[T any, K comparable, V any](key func(T) K, value func(T) V) Reducer[T, map[K]V] {
	put := func(m map[K]V, k K, v V) error {
		if _, found := m[k]; found {
			return commonerrors.Newf(commonerrors.ErrConflict, "duplicate key %v", k)
		}
		m[k] = v
		return nil
	}
	return New[T, map[K]V, map[K]V](newMap[K, V], func(m map[K]V, e T) (map[K]V, error) {
		return m, put(m, key(e), value(e))
	}, func(l, r map[K]V) (map[K]V, error) {
		for k, v := range r {
			err := put(l, k, v)
			if err != nil {
				return l, err
			}
		}
		return l, nil
	}, identity[map[K]V], Unordered|IdentityFinish)
}

// ToMapMerging is similar to ToMap but values sharing the same key are merged using merge. The value coming first in
// encounter order is passed first.
func ToMapMerging[T any, K comparable, V any](key func(T) K, value func(T) V, merge func(V, V) V) Reducer[T, map[K]V] {
	put := func(m map[K]V, k K, v V) {
		if existing, found := m[k]; found {
			v = merge(existing, v)
		}
		m[k] = v
	}
	return OfIdentity[T, map[K]V](newMap[K, V], func(m map[K]V, e T) map[K]V {
		put(m, key(e), value(e))
		return m
	}, func(l, r map[K]V) map[K]V {
		for k, v := range r {
			put(l, k, v)
		}
		return l
	}, None)
}

func newMap[K comparable, V any]() map[K]V {
	return map[K]V{}
}

func identity[A any](a A) (A, error) {
	return a, nil
}
