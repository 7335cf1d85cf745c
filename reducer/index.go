/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import "cmp"

// indexState tracks the best element of a partition and its index relative to the start of that partition.
type indexState[T any] struct {
	value T
	index int64
	count int64
}

// MinIndexFunc returns the index of the first least element according to cmp. Nothing is returned for an empty input.
func MinIndexFunc[T any](cmp func(a, b T) int) Reducer[T, Optional[int64]] {
	return Of[T, *indexState[T], Optional[int64]](func() *indexState[T] {
		return &indexState[T]{index: -1}
	}, func(s *indexState[T], e T) *indexState[T] {
		if s.index < 0 || cmp(e, s.value) < 0 {
			s.value = e
			s.index = s.count
		}
		s.count++
		return s
	}, func(l, r *indexState[T]) *indexState[T] {
		if r.index >= 0 && (l.index < 0 || cmp(r.value, l.value) < 0) {
			l.value = r.value
			l.index = l.count + r.index
		}
		l.count += r.count
		return l
	}, func(s *indexState[T]) Optional[int64] {
		if s.index < 0 {
			return Absent[int64]()
		}
		return Some(s.index)
	}, None)
}

// MaxIndexFunc returns the index of the first greatest element according to cmp. Nothing is returned for an empty input.
func MaxIndexFunc[T any](cmp func(a, b T) int) Reducer[T, Optional[int64]] {
	return MinIndexFunc(reversed(cmp))
}

// MinIndex is similar to MinIndexFunc but uses the natural order.
func MinIndex[T cmp.Ordered]() Reducer[T, Optional[int64]] {
	return MinIndexFunc(cmp.Compare[T])
}

// MaxIndex is similar to MaxIndexFunc but uses the natural order.
func MaxIndex[T cmp.Ordered]() Reducer[T, Optional[int64]] {
	return MaxIndexFunc(cmp.Compare[T])
}
