/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import (
	"cmp"
	"math"
	"slices"
)

// Above this size, elements are collected and sorted once instead of being tracked incrementally.
const unboundedSize = math.MaxInt / 2

// limiter retains the n least elements seen so far. Elements are buffered until twice the limit is reached; the
// buffer is then stably sorted and truncated, and its last element becomes the threshold new elements must beat.
type limiter[T any] struct {
	items     []T
	limit     int
	truncated bool
	cmp       func(a, b T) int
}

func newLimiter[T any](limit int, cmp func(a, b T) int) *limiter[T] {
	return &limiter[T]{
		items: make([]T, 0, min(2*limit, 64)),
		limit: limit,
		cmp:   cmp,
	}
}

func (l *limiter[T]) put(e T) {
	if l.truncated && l.cmp(e, l.items[l.limit-1]) >= 0 {
		return
	}
	l.items = append(l.items, e)
	if len(l.items) >= 2*l.limit {
		l.sortAndTruncate()
	}
}

func (l *limiter[T]) sortAndTruncate() {
	slices.SortStableFunc(l.items, l.cmp)
	if len(l.items) > l.limit {
		clear(l.items[l.limit:])
		l.items = l.items[:l.limit]
		l.truncated = true
	}
}

// putAll adds the elements retained by a limiter which follows this one in encounter order.
func (l *limiter[T]) putAll(other *limiter[T]) *limiter[T] {
	for _, e := range other.items {
		l.put(e)
	}
	return l
}

func (l *limiter[T]) sorted() []T {
	items := slices.Clone(l.items)
	slices.SortStableFunc(items, l.cmp)
	if len(items) > l.limit {
		items = items[:l.limit]
	}
	return items
}

// LeastFunc returns the n least elements according to cmp, in ascending order. Equal elements keep their encounter
// order and the earliest ones are preferred.
func LeastFunc[T any](cmp func(a, b T) int, n int) Reducer[T, []T] {
	switch {
	case n <= 0:
		return Constant[T]([]T{})
	case n == 1:
		return AndThen(MinBy(cmp), func(least Optional[T]) []T {
			if !least.present {
				return []T{}
			}
			return []T{least.value}
		})
	case n >= unboundedSize:
		return Of[T, []T, []T](func() []T {
			return nil
		}, func(s []T, e T) []T {
			return append(s, e)
		}, func(l, r []T) []T {
			return append(l, r...)
		}, func(s []T) []T {
			sorted := slices.Clone(s)
			slices.SortStableFunc(sorted, cmp)
			return sorted[:min(n, len(sorted))]
		}, None)
	default:
		return Of[T, *limiter[T], []T](func() *limiter[T] {
			return newLimiter(n, cmp)
		}, func(l *limiter[T], e T) *limiter[T] {
			l.put(e)
			return l
		}, (*limiter[T]).putAll, (*limiter[T]).sorted, None)
	}
}

// Least is similar to LeastFunc but uses the natural order.
func Least[T cmp.Ordered](n int) Reducer[T, []T] {
	return LeastFunc(cmp.Compare[T], n)
}

// GreatestFunc returns the n greatest elements according to cmp, in descending order. Equal elements keep their
// encounter order and the earliest ones are preferred.
func GreatestFunc[T any](cmp func(a, b T) int, n int) Reducer[T, []T] {
	return LeastFunc(reversed(cmp), n)
}

// Greatest is similar to GreatestFunc but uses the natural order.
func Greatest[T cmp.Ordered](n int) Reducer[T, []T] {
	return GreatestFunc(cmp.Compare[T], n)
}

func reversed[T any](cmp func(a, b T) int) func(a, b T) int {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
