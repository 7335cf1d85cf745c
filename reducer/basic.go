/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/atomic"
	"golang.org/x/exp/constraints"
)

//
// Collecting
//

// ToSlice collects elements into a slice, in encounter order.
func ToSlice[T any]() Reducer[T, []T] {
	return OfIdentity[T, []T](func() []T {
		return nil
	}, func(s []T, e T) []T {
		return append(s, e)
	}, func(l, r []T) []T {
		return append(l, r...)
	}, None)
}

// ToSet collects elements into a thread-safe set. Elements may be folded concurrently into the same state.
func ToSet[T comparable]() Reducer[T, mapset.Set[T]] {
	return OfIdentity[T, mapset.Set[T]](func() mapset.Set[T] {
		return mapset.NewSet[T]()
	}, func(s mapset.Set[T], e T) mapset.Set[T] {
		s.Add(e)
		return s
	}, func(l, r mapset.Set[T]) mapset.Set[T] {
		_ = l.Append(r.ToSlice()...)
		return l
	}, Unordered|Concurrent)
}

// ToBoolSlice collects the outcome of the predicate for each element, in encounter order.
func ToBoolSlice[T any](predicate func(T) bool) Reducer[T, []bool] {
	return OfIdentity[T, []bool](func() []bool {
		return nil
	}, func(s []bool, e T) []bool {
		return append(s, predicate(e))
	}, func(l, r []bool) []bool {
		return append(l, r...)
	}, None)
}

// Constant ignores its input and always returns value. It is finished before any element is folded.
func Constant[T, R any](value R) Reducer[T, R] {
	return OfCancellable[T, struct{}, R](func() struct{} {
		return struct{}{}
	}, func(s struct{}, _ T) struct{} {
		return s
	}, func(l, _ struct{}) struct{} {
		return l
	}, func(struct{}) R {
		return value
	}, func(struct{}) bool {
		return true
	}, Unordered)
}

//
// Counting and arithmetic
//

// Counting counts elements. Elements may be folded concurrently into the same state.
func Counting[T any]() Reducer[T, int64] {
	return Of[T, *atomic.Int64, int64](func() *atomic.Int64 {
		return atomic.NewInt64(0)
	}, func(s *atomic.Int64, _ T) *atomic.Int64 {
		s.Inc()
		return s
	}, func(l, r *atomic.Int64) *atomic.Int64 {
		l.Add(r.Load())
		return l
	}, func(s *atomic.Int64) int64 {
		return s.Load()
	}, Unordered|Concurrent)
}

// Summing adds up the values returned by mapper.
func Summing[T any, N constraints.Integer | constraints.Float](mapper func(T) N) Reducer[T, N] {
	return OfIdentity[T, N](func() N {
		return 0
	}, func(s N, e T) N {
		return s + mapper(e)
	}, func(l, r N) N {
		return l + r
	}, Unordered)
}

// Reducing reduces elements using an associative operation and its identity value.
func Reducing[T any](identity T, op func(T, T) T) Reducer[T, T] {
	return OfIdentity[T, T](func() T {
		return identity
	}, op, op, None)
}

// Anding computes the bitwise AND of the values returned by mapper. It is finished once the result is zero.
func Anding[T any, N constraints.Integer](mapper func(T) N) Reducer[T, Optional[N]] {
	and := func(l, r Optional[N]) Optional[N] {
		if !l.present {
			return r
		}
		if !r.present {
			return l
		}
		return Some(l.value & r.value)
	}
	return OfCancellable[T, Optional[N], Optional[N]](Absent[N], func(s Optional[N], e T) Optional[N] {
		return and(s, Some(mapper(e)))
	}, and, func(s Optional[N]) Optional[N] {
		return s
	}, func(s Optional[N]) bool {
		return s.present && s.value == 0
	}, Unordered|IdentityFinish)
}

//
// Single elements
//

// MinBy finds the least element according to cmp. The first of equal elements is returned.
func MinBy[T any](cmp func(a, b T) int) Reducer[T, Optional[T]] {
	return extremum(func(candidate, current T) bool {
		return cmp(candidate, current) < 0
	})
}

// MaxBy finds the greatest element according to cmp. The first of equal elements is returned.
func MaxBy[T any](cmp func(a, b T) int) Reducer[T, Optional[T]] {
	return extremum(func(candidate, current T) bool {
		return cmp(candidate, current) > 0
	})
}

func extremum[T any](better func(candidate, current T) bool) Reducer[T, Optional[T]] {
	merge := func(l, r Optional[T]) Optional[T] {
		if r.present && (!l.present || better(r.value, l.value)) {
			return r
		}
		return l
	}
	return OfIdentity[T, Optional[T]](Absent[T], func(s Optional[T], e T) Optional[T] {
		return merge(s, Some(e))
	}, merge, None)
}

// First returns the first element. It is finished as soon as an element is seen.
func First[T any]() Reducer[T, Optional[T]] {
	first := func(l, r Optional[T]) Optional[T] {
		if l.present {
			return l
		}
		return r
	}
	return OfCancellable[T, Optional[T], Optional[T]](Absent[T], func(s Optional[T], e T) Optional[T] {
		return first(s, Some(e))
	}, first, func(s Optional[T]) Optional[T] {
		return s
	}, Optional[T].IsPresent, IdentityFinish)
}

// Last returns the last element.
func Last[T any]() Reducer[T, Optional[T]] {
	return OfIdentity[T, Optional[T]](Absent[T], func(_ Optional[T], e T) Optional[T] {
		return Some(e)
	}, func(l, r Optional[T]) Optional[T] {
		if r.present {
			return r
		}
		return l
	}, None)
}

type onlyOneState[T any] struct {
	seen  int
	value T
}

// OnlyOne returns the element if the input contains exactly one. It is finished as soon as a second element is seen.
func OnlyOne[T any]() Reducer[T, Optional[T]] {
	return OfCancellable[T, onlyOneState[T], Optional[T]](func() onlyOneState[T] {
		return onlyOneState[T]{}
	}, func(s onlyOneState[T], e T) onlyOneState[T] {
		if s.seen == 0 {
			return onlyOneState[T]{seen: 1, value: e}
		}
		return onlyOneState[T]{seen: 2}
	}, func(l, r onlyOneState[T]) onlyOneState[T] {
		switch {
		case l.seen == 0:
			return r
		case r.seen == 0:
			return l
		default:
			return onlyOneState[T]{seen: 2}
		}
	}, func(s onlyOneState[T]) Optional[T] {
		if s.seen == 1 {
			return Some(s.value)
		}
		return Absent[T]()
	}, func(s onlyOneState[T]) bool {
		return s.seen > 1
	}, Unordered)
}

// OnlyOneMatching returns the element satisfying the predicate if exactly one of them does. It is finished as soon as
// a second matching element is seen.
func OnlyOneMatching[T any](predicate func(T) bool) Reducer[T, Optional[T]] {
	return Filtering(predicate, OnlyOne[T]())
}

//
// Head and tail
//

// Head collects at most n first elements. It is finished once n elements are collected.
func Head[T any](n int) Reducer[T, []T] {
	if n <= 0 {
		return Constant[T]([]T{})
	}
	return OfCancellable[T, []T, []T](func() []T {
		return make([]T, 0, min(n, 16))
	}, func(s []T, e T) []T {
		if len(s) < n {
			s = append(s, e)
		}
		return s
	}, func(l, r []T) []T {
		if missing := n - len(l); missing > 0 {
			l = append(l, r[:min(missing, len(r))]...)
		}
		return l
	}, func(s []T) []T {
		return s
	}, func(s []T) bool {
		return len(s) >= n
	}, IdentityFinish)
}

// Tail collects at most n last elements.
func Tail[T any](n int) Reducer[T, []T] {
	if n <= 0 {
		return Constant[T]([]T{})
	}
	keepLast := func(s []T) []T {
		if len(s) <= n {
			return s
		}
		return slices.Clone(s[len(s)-n:])
	}
	return Of[T, []T, []T](func() []T {
		return nil
	}, func(s []T, e T) []T {
		s = append(s, e)
		if len(s)-n >= n {
			s = keepLast(s)
		}
		return s
	}, func(l, r []T) []T {
		return keepLast(append(l, r...))
	}, func(s []T) []T {
		return slices.Clone(s[max(0, len(s)-n):])
	}, None)
}

//
// Distinct elements
//

type distinctState[T any, K comparable] struct {
	keys   []K
	values map[K]T
}

func (s *distinctState[T, K]) add(k K, v T) {
	if _, found := s.values[k]; found {
		return
	}
	s.keys = append(s.keys, k)
	s.values[k] = v
}

// DistinctBy collects the elements for which mapper returns distinct values. When several elements map to the same
// value, only the first one is kept. Encounter order is preserved.
func DistinctBy[T any, K comparable](mapper func(T) K) Reducer[T, []T] {
	return Of[T, *distinctState[T, K], []T](func() *distinctState[T, K] {
		return &distinctState[T, K]{values: map[K]T{}}
	}, func(s *distinctState[T, K], e T) *distinctState[T, K] {
		s.add(mapper(e), e)
		return s
	}, func(l, r *distinctState[T, K]) *distinctState[T, K] {
		for _, k := range r.keys {
			l.add(k, r.values[k])
		}
		return l
	}, func(s *distinctState[T, K]) []T {
		result := make([]T, 0, len(s.keys))
		for _, k := range s.keys {
			result = append(result, s.values[k])
		}
		return result
	}, None)
}

// DistinctCount counts the distinct values returned by mapper.
func DistinctCount[T any, K comparable](mapper func(T) K) Reducer[T, int] {
	return Of[T, mapset.Set[K], int](func() mapset.Set[K] {
		return mapset.NewThreadUnsafeSet[K]()
	}, func(s mapset.Set[K], e T) mapset.Set[K] {
		s.Add(mapper(e))
		return s
	}, func(l, r mapset.Set[K]) mapset.Set[K] {
		_ = l.Append(r.ToSlice()...)
		return l
	}, mapset.Set[K].Cardinality, Unordered)
}

type intersectionState[T comparable] struct {
	set mapset.Set[T]
}

// Intersecting computes the intersection of all the input sets. It is finished once the intersection is empty.
func Intersecting[T comparable]() Reducer[mapset.Set[T], mapset.Set[T]] {
	return OfCancellable[mapset.Set[T], *intersectionState[T], mapset.Set[T]](func() *intersectionState[T] {
		return &intersectionState[T]{}
	}, func(s *intersectionState[T], e mapset.Set[T]) *intersectionState[T] {
		if s.set == nil {
			s.set = e.Clone()
		} else {
			s.set = s.set.Intersect(e)
		}
		return s
	}, func(l, r *intersectionState[T]) *intersectionState[T] {
		if l.set == nil {
			return r
		}
		if r.set != nil {
			l.set = l.set.Intersect(r.set)
		}
		return l
	}, func(s *intersectionState[T]) mapset.Set[T] {
		if s.set == nil {
			return mapset.NewSet[T]()
		}
		return s.set.Clone()
	}, func(s *intersectionState[T]) bool {
		return s.set != nil && s.set.Cardinality() == 0
	}, Unordered)
}
