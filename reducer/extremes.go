/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import (
	"cmp"
	"math"
)

type extremeState[T any] struct {
	value   T
	present bool
	state   any
}

// MaxAllTo reduces using downstream every element equal to the greatest element according to cmp. A strictly greater
// element discards everything that was folded before it. An undefined downstream gives an undefined reducer.
func MaxAllTo[T, R any](cmp func(a, b T) int, downstream Reducer[T, R]) (maxAll Reducer[T, R]) {
	if downstream.Check() != nil {
		return
	}
	return New[T, *extremeState[T], R](func() *extremeState[T] {
		return &extremeState[T]{}
	}, func(s *extremeState[T], e T) (*extremeState[T], error) {
		if !s.present {
			s.value, s.present, s.state = e, true, downstream.Create()
		} else if c := cmp(e, s.value); c > 0 {
			s.value, s.state = e, downstream.Create()
		} else if c < 0 || downstream.IsFinished(s.state) {
			return s, nil
		}
		state, err := downstream.Fold(s.state, e)
		s.state = state
		return s, err
	}, func(l, r *extremeState[T]) (*extremeState[T], error) {
		if !r.present {
			return l, nil
		}
		if !l.present {
			return r, nil
		}
		c := cmp(l.value, r.value)
		switch {
		case c > 0:
			return l, nil
		case c < 0:
			return r, nil
		}
		state, err := downstream.Merge(l.state, r.state)
		l.state = state
		return l, err
	}, func(s *extremeState[T]) (R, error) {
		if !s.present {
			return downstream.Finish(downstream.Create())
		}
		return downstream.Finish(s.state)
	}, downstream.characteristics.Intersect(Unordered))
}

// MinAllTo is similar to MaxAllTo but for the least elements.
func MinAllTo[T, R any](cmp func(a, b T) int, downstream Reducer[T, R]) Reducer[T, R] {
	return MaxAllTo(reversed(cmp), downstream)
}

// MaxAllFunc returns the elements equal to the greatest element according to cmp, in encounter order. At most atMost
// elements are returned: later ties are dropped. A negative or zero atMost returns an empty result without consuming
// any input. Use math.MaxInt for no limit.
func MaxAllFunc[T any](cmp func(a, b T) int, atMost int) Reducer[T, []T] {
	if atMost <= 0 {
		return Constant[T]([]T{})
	}
	return MaxAllTo(cmp, Head[T](atMost))
}

// MinAllFunc is similar to MaxAllFunc but for the least elements.
func MinAllFunc[T any](cmp func(a, b T) int, atMost int) Reducer[T, []T] {
	return MaxAllFunc(reversed(cmp), atMost)
}

// MaxAll returns all the elements equal to the greatest element in natural order.
func MaxAll[T cmp.Ordered]() Reducer[T, []T] {
	return MaxAllFunc(cmp.Compare[T], math.MaxInt)
}

// MinAll returns all the elements equal to the least element in natural order.
func MinAll[T cmp.Ordered]() Reducer[T, []T] {
	return MinAllFunc(cmp.Compare[T], math.MaxInt)
}
