/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import "iter"

// AndThen applies f to the result of r. The short-circuit predicate of r is kept.
func AndThen[T, R, U any](r Reducer[T, R], f func(R) U) Reducer[T, U] {
	return AndThenE(r, func(v R) (U, error) {
		return f(v), nil
	})
}

// AndThenE is similar to AndThen but f may fail.
func AndThenE[T, R, U any](r Reducer[T, R], f func(R) (U, error)) Reducer[T, U] {
	finish := r.finish
	return Reducer[T, U]{
		create: r.create,
		fold:   r.fold,
		merge:  r.merge,
		finish: func(s any) (result U, err error) {
			v, err := finish(s)
			if err != nil {
				return
			}
			return f(v)
		},
		finished:        r.finished,
		characteristics: r.characteristics.Without(IdentityFinish),
	}
}

// Filtering only folds into r the elements satisfying the predicate.
func Filtering[T, R any](predicate func(T) bool, r Reducer[T, R]) Reducer[T, R] {
	fold := r.fold
	r.fold = func(s any, e T) (any, error) {
		if !predicate(e) {
			return s, nil
		}
		return fold(s, e)
	}
	return r
}

// Mapping transforms every element using mapper before folding it into r. Once r is finished, elements are no longer
// transformed.
func Mapping[T, U, R any](mapper func(T) U, r Reducer[U, R]) Reducer[T, R] {
	fold := r.fold
	return Reducer[T, R]{
		create: r.create,
		fold: func(s any, e T) (any, error) {
			if r.IsFinished(s) {
				return s, nil
			}
			return fold(s, mapper(e))
		},
		merge:           r.merge,
		finish:          r.finish,
		finished:        r.finished,
		characteristics: r.characteristics,
	}
}

// FlatMapping expands every element into a sequence using mapper and folds each of its values into r. A nil sequence
// is considered empty. Iteration over a sequence is abandoned as soon as r is finished or fails, so that the sequence
// can release whatever it holds.
func FlatMapping[T, U, R any](mapper func(T) iter.Seq[U], r Reducer[U, R]) Reducer[T, R] {
	fold := r.fold
	return Reducer[T, R]{
		create: r.create,
		fold: func(s any, e T) (state any, err error) {
			state = s
			if r.IsFinished(state) {
				return
			}
			values := mapper(e)
			if values == nil {
				return
			}
			for v := range values {
				state, err = fold(state, v)
				if err != nil || r.IsFinished(state) {
					break
				}
			}
			return
		},
		merge:           r.merge,
		finish:          r.finish,
		finished:        r.finished,
		characteristics: r.characteristics,
	}
}

type matchState struct {
	state    any
	matching bool
}

// IfAllMatch returns the result of r if every element satisfies the predicate, and nothing otherwise. It is finished
// as soon as an element does not match.
func IfAllMatch[T, R any](predicate func(T) bool, r Reducer[T, R]) (matching Reducer[T, Optional[R]]) {
	if r.Check() != nil {
		return
	}
	return NewCancellable[T, *matchState, Optional[R]](func() *matchState {
		return &matchState{state: r.Create(), matching: true}
	}, func(s *matchState, e T) (*matchState, error) {
		if !s.matching {
			return s, nil
		}
		if !predicate(e) {
			s.matching = false
			s.state = nil
			return s, nil
		}
		state, err := r.Fold(s.state, e)
		s.state = state
		return s, err
	}, func(l, rs *matchState) (*matchState, error) {
		if !l.matching || !rs.matching {
			return &matchState{}, nil
		}
		state, err := r.Merge(l.state, rs.state)
		l.state = state
		return l, err
	}, func(s *matchState) (Optional[R], error) {
		if !s.matching {
			return Absent[R](), nil
		}
		v, err := r.Finish(s.state)
		if err != nil {
			return Absent[R](), err
		}
		return Some(v), nil
	}, func(s *matchState) bool {
		return !s.matching
	}, r.characteristics.Intersect(Unordered))
}
