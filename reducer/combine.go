/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import (
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-utils/reducers/commonerrors"
	"github.com/ARM-software/golang-utils/reducers/tuple"
)

type combinedState struct {
	states []any
}

// Combine folds every element into each of the reducers and returns their results in the same order.
// The combination is finished only when all the reducers are; if any of them is not cancellable, neither is the combination.
func Combine[T any](rs ...Reducer[T, any]) (Reducer[T, []any], error) {
	err := validation.Validate(rs, validation.Required)
	if err != nil {
		return Reducer[T, []any]{}, commonerrors.WrapError(commonerrors.ErrInvalid, err, "no reducer to combine")
	}
	for i := range rs {
		err = rs[i].Check()
		if err != nil {
			return Reducer[T, []any]{}, commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "reducer #%v cannot be combined", i)
		}
	}
	return combine(slices.Clone(rs)), nil
}

func combine[T any](rs []Reducer[T, any]) Reducer[T, []any] {
	characteristics := make([]Characteristics, 0, len(rs))
	cancellable := true
	for i := range rs {
		characteristics = append(characteristics, rs[i].characteristics)
		cancellable = cancellable && rs[i].Cancellable()
	}
	var finished FinishedFunc[*combinedState]
	if cancellable {
		finished = func(s *combinedState) bool {
			for i := range rs {
				if !rs[i].IsFinished(s.states[i]) {
					return false
				}
			}
			return true
		}
	}
	return NewCancellable[T, *combinedState, []any](func() *combinedState {
		s := &combinedState{states: make([]any, len(rs))}
		for i := range rs {
			s.states[i] = rs[i].Create()
		}
		return s
	}, func(s *combinedState, e T) (*combinedState, error) {
		for i := range rs {
			if rs[i].IsFinished(s.states[i]) {
				continue
			}
			state, err := rs[i].Fold(s.states[i], e)
			if err != nil {
				return s, err
			}
			// concurrent states are folded in place and may be shared by other goroutines
			if !rs[i].characteristics.Has(Concurrent) {
				s.states[i] = state
			}
		}
		return s, nil
	}, func(l, r *combinedState) (*combinedState, error) {
		for i := range rs {
			state, err := rs[i].Merge(l.states[i], r.states[i])
			if err != nil {
				return l, err
			}
			l.states[i] = state
		}
		return l, nil
	}, func(s *combinedState) ([]any, error) {
		results := make([]any, 0, len(rs))
		for i := range rs {
			v, err := rs[i].Finish(s.states[i])
			if err != nil {
				return nil, err
			}
			results = append(results, v)
		}
		return results, nil
	}, finished, intersection(characteristics...).Without(IdentityFinish))
}

// Combine2 combines two reducers into one returning both results.
func Combine2[T, R1, R2 any](r1 Reducer[T, R1], r2 Reducer[T, R2]) (r Reducer[T, tuple.Tuple2[R1, R2]], err error) {
	c, err := Combine(r1.Untyped(), r2.Untyped())
	if err != nil {
		return
	}
	r = AndThenE(c, tuple.From2[R1, R2])
	return
}

// Combine3 combines three reducers into one returning all results.
func Combine3[T, R1, R2, R3 any](r1 Reducer[T, R1], r2 Reducer[T, R2], r3 Reducer[T, R3]) (r Reducer[T, tuple.Tuple3[R1, R2, R3]], err error) {
	c, err := Combine(r1.Untyped(), r2.Untyped(), r3.Untyped())
	if err != nil {
		return
	}
	r = AndThenE(c, tuple.From3[R1, R2, R3])
	return
}

// Combine4 combines four reducers into one returning all results.
func Combine4[T, R1, R2, R3, R4 any](r1 Reducer[T, R1], r2 Reducer[T, R2], r3 Reducer[T, R3], r4 Reducer[T, R4]) (r Reducer[T, tuple.Tuple4[R1, R2, R3, R4]], err error) {
	c, err := Combine(r1.Untyped(), r2.Untyped(), r3.Untyped(), r4.Untyped())
	if err != nil {
		return
	}
	r = AndThenE(c, tuple.From4[R1, R2, R3, R4])
	return
}

// Combine5 combines five reducers into one returning all results.
func Combine5[T, R1, R2, R3, R4, R5 any](r1 Reducer[T, R1], r2 Reducer[T, R2], r3 Reducer[T, R3], r4 Reducer[T, R4], r5 Reducer[T, R5]) (r Reducer[T, tuple.Tuple5[R1, R2, R3, R4, R5]], err error) {
	c, err := Combine(r1.Untyped(), r2.Untyped(), r3.Untyped(), r4.Untyped(), r5.Untyped())
	if err != nil {
		return
	}
	r = AndThenE(c, tuple.From5[R1, R2, R3, R4, R5])
	return
}

// Pairing folds every element into both reducers and combines their results using finisher.
// If either reducer is undefined, so is the pairing.
func Pairing[T, R1, R2, R any](r1 Reducer[T, R1], r2 Reducer[T, R2], finisher func(R1, R2) R) (r Reducer[T, R]) {
	if commonerrors.Join(r1.Check(), r2.Check()) != nil {
		return
	}
	return AndThen(combine([]Reducer[T, any]{r1.Untyped(), r2.Untyped()}), func(results []any) R {
		return finisher(as[R1](results[0]), as[R2](results[1]))
	})
}

// MinMax finds both the least and the greatest elements according to cmp and combines them using finisher.
// Nothing is returned for an empty input.
func MinMax[T, R any](cmp func(a, b T) int, finisher func(least, greatest T) R) Reducer[T, Optional[R]] {
	return Pairing(MinBy(cmp), MaxBy(cmp), func(least, greatest Optional[T]) Optional[R] {
		if !least.present || !greatest.present {
			return Absent[R]()
		}
		return Some(finisher(least.value, greatest.value))
	})
}
