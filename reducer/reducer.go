/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reducer provides composable reduction combinators.
//
// A Reducer describes how a sequence of elements is folded into a result. Partial results computed on disjoint
// sub-sequences can be merged, which lets an engine split the input and evaluate it in parallel. A reducer may also
// expose a short-circuit predicate reporting that no further input can change its result, so that an engine may
// stop feeding it early.
//
// The package does not schedule anything: Collect is a plain sequential driver and every other function only
// builds reducers.
package reducer

import (
	"github.com/ARM-software/golang-utils/reducers/commonerrors"
)

// CreateFunc creates an empty accumulator state.
type CreateFunc[A any] func() A

// FoldFunc folds an element into accumulator state. It may mutate the state in place but callers must use the returned state.
type FoldFunc[T, A any] func(A, T) (A, error)

// MergeFunc merges two accumulator states produced from disjoint partitions. The left state comes first in encounter order.
type MergeFunc[A any] func(A, A) (A, error)

// FinishFunc transforms accumulator state into a result.
type FinishFunc[A, R any] func(A) (R, error)

// FinishedFunc is a short-circuit predicate. Once true for a state, it must remain true for any state derived from it.
type FinishedFunc[A any] func(A) bool

// Reducer folds elements of type T into a result of type R.
//
// Accumulator state is opaque to callers: it is created by Create, threaded through Fold and Merge, and turned into a
// result by Finish. A Reducer value is immutable and may be shared; states may not.
type Reducer[T, R any] struct {
	create          func() any
	fold            func(any, T) (any, error)
	merge           func(any, any) (any, error)
	finish          func(any) (R, error)
	finished        func(any) bool
	characteristics Characteristics
}

// New returns a reducer from fallible callbacks. Errors returned by callbacks are propagated unchanged.
func New[T, A, R any](create CreateFunc[A], fold FoldFunc[T, A], merge MergeFunc[A], finish FinishFunc[A, R], characteristics Characteristics) Reducer[T, R] {
	return newReducer[T, A, R](create, fold, merge, finish, nil, characteristics)
}

// NewCancellable is similar to New but the reducer also reports when further input cannot change its result.
func NewCancellable[T, A, R any](create CreateFunc[A], fold FoldFunc[T, A], merge MergeFunc[A], finish FinishFunc[A, R], finished FinishedFunc[A], characteristics Characteristics) Reducer[T, R] {
	return newReducer[T, A, R](create, fold, merge, finish, finished, characteristics)
}

// Of returns a reducer from callbacks which cannot fail.
func Of[T, A, R any](create func() A, fold func(A, T) A, merge func(A, A) A, finish func(A) R, characteristics Characteristics) Reducer[T, R] {
	return New[T, A, R](create, infallibleFold(fold), infallibleMerge(merge), infallibleFinish(finish), characteristics)
}

// OfCancellable is similar to Of but the reducer also reports when further input cannot change its result.
func OfCancellable[T, A, R any](create func() A, fold func(A, T) A, merge func(A, A) A, finish func(A) R, finished func(A) bool, characteristics Characteristics) Reducer[T, R] {
	return NewCancellable[T, A, R](create, infallibleFold(fold), infallibleMerge(merge), infallibleFinish(finish), finished, characteristics)
}

// OfIdentity returns a reducer whose result is its accumulator state.
func OfIdentity[T, A any](create func() A, fold func(A, T) A, merge func(A, A) A, characteristics Characteristics) Reducer[T, A] {
	return Of[T, A, A](create, fold, merge, func(a A) A { return a }, characteristics.With(IdentityFinish))
}

func newReducer[T, A, R any](create CreateFunc[A], fold FoldFunc[T, A], merge MergeFunc[A], finish FinishFunc[A, R], finished FinishedFunc[A], characteristics Characteristics) Reducer[T, R] {
	r := Reducer[T, R]{
		create: func() any { return create() },
		fold: func(s any, e T) (any, error) {
			return fold(as[A](s), e)
		},
		merge: func(l, r any) (any, error) {
			return merge(as[A](l), as[A](r))
		},
		finish: func(s any) (R, error) {
			return finish(as[A](s))
		},
		characteristics: characteristics,
	}
	if finished != nil {
		r.finished = func(s any) bool { return finished(as[A](s)) }
	}
	return r
}

// as converts opaque state back to its concrete type. Nil states convert to the zero value.
func as[A any](s any) (a A) {
	if s == nil {
		return
	}
	a, _ = s.(A)
	return
}

func infallibleFold[T, A any](f func(A, T) A) FoldFunc[T, A] {
	return func(a A, e T) (A, error) { return f(a, e), nil }
}

func infallibleMerge[A any](f func(A, A) A) MergeFunc[A] {
	return func(l, r A) (A, error) { return f(l, r), nil }
}

func infallibleFinish[A, R any](f func(A) R) FinishFunc[A, R] {
	return func(a A) (R, error) { return f(a), nil }
}

// Create returns a new empty accumulator state.
func (r Reducer[T, R]) Create() any {
	return r.create()
}

// Fold folds element e into state and returns the resulting state.
func (r Reducer[T, R]) Fold(state any, e T) (any, error) {
	return r.fold(state, e)
}

// Merge merges the state of a right partition into the state of a left partition. Only the returned state may be used afterwards.
func (r Reducer[T, R]) Merge(left, right any) (any, error) {
	return r.merge(left, right)
}

// Finish transforms state into the result. It does not alter state and may be called several times.
func (r Reducer[T, R]) Finish(state any) (R, error) {
	return r.finish(state)
}

// Characteristics returns the set of properties of the reducer.
func (r Reducer[T, R]) Characteristics() Characteristics {
	return r.characteristics
}

// Cancellable states whether the reducer has a short-circuit predicate.
func (r Reducer[T, R]) Cancellable() bool {
	return r.finished != nil
}

// IsFinished states whether no further input can change the result. It is always false for non-cancellable reducers.
func (r Reducer[T, R]) IsFinished(state any) bool {
	if r.finished == nil {
		return false
	}
	return r.finished(state)
}

// Check returns an error if the reducer was not built by one of the constructors.
func (r Reducer[T, R]) Check() error {
	if r.create == nil || r.fold == nil || r.merge == nil || r.finish == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "reducer is not defined")
	}
	return nil
}

// Untyped erases the result type so that reducers with different results can be combined.
func (r Reducer[T, R]) Untyped() Reducer[T, any] {
	finish := r.finish
	return Reducer[T, any]{
		create: r.create,
		fold:   r.fold,
		merge:  r.merge,
		finish: func(s any) (any, error) {
			return finish(s)
		},
		finished:        r.finished,
		characteristics: r.characteristics,
	}
}
