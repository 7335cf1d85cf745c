/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import (
	"iter"
	"slices"
)

//
// Sequential driver
//

// Collect folds every element of the sequence into a new state of r and returns the finished result.
// Iteration stops as soon as r reports that it is finished.
func Collect[T, R any](s iter.Seq[T], r Reducer[T, R]) (result R, err error) {
	state, err := FoldSequence(r, nil, s)
	if err != nil {
		return
	}
	return r.Finish(state)
}

// CollectSlice is similar to Collect but works on a slice.
func CollectSlice[S ~[]T, T, R any](s S, r Reducer[T, R]) (R, error) {
	return Collect(slices.Values(s), r)
}

// FoldSequence folds the elements of the sequence into an existing state and returns the new state without finishing it.
// This is useful for folding one partition of a larger input before merging it with others. A nil state is replaced by
// a new one.
func FoldSequence[T, R any](r Reducer[T, R], state any, s iter.Seq[T]) (any, error) {
	err := r.Check()
	if err != nil {
		return state, err
	}
	if state == nil {
		state = r.Create()
	}
	if r.IsFinished(state) || s == nil {
		return state, nil
	}
	for e := range s {
		state, err = r.Fold(state, e)
		if err != nil {
			return state, err
		}
		if r.IsFinished(state) {
			break
		}
	}
	return state, nil
}
