/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reducertest provides utilities to check that reducers behave consistently whichever way their input is
// split, and to evaluate them concurrently.
package reducertest

import (
	"context"
	"fmt"
	"slices"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/sync/errgroup"

	"github.com/ARM-software/golang-utils/reducers/commonerrors"
	"github.com/ARM-software/golang-utils/reducers/reducer"
)

// CollectSplit folds input[:split] and input[split:] into two distinct states, merges them and finishes the result.
func CollectSplit[T, R any](r reducer.Reducer[T, R], input []T, split int) (result R, err error) {
	if split < 0 || split > len(input) {
		err = commonerrors.Newf(commonerrors.ErrOutOfRange, "split point %v is outside [0, %v]", split, len(input))
		return
	}
	left, err := reducer.FoldSequence(r, nil, slices.Values(input[:split]))
	if err != nil {
		return
	}
	right, err := reducer.FoldSequence(r, nil, slices.Values(input[split:]))
	if err != nil {
		return
	}
	merged, err := r.Merge(left, right)
	if err != nil {
		return
	}
	return r.Finish(merged)
}

// VerifySplits checks that, for every split point of the input, merging the two partial states gives the expected
// result. It also checks that a sequential collection gives the same result and that finishing twice does not
// change it. All the discrepancies are reported.
func VerifySplits[T, R any](r reducer.Reducer[T, R], input []T, expected R) error {
	var errs []error
	check := func(description string, result R, err error) {
		if err != nil {
			errs = append(errs, commonerrors.WrapErrorf(commonerrors.ErrUnexpected, err, "%v failed", description))
			return
		}
		if !assert.ObjectsAreEqual(expected, result) {
			errs = append(errs, commonerrors.Newf(commonerrors.ErrInvalid, "%v returned %v instead of %v", description, result, expected))
		}
	}
	result, err := reducer.CollectSlice(input, r)
	check("sequential collection", result, err)
	for i := 0; i <= len(input); i++ {
		result, err = CollectSplit(r, input, i)
		check(fmt.Sprintf("collection split at %v", i), result, err)
	}
	state, err := reducer.FoldSequence(r, nil, slices.Values(input))
	if err == nil {
		_, err = r.Finish(state)
	}
	if err == nil {
		result, err = r.Finish(state)
	}
	check("second finish", result, err)
	return commonerrors.Join(errs...)
}

// AssertSplits asserts that VerifySplits succeeds.
func AssertSplits[T, R any](t testing.TB, r reducer.Reducer[T, R], input []T, expected R) bool {
	t.Helper()
	return assert.NoError(t, VerifySplits(r, input, expected))
}

// Chunks splits the input into at most n contiguous chunks of similar sizes.
func Chunks[T any](input []T, n int) (chunks [][]T, err error) {
	err = validation.Validate(n, validation.Required, validation.Min(1))
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid number of chunks")
		return
	}
	size := (len(input) + n - 1) / n
	if size == 0 {
		chunks = [][]T{input}
		return
	}
	chunks = slices.Collect(slices.Chunk(input, size))
	return
}

// CollectConcurrently folds each chunk of the input in its own goroutine then merges the partial states in
// encounter order and finishes the result.
func CollectConcurrently[T, R any](ctx context.Context, r reducer.Reducer[T, R], input []T, chunks int) (result R, err error) {
	parts, err := Chunks(input, chunks)
	if err != nil {
		return
	}
	states := make([]any, len(parts))
	g, gCtx := errgroup.WithContext(ctx)
	for i := range parts {
		g.Go(func() (err error) {
			err = commonerrors.ErrFromContext(gCtx)
			if err != nil {
				return
			}
			states[i], err = reducer.FoldSequence(r, nil, slices.Values(parts[i]))
			return
		})
	}
	err = g.Wait()
	if err != nil {
		return
	}
	merged := states[0]
	for i := 1; i < len(states); i++ {
		merged, err = r.Merge(merged, states[i])
		if err != nil {
			return
		}
	}
	return r.Finish(merged)
}

// CollectShared folds the input from several goroutines into one shared state. Only concurrent reducers support this.
func CollectShared[T, R any](ctx context.Context, r reducer.Reducer[T, R], input []T, workers int) (result R, err error) {
	if !r.Characteristics().Has(reducer.Concurrent) {
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "reducer %v is not concurrent", r.Characteristics())
		return
	}
	parts, err := Chunks(input, workers)
	if err != nil {
		return
	}
	err = r.Check()
	if err != nil {
		return
	}
	state := r.Create()
	g, gCtx := errgroup.WithContext(ctx)
	for i := range parts {
		g.Go(func() (err error) {
			for _, e := range parts[i] {
				err = commonerrors.ErrFromContext(gCtx)
				if err != nil {
					return
				}
				_, err = r.Fold(state, e)
				if err != nil {
					return
				}
			}
			return
		})
	}
	err = g.Wait()
	if err != nil {
		return
	}
	return r.Finish(state)
}
