/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import (
	"github.com/go-logr/logr"
)

// Logged decorates r so that its activity is reported using logger. Failures are logged as errors whereas merges,
// finishes and short-circuits are logged at verbosity level 1. A short-circuit is reported by the fold or merge which
// finishes the state.
func Logged[T, R any](r Reducer[T, R], logger logr.Logger, name string) Reducer[T, R] {
	logger = logger.WithValues("reducer", name)
	fold, merge, finish, finished := r.fold, r.merge, r.finish, r.finished
	// only the transition to a finished state is reported
	reportFinished := func(before bool, state any) {
		if finished != nil && !before && finished(state) {
			logger.V(1).Info("short-circuit reached")
		}
	}
	r.fold = func(s any, e T) (any, error) {
		before := finished != nil && finished(s)
		state, err := fold(s, e)
		if err != nil {
			logger.Error(err, "failed folding element", "element", e)
			return state, err
		}
		reportFinished(before, state)
		return state, err
	}
	r.merge = func(left, right any) (any, error) {
		logger.V(1).Info("merging partial states")
		before := finished != nil && (finished(left) || finished(right))
		state, err := merge(left, right)
		if err != nil {
			logger.Error(err, "failed merging partial states")
			return state, err
		}
		reportFinished(before, state)
		return state, err
	}
	r.finish = func(s any) (result R, err error) {
		result, err = finish(s)
		if err != nil {
			logger.Error(err, "failed finishing reduction")
			return
		}
		logger.V(1).Info("finished reduction", "result", result)
		return
	}
	return r
}
