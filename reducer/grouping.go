/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import (
	mapset "github.com/deckarep/golang-set/v2"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-utils/reducers/commonerrors"
)

// Partitioning splits elements in two groups depending on the predicate and reduces each group using r.
// The result always contains both a `true` and a `false` entry.
func Partitioning[T, R any](predicate func(T) bool, r Reducer[T, R]) Reducer[T, map[bool]R] {
	return Pairing(Filtering(predicate, r), Filtering(func(e T) bool {
		return !predicate(e)
	}, r), func(matching, others R) map[bool]R {
		return map[bool]R{true: matching, false: others}
	})
}

// GroupingBy groups elements by the key returned by classifier and reduces each group using r.
func GroupingBy[T any, K comparable, R any](classifier func(T) K, r Reducer[T, R]) (grouping Reducer[T, map[K]R]) {
	if r.Check() != nil {
		return
	}
	return New[T, map[K]any, map[K]R](newGroups[K], func(groups map[K]any, e T) (map[K]any, error) {
		return groups, foldIntoGroup(groups, classifier(e), e, r)
	}, func(l, rg map[K]any) (map[K]any, error) {
		return l, mergeGroups(l, rg, r)
	}, func(groups map[K]any) (result map[K]R, err error) {
		result = make(map[K]R, len(groups))
		for k, s := range groups {
			result[k], err = r.Finish(s)
			if err != nil {
				return
			}
		}
		return
	}, r.characteristics.Intersect(Unordered))
}

// GroupingByDomain is similar to GroupingBy but the keys must belong to domain. A key outside the domain makes the
// reduction fail with commonerrors.ErrOutOfRange. The result has an entry for every key of the domain: keys which were
// never seen are mapped to the result of r for an empty input.
//
// The grouping is only finished when every key of the domain has been seen and its reduction is finished.
func GroupingByDomain[T any, K comparable, R any](domain mapset.Set[K], classifier func(T) K, r Reducer[T, R]) (grouping Reducer[T, map[K]R], err error) {
	err = validation.Validate(domain, validation.NotNil)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "key domain must be defined")
		return
	}
	err = validation.Validate(domain.Cardinality(), validation.Required, validation.Min(1))
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "key domain must not be empty")
		return
	}
	err = r.Check()
	if err != nil {
		return
	}
	keys := domain.Clone()
	var finished FinishedFunc[map[K]any]
	if r.Cancellable() {
		finished = func(groups map[K]any) bool {
			if len(groups) != keys.Cardinality() {
				return false
			}
			for _, s := range groups {
				if !r.IsFinished(s) {
					return false
				}
			}
			return true
		}
	}
	grouping = NewCancellable[T, map[K]any, map[K]R](newGroups[K], func(groups map[K]any, e T) (map[K]any, error) {
		k := classifier(e)
		if !keys.Contains(k) {
			return groups, commonerrors.Newf(commonerrors.ErrOutOfRange, "key %v is not part of the domain %v", k, keys)
		}
		return groups, foldIntoGroup(groups, k, e, r)
	}, func(l, rg map[K]any) (map[K]any, error) {
		return l, mergeGroups(l, rg, r)
	}, func(groups map[K]any) (result map[K]R, err error) {
		result = make(map[K]R, keys.Cardinality())
		for _, k := range keys.ToSlice() {
			s, found := groups[k]
			if !found {
				s = r.Create()
			}
			result[k], err = r.Finish(s)
			if err != nil {
				return
			}
		}
		return
	}, finished, r.characteristics.Intersect(Unordered))
	return
}

func newGroups[K comparable]() map[K]any {
	return map[K]any{}
}

func foldIntoGroup[T any, K comparable, R any](groups map[K]any, k K, e T, r Reducer[T, R]) (err error) {
	s, found := groups[k]
	if !found {
		s = r.Create()
	}
	if !r.IsFinished(s) {
		s, err = r.Fold(s, e)
	}
	groups[k] = s
	return
}

func mergeGroups[T any, K comparable, R any](l, rg map[K]any, r Reducer[T, R]) error {
	for k, rs := range rg {
		ls, found := l[k]
		if !found {
			l[k] = rs
			continue
		}
		merged, err := r.Merge(ls, rs)
		if err != nil {
			return err
		}
		l[k] = merged
	}
	return nil
}
