/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

// Dominators keeps only the elements which are not dominated by the last element kept before them. isDominator(a, b)
// states whether a dominates b and must be transitive.
//
// For instance, keeping the elements strictly greater than all the previous ones:
//
//	Dominators(func(a, b int) bool { return a >= b })
func Dominators[T any](isDominator func(a, b T) bool) Reducer[T, []T] {
	return OfIdentity[T, []T](func() []T {
		return nil
	}, func(s []T, e T) []T {
		if len(s) == 0 || !isDominator(s[len(s)-1], e) {
			s = append(s, e)
		}
		return s
	}, func(l, r []T) []T {
		if len(l) == 0 {
			return r
		}
		last := l[len(l)-1]
		i := 0
		for i < len(r) && isDominator(last, r[i]) {
			i++
		}
		return append(l, r[i:]...)
	}, None)
}
