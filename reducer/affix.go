/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import "unicode/utf8"

// affixState records the common prefix or suffix as a length within the first string seen.
type affixState struct {
	value   string
	length  int
	present bool
}

type affixMatcher struct {
	// match returns the length of the common affix of a and b, limited to limit bytes.
	match func(a, b string, limit int) int
	// affix returns the affix of the given length.
	affix func(s string, length int) string
}

var (
	prefixMatcher = affixMatcher{
		match: func(a, b string, limit int) int {
			i := 0
			for i < limit && a[i] == b[i] {
				i++
			}
			// never split a multi-byte rune
			for i > 0 && !(onRuneBoundary(a, i) && onRuneBoundary(b, i)) {
				i--
			}
			return i
		},
		affix: func(s string, length int) string {
			return s[:length]
		},
	}
	suffixMatcher = affixMatcher{
		match: func(a, b string, limit int) int {
			i := 0
			for i < limit && a[len(a)-1-i] == b[len(b)-1-i] {
				i++
			}
			for i > 0 && !(onRuneBoundary(a, len(a)-i) && onRuneBoundary(b, len(b)-i)) {
				i--
			}
			return i
		},
		affix: func(s string, length int) string {
			return s[len(s)-length:]
		},
	}
)

func onRuneBoundary(s string, i int) bool {
	return i == len(s) || utf8.RuneStart(s[i])
}

func (m affixMatcher) fold(s *affixState, e string) *affixState {
	if !s.present {
		s.value, s.length, s.present = e, len(e), true
		return s
	}
	if s.length > 0 {
		s.length = m.match(s.value, e, min(s.length, len(e)))
	}
	return s
}

func (m affixMatcher) merge(l, r *affixState) *affixState {
	if !r.present {
		return l
	}
	return m.fold(l, m.result(r))
}

func (m affixMatcher) result(s *affixState) string {
	if !s.present {
		return ""
	}
	return m.affix(s.value, s.length)
}

func (m affixMatcher) reducer() Reducer[string, string] {
	return OfCancellable[string, *affixState, string](func() *affixState {
		return &affixState{}
	}, m.fold, m.merge, m.result, func(s *affixState) bool {
		return s.present && s.length == 0
	}, Unordered)
}

// CommonPrefix returns the longest common prefix of all the strings. The prefix never ends in the middle of a
// multi-byte rune. It is finished as soon as the common prefix is empty.
func CommonPrefix() Reducer[string, string] {
	return prefixMatcher.reducer()
}

// CommonSuffix returns the longest common suffix of all the strings. The suffix never starts in the middle of a
// multi-byte rune. It is finished as soon as the common suffix is empty.
func CommonSuffix() Reducer[string, string] {
	return suffixMatcher.reducer()
}
