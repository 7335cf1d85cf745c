/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import "strings"

// Characteristics is a set of flags describing properties of a reducer which an engine may rely on.
type Characteristics uint8

const (
	// Unordered states that the result does not depend on the order of the input.
	Unordered Characteristics = 1 << iota
	// Concurrent states that the accumulator state tolerates concurrent folding without external synchronisation.
	// Concurrent reducers fold in place and return the state they were given.
	Concurrent
	// IdentityFinish states that finishing is the identity function.
	IdentityFinish
)

// None is the empty set of characteristics.
const None Characteristics = 0

var characteristicNames = []struct {
	flag Characteristics
	name string
}{
	{Unordered, "UNORDERED"},
	{Concurrent, "CONCURRENT"},
	{IdentityFinish, "IDENTITY_FINISH"},
}

// Has returns whether all the flags in `flags` are set.
func (c Characteristics) Has(flags Characteristics) bool {
	return c&flags == flags
}

// Intersect returns the flags present in both sets.
func (c Characteristics) Intersect(other Characteristics) Characteristics {
	return c & other
}

// Without returns the set with `flags` removed.
func (c Characteristics) Without(flags Characteristics) Characteristics {
	return c &^ flags
}

// With returns the set with `flags` added.
func (c Characteristics) With(flags Characteristics) Characteristics {
	return c | flags
}

func (c Characteristics) String() string {
	var names []string
	for _, n := range characteristicNames {
		if c.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return "[" + strings.Join(names, ",") + "]"
}

// intersection returns the flags common to every set. An empty list has no flags.
func intersection(sets ...Characteristics) Characteristics {
	if len(sets) == 0 {
		return None
	}
	common := sets[0]
	for i := 1; i < len(sets) && common != None; i++ {
		common = common.Intersect(sets[i])
	}
	return common
}
