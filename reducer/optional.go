/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package reducer

import "fmt"

// Optional describes a result which may be absent, e.g. the minimum of an empty input.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present optional value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Absent returns an empty optional value.
func Absent[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent states whether a value is present.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the value if present or else returns defaultValue.
func (o Optional[T]) OrElse(defaultValue T) T {
	if o.present {
		return o.value
	}
	return defaultValue
}

// ToOptional returns a reference to the value or nil if absent.
func (o Optional[T]) ToOptional() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return fmt.Sprintf("Optional[%v]", o.value)
}
