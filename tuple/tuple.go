/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package tuple defines small fixed-arity carriers used to return several results at once.
package tuple

import (
	"fmt"

	"github.com/ARM-software/golang-utils/reducers/commonerrors"
)

// Tuple2 holds two values.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Tuple3 holds three values.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Tuple4 holds four values.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Tuple5 holds five values.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Of2 returns a Tuple2.
func Of2[A, B any](a A, b B) Tuple2[A, B] {
	return Tuple2[A, B]{V1: a, V2: b}
}

// Of3 returns a Tuple3.
func Of3[A, B, C any](a A, b B, c C) Tuple3[A, B, C] {
	return Tuple3[A, B, C]{V1: a, V2: b, V3: c}
}

// Of4 returns a Tuple4.
func Of4[A, B, C, D any](a A, b B, c C, d D) Tuple4[A, B, C, D] {
	return Tuple4[A, B, C, D]{V1: a, V2: b, V3: c, V4: d}
}

// Of5 returns a Tuple5.
func Of5[A, B, C, D, E any](a A, b B, c C, d D, e E) Tuple5[A, B, C, D, E] {
	return Tuple5[A, B, C, D, E]{V1: a, V2: b, V3: c, V4: d, V5: e}
}

func (t Tuple2[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", t.V1, t.V2)
}

func (t Tuple3[A, B, C]) String() string {
	return fmt.Sprintf("(%v, %v, %v)", t.V1, t.V2, t.V3)
}

func (t Tuple4[A, B, C, D]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.V1, t.V2, t.V3, t.V4)
}

func (t Tuple5[A, B, C, D, E]) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v, %v)", t.V1, t.V2, t.V3, t.V4, t.V5)
}

// Values returns the content of the tuple as a slice.
func (t Tuple2[A, B]) Values() []any {
	return []any{t.V1, t.V2}
}

// Values returns the content of the tuple as a slice.
func (t Tuple3[A, B, C]) Values() []any {
	return []any{t.V1, t.V2, t.V3}
}

// Values returns the content of the tuple as a slice.
func (t Tuple4[A, B, C, D]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4}
}

// Values returns the content of the tuple as a slice.
func (t Tuple5[A, B, C, D, E]) Values() []any {
	return []any{t.V1, t.V2, t.V3, t.V4, t.V5}
}

// From2 builds a Tuple2 from a slice of values. Values must be of the expected types.
func From2[A, B any](values []any) (t Tuple2[A, B], err error) {
	err = checkLength(values, 2)
	if err != nil {
		return
	}
	t.V1, err = element[A](values, 0)
	if err != nil {
		return
	}
	t.V2, err = element[B](values, 1)
	return
}

// From3 builds a Tuple3 from a slice of values. Values must be of the expected types.
func From3[A, B, C any](values []any) (t Tuple3[A, B, C], err error) {
	err = checkLength(values, 3)
	if err != nil {
		return
	}
	head, err := From2[A, B](values[:2])
	if err != nil {
		return
	}
	t.V1, t.V2 = head.V1, head.V2
	t.V3, err = element[C](values, 2)
	return
}

// From4 builds a Tuple4 from a slice of values. Values must be of the expected types.
func From4[A, B, C, D any](values []any) (t Tuple4[A, B, C, D], err error) {
	err = checkLength(values, 4)
	if err != nil {
		return
	}
	head, err := From3[A, B, C](values[:3])
	if err != nil {
		return
	}
	t.V1, t.V2, t.V3 = head.V1, head.V2, head.V3
	t.V4, err = element[D](values, 3)
	return
}

// From5 builds a Tuple5 from a slice of values. Values must be of the expected types.
func From5[A, B, C, D, E any](values []any) (t Tuple5[A, B, C, D, E], err error) {
	err = checkLength(values, 5)
	if err != nil {
		return
	}
	head, err := From4[A, B, C, D](values[:4])
	if err != nil {
		return
	}
	t.V1, t.V2, t.V3, t.V4 = head.V1, head.V2, head.V3, head.V4
	t.V5, err = element[E](values, 4)
	return
}

func checkLength(values []any, expected int) error {
	if len(values) != expected {
		return commonerrors.Newf(commonerrors.ErrInvalid, "expected %v values but got %v", expected, len(values))
	}
	return nil
}

func element[V any](values []any, i int) (v V, err error) {
	if values[i] == nil {
		return
	}
	v, ok := values[i].(V)
	if !ok {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "value #%v of type %T cannot be converted to %T", i, values[i], v)
	}
	return
}
