/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the error taxonomy shared by the reducers and helpers to build and match errors.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUndefined   = errors.New("undefined")
	ErrInvalid     = errors.New("invalid")
	ErrConflict    = errors.New("conflict")
	ErrOutOfRange  = errors.New("out of range")
	ErrUnexpected  = errors.New("unexpected")
	ErrUnsupported = errors.New("unsupported")
	ErrCancelled   = errors.New("cancelled")
	ErrTimeout     = errors.New("timeout")
)

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// CorrespondTo determines whether the description of `target` contains any of the descriptions passed (case insensitive).
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for _, d := range description {
		if strings.Contains(desc, strings.ToLower(d)) {
			return true
		}
	}
	return false
}

// New returns an error of type `targetErr` with a reason.
func New(targetErr error, msg string) error {
	if targetErr == nil {
		return errors.New(msg)
	}
	if msg == "" {
		return targetErr
	}
	return fmt.Errorf("%w: %v", targetErr, msg)
}

// Newf is similar to New but allows formatting of the message.
func Newf(targetErr error, msgFormat string, args ...any) error {
	return New(targetErr, fmt.Sprintf(msgFormat, args...))
}

// WrapError wraps an error into a particular targetError. However, if the original error is of the same type as the target error, it is passed through with the additional message.
func WrapError(targetError, originalError error, msg string) error {
	if originalError == nil {
		return New(targetError, msg)
	}
	if targetError == nil || Any(originalError, targetError) {
		if msg == "" {
			return originalError
		}
		return fmt.Errorf("%v: %w", msg, originalError)
	}
	if msg == "" {
		return fmt.Errorf("%w: %w", targetError, originalError)
	}
	return fmt.Errorf("%w: %v: %w", targetError, msg, originalError)
}

// WrapErrorf is similar to WrapError but allows formatting of the message.
func WrapErrorf(targetError, originalError error, msgFormat string, args ...any) error {
	return WrapError(targetError, originalError, fmt.Sprintf(msgFormat, args...))
}

// Join joins errors together and discards empty ones.
func Join(errs ...error) error {
	var nonEmpty []error
	for i := range errs {
		if errs[i] != nil {
			nonEmpty = append(nonEmpty, errs[i])
		}
	}
	switch len(nonEmpty) {
	case 0:
		return nil
	case 1:
		return nonEmpty[0]
	default:
		return errors.Join(nonEmpty...)
	}
}

// ConvertContextError converts a context error into common errors.
func ConvertContextError(err error) error {
	switch {
	case err == nil:
		return nil
	case Any(err, ErrCancelled, ErrTimeout):
		return err
	case Any(err, context.DeadlineExceeded):
		return WrapError(ErrTimeout, err, "")
	case Any(err, context.Canceled):
		return WrapError(ErrCancelled, err, "")
	default:
		return err
	}
}

// ErrFromContext returns the common error corresponding to the state of the context, or nil if it is still active.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ConvertContextError(ctx.Err())
}
