/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs provides logr back-ends which reductions can be traced to using reducer.Logged.
package logs

import (
	"fmt"
	"log"
	"os"

	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"github.com/go-logr/zerologr"
	"github.com/hashicorp/go-hclog"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/ARM-software/golang-utils/reducers/commonerrors"
)

// Backend identifies a logging library.
type Backend int

const (
	Discard Backend = iota
	StdOut
	StdLib
	Zap
	Logrus
	Hclog
	Zerolog
)

var backendNames = map[Backend]string{
	Discard: "discard",
	StdOut:  "stdout",
	StdLib:  "stdlib",
	Zap:     "zap",
	Logrus:  "logrus",
	Hclog:   "hclog",
	Zerolog: "zerolog",
}

func (b Backend) String() string {
	if name, found := backendNames[b]; found {
		return name
	}
	return fmt.Sprintf("backend(%d)", int(b))
}

// NewLogger returns a logger named `name` writing to the given back-end with its default settings.
func NewLogger(backend Backend, name string) (logger logr.Logger, err error) {
	switch backend {
	case Discard:
		logger = logr.Discard()
	case StdOut:
		logger = NewStdOutLogr()
	case StdLib:
		logger = NewStdLibLogger(log.New(os.Stderr, "", log.LstdFlags))
	case Zap:
		zl, subErr := zap.NewProduction()
		if subErr != nil {
			err = commonerrors.WrapError(commonerrors.ErrUnexpected, subErr, "could not create zap logger")
			return
		}
		logger = NewZapLogger(zl)
	case Logrus:
		logger = NewLogrusLogger(logrus.New())
	case Hclog:
		return NewHclogLogger(hclog.New(&hclog.LoggerOptions{Name: name})), nil
	case Zerolog:
		zl := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger = NewZerologLogger(&zl)
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "unknown logging back-end %v", backend)
		return
	}
	if name != "" {
		logger = logger.WithName(name)
	}
	return
}

// NewStdOutLogr returns a logger to standard output.
func NewStdOutLogr() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Printf("%s: %s\n", prefix, args)
		} else {
			fmt.Println(args)
		}
	}, funcr.Options{})
}

// NewStdLibLogger returns a logger writing to a standard library logger.
func NewStdLibLogger(logger *log.Logger) logr.Logger {
	return stdr.New(logger)
}

// NewZapLogger returns a logger backed by zap.
func NewZapLogger(logger *zap.Logger) logr.Logger {
	return zapr.NewLogger(logger)
}

// NewLogrusLogger returns a logger backed by logrus.
func NewLogrusLogger(logger logrus.FieldLogger, opts ...logrusr.Option) logr.Logger {
	return logrusr.New(logger, opts...)
}

// NewHclogLogger returns a logger backed by HCLog.
func NewHclogLogger(logger hclog.Logger) logr.Logger {
	return hclogr.Wrap(logger)
}

// NewZerologLogger returns a logger backed by zerolog.
func NewZerologLogger(logger *zerolog.Logger) logr.Logger {
	return zerologr.New(logger)
}
