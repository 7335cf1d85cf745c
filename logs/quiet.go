/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import "github.com/go-logr/logr"

type quietSink struct {
	logr.LogSink
}

func (s quietSink) Enabled(int) bool {
	return false
}

func (s quietSink) Info(int, string, ...any) {}

func (s quietSink) WithValues(keysAndValues ...any) logr.LogSink {
	return quietSink{LogSink: s.LogSink.WithValues(keysAndValues...)}
}

func (s quietSink) WithName(name string) logr.LogSink {
	return quietSink{LogSink: s.LogSink.WithName(name)}
}

// NewQuietLogger returns a logger which only reports errors, e.g. to trace failing reductions without the chatter
// of merges and short-circuits.
func NewQuietLogger(logger logr.Logger) logr.Logger {
	sink := logger.GetSink()
	if sink == nil {
		return logger
	}
	return logr.New(quietSink{LogSink: sink})
}
