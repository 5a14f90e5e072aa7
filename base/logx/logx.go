// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging on top of [log/slog], with a
// single package-level UserLevel that gates what is reported.
package logx

import (
	"fmt"
	"log/slog"
)

// UserLevel is the verbosity level that the user has selected.
// Only messages at this level or above are reported.
var UserLevel = defaultUserLevel

// PrintDebug prints the given message at [slog.LevelDebug].
func PrintDebug(msg string, args ...any) {
	if UserLevel <= slog.LevelDebug {
		slog.Debug(msg, args...)
	}
}

// PrintInfo prints the given message at [slog.LevelInfo].
func PrintInfo(msg string, args ...any) {
	if UserLevel <= slog.LevelInfo {
		slog.Info(msg, args...)
	}
}

// PrintWarn prints the given message at [slog.LevelWarn].
func PrintWarn(msg string, args ...any) {
	if UserLevel <= slog.LevelWarn {
		slog.Warn(msg, args...)
	}
}

// PrintError reports the given error at [slog.LevelError] if it is non-nil,
// and returns it unmodified, so call sites can both log and return in one
// expression.
func PrintError(err error) error {
	if err != nil && UserLevel <= slog.LevelError {
		slog.Error(err.Error())
	}
	return err
}

// Errorf is equivalent to [fmt.Errorf] followed by [PrintError].
func Errorf(format string, args ...any) error {
	return PrintError(fmt.Errorf(format, args...))
}
