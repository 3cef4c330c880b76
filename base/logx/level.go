// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user-selected log level and a colored
// terminal handler for the default slog logger.
package logx

import "log/slog"

// UserLevel is the minimum [slog.Level] of messages shown to the user
// by the [Handler] installed with [SetDefaultLogger]. It is normally
// set from the -v, -vv and -q flags with [LevelFromFlags], and is
// [slog.LevelWarn] by default.
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the level selected by the verbosity flags:
// vv gives [slog.LevelDebug], v gives [slog.LevelInfo], q gives
// [slog.LevelError], and none gives [slog.LevelWarn]. More verbose
// flags take precedence, so vv with q is still debug.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
