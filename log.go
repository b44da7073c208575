// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import "log/slog"

// newDiscardLogger returns a logger that drops everything, the default
// when no logger is supplied via WithLogger. Legalization and insertion
// never fail a Triangulate call because logging wasn't configured.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
