// Package slog provides log/slog decorators for newsdoc services.
// Each decorator logs one record per call and delegates to the wrapped
// implementation.
package slog
