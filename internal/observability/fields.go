package observability

import "go.uber.org/zap"

// Field helpers so callers don't import zap directly.
//
//nolint:gochecknoglobals // Function aliases
var (
	String   = zap.String
	Int      = zap.Int
	Bool     = zap.Bool
	Float64  = zap.Float64
	Error    = zap.Error
	Any      = zap.Any
	Duration = zap.Duration
)
