// Package logging builds the zap loggers used by the mdto command.
//
// The console encoder writes human-readable lines to stderr; set
// MDTO_LOG_FORMAT=json for machine-readable output. The level is info,
// debug in verbose mode, and MDTO_LOG_LEVEL overrides both.
//
// Library code never builds its own logger: pkg/mdto and the internal
// providers receive a *zap.Logger from the caller and default to a no-op.
package logging
