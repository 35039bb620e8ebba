// Package logging provides structured logging for obschat.
//
// It wraps log/slog with configuration-driven handler selection and default
// service/version attributes, so every log line is attributable to a build.
package logging
