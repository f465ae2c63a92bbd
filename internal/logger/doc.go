// Package logger wraps zap with a process-wide sugared logger, level
// parsing, and helpers for carrying a logger through a context.
//
// Diagnostics go to stderr so that rendered trees on stdout stay clean.
package logger
