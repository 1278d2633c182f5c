// Package logger provides structured logging over log/slog.
//
//   - logger.go: Logger interface, handlers, runtime level control
//   - context.go: logger and connection ID propagation through context
//   - truncate.go: bounds the size of string attributes
//
// The level is held in a process-wide slog.LevelVar, so SetLevel affects
// every logger created by New, including ones already handed out.
package logger
