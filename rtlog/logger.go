// Package rtlog provides the small logging seam the build and trace
// paths call through (spec.md §7.1 supplement). There is no global
// logger: every component that wants to log takes a Logger explicitly,
// defaulting to NopLogger so the core stays silent and
// dependency-free unless a caller wires one in.
package rtlog

import "fmt"

// Logger is the minimal structured-logging interface the core depends
// on. A caller backing it with log/slog, zerolog, or any other library
// need only implement these four methods.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is the default Logger: every call is a no-op. Its zero
// value is ready to use.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Writer adapts a plain-text line sink (its Write function, called once
// per formatted line) into a Logger, prefixing each line with its level,
// for callers who don't want to pull in a structured logging library.
type Writer struct {
	Write func(string)
}

func (w Writer) Debugf(format string, args ...any) { w.Write("DEBUG " + fmt.Sprintf(format, args...)) }
func (w Writer) Infof(format string, args ...any)  { w.Write("INFO  " + fmt.Sprintf(format, args...)) }
func (w Writer) Warnf(format string, args ...any)  { w.Write("WARN  " + fmt.Sprintf(format, args...)) }
func (w Writer) Errorf(format string, args ...any) { w.Write("ERROR " + fmt.Sprintf(format, args...)) }
