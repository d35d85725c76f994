// Package log has the logger types accepted by [lib.Config].
//
// The client logs every operation at debug level (task added, loaded and
// saved task counts, list filters). Nothing is logged unless a logger is set,
// the default is [Noop].
//
// Any type with the [Logger] methods works. Embedding [Noop] and overriding
// the methods you care about is enough:
//
//	type debugLogger struct{ log.Logger }
//
//	func (l debugLogger) Debugf(format string, args ...any) { slog.Debug(fmt.Sprintf(format, args...)) }
//	func (l debugLogger) WithValues(log.Kv) log.Logger      { return l }
//
//	client, err := lib.New(ctx, lib.Config{Logger: debugLogger{Logger: log.Noop}})
package log

import "github.com/slok/task-tracker/internal/log"

// Logger receives the client logs. Each component calls WithValues with its
// name under the "svc" key.
type Logger = log.Logger

// Kv are structured key-value pairs.
type Kv = log.Kv

// Noop discards everything.
var Noop = log.Noop
