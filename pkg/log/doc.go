// Package log provides the logging abstraction used by xargo components.
//
// It defines a small Logger interface that can be implemented by any logging
// library. A zerolog adapter and a no-op logger are provided.
//
// # Usage
//
//	logger := log.NewZerologLogger(zerolog.New(os.Stderr))
//
// Or, for tests and embedders that want silence:
//
//	logger := log.NewNoopLogger()
package log
