// Package xargo is the embeddable core of the xargo command: it reads
// whitespace- or NUL-delimited tokens from an input stream and runs a fixed
// command template one or more times, appending batches of tokens as trailing
// arguments, subject to per-invocation limits on argument count and total
// byte size.
//
// # Usage
//
//	r, err := xargo.New(xargo.Config{Template: []string{"rm", "-f"}})
//	if err != nil {
//		return err
//	}
//	code, err := r.Run(ctx)
//
// The returned code is the cumulative exit status of the whole run: 0 on
// success, 123 if any invocation failed, 124/126/127 for the abort cases, or
// the process exit code xargs conventions dictate.
//
// Behavior is customized through functional options such as [WithLogger],
// [WithInput], and [WithSpawner]; see options.go.
package xargo
