// Package domain contains the core value objects and error taxonomy for xargo.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (flags, processes, terminals) and
// contains only the vocabulary shared by the batching algorithm and the run
// loop.
//
// # Value objects
//
//   - [Limits]: the immutable per-run batching limits (byte budget, entry cap,
//     stop string, delimiter mode)
//   - [Mode]: whitespace-splitting vs NUL-delimited record handling
//
// Limits are computed once before the first record is read and never change
// for the lifetime of a run.
package domain
