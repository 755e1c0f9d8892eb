// Package ports defines the interfaces (ports) that connect the run loop to
// infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the loop needs from external systems without
// specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [RecordReader]: Reads delimiter-terminated records from input
//   - [Spawner]: Runs one assembled command line to completion
//   - [Confirmer]: Asks the operator before running a batch
//   - [Logger]: Structured logging abstraction
//
// The application layer (internal/app) depends only on these interfaces;
// internal/adapters provides the concrete implementations (stdin, os/exec,
// /dev/tty). Tests substitute in-memory fakes.
package ports
