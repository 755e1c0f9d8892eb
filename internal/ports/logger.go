package ports

import "github.com/bft-labs/xargo/pkg/log"

// Logger is the structured logging abstraction used by the application layer.
// It is an alias of the public pkg/log interface so adapters written against
// either name interoperate.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Err creates an error field with key "error".
var Err = log.Err
