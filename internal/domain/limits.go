package domain

// Mode selects how raw input records are turned into tokens.
type Mode int

const (
	// Whitespace splits each record on runs of whitespace (the default).
	Whitespace Mode = iota

	// NulDelimited treats each NUL-terminated record as exactly one token,
	// with no splitting and no stop-string matching.
	NulDelimited
)

// Limits holds the immutable per-run batching limits. They are resolved once,
// before the first record is read, and shared by every batch of the run.
type Limits struct {
	// SizeBytes is the effective byte budget per invocation.
	SizeBytes int

	// MaxEntries caps tokens per invocation. Zero means unlimited.
	MaxEntries int

	// StopString ends input processing when an input token matches it
	// exactly. Empty means no stop string. Ignored in NulDelimited mode.
	StopString string

	// Mode is the delimiter mode.
	Mode Mode

	// SizeExplicit records that SizeBytes came from an explicit override
	// rather than ARG_MAX discovery. An explicit budget disables the
	// per-token pointer-slot accounting in whitespace mode.
	SizeExplicit bool
}
