package xargo

import (
	"context"
	"fmt"

	"github.com/bft-labs/xargo/internal/adapters/proc"
	"github.com/bft-labs/xargo/internal/adapters/termio"
	"github.com/bft-labs/xargo/internal/app"
	"github.com/bft-labs/xargo/internal/arglimit"
	"github.com/bft-labs/xargo/internal/domain"
)

// Config holds the run parameters. The zero value reads whitespace-delimited
// tokens from standard input and echoes them.
type Config struct {
	// Template is the fixed command and arguments prepended to every batch.
	// Empty defaults to {"echo"}.
	Template []string

	// NullDelimited switches input to NUL-terminated records, disabling
	// whitespace splitting and stop-string matching.
	NullDelimited bool

	// StopString ends input processing at an exactly matching token.
	// Incompatible with NullDelimited.
	StopString string

	// MaxArgs caps tokens per invocation. Zero means unlimited.
	MaxArgs int

	// SizeBytes caps bytes per invocation. Zero picks the ARG_MAX-derived
	// default; any positive value is an explicit override, which also
	// disables the per-token pointer-slot accounting.
	SizeBytes int

	// OpenTTY gives the child the interactive control device as standard
	// input instead of the null device.
	OpenTTY bool

	// Prompt asks for confirmation on the control device before each batch.
	Prompt bool

	// NoRunIfEmpty suppresses the one template-only invocation otherwise
	// performed when input yields no tokens.
	NoRunIfEmpty bool

	// Trace prints each assembled command line to the diagnostic stream.
	Trace bool
}

// SetDefaults fills in derived defaults.
func (c *Config) SetDefaults() {
	if len(c.Template) == 0 {
		c.Template = []string{"echo"}
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.NullDelimited && c.StopString != "" {
		return fmt.Errorf("%w: stop string cannot be combined with NUL-delimited input", domain.ErrInvalidConfig)
	}
	if c.MaxArgs < 0 {
		return fmt.Errorf("%w: MaxArgs must not be negative", domain.ErrInvalidConfig)
	}
	if c.SizeBytes < 0 {
		return fmt.Errorf("%w: SizeBytes must not be negative", domain.ErrInvalidConfig)
	}
	return nil
}

// Runner is a configured xargo run. Use New to create one and Run to execute
// it; a Runner is single-use.
type Runner struct {
	loop    *app.Loop
	confirm *termio.Confirm
}

// New validates cfg, resolves the effective byte budget, and wires the run
// loop with the given options.
func New(cfg Config, opts ...Option) (*Runner, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	limits := domain.Limits{
		SizeBytes:    arglimit.Budget(cfg.SizeBytes),
		MaxEntries:   cfg.MaxArgs,
		StopString:   cfg.StopString,
		SizeExplicit: cfg.SizeBytes > 0,
	}
	if cfg.NullDelimited {
		limits.Mode = domain.NulDelimited
	}

	spawner := o.spawner
	if spawner == nil {
		spawner = proc.New(cfg.OpenTTY)
	}

	var lazyConfirm *termio.Confirm
	confirmer := o.confirmer
	if confirmer == nil {
		lazyConfirm = termio.New()
		confirmer = lazyConfirm
	}

	loopCfg := app.Config{
		Template:     cfg.Template,
		Limits:       limits,
		Trace:        cfg.Trace,
		Prompt:       cfg.Prompt,
		NoRunIfEmpty: cfg.NoRunIfEmpty,
	}
	reader := app.NewRecordReader(o.input, limits.Mode)
	loop := app.NewLoop(loopCfg, reader, spawner, confirmer, o.diag, o.logger)

	return &Runner{loop: loop, confirm: lazyConfirm}, nil
}

// Run executes the whole input stream and returns the cumulative exit code.
// A non-nil error is a fatal condition; see the domain sentinel errors. The
// interactive control device, if it was ever opened, is closed on every exit
// path.
func (r *Runner) Run(ctx context.Context) (int, error) {
	code, err := r.loop.Run(ctx)
	if r.confirm != nil {
		_ = r.confirm.Close()
	}
	return code, err
}
