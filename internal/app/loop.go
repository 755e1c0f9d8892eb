// Package app contains the run loop that orchestrates reading, batching,
// confirming, and spawning across the whole input stream.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bft-labs/xargo/internal/batch"
	"github.com/bft-labs/xargo/internal/domain"
	"github.com/bft-labs/xargo/internal/ports"
	"github.com/bft-labs/xargo/pkg/log"
)

// Config contains the immutable run parameters for the loop.
type Config struct {
	// Template is the fixed command and arguments prepended to every batch.
	Template []string

	// Limits are the resolved per-invocation batching limits.
	Limits domain.Limits

	// Trace prints each assembled command line to the diagnostic stream
	// before running it.
	Trace bool

	// Prompt asks for confirmation before running each batch.
	Prompt bool

	// NoRunIfEmpty suppresses the single template-only invocation that
	// otherwise happens when input yields no tokens at all.
	NoRunIfEmpty bool
}

// Loop drives batches from input exhaustion or limit hits through assembly,
// optional confirmation, and child execution, aggregating exit statuses.
type Loop struct {
	cfg     Config
	reader  ports.RecordReader
	spawner ports.Spawner
	confirm ports.Confirmer
	diag    io.Writer
	logger  ports.Logger
}

// NewLoop wires a loop from its ports.
func NewLoop(cfg Config, reader ports.RecordReader, spawner ports.Spawner, confirm ports.Confirmer, diag io.Writer, logger ports.Logger) *Loop {
	return &Loop{
		cfg:     cfg,
		reader:  reader,
		spawner: spawner,
		confirm: confirm,
		diag:    diag,
		logger:  logger,
	}
}

// Run executes the loop to completion and returns the cumulative exit code.
// A non-nil error is a fatal condition ("command too long", "argument too
// long", an unusable control device, or context cancellation); the caller
// owns process termination.
func (l *Loop) Run(ctx context.Context) (int, error) {
	seed := batch.TemplateFootprint(l.cfg.Template, l.cfg.Limits.SizeExplicit)
	if seed >= l.cfg.Limits.SizeBytes {
		return 0, domain.ErrCommandTooLong
	}

	var (
		queue   []string
		rem     string
		hasRem  bool
		done    bool
		ranOnce bool
		agg     int
	)

	st := batch.NewState(l.cfg.Limits, seed)

	for hasRem || !done {
		if err := ctx.Err(); err != nil {
			return agg, err
		}
		st.Reset()
		queue = queue[:0]

		// Filling: read records until a limit is hit or input runs out.
		// A remainder from the previous batch is re-presented, not re-read.
		for {
			var data string
			if hasRem {
				data, rem, hasRem = rem, "", false
			} else {
				var err error
				data, err = l.reader.Next()
				if err != nil {
					if !errors.Is(err, io.EOF) {
						return agg, err
					}
					done = true
					break
				}
			}
			queue = append(queue, data)

			verdict, rest := st.Consume(data, nil)
			if verdict == batch.NeedMore {
				continue
			}
			switch verdict {
			case batch.Sentinel:
				done = true
			case batch.Split:
				rem, hasRem = rest, true
			}
			break
		}

		// Assembling: an empty batch with a leftover means one token alone
		// exceeded the byte budget. An empty batch after at least one spawn
		// ends the run; an empty first batch still runs the template once
		// unless that was suppressed.
		if st.Entries() == 0 {
			if hasRem {
				return agg, domain.ErrArgumentTooLong
			}
			if ranOnce {
				return agg, nil
			}
			if l.cfg.NoRunIfEmpty {
				continue
			}
		}
		argv := batch.Assemble(l.cfg.Template, queue, st)

		// Confirming
		if l.cfg.Prompt || l.cfg.Trace {
			for _, a := range argv {
				fmt.Fprintf(l.diag, "%s ", a)
			}
			if l.cfg.Prompt {
				fmt.Fprint(l.diag, "?")
				yes, err := l.confirm.Confirm()
				if err != nil {
					return agg, err
				}
				if !yes {
					continue
				}
			} else {
				fmt.Fprintln(l.diag)
			}
		}

		// Running
		res, err := l.spawner.Spawn(ctx, argv)
		if err != nil {
			return agg, err
		}
		ranOnce = true

		if res.Exited && res.Code == 255 {
			l.logger.Error("exited with status 255; aborting", log.String("command", argv[0]))
		}
		var abort bool
		agg, abort = classifyExit(res, agg)
		if abort {
			return agg, nil
		}
	}
	return agg, nil
}
