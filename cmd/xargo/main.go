package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/xargo/internal/cliconfig"
	"github.com/bft-labs/xargo/internal/domain"
	logpkg "github.com/bft-labs/xargo/pkg/log"
	"github.com/bft-labs/xargo/pkg/xargo"
)

const helpDescription = `
Run a command one or more times, appending argument batches read from stdin.

Input is split on whitespace (or on NUL bytes with -0) and packed into as few
invocations as fit the per-command byte budget and the -n argument cap. If the
command exits with 255, no further batch is launched even if input remains.

Defaults can be set in $HOME/.xargo/config.toml or via XARGO_* environment
variables; flags always win.
`

var exampleUsage = strings.TrimSpace(`
  find . -name '*.log' | xargo rm -f
  find . -print0 | xargo -0 -n 16 du -sh
  cat hosts.txt | xargo -p -t ssh-keyscan
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string
	exitCode := 0

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "xargo [flags] [command [initial-arguments...]]",
		Short:   "Run a command with argument batches taken from stdin",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Args:    cobra.ArbitraryArgs,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.xargo/config.toml),
			// then environment, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Zero doubles as "unset" on the flag, so an explicit -n 0 is
			// only catchable here.
			if changed["max-args"] && cfg.MaxArgs < 1 {
				return fmt.Errorf("%w: max-args must be at least 1", domain.ErrInvalidConfig)
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// Environment variables (XARGO_*) override file config but are
			// overridden by flags (checked via the changed map).
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Debug().Interface("config", cfg).Strs("template", args).Msg("configuration")

			r, err := xargo.New(xargo.Config{
				Template:      args,
				NullDelimited: cfg.NullDelimited,
				StopString:    cfg.StopString,
				MaxArgs:       cfg.MaxArgs,
				SizeBytes:     cfg.SizeBytes,
				OpenTTY:       cfg.OpenTTY,
				Prompt:        cfg.Prompt,
				NoRunIfEmpty:  cfg.NoRunIfEmpty,
				Trace:         cfg.Trace,
			}, xargo.WithLogger(logpkg.NewZerologLogger(log)))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			code, err := r.Run(ctx)
			if err != nil {
				return err
			}
			exitCode = code
			return nil
		},
	}

	// The first positional ends flag parsing so the invoked command's own
	// flags pass through untouched.
	root.Flags().SetInterspersed(false)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.xargo/config.toml)")
	root.Flags().BoolVarP(&cfg.NullDelimited, "null", "0", cfg.NullDelimited, "input items are NUL-terminated, no whitespace or stop-string processing")
	root.Flags().StringVarP(&cfg.StopString, "eof-str", "E", cfg.StopString, "stop reading input at a token matching this string exactly")
	root.Flags().IntVarP(&cfg.MaxArgs, "max-args", "n", cfg.MaxArgs, "max number of arguments per command")
	root.Flags().IntVarP(&cfg.SizeBytes, "size", "s", cfg.SizeBytes, "size in bytes per command line (0 uses the system default)")
	root.Flags().BoolVarP(&cfg.OpenTTY, "open-tty", "o", cfg.OpenTTY, "open tty for the command's stdin (default /dev/null)")
	root.Flags().BoolVarP(&cfg.Prompt, "interactive", "p", cfg.Prompt, "prompt for y/n from tty before running each command")
	root.Flags().BoolVarP(&cfg.NoRunIfEmpty, "no-run-if-empty", "r", cfg.NoRunIfEmpty, "don't run the command on empty input")
	root.Flags().BoolVarP(&cfg.Trace, "verbose", "t", cfg.Trace, "print command lines to stderr before running them")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("xargo")
		os.Exit(1)
	}
	os.Exit(exitCode)
}
