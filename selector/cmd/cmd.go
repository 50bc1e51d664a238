// Package cmd is the command line front end for the selector: it reads
// category,element rows and prints selections or fill suggestions.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"go.ntppool.org/common/logger"
	"go.ntppool.org/common/version"
	"go.ntppool.org/stratify/selector"
)

// CLI is the stratify command tree
type CLI struct {
	Select  SelectCmd  `cmd:"" help:"select elements matching a distribution"`
	Needs   NeedsCmd   `cmd:"" help:"list categories most in need of more elements"`
	Version VersionCmd `cmd:"" help:"print version"`
}

// Common holds the flags shared by every command reading elements
type Common struct {
	Dist    map[string]float64 `required:"" mapsep:";" env:"STRATIFY_DIST" help:"target distribution, e.g. 'a=0.2;b=0.8'"`
	Count   *int               `env:"STRATIFY_COUNT" help:"exact number of elements to select"`
	Input   string             `short:"i" default:"-" env:"STRATIFY_INPUT" help:"CSV file of category,element rows ('-' for stdin)"`
	Verbose bool               `short:"v" help:"enable verbose debug logging"`
	Metrics bool               `help:"write prometheus metrics to stderr when done"`
}

// logger returns the context logger, or a debug level one with --verbose
func (c *Common) logger(ctx context.Context, kctx *kong.Context) (context.Context, *slog.Logger) {
	log := logger.FromContext(ctx)

	if c.Verbose {
		debugHandler := slog.NewTextHandler(kctx.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		log = slog.New(debugHandler)
		ctx = logger.NewContext(ctx, log)
	}

	return ctx, log
}

// load creates a selector for the configured distribution and fills it
// from the input.
func (c *Common) load(ctx context.Context, log *slog.Logger, reg prometheus.Registerer, extra ...selector.Option) (*selector.Selector[string, string], error) {
	opts := []selector.Option{
		selector.WithLogger(log),
		selector.WithMetrics(selector.NewMetrics(reg)),
	}
	opts = append(opts, extra...)
	if c.Count != nil {
		opts = append(opts, selector.WithCount(*c.Count))
	}

	sl, err := selector.New[string, string](c.Dist, opts...)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if c.Input == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(c.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := fillFromCSV(sl, r); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", c.Input, err)
	}

	log.DebugContext(ctx, "loaded elements",
		"input", c.Input,
		"count", sl.Count())

	return sl, nil
}

// registry returns a prometheus registry with the build info registered
func (c *Common) registry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	version.RegisterMetric("stratify", reg)
	return reg
}

// writeMetrics dumps reg in the text exposition format when --metrics is set
func (c *Common) writeMetrics(w io.Writer, reg prometheus.Gatherer) error {
	if !c.Metrics {
		return nil
	}

	mfs, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}

// runID tags the log lines of one invocation
func runID() string {
	return ulid.Make().String()
}

type VersionCmd struct{}

func (cmd *VersionCmd) Run(kctx *kong.Context) error {
	_, err := fmt.Fprintf(kctx.Stdout, "stratify %s\n", version.Version())
	return err
}
