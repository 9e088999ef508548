package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvseg/config"
	"github.com/katalvlaran/lvseg/cutgraph"
	"github.com/katalvlaran/lvseg/frame"
	"github.com/katalvlaran/lvseg/graphio"
	"github.com/katalvlaran/lvseg/metrics"
)

// Version is set at build time via ldflags.
var Version = "dev"

// CLI is the root kong command structure.
type CLI struct {
	Version   kong.VersionFlag `help:"Show version information"`
	Verbose   bool             `short:"v" help:"Log build details at debug level"`
	LogFormat string           `enum:"text,json" default:"text" help:"Log format (text or json)"`

	Grid      GridCmd      `cmd:"" help:"Build a 4-neighbor graph from an organized frame"`
	Relations RelationsCmd `cmd:"" help:"Build a graph from classifier relations"`
	Inspect   InspectCmd   `cmd:"" help:"Report connected components of a built graph"`
}

// runtime carries what every command needs and is bound by kong at Run.
type runtime struct {
	ctx    context.Context
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

// OutputFlags are shared by the building commands.
type OutputFlags struct {
	Config      string `type:"existingfile" help:"HCL configuration file"`
	Out         string `short:"o" help:"Output file (default stdout)"`
	Format      string `enum:"json,edgelist" default:"json" help:"Output format (json or edgelist)"`
	MetricsFile string `help:"Write Prometheus metrics in text format to this file"`
}

// GridCmd builds from a frame document.
type GridCmd struct {
	Frame   string `required:"" type:"existingfile" help:"Frame JSON document"`
	Workers int    `help:"Rows processed concurrently; overrides the config file"`

	Output OutputFlags `embed:""`
}

// Run executes the grid command.
func (c *GridCmd) Run(rt *runtime) error {
	cfg, err := loadConfig(c.Output.Config)
	if err != nil {
		return err
	}
	if c.Workers > 0 {
		cfg.Workers = c.Workers
	}
	f, err := readFrame(c.Frame)
	if err != nil {
		return err
	}

	b := newBuild(rt, cfg, c.Output.MetricsFile)
	g := cutgraph.New(0, nil, b.opts...)
	res, err := g.BuildFromPointCloud(rt.ctx, f)
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	return b.finish(res, c.Output)
}

// RelationsCmd builds from a relation document.
type RelationsCmd struct {
	Input string `required:"" short:"i" type:"existingfile" help:"Relation JSON document"`

	Output OutputFlags `embed:""`
}

// Run executes the relations command.
func (c *RelationsCmd) Run(rt *runtime) error {
	cfg, err := loadConfig(c.Output.Config)
	if err != nil {
		return err
	}
	n, rels, err := readRelations(c.Input)
	if err != nil {
		return err
	}

	b := newBuild(rt, cfg, c.Output.MetricsFile)
	g := cutgraph.New(n, rels, b.opts...)
	res, err := g.BuildFromRelations()
	if err != nil {
		return fmt.Errorf("building graph: %w", err)
	}

	return b.finish(res, c.Output)
}

// InspectCmd builds with default settings and prints the component summary.
type InspectCmd struct {
	Input string `short:"i" xor:"source" required:"" type:"existingfile" help:"Relation JSON document"`
	Frame string `xor:"source" required:"" type:"existingfile" help:"Frame JSON document"`
}

// Run executes the inspect command.
func (c *InspectCmd) Run(rt *runtime) error {
	opts := []cutgraph.Option{cutgraph.WithLogger(rt.logger)}
	var g *cutgraph.Graph
	if c.Frame != "" {
		f, err := readFrame(c.Frame)
		if err != nil {
			return err
		}
		g = cutgraph.New(0, nil, opts...)
		if _, err := g.BuildFromPointCloud(rt.ctx, f); err != nil {
			return fmt.Errorf("building graph: %w", err)
		}
	} else {
		n, rels, err := readRelations(c.Input)
		if err != nil {
			return err
		}
		g = cutgraph.New(n, rels, opts...)
		if _, err := g.BuildFromRelations(); err != nil {
			return fmt.Errorf("building graph: %w", err)
		}
	}

	comps := g.Components()
	largest := 0
	for _, comp := range comps {
		largest = max(largest, len(comp))
	}
	fmt.Fprintf(rt.stdout, "nodes:      %d\n", g.NodeCount())
	fmt.Fprintf(rt.stdout, "edges:      %d\n", g.NumEdges())
	fmt.Fprintf(rt.stdout, "components: %d\n", len(comps))
	fmt.Fprintf(rt.stdout, "largest:    %d\n", largest)

	return nil
}

// build holds per-run wiring shared by grid and relations.
type build struct {
	rt    *runtime
	opts  []cutgraph.Option
	reg   *prometheus.Registry
	start time.Time
}

func newBuild(rt *runtime, cfg *config.Config, metricsFile string) *build {
	b := &build{rt: rt, start: time.Now()}
	b.opts = append(cfg.Options(), cutgraph.WithLogger(rt.logger))
	if metricsFile != "" {
		b.reg = prometheus.NewRegistry()
		b.opts = append(b.opts, cutgraph.WithObserver(metrics.NewRecorder(b.reg)))
	}
	return b
}

// finish writes the result and metrics, then prints a summary to stderr.
func (b *build) finish(res cutgraph.Result, out OutputFlags) error {
	if err := writeResult(b.rt.stdout, out.Out, res, graphio.Format(out.Format)); err != nil {
		return err
	}
	if b.reg != nil {
		if err := metrics.WriteTextfile(out.MetricsFile, b.reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	s := res.Stats
	b.rt.logger.Info("graph built", "mode", s.Mode, "nodes", s.NodeCount, "edges", res.NumEdges)
	color.New(color.FgGreen).Fprintf(b.rt.stderr, "✓ %s graph built in %s\n", s.Mode, time.Since(b.start).Round(time.Microsecond))
	fmt.Fprintf(b.rt.stderr, "  Nodes:  %d\n", s.NodeCount)
	fmt.Fprintf(b.rt.stderr, "  Edges:  %d\n", res.NumEdges)
	switch s.Mode {
	case cutgraph.ModeGrid:
		fmt.Fprintf(b.rt.stderr, "  Pruned: %d invalid, %d depth\n", s.PrunedInvalid, s.PrunedDepth)
		if s.ZeroVariance {
			color.New(color.FgYellow).Fprintln(b.rt.stderr, "  Frame has no color variance; zero-variance weight applied")
		}
	case cutgraph.ModeRelations:
		fmt.Fprintf(b.rt.stderr, "  Repaired relations: %d\n", s.Repaired)
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func readFrame(path string) (*frame.Frame, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening frame: %w", err)
	}
	defer func() { _ = fh.Close() }()

	return graphio.ReadFrame(fh)
}

func readRelations(path string) (int, []cutgraph.Relation, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("opening relations: %w", err)
	}
	defer func() { _ = fh.Close() }()

	return graphio.ReadRelations(fh)
}

func writeResult(stdout io.Writer, path string, res cutgraph.Result, format graphio.Format) error {
	if path == "" {
		return graphio.WriteResult(stdout, res, format)
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := graphio.WriteResult(fh, res, format); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// newLogger builds the process logger on w.
func newLogger(w io.Writer, verbose bool, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// run parses args and executes the selected command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("lvseg"),
		kong.Description("Weighted graph construction for graph-cut segmentation"),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": Version,
		},
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	rt := &runtime{
		ctx:    ctx,
		logger: newLogger(stderr, cli.Verbose, cli.LogFormat),
		stdout: stdout,
		stderr: stderr,
	}
	return kctx.Run(rt)
}
