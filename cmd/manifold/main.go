// Command manifold embeds a numeric CSV dataset into a few dimensions.
//
// Usage:
//
//	manifold -in samples.csv.zst -out embedding.csv -dims 2 -perplexity 30
//
// Input and output files ending in .zst or .lz4 are (de)compressed
// transparently. Without -out the embedding is written to stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/katalvlaran/manifold/dataset"
	"github.com/katalvlaran/manifold/metric"
	"github.com/katalvlaran/manifold/tsne"
)

type config struct {
	in, out       string
	dims          int
	perplexity    float64
	rate          float64
	epochs        int
	exaggeration  float64
	earlyEpochs   int
	minGrad       float64
	patience      int
	metricName    string
	seed          int64
	timeout       time.Duration
	workers       int
	joint         bool
	studentT      bool
	initScale     float64
	logFormat     string
	logLevel      string
	progressEvery int
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("manifold", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.in, "in", "", "input CSV (.csv, .csv.zst, .csv.lz4); required")
	fs.StringVar(&c.out, "out", "", "output CSV; stdout when empty")
	fs.IntVar(&c.dims, "dims", tsne.DefaultDimensions, "target dimensionality")
	fs.Float64Var(&c.perplexity, "perplexity", tsne.DefaultPerplexity, "effective neighbourhood size")
	fs.Float64Var(&c.rate, "rate", tsne.DefaultLearningRate, "learning rate")
	fs.IntVar(&c.epochs, "epochs", tsne.DefaultEpochs, "epoch budget")
	fs.Float64Var(&c.exaggeration, "exaggeration", tsne.DefaultExaggeration, "early exaggeration factor")
	fs.IntVar(&c.earlyEpochs, "early-epochs", tsne.DefaultEarlyExaggerationEpochs, "epochs of early exaggeration")
	fs.Float64Var(&c.minGrad, "min-grad", tsne.DefaultMinGradient, "stop when the gradient norm falls below this")
	fs.IntVar(&c.patience, "patience", tsne.DefaultPatience, "epochs without improvement before stopping")
	fs.StringVar(&c.metricName, "metric", "squared-euclidean", "distance metric: "+strings.Join(metric.Names(), ", "))
	fs.Int64Var(&c.seed, "seed", 0, "random seed (0 = fixed default)")
	fs.DurationVar(&c.timeout, "timeout", 0, "abort after this long (0 = no limit)")
	fs.IntVar(&c.workers, "workers", 0, "goroutines per epoch (0 = GOMAXPROCS)")
	fs.BoolVar(&c.joint, "joint", true, "symmetrise affinities to the joint form")
	fs.BoolVar(&c.studentT, "student-t", false, "weight gradient terms by the Student-t kernel instead of the distance")
	fs.Float64Var(&c.initScale, "init-scale", tsne.DefaultInitScale, "standard deviation of the initial embedding")
	fs.StringVar(&c.logFormat, "log-format", "text", "log format: text or json")
	fs.StringVar(&c.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.IntVar(&c.progressEvery, "progress-every", 50, "log every N-th epoch")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.in == "" {
		return c, errors.New("-in is required")
	}

	return c, nil
}

func newLogger(format, level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	c, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	logger, err := newLogger(c.logFormat, c.logLevel, stderr)
	if err != nil {
		return err
	}
	m, err := metric.ByName(c.metricName)
	if err != nil {
		return err
	}

	opts := []tsne.Option{
		tsne.WithDimensions(c.dims),
		tsne.WithPerplexity(c.perplexity),
		tsne.WithLearningRate(c.rate),
		tsne.WithEpochs(c.epochs),
		tsne.WithExaggeration(c.exaggeration),
		tsne.WithEarlyExaggerationEpochs(c.earlyEpochs),
		tsne.WithMinGradient(c.minGrad),
		tsne.WithPatience(c.patience),
		tsne.WithMetric(m),
		tsne.WithSeed(c.seed),
		tsne.WithTimeout(c.timeout),
		tsne.WithWorkers(c.workers),
		tsne.WithInitScale(c.initScale),
		tsne.WithProgressEvery(c.progressEvery),
		tsne.WithProgress(tsne.SlogProgress(logger)),
	}
	if !c.joint {
		opts = append(opts, tsne.WithConditionalAffinities())
	}
	if c.studentT {
		opts = append(opts, tsne.WithStudentTGradient())
	}
	e, err := tsne.New(opts...)
	if err != nil {
		return err
	}

	ds, err := dataset.Open(c.in)
	if err != nil {
		return err
	}
	logger.Info("dataset loaded", "path", c.in, "rows", ds.Len(), "cols", ds.Dims())

	res, err := e.Embed(ctx, ds)
	if err != nil {
		return err
	}

	if c.out == "" {
		return dataset.WriteCSV(stdout, res.Embedding)
	}
	w, err := dataset.Create(c.out)
	if err != nil {
		return err
	}
	if err = dataset.WriteCSV(w, res.Embedding); err != nil {
		_ = w.Close()
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	logger.Info("embedding written", "path", c.out, "epochs", res.Epochs, "reason", res.Reason.String())

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "manifold:", err)
		stop()
		os.Exit(1)
	}
}
