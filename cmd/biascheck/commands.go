package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/adapters"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/analysis"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/benchmark"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/config"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/errors"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/ingest"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/lexicon"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/monitoring"
	"github.com/ZanzyTHEbar/inclusive-o-meter/internal/sentiment"
)

// env is what every command needs.
type env struct {
	cfg        *config.Config
	analyzer   *analysis.Analyzer
	benchmarks *benchmark.Store
	estimator  sentiment.Estimator
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	// stdout carries the report, so logs go to stderr
	logger := monitoring.NewLoggerTo(os.Stderr, cfg.Log.Level, "text")
	slog.SetDefault(logger.Logger)

	tables, err := lexicon.Load(cfg.Analysis.TablesFile)
	if err != nil {
		return nil, errors.NewConfigurationError("lexicon tables", err)
	}
	benchmarks, err := benchmark.LoadFile(cfg.Analysis.BenchmarksFile)
	if err != nil {
		return nil, errors.NewConfigurationError("benchmarks", err)
	}
	estimator, err := adapters.NewSentimentEstimator(ctx, cfg.Sentiment, sentiment.WithLogger(logger.Logger))
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:        cfg,
		benchmarks: benchmarks,
		estimator:  estimator,
		analyzer: analysis.NewAnalyzer(tables,
			analysis.WithEstimator(estimator),
			analysis.WithBenchmarks(benchmarks),
			analysis.WithRewriteThreshold(cfg.Analysis.RewriteThreshold),
		),
	}, nil
}

func (e *env) close() {
	if c, ok := e.estimator.(io.Closer); ok {
		errors.SafeClose(c, "sentiment estimator")
	}
}

func (e *env) options(c *cli.Context) (analysis.Options, error) {
	raw := c.String("method")
	if raw == "" {
		raw = e.cfg.Analysis.DefaultMethod
	}
	method, err := analysis.ParseMethod(raw)
	if err != nil {
		return analysis.Options{}, errors.NewValidationError(err.Error(), "field", "method")
	}
	industry := c.String("industry")
	if industry == "" {
		industry = e.cfg.Analysis.DefaultIndustry
	}
	return analysis.Options{Method: method, Industry: industry}, nil
}

func readDocument(c *cli.Context) (*ingest.Document, error) {
	if c.NArg() > 1 {
		return nil, errors.NewValidationError("expected a single FILE or -")
	}
	path := c.Args().First()
	if path == "" {
		path = ingest.StdinName
	}
	if path == ingest.StdinName {
		return ingest.ReadText("stdin", c.App.Reader)
	}
	return ingest.ReadFile(path)
}

func runAnalyze(c *cli.Context) error {
	e, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer e.close()

	opts, err := e.options(c)
	if err != nil {
		return err
	}
	doc, err := readDocument(c)
	if err != nil {
		return err
	}

	res := e.analyzer.Analyze(c.Context, doc.Text, opts)
	if c.Bool("json") {
		return writeJSON(c.App.Writer, res)
	}
	printResult(c.App.Writer, doc.Name, res)
	return nil
}

func runRewrite(c *cli.Context) error {
	e, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer e.close()

	opts, err := e.options(c)
	if err != nil {
		return err
	}
	doc, err := readDocument(c)
	if err != nil {
		return err
	}

	report := e.analyzer.Improve(c.Context, doc.Text, opts, c.Bool("force"))
	if c.Bool("json") {
		return writeJSON(c.App.Writer, report)
	}
	printImprovement(c.App.Writer, report, e.analyzer.RewriteThreshold())
	return nil
}

func runIndustries(c *cli.Context) error {
	e, err := setup(c.Context)
	if err != nil {
		return err
	}
	defer e.close()

	tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INDUSTRY\tAVERAGE\tNEUTRAL\tBEST PRACTICE\tSAMPLES")
	fallback := e.benchmarks.Fallback().Name
	for _, ind := range e.benchmarks.List() {
		name := ind.Name
		if name == fallback {
			name += " (default)"
		}
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%.1f\t%d\n", name, ind.AverageBias, ind.NeutralThreshold, ind.BestPractice, ind.SampleSize)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResult(w io.Writer, name string, res analysis.Result) {
	fmt.Fprintf(w, "%s: %s (%s)\n", name, res.Classification.Label, res.Direction)
	fmt.Fprintf(w, "  final score   %6.1f  confidence %.0f%%  method %s\n", res.FinalScore, res.Confidence, res.Method)
	fmt.Fprintf(w, "  lexicon       %6.1f\n", res.Scores.Lexicon.Score)
	fmt.Fprintf(w, "  contextual    %6.1f\n", res.Scores.Contextual.Score)
	fmt.Fprintf(w, "  sentiment     %6.1f  provider %s\n", res.Scores.Sentiment.Score, res.Scores.Sentiment.Provider)
	fmt.Fprintf(w, "  ensemble      %6.1f  method spread %.1f\n", res.Scores.Ensemble, res.Scores.Spread)

	if words := res.Scores.Lexicon.MasculineWords; len(words) > 0 {
		fmt.Fprintf(w, "  masculine-coded: %s\n", strings.Join(words, ", "))
	}
	if words := res.Scores.Lexicon.FeminineWords; len(words) > 0 {
		fmt.Fprintf(w, "  feminine-coded:  %s\n", strings.Join(words, ", "))
	}
	if b := res.Benchmark; b != nil {
		fmt.Fprintf(w, "  benchmark %s: %s (average %.1f, best practice %.1f, %d samples)\n",
			b.Industry, b.Classification.Label, b.AverageBias, b.BestPractice, b.SampleSize)
	}
	fmt.Fprintf(w, "\n%s\n", res.Interpretation)
}

func printImprovement(w io.Writer, report analysis.Improvement, threshold float64) {
	if !report.Applied {
		fmt.Fprintf(w, "Score %.1f is within the rewrite threshold of %.1f; no rewrite needed. Use --force to rewrite anyway.\n",
			report.Original.FinalScore, threshold)
		return
	}

	fmt.Fprintln(w, report.Rewrite.Text)
	fmt.Fprintln(w)
	if len(report.Rewrite.Changes) == 0 {
		fmt.Fprintln(w, "No replacements matched.")
	} else {
		fmt.Fprintln(w, "Changes:")
		for _, change := range report.Rewrite.Changes {
			fmt.Fprintf(w, "  - %s\n", change)
		}
	}

	fmt.Fprintf(w, "\nScore: %.1f -> %.1f", report.Original.FinalScore, report.Improved.FinalScore)
	if report.ReductionPoints > 0 {
		fmt.Fprintf(w, " (bias reduced by %.1f points, %.1f%%)", report.ReductionPoints, report.ReductionPercent)
	}
	fmt.Fprintln(w)
}
