package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/go-sif/tally"
	"github.com/go-sif/tally/dataset"
	"github.com/go-sif/tally/datasource/file"
	"github.com/go-sif/tally/datasource/parser/dsv"
	"github.com/go-sif/tally/datasource/parser/jsonl"
	"github.com/go-sif/tally/engine"
	"github.com/go-sif/tally/logging"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runConf struct {
	n           int
	seed        int
	tagged      bool
	input       string
	format      string
	minLength   int
	workers     int
	concurrency int
	asJSON      bool
	logLevel    string
}

func newRunCmd() *cobra.Command {
	conf := &runConf{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sum a generated or loaded dataset in parallel and verify the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := context.WithCancel(context.Background())
			defer stop()
			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt)
			defer signal.Stop(sigs)
			go func() {
				select {
				case <-sigs:
					stop()
				case <-ctx.Done():
				}
			}()
			return runTally(ctx, conf, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&conf.n, "n", envInt("N", 100000), "number of records to generate")
	flags.IntVar(&conf.seed, "seed", envInt("SEED", 1), "seed for generated records")
	flags.BoolVar(&conf.tagged, "tagged", envBool("TAGGED", true), "tag generated records with a random category and sector")
	flags.StringVar(&conf.input, "input", envString("INPUT", ""), "glob of .jsonl/.csv files (optionally .lz4 or .zst compressed) to load instead of generating")
	flags.StringVar(&conf.format, "format", envString("FORMAT", ""), "input format, jsonl or csv. Inferred from the file name when empty")
	flags.IntVar(&conf.minLength, "min-length", envInt("MIN_LENGTH", dataset.DefaultMinLength), "datasets must be longer than this")
	flags.IntVar(&conf.workers, "workers", envInt("WORKERS", engine.DefaultNumWorkers), "number of workers")
	flags.IntVar(&conf.concurrency, "concurrency", envInt("CONCURRENCY", 0), "maximum number of workers running at once. Defaults to --workers")
	flags.BoolVar(&conf.asJSON, "json", envBool("JSON", false), "print the report as JSON")
	flags.StringVar(&conf.logLevel, "log-level", envString("LOG_LEVEL", "info"), "one of trace, debug, info, warn, error, fatal")
	return cmd
}

func runTally(ctx context.Context, conf *runConf, out io.Writer, errOut io.Writer) error {
	level, err := logging.ParseLevel(conf.logLevel)
	if err != nil {
		return err
	}
	logger := logging.NewWithWriter(errOut, level)

	var ds *dataset.Dataset
	if conf.input != "" {
		parser, err := parserFor(conf.format, conf.input)
		if err != nil {
			return err
		}
		source := file.CreateDataSource(&file.DataSourceConf{Glob: conf.input}, parser)
		ds, err = dataset.Load(ctx, source, conf.minLength)
		if err != nil {
			return err
		}
	} else {
		ds, err = dataset.Load(ctx, dataset.CreateGenerator(conf.n, &dataset.GenerateConf{
			Seed:   int64(conf.seed),
			Tagged: conf.tagged,
		}), conf.minLength)
		if err != nil {
			return err
		}
	}

	logStats := func(runID string, stats tally.RuntimeStatistics) {
		records := stats.GetNumRecordsProcessed()
		for id, elapsed := range stats.GetWorkerRuntimes() {
			logger.WithField("run", runID).Debugf("Worker %d reduced %d records in %v", id, records[id], elapsed)
		}
	}
	report, runErr := engine.Run(ctx, ds, &engine.Options{
		NumWorkers:        conf.workers,
		MaxConcurrency:    conf.concurrency,
		Logger:            logger,
		StatisticsHandler: logStats,
	})
	if report != nil {
		if conf.asJSON {
			if err := writeJSON(out, report); err != nil {
				return err
			}
		} else {
			writeSummary(out, report)
		}
	}
	return runErr
}

func parserFor(format string, input string) (tally.Parser, error) {
	if format == "" {
		// a glob such as data/*.jsonl* still names its format before the wildcard
		name := strings.TrimRight(filepath.Base(input), "*?")
		name = strings.TrimSuffix(strings.TrimSuffix(name, ".lz4"), ".zst")
		format = strings.TrimPrefix(filepath.Ext(name), ".")
		if format == "" || strings.ContainsAny(format, "*?[]") {
			return nil, errors.Errorf("Unable to infer the input format of %q; pass --format", input)
		}
	}
	switch strings.ToLower(format) {
	case "jsonl", "json":
		return jsonl.CreateParser(nil), nil
	case "csv", "dsv":
		return dsv.CreateParser(nil), nil
	case "tsv":
		return dsv.CreateParser(&dsv.ParserConf{Delimiter: '\t'}), nil
	default:
		return nil, errors.Errorf("Unknown input format %q", format)
	}
}

func writeJSON(out io.Writer, report *tally.Report) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func writeSummary(out io.Writer, report *tally.Report) {
	fmt.Fprintf(out, "run %s\n", report.RunID)
	for _, p := range report.PerWorker {
		fmt.Fprintf(out, "worker %2d %-18s sum %-14d %v\n", p.WorkerID, p.Range, p.Sum, p.Elapsed)
	}
	fmt.Fprintf(out, "parallel total   %d (%v)\n", report.Total, report.ParallelTime)
	fmt.Fprintf(out, "sequential total %d (%v)\n", report.SequentialTotal, report.SequentialTime)
	fmt.Fprintf(out, "verification     %s\n", report.Verification)
	fmt.Fprintf(out, "speedup          %.2fx\n", report.Speedup)
	fmt.Fprintf(out, "worker time      mean %v stddev %v\n", report.WorkerStats.Mean, report.WorkerStats.StdDev)
	for _, c := range tally.Categories() {
		if t, ok := report.Categories[c]; ok {
			fmt.Fprintf(out, "category %-12s count %-10d sum %d\n", c, t.Count, t.Sum)
		}
	}
	for s := tally.MinSector; s <= tally.MaxSector; s++ {
		if t, ok := report.Sectors[s]; ok {
			fmt.Fprintf(out, "sector %-14d count %-10d sum %d\n", s, t.Count, t.Sum)
		}
	}
}
