package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"cdf-insights/internal/dataset"
	"cdf-insights/internal/models"
	"cdf-insights/internal/services"

	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every subcommand
type rootOptions struct {
	recordsPath   string
	provincesPath string
	strict        bool
	normalize     bool
	output        string
	verbose       bool

	search       string
	category     string
	constituency string
	province     string
}

func (o *rootOptions) criteria() models.FilterCriteria {
	return models.FilterCriteria{
		SearchTerm:   o.search,
		Category:     o.category,
		Constituency: o.constituency,
		Province:     o.province,
	}
}

func (o *rootOptions) source() dataset.Source {
	if o.recordsPath == "" {
		return dataset.NewEmbeddedSource()
	}
	return dataset.NewFileSource(o.recordsPath, o.provincesPath)
}

// loadService loads the dataset once and returns a ready query service
func (o *rootOptions) loadService(ctx context.Context, stderr io.Writer) (services.AllocationServiceInterface, *models.LoadReport, error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := services.NewDatasetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	metrics := services.NewNoopMetrics()

	loader := services.NewDatasetLoader(o.source(), logger, metrics, services.LoaderOptions{
		Strict:    o.strict,
		Normalize: o.normalize,
	})
	svc := services.NewAllocationService(loader, nil, logger, metrics)

	report, err := svc.Reload(ctx, models.LoadTriggerStartup, "")
	if err != nil {
		return nil, report, err
	}
	return svc, report, nil
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "cdfctl",
		Short: "Query CDF allocation data from the command line",
		Long: `cdfctl loads a Constituency Development Fund allocation dataset and
prints the same aggregates the dashboard API serves.

The embedded dataset is used unless --data points at a CSV or JSON file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.recordsPath, "data", "", "Allocation records file (.csv or .json)")
	flags.StringVar(&opts.provincesPath, "provinces", "", "Province registry file (.json, .yaml or .yml)")
	flags.BoolVar(&opts.strict, "strict", false, "Fail on the first malformed record")
	flags.BoolVar(&opts.normalize, "normalize", false, "Fold label misspellings while loading")
	flags.StringVarP(&opts.output, "output", "o", outputTable, "Output format: table, json or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log dataset loading details")
	flags.StringVar(&opts.search, "search", "", "Case-insensitive search over constituency, category and subcategory")
	flags.StringVar(&opts.category, "category", "", "Restrict to one category")
	flags.StringVar(&opts.constituency, "constituency", "", "Restrict to one constituency")
	flags.StringVar(&opts.province, "province", "", "Restrict to one province")

	rootCmd.AddCommand(
		newSummaryCmd(opts),
		newTotalsCmd(opts),
		newTopCmd(opts),
		newEfficiencyCmd(opts),
		newExportCmd(opts),
		newTokenCmd(opts),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
