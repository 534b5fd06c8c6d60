// Package report implements the report command: one pass over every
// configured source, ending in a CSV file, a JSON file, and a console
// summary. The command exits zero on any normal run — a broken source
// degrades the report, it never prevents one.
package report

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/dealwatch/internal/config"
	"github.com/jonesrussell/dealwatch/internal/logger"
	"github.com/jonesrussell/dealwatch/internal/output"
	"github.com/jonesrussell/dealwatch/internal/pipeline"
	"github.com/jonesrussell/dealwatch/internal/source"
)

// Command returns the report command for use in the root command.
func Command() *cobra.Command {
	var (
		sinceDays int
		csvPath   string
		jsonPath  string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate recent deal mentions into a CSV and JSON report",
		Long: `Fetches every configured source over the lookback window, classifies and
deduplicates the results, and writes the ranked report files. Output files
are always written, even when every source returned nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			applyFlagOverrides(cfg, sinceDays, csvPath, jsonPath)

			log, err := logger.New(&cfg.Logger)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}

			return run(cmd, cfg, log)
		},
	}

	cmd.Flags().IntVar(&sinceDays, "since", 0,
		"Lookback window in days (0 means the configured default)")
	cmd.Flags().StringVar(&csvPath, "out", "", "CSV output path")
	cmd.Flags().StringVar(&jsonPath, "out-json", "", "JSON output path")

	return cmd
}

// applyFlagOverrides lets explicit flags win over configuration values.
func applyFlagOverrides(cfg *config.Config, sinceDays int, csvPath, jsonPath string) {
	if sinceDays > 0 {
		cfg.Report.SinceDays = sinceDays
	}
	if csvPath != "" {
		cfg.Report.CSVPath = csvPath
	}
	if jsonPath != "" {
		cfg.Report.JSONPath = jsonPath
	}
}

// run executes the pipeline and writes the report files.
func run(cmd *cobra.Command, cfg *config.Config, log logger.Interface) error {
	client := source.NewClient(cfg.Sources.RequestTimeout, cfg.Sources.UserAgent)

	sources := buildSources(cfg, client, log)

	runner := pipeline.NewRunner(sources, log)
	result := runner.Run(cmd.Context(), cfg.Report.SinceDays)

	if err := output.WriteCSV(cfg.Report.CSVPath, result.Records); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}

	if err := output.WriteJSON(cfg.Report.JSONPath, result.Records); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	output.RenderSummary(os.Stdout, result.Counts, len(result.Records))

	log.Info("report written",
		"records", len(result.Records),
		"csv", cfg.Report.CSVPath,
		"json", cfg.Report.JSONPath,
	)

	return nil
}

// buildSources constructs the adapters in fetch order: filings first, then
// the two news APIs, then the generic feeds. The long-tail adapter is only
// wired when an endpoint is configured.
func buildSources(cfg *config.Config, client *source.Client, log logger.Interface) []pipeline.Source {
	sources := []pipeline.Source{
		source.NewFilings(cfg.Sources.FilingFeeds, client, cfg.Vocabulary, log),
		source.NewNewsAPI(source.NewsAPIParams{
			Endpoint: cfg.Sources.NewsAPI.Endpoint,
			Key:      cfg.Sources.NewsAPI.Key,
			Client:   client,
			Vocab:    cfg.Vocabulary,
			Logger:   log,
		}),
	}

	if cfg.Sources.LongTail.Endpoint != "" {
		sources = append(sources, source.NewLongTail(source.LongTailParams{
			Endpoint: cfg.Sources.LongTail.Endpoint,
			Client:   client,
			Vocab:    cfg.Vocabulary,
			Logger:   log,
		}))
	}

	sources = append(sources, source.NewFeeds(cfg.Sources.NewsFeeds, client, cfg.Vocabulary, log))

	return sources
}
