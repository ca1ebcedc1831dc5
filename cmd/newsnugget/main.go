// NewsNugget: news article text analytics
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/seenimoa/newsnugget/api"
	"github.com/seenimoa/newsnugget/internal/config"
	"github.com/seenimoa/newsnugget/internal/logging"
	"github.com/seenimoa/newsnugget/internal/nugget"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, set by the root command before any subcommand runs.
var (
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "newsnugget",
	Short: "NewsNugget: keywords, sentiment and readability for news articles",
	Long: `NewsNugget downloads a news article, extracts its text and reports the
top keywords, a sentiment score, basic readability statistics and chart
data for a keyword bar chart and a sentiment gauge.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		logger, err = logging.New(cfg.Logging, cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "NewsNugget %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.API.Port = port
		}
		api.Version = version

		srv := api.NewServer(cfg, nugget.FromConfig(cfg, logger), logger)
		fmt.Fprintf(cmd.OutOrStdout(), "🌐 Starting NewsNugget API server on %s\n", cfg.API.Addr())
		return srv.ListenAndServe(cfg.API.Addr())
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "listen port (overrides api.port)")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and where it came from",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintln(out, "  NewsNugget System Status")
		fmt.Fprintln(out, "═══════════════════════════════════════")
		fmt.Fprintf(out, "  Version:       %s (%s)\n", version, commit)
		file := cfg.File()
		if file == "" {
			file = "(none, using defaults)"
		}
		fmt.Fprintf(out, "  Config File:   %s\n", file)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Configuration:")
		fmt.Fprintf(out, "    Fetch:         timeout %s, %d req/s per host, cache %s\n",
			cfg.Fetch.Timeout(), cfg.Fetch.RateLimit, cfg.Fetch.CacheDuration())
		fmt.Fprintf(out, "    Keywords:      top %d (stemming: %t)\n", cfg.Analysis.TopKeywords, cfg.Analysis.StemKeywords)
		fmt.Fprintf(out, "    Summary:       %d sentences, %d words shown\n", cfg.Analysis.SummarySentences, cfg.Analysis.SummaryWords)
		fmt.Fprintf(out, "    Feeds:         %d items, %d at a time\n", cfg.Feed.Limit, cfg.Feed.Concurrency)
		fmt.Fprintf(out, "    Report:        %s (chart width %d)\n", cfg.Report.Format, cfg.Report.ChartWidth)
		fmt.Fprintf(out, "    API Server:    %s\n", cfg.API.Addr())
		fmt.Fprintf(out, "    Logging:       %s (%s)\n", cfg.Logging.Level, cfg.Logging.Format)
		fmt.Fprintln(out)

		fmt.Fprintln(out, "  Environment Overrides:")
		overrides := config.EnvOverrides()
		if len(overrides) == 0 {
			fmt.Fprintln(out, "    (none)")
		}
		for _, o := range overrides {
			fmt.Fprintf(out, "    %-32s %s\n", o.EnvVar+":", o.Value)
		}

		fmt.Fprintln(out, "═══════════════════════════════════════")
		return nil
	},
}
