package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/seenimoa/newsnugget/internal/article"
	"github.com/seenimoa/newsnugget/internal/nugget"
	"github.com/seenimoa/newsnugget/internal/report"
	"github.com/seenimoa/newsnugget/pkg/models"
)

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Download a news article and analyze it",
	Long: `Download the article at the given URL, extract its text and print the
summary, top keywords, sentiment and text statistics.

Examples:
  newsnugget analyze https://www.example.com/2024/03/05/markets
  newsnugget analyze --format html --output report.html https://www.example.com/story
  newsnugget analyze --format json https://www.example.com/story`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext(cmd)
		defer stop()

		n, err := nugget.FromConfig(cfg, logger).AnalyzeURL(ctx, args[0])
		if err != nil {
			return describe(err)
		}
		return writeNugget(cmd, n)
	},
}

// --- Text Command ---

var textCmd = &cobra.Command{
	Use:   "text [file|-]",
	Short: "Analyze article text from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open text: %w", err)
			}
			defer f.Close()
			in = f
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read text: %w", err)
		}

		n := nugget.FromConfig(cfg, logger).AnalyzeText(string(data))
		return writeNugget(cmd, &n)
	},
}

// --- Feed Command ---

var feedCmd = &cobra.Command{
	Use:   "feed [feed-url]",
	Short: "Analyze the newest articles of an RSS or Atom feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = cfg.Feed.Limit
		}
		format, err := formatFlag(cmd)
		if err != nil {
			return err
		}
		if format == report.FormatHTML {
			return fmt.Errorf("html output is only available for single articles")
		}

		ctx, stop := signalContext(cmd)
		defer stop()

		fr, err := nugget.FromConfig(cfg, logger).AnalyzeFeed(ctx, args[0], limit)
		if err != nil {
			return describe(err)
		}

		out, closeOut, err := openOutput(cmd)
		if err != nil {
			return err
		}
		defer closeOut()

		if format == report.FormatJSON {
			return report.GenerateJSON(out, fr)
		}
		_, err = io.WriteString(out, report.GenerateFeedText(fr))
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{analyzeCmd, textCmd, feedCmd} {
		c.Flags().StringP("format", "f", "", "output format: text, json or html (default: report.format)")
		c.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	}
	feedCmd.Flags().IntP("limit", "n", 0, "number of feed items to analyze (default: feed.limit)")
}

// ------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func formatFlag(cmd *cobra.Command) (report.Format, error) {
	name, _ := cmd.Flags().GetString("format")
	if name == "" {
		name = cfg.Report.Format
	}
	return report.ParseFormat(name)
}

// openOutput returns the --output file, or the command's stdout.
func openOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func writeNugget(cmd *cobra.Command, n *models.Nugget) error {
	format, err := formatFlag(cmd)
	if err != nil {
		return err
	}
	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	opts := report.Options{
		ChartWidth:   cfg.Report.ChartWidth,
		SummaryWords: cfg.Analysis.SummaryWords,
	}
	return report.Render(out, n, format, opts)
}

// describe turns extractor errors into messages for the terminal.
func describe(err error) error {
	var (
		verr *article.ValidationError
		ferr *article.FetchError
		perr *article.ParseError
	)
	switch {
	case errors.As(err, &verr):
		return fmt.Errorf("❌ %w", err)
	case errors.As(err, &perr):
		return fmt.Errorf("❌ could not extract an article: %w", err)
	case errors.As(err, &ferr):
		return fmt.Errorf("❌ download failed: %w", err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("interrupted")
	}
	return err
}
