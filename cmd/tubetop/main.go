// Package main provides the tubetop CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tubetop/internal/comments"
	"tubetop/internal/config"
	"tubetop/internal/daterange"
	"tubetop/internal/display"
	"tubetop/internal/export"
	"tubetop/internal/extract"
	"tubetop/internal/search"
	"tubetop/internal/videoid"
	"tubetop/internal/youtube"
	"tubetop/pkg/logger"
)

// version is set via ldflags at release time.
var version = "dev"

func main() {
	// A .env in the working directory may carry TUBETOP_API_KEY
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveVersion prefers the ldflags version and falls back to module build
// info so that `go install tubetop/cmd/tubetop@version` reports correctly.
func resolveVersion(ldflagsVersion string, info *debug.BuildInfo) string {
	if ldflagsVersion != "dev" {
		return ldflagsVersion
	}
	if info != nil && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// newRootCmd creates the root command for the tubetop CLI.
func newRootCmd() *cobra.Command {
	info, _ := debug.ReadBuildInfo()

	rootCmd := &cobra.Command{
		Use:     "tubetop",
		Short:   "Extract top YouTube comments for a keyword search",
		Long:    "Tubetop searches YouTube for videos matching a keyword, ranks them by view count, collects the most-liked comments for each, and exports everything to a spreadsheet.",
		Version: resolveVersion(version, info),
	}

	rootCmd.SetVersionTemplate("tubetop version {{.Version}}\n")

	rootCmd.AddCommand(newExtractCmd())
	rootCmd.AddCommand(newCommentsCmd())

	return rootCmd
}

// extractOptions collects everything the extract command needs, whether from
// flags or from the interactive prompt.
type extractOptions struct {
	Keyword     string
	Dates       daterange.Input
	MaxVideos   int
	TopComments int
	Output      string
}

// newExtractCmd creates the extract subcommand.
func newExtractCmd() *cobra.Command {
	var opts extractOptions

	cmd := &cobra.Command{
		Use:   "extract [keyword]",
		Short: "Search videos and export their top comments",
		Long:  "Search YouTube for a keyword, rank the results by view count, extract the most-liked comments per video, and write a three-sheet xlsx report. Without a keyword argument the command prompts interactively.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			var p *prompter
			if len(args) == 0 {
				p = newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				if err := promptExtractOptions(p, &opts); err != nil {
					return err
				}
			} else {
				opts.Keyword = args[0]
			}

			window, err := daterange.Build(time.Now().UTC(), opts.Dates)
			if err != nil {
				return err
			}

			return runExtract(cmd, cfg, log, opts, window, p)
		},
	}

	cmd.Flags().IntVarP(&opts.MaxVideos, "max-videos", "m", 10, "Maximum videos to process")
	cmd.Flags().IntVarP(&opts.TopComments, "top-comments", "c", 10, "Top comments per video")
	cmd.Flags().IntVarP(&opts.Dates.DaysAgoStart, "days", "d", 0, "Only videos published in the last N days")
	cmd.Flags().StringVar(&opts.Dates.StartDate, "from", "", "Earliest publish date (YYYY-MM-DD, overrides --days)")
	cmd.Flags().StringVar(&opts.Dates.EndDate, "to", "", "Latest publish date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output filename (.xlsx appended if missing)")

	return cmd
}

// runExtract drives the search -> extract -> export pipeline. p is non-nil in
// interactive mode, where the filename is asked for after extraction.
func runExtract(cmd *cobra.Command, cfg *config.Config, log *zap.Logger, opts extractOptions, window daterange.Range, p *prompter) error {
	client := newAPIClient(cfg)
	formatter := display.NewTerminalFormatter()

	fmt.Fprintf(cmd.OutOrStdout(), "Searching for videos with keyword: %q\n", opts.Keyword)

	ctx := context.Background()
	videos := search.New(client, log).Search(ctx, opts.Keyword, opts.MaxVideos, window)
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSearchResults(videos))
	if len(videos) == 0 {
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nExtracting top %d comments from each video...\n", opts.TopComments)

	ranker := comments.NewRanker(client, log)
	report := extract.New(ranker, cfg.VideoDelay, log).Run(ctx, videos, opts.TopComments)

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(report))

	if report.TotalComments() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No comments were extracted.")
		return nil
	}

	filename := opts.Output
	if p != nil && filename == "" {
		filename = p.line("Enter custom filename (or press Enter for auto-generated): ")
	}

	written, err := export.WriteReport(report, filename)
	if errors.Is(err, export.ErrNoData) {
		fmt.Fprintln(cmd.OutOrStdout(), "No data to save.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Excel file saved: %s\n", written)
	return nil
}

// newCommentsCmd creates the comments subcommand.
func newCommentsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "comments <video-url-or-id>",
		Short: "Show the most-liked comments of a single video",
		Long:  "Resolve a watch URL, youtu.be link, or bare video ID and list its most-liked top-level comments.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := videoid.Parse(args[0])
			if !ok {
				return fmt.Errorf("unrecognized video reference %q: expected a watch URL, youtu.be link, or 11-character ID", args[0])
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(cfg.Logging.Level, cfg.Logging.File)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			defer func() { _ = log.Sync() }()

			ranker := comments.NewRanker(newAPIClient(cfg), log)
			topComments := ranker.TopByLikes(context.Background(), id, top)

			formatter := display.NewTerminalFormatter()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatComments(id, topComments))
			return nil
		},
	}

	cmd.Flags().IntVarP(&top, "top", "t", 10, "Number of comments to show")

	return cmd
}

// newAPIClient builds the YouTube client from configuration. TUBETOP_BASE_URL
// redirects requests to a test server.
func newAPIClient(cfg *config.Config) *youtube.Client {
	opts := []youtube.ClientOption{
		youtube.WithHTTPClient(&http.Client{Timeout: cfg.RequestTimeout}),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, youtube.WithBaseURL(cfg.BaseURL))
	}
	return youtube.NewClient(cfg.APIKey, opts...)
}
