// commentlens: sentiment analysis for social media comment threads.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/seenimoa/commentlens/api"
	"github.com/seenimoa/commentlens/internal/analysis/sentiment"
	"github.com/seenimoa/commentlens/internal/analyzer"
	"github.com/seenimoa/commentlens/internal/config"
	"github.com/seenimoa/commentlens/internal/infra"
	"github.com/seenimoa/commentlens/internal/logging"
	"github.com/seenimoa/commentlens/internal/provider"
	"github.com/seenimoa/commentlens/internal/providers"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and logger, populated by PersistentPreRunE.
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
	Use:   "commentlens",
	Short: "commentlens: sentiment analysis for social media comments",
	Long: `commentlens fetches the comment thread of a YouTube video, Facebook post
or Instagram post, scores every comment and reply with the VADER lexicon and
summarises the result. Run it as an HTTP server with a web UI, or analyze a
single URL from the terminal.`,
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

		if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
			cfg.Logging.Level = lvl
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err = logging.Init(cfg.Logging.Level, cfg.Logging.Format)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
}

// buildPipeline wires the provider registry and the analyzer from cfg.
func buildPipeline(cfg *config.Config, logger *slog.Logger) (*analyzer.Analyzer, *provider.Registry, error) {
	hc := &http.Client{Timeout: infra.DefaultTimeout}
	reg, err := providers.NewRegistry(cfg, hc, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("provider setup failed: %w", err)
	}
	a := analyzer.New(reg, sentiment.NewScorer(), cfg.Analysis.FetchTimeout(), logger)
	return a, reg, nil
}

// --- Version Command ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "commentlens %s\n", version)
		fmt.Fprintf(out, "  commit:  %s\n", commit)
		fmt.Fprintf(out, "  built:   %s\n", date)
	},
}

// --- Analyze Command ---

var analyzeCmd = &cobra.Command{
	Use:   "analyze [url]",
	Short: "Analyze the comments of one post or video",
	Long: `Fetch every comment and reply for the given URL, score them and print a
table with a summary footer.

Examples:
  commentlens analyze 'https://www.youtube.com/watch?v=dQw4w9WgXcQ'
  commentlens analyze --json 'https://www.instagram.com/p/C1a2b3c4/'
  commentlens analyze --report report.html 'https://www.facebook.com/page/posts/123'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		a, _, err := buildPipeline(cfg, logger)
		if err != nil {
			return err
		}
		res, err := a.Analyze(cmd.Context(), args[0])
		if err != nil {
			if err.Error() == "" {
				return errors.New(api.GenericAnalyzeError)
			}
			return err
		}

		if reportPath, _ := cmd.Flags().GetString("report"); reportPath != "" {
			if err := writeReport(reportPath, args[0], res); err != nil {
				return err
			}
			logger.Info("[CLI] report written", slog.String("path", reportPath))
		}

		if asJSON {
			return writeResultJSON(cmd.OutOrStdout(), res)
		}
		renderResult(cmd.OutOrStdout(), res)
		return nil
	},
}

func init() {
	analyzeCmd.Flags().Bool("json", false, "print the raw JSON result instead of a table")
	analyzeCmd.Flags().String("report", "", "also write a report file (.html, or .txt for plain text)")
}

// --- Serve Command (API Server) ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server and web UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			cfg.API.Port = port
		}
		noUI, _ := cmd.Flags().GetBool("no-ui")

		a, reg, err := buildPipeline(cfg, logger)
		if err != nil {
			return err
		}

		srv := api.NewServer(cfg, a, reg, logger)
		if noUI {
			srv.SetServeUI(false)
		}

		addr := cfg.API.Addr()
		fmt.Fprintf(cmd.OutOrStdout(), "🌐 commentlens listening on http://%s\n", addr)
		return srv.ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "override api.port")
	serveCmd.Flags().Bool("no-ui", false, "serve the API only, without the embedded web UI")
}

// --- Status Command ---

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and credential status",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderStatus(cmd.OutOrStdout(), cfg, version, commit)
		return nil
	},
}
