package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/seenimoa/commentlens/internal/config"
	"github.com/seenimoa/commentlens/internal/report"
	"github.com/seenimoa/commentlens/pkg/models"
)

const maxTextWidth = 60

// writeReport renders res to path, picking the format from the extension.
func writeReport(path, sourceURL string, res *models.AnalysisResult) error {
	cfg := report.DefaultReportConfig()
	cfg.SourceURL = sourceURL
	out, err := report.Generate(res, report.ParseFormat(path), cfg)
	if err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func writeResultJSON(w io.Writer, res *models.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// renderResult prints one row per comment, replies indented under their
// parent, with the summary counts in the footer.
func renderResult(w io.Writer, res *models.AnalysisResult) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "Platform", "Author", "Sentiment", "Score", "Text"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Text", WidthMax: maxTextWidth},
	})

	n := 0
	for _, c := range res.Comments {
		idx := ""
		text := c.Text
		if c.IsReply {
			text = "  ↳ " + text
		} else {
			n++
			idx = fmt.Sprintf("%d", n)
		}
		t.AppendRow(table.Row{
			idx,
			c.Platform.DisplayName(),
			c.Author,
			string(c.Sentiment),
			fmt.Sprintf("%+.3f", c.Score),
			text,
		})
	}

	s := res.Summary
	t.AppendFooter(table.Row{
		"", "Total", s.Total,
		fmt.Sprintf("+%d -%d =%d", s.Positive, s.Negative, s.Neutral),
		"", "",
	})
	t.Render()
}

// renderStatus prints the effective configuration and credential sources.
// Credentials are only ever shown masked.
func renderStatus(w io.Writer, cfg *config.Config, version, commit string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("commentlens %s (%s)", version, commit)
	t.AppendHeader(table.Row{"Setting", "Value"})
	t.AppendRow(table.Row{"API server", cfg.API.Addr()})
	t.AppendRow(table.Row{"Reply concurrency", cfg.Analysis.ConcurrentFetches})
	t.AppendRow(table.Row{"Fetch timeout", cfg.Analysis.FetchTimeout().String()})
	t.AppendRow(table.Row{"Log", cfg.Logging.Level + " / " + cfg.Logging.Format})
	t.Render()

	keys := table.NewWriter()
	keys.SetOutputMirror(w)
	keys.SetStyle(table.StyleRounded)
	keys.AppendHeader(table.Row{"Platform", "Credential", "Env var", "Status"})
	for _, k := range config.CheckAPIKeys(cfg) {
		status := "❌ not set (mock data)"
		if k.IsSet {
			status = fmt.Sprintf("✅ set (%s: %s)", k.Source, k.Masked)
		}
		keys.AppendRow(table.Row{models.Platform(k.Platform).DisplayName(), k.Name, k.EnvVar, status})
	}
	keys.AppendRow(table.Row{models.PlatformSnapchat.DisplayName(), "-", "-", "unsupported"})
	keys.Render()
}
