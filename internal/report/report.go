package report

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/seenimoa/commentlens/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Report Generator: chart + template rendering
// ════════════════════════════════════════════════════════════════════

// ReportFormat specifies the output format.
type ReportFormat string

const (
	FormatHTML ReportFormat = "html"
	FormatText ReportFormat = "text"
)

// ParseFormat picks the format from a file name: ".txt" is text,
// everything else is HTML.
func ParseFormat(path string) ReportFormat {
	if strings.HasSuffix(strings.ToLower(path), ".txt") {
		return FormatText
	}
	return FormatHTML
}

// ReportConfig controls report generation behaviour.
type ReportConfig struct {
	Title     string      // custom report title (optional)
	SourceURL string      // analysed URL, shown in the header
	MaxRows   int         // comment rows to include; 0 means all
	ChartCfg  ChartConfig // chart rendering config
	Now       func() time.Time
}

// DefaultReportConfig returns sensible defaults.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		ChartCfg: DefaultChartConfig(),
		Now:      time.Now,
	}
}

// ════════════════════════════════════════════════════════════════════
// Report Data: flattened for template rendering
// ════════════════════════════════════════════════════════════════════

// ReportData is the template model passed to HTML templates.
type ReportData struct {
	Title       string
	Platform    string
	SourceURL   string
	GeneratedAt string

	Total       int
	Positive    int
	Negative    int
	Neutral     int
	PositivePct string
	NegativePct string
	NeutralPct  string
	MeanScore   float64

	DistributionChart template.HTML
	GaugeChart        template.HTML

	Rows    []CommentRow
	Omitted int
}

// CommentRow is a flattened comment for template rendering.
type CommentRow struct {
	Text      string
	Author    string
	Likes     string
	Sentiment string
	Score     string
	IsReply   bool
}

// ════════════════════════════════════════════════════════════════════
// Generate Report
// ════════════════════════════════════════════════════════════════════

// GenerateHTML generates a standalone HTML report for an analysis result.
func GenerateHTML(res *models.AnalysisResult, cfg ReportConfig) (string, error) {
	if res == nil {
		return "", fmt.Errorf("analysis result is nil")
	}

	data := buildReportData(res, cfg)

	tmpl, err := template.New("report").Parse(ReportTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// GenerateText generates a plain-text report (terminal / CLI friendly).
func GenerateText(res *models.AnalysisResult, cfg ReportConfig) (string, error) {
	if res == nil {
		return "", fmt.Errorf("analysis result is nil")
	}
	return renderTextReport(buildReportData(res, cfg)), nil
}

// Generate renders res in the given format.
func Generate(res *models.AnalysisResult, format ReportFormat, cfg ReportConfig) (string, error) {
	if format == FormatText {
		return GenerateText(res, cfg)
	}
	return GenerateHTML(res, cfg)
}

// ════════════════════════════════════════════════════════════════════
// Internal: build template data
// ════════════════════════════════════════════════════════════════════

func buildReportData(res *models.AnalysisResult, cfg ReportConfig) ReportData {
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}
	if cfg.ChartCfg.Width == 0 {
		cfg.ChartCfg = DefaultChartConfig()
	}

	s := res.Summary
	data := ReportData{
		Title:       cfg.Title,
		Platform:    platformOf(res.Comments),
		SourceURL:   cfg.SourceURL,
		GeneratedAt: now().UTC().Format("02 Jan 2006, 15:04 MST"),
		Total:       s.Total,
		Positive:    s.Positive,
		Negative:    s.Negative,
		Neutral:     s.Neutral,
		PositivePct: percent(s.Positive, s.Total),
		NegativePct: percent(s.Negative, s.Total),
		NeutralPct:  percent(s.Neutral, s.Total),
		MeanScore:   meanScore(res.Comments),
	}
	if data.Title == "" {
		data.Title = "Comment Sentiment Report"
	}

	// Chart strings are built from numbers and escaped labels only.
	data.DistributionChart = template.HTML(HorizontalBarChart(DistributionBars(s), cfg.ChartCfg)) //nolint:gosec
	data.GaugeChart = template.HTML(GaugeChart(data.MeanScore, "Mean compound score", 0))         //nolint:gosec

	comments := res.Comments
	if cfg.MaxRows > 0 && len(comments) > cfg.MaxRows {
		data.Omitted = len(comments) - cfg.MaxRows
		comments = comments[:cfg.MaxRows]
	}
	for _, c := range comments {
		data.Rows = append(data.Rows, CommentRow{
			Text:      c.Text,
			Author:    c.Author,
			Likes:     fmt.Sprintf("%d", c.Likes),
			Sentiment: string(c.Sentiment),
			Score:     fmt.Sprintf("%+.3f", c.Score),
			IsReply:   c.IsReply,
		})
	}
	return data
}

func platformOf(comments []models.Comment) string {
	if len(comments) == 0 {
		return "n/a"
	}
	return comments[0].Platform.DisplayName()
}

func percent(n, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.0f%%", float64(n)/float64(total)*100)
}

func meanScore(comments []models.Comment) float64 {
	if len(comments) == 0 {
		return 0
	}
	var sum float64
	for _, c := range comments {
		sum += c.Score
	}
	return sum / float64(len(comments))
}

// ════════════════════════════════════════════════════════════════════
// Text Report
// ════════════════════════════════════════════════════════════════════

func renderTextReport(d ReportData) string {
	var sb strings.Builder
	line := strings.Repeat("═", 60)
	thinLine := strings.Repeat("─", 60)

	sb.WriteString("\n" + line + "\n")
	sb.WriteString(fmt.Sprintf("  %s\n", d.Title))
	sb.WriteString(fmt.Sprintf("  Generated: %s\n", d.GeneratedAt))
	sb.WriteString(line + "\n\n")

	sb.WriteString(fmt.Sprintf("  Platform: %s\n", d.Platform))
	if d.SourceURL != "" {
		sb.WriteString(fmt.Sprintf("  Source:   %s\n", d.SourceURL))
	}
	sb.WriteString(thinLine + "\n")

	sb.WriteString(fmt.Sprintf("  Total:    %d\n", d.Total))
	sb.WriteString(fmt.Sprintf("  Positive: %d (%s)\n", d.Positive, d.PositivePct))
	sb.WriteString(fmt.Sprintf("  Negative: %d (%s)\n", d.Negative, d.NegativePct))
	sb.WriteString(fmt.Sprintf("  Neutral:  %d (%s)\n", d.Neutral, d.NeutralPct))
	sb.WriteString(fmt.Sprintf("  Mean:     %+.3f\n", d.MeanScore))
	sb.WriteString(thinLine + "\n")

	for _, r := range d.Rows {
		indent := "  "
		if r.IsReply {
			indent = "      ↳ "
		}
		sb.WriteString(fmt.Sprintf("%s[%-8s %s] %s\n", indent, r.Sentiment, r.Score, r.Text))
	}
	if d.Omitted > 0 {
		sb.WriteString(fmt.Sprintf("  ... %d more\n", d.Omitted))
	}
	sb.WriteString(line + "\n")
	return sb.String()
}
