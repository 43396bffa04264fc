package report

// ReportTemplate is the HTML template for the sentiment report.
// It has no external assets so the file can be shared as is.
const ReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
  :root {
    --bg: #ffffff;
    --text: #1a1a2e;
    --muted: #6b7280;
    --border: #e5e7eb;
    --accent: #2563eb;
    --green: #16a34a;
    --red: #dc2626;
    --grey: #9ca3af;
    --section-bg: #f8fafc;
  }
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    color: var(--text);
    background: var(--bg);
    line-height: 1.6;
    max-width: 900px;
    margin: 0 auto;
    padding: 20px;
  }
  h1 { font-size: 1.5rem; margin-bottom: 4px; color: var(--accent); }
  h2 { font-size: 1.2rem; margin: 24px 0 12px; padding-bottom: 6px; border-bottom: 2px solid var(--accent); }
  .muted { color: var(--muted); font-size: 0.85rem; }
  .header { border-bottom: 3px solid var(--accent); padding-bottom: 12px; margin-bottom: 16px; }
  .platform-badge {
    display: inline-block;
    background: var(--accent);
    color: white;
    padding: 2px 12px;
    border-radius: 4px;
    font-weight: 700;
    margin-right: 8px;
  }

  .stat-bar {
    display: grid;
    grid-template-columns: repeat(4, 1fr);
    gap: 8px;
    background: var(--section-bg);
    padding: 12px;
    border-radius: 8px;
  }
  .stat-item { text-align: center; }
  .stat-item .label { font-size: 0.75rem; color: var(--muted); text-transform: uppercase; }
  .stat-item .value { font-size: 1.3rem; font-weight: 600; }
  .positive { color: var(--green); }
  .negative { color: var(--red); }
  .neutral { color: var(--grey); }

  .charts { display: flex; gap: 16px; align-items: center; flex-wrap: wrap; margin: 12px 0; }

  table { width: 100%; border-collapse: collapse; margin: 8px 0 16px; font-size: 0.9rem; }
  th { background: var(--section-bg); text-align: left; padding: 8px; font-weight: 600; }
  td { padding: 8px; border-bottom: 1px solid var(--border); vertical-align: top; }
  tr.reply td.text { padding-left: 32px; }
  .badge { display: inline-block; padding: 1px 8px; border-radius: 3px; font-size: 0.8rem; font-weight: 600; }
  .badge.positive { background: #dcfce7; }
  .badge.negative { background: #fef2f2; }
  .badge.neutral { background: #f3f4f6; }

  .footer { margin-top: 32px; padding-top: 12px; border-top: 1px solid var(--border); color: var(--muted); font-size: 0.8rem; }
</style>
</head>
<body>

<div class="header">
  <h1>{{.Title}}</h1>
  <p><span class="platform-badge">{{.Platform}}</span><span class="muted">{{.SourceURL}}</span></p>
  <p class="muted">Generated {{.GeneratedAt}}</p>
</div>

<div class="section">
  <h2>Summary</h2>
  <div class="stat-bar">
    <div class="stat-item"><div class="label">Total</div><div class="value">{{.Total}}</div></div>
    <div class="stat-item"><div class="label">Positive</div><div class="value positive">{{.Positive}} <span class="muted">{{.PositivePct}}</span></div></div>
    <div class="stat-item"><div class="label">Negative</div><div class="value negative">{{.Negative}} <span class="muted">{{.NegativePct}}</span></div></div>
    <div class="stat-item"><div class="label">Neutral</div><div class="value neutral">{{.Neutral}} <span class="muted">{{.NeutralPct}}</span></div></div>
  </div>
  <div class="charts">
    <div>{{.DistributionChart}}</div>
    <div>{{.GaugeChart}}</div>
  </div>
</div>

{{if .Rows}}
<div class="section">
  <h2>Comments</h2>
  <table>
    <thead><tr><th>Comment</th><th>Author</th><th>Likes</th><th>Sentiment</th><th>Score</th></tr></thead>
    <tbody>
    {{range .Rows}}
    <tr{{if .IsReply}} class="reply"{{end}}>
      <td class="text">{{if .IsReply}}↳ {{end}}{{.Text}}</td>
      <td>{{.Author}}</td>
      <td>{{.Likes}}</td>
      <td><span class="badge {{.Sentiment}}">{{.Sentiment}}</span></td>
      <td>{{.Score}}</td>
    </tr>
    {{end}}
    </tbody>
  </table>
</div>
{{end}}

<div class="footer">
  <p>Scores are VADER compound scores in [-1, 1]. Labels follow the sign of the score.</p>
  <p>commentlens · {{.GeneratedAt}}</p>
</div>

</body>
</html>`
