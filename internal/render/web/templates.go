package web

const tmplPage = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Brent Oil Analysis Dashboard</title>
<style>
body{font-family:'Segoe UI',sans-serif;max-width:960px;margin:auto;padding:2rem;background:#f8fafc;color:#0f172a}
h1{text-align:center;color:#1e3a8a}
h2{margin-top:2rem}
.row{display:flex;gap:1rem;align-items:center;margin-bottom:1rem}
.errors h2{color:darkred}
.events{padding-left:0}
.events li{list-style:none;margin-bottom:1rem;background:#fff;padding:1rem;border-radius:8px;box-shadow:0 2px 4px rgba(0,0,0,.1)}
.chart{background:#fff;border-radius:8px;box-shadow:0 2px 4px rgba(0,0,0,.1)}
.legend span{margin-right:1rem}
.dim{color:#64748b;font-size:12px}
</style>
</head>
<body>
<h1>Brent Oil Analysis Dashboard</h1>

<section>
<h3>Filter by Date</h3>
<form method="get" class="row">
<label>Start: <input type="date" name="start" value="{{.Filter.Start}}"></label>
<label>End: <input type="date" name="end" value="{{.Filter.End}}"></label>
<input type="hidden" name="type" value="{{.Filter.Type}}">
<input type="hidden" name="source" value="{{.Filter.Source}}">
<button type="submit">Apply</button>
</form>
</section>

{{if .Errors}}
<section class="errors" id="errors">
<h2>Errors</h2>
<ul>
{{range .Errors}}<li><strong>{{.Dataset}}</strong>: {{.Message}}</li>
{{end}}</ul>
</section>
{{end}}

{{with .Prices}}
<section id="prices">
<h2>Brent Price</h2>
{{template "chart" (priceChart .)}}
</section>
{{end}}

{{with .Forecast}}
<section id="forecast">
<h2>Forecast vs Actual</h2>
{{template "chart" (forecastChart .)}}
</section>
{{end}}

{{if .Events}}
<section id="events">
<h2>Event Impact on Prices</h2>
<form method="get" class="row">
<input type="hidden" name="start" value="{{.Filter.Start}}">
<input type="hidden" name="end" value="{{.Filter.End}}">
<label>Type:
<select name="type" onchange="this.form.submit()">
{{$sel := .Filter.Type}}{{range .Events.TypeOptions}}<option value="{{.}}"{{if eq . $sel}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<label>Source:
<select name="source" onchange="this.form.submit()">
{{$src := .Filter.Source}}{{range .Events.SourceOptions}}<option value="{{.}}"{{if eq . $src}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<noscript><button type="submit">Filter</button></noscript>
</form>
<ul class="events">
{{range .Events.Items}}<li class="event">
<strong>{{.Event}}</strong> ({{.Date}})<br>
Type: {{.Type}} | &Delta; Price: <strong>{{.ActualImpact}}</strong><br>
Source of information: {{infoSource .}}
</li>
{{else}}<li class="dim">No events match the current filters.</li>
{{end}}</ul>
</section>
{{end}}

{{with .Summary}}
<section id="summary">
<h2>Summary</h2>
<p>Volatility: <strong>{{fmtNum .Volatility}}</strong></p>
<p>Avg Daily Change: <strong>{{fmtNum .AvgDailyChange}}</strong></p>
</section>
{{end}}

{{with .Metrics}}
<section id="metrics">
<h2>Model Metrics</h2>
<ul>
{{range .RMSE}}<li>{{.Model}}: RMSE = {{fmtNum .Value}}</li>
{{end}}</ul>
</section>
{{end}}

{{with .Macros}}
<section id="macros">
<h2>Macro Indicators</h2>
<p>GDP Growth: <strong>{{fmtNum .GDPGrowth}}%</strong></p>
<p>Inflation Rate: <strong>{{fmtNum .InflationRate}}%</strong></p>
<p>Exchange Rate: <strong>{{fmtNum .ExchangeRate}}</strong></p>
</section>
{{end}}

{{with .Sentiment}}
<section id="sentiment">
<h2>Sentiment Analysis</h2>
<p>Positive: {{.Positive}}</p>
<p>Neutral: {{.Neutral}}</p>
<p>Negative: {{.Negative}}</p>
</section>
{{end}}
</body>
</html>
{{end}}
`

const tmplChart = `
{{define "chart"}}{{if .Empty}}<p class="dim">No data in the selected range.</p>{{else}}
<svg class="chart" viewBox="0 0 {{.Width}} {{.Height}}" width="100%" role="img">
{{range .Polylines}}<polyline fill="none" stroke="{{.Color}}" stroke-width="1.5"{{if .Dashed}} stroke-dasharray="5,5"{{end}} points="{{.Points}}"><title>{{.Label}}</title></polyline>
{{end}}<text x="24" y="{{.Height}}" font-size="10" dy="-6">{{.FirstLabel}}</text>
<text x="{{.Width}}" y="{{.Height}}" font-size="10" dx="-24" dy="-6" text-anchor="end">{{.LastLabel}}</text>
</svg>
<div class="legend dim">{{range .Series}}<span style="color:{{.Color}}">&#9644; {{.Label}}</span>{{end}}</div>
{{end}}{{end}}
`
