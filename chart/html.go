package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"polarplotter/models"
)

// plotlyCDN is the viewer script embedded by reference in exported documents.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.27.0.min.js"

var htmlTemplate = template.Must(template.New("chart").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.CDN}}"></script>
<style>html, body { margin: 0; height: 100%; } #chart { height: 100%; }</style>
</head>
<body>
<div id="chart"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("chart", figure.data, figure.layout, {responsive: true});
</script>
</body>
</html>
`))

// WriteHTML serializes the chart into a self-contained interactive document:
// a single portable file embedding the figure and the plotly viewer bootstrap.
func WriteHTML(desc models.ChartDescription) ([]byte, error) {
	figure, err := json.Marshal(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chart: %w", err)
	}

	title := desc.Layout.Title.Text
	if title == "" {
		title = "Polar Plotter"
	}

	var buf bytes.Buffer
	err = htmlTemplate.Execute(&buf, struct {
		Title  string
		CDN    string
		Figure template.JS
	}{
		Title:  title,
		CDN:    plotlyCDN,
		Figure: template.JS(figure),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render chart document: %w", err)
	}

	return buf.Bytes(), nil
}
