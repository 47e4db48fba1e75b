package chart

import (
	"strconv"
	"strings"

	"polarplotter/models"
)

// ExampleTitle overrides the user title while the example dataset is active.
const ExampleTitle = "Job Requirements"

// defaultFillRGBA is used when the configured fill color cannot be parsed.
const defaultFillRGBA = "rgba(99, 110, 250, 0.5)"

// hoverSuffix hides plotly's secondary hover box. It is always appended to the
// user's hover template and cannot be removed.
const hoverSuffix = "<extra></extra>"

// backgroundRGBA is the transparent paper/plot background.
const backgroundRGBA = "rgba(100,100,100,0)"

// Build derives the renderable chart description from a table snapshot and a
// style snapshot. It is a pure function: identical inputs produce identical
// descriptions. The second return is false when there is nothing to draw
// (missing or empty table), in which case the first return is the zero value.
func Build(table *models.InputTable, style models.StyleConfig, exampleActive bool) (models.ChartDescription, bool) {
	if table == nil || len(table.Rows) == 0 {
		return models.ChartDescription{}, false
	}

	n := len(table.Rows)
	labels := make([]string, 0, n+1)
	values := make([]float64, 0, n+1)
	for _, row := range table.Rows {
		labels = append(labels, row.Label)
		values = append(values, row.Value)
	}

	// Duplicate the first point to close the polygon, then reverse the whole
	// sequence. The reversal only changes draw direction, not the point set.
	labels = append(labels, labels[0])
	values = append(values, values[0])
	reverse(labels)
	reverse(values)

	mode := "none"
	if len(style.Mode) > 0 {
		mode = strings.Join(style.Mode, "+")
	}

	trace := models.Trace{
		Type:          "scatterpolar",
		R:             values,
		Theta:         labels,
		Mode:          mode,
		Opacity:       style.Opacity,
		HoverTemplate: style.HoverTemplate + hoverSuffix,
		Marker: models.Marker{
			Color:   style.MarkerColor,
			Opacity: style.MarkerOpacity,
			Size:    style.MarkerSize,
			Symbol:  style.MarkerSymbol,
		},
		Line: models.Line{
			Color:     style.LineColor,
			Dash:      style.LineDash,
			Shape:     style.LineShape,
			Smoothing: style.LineSmoothing,
			Width:     style.LineWidth,
		},
		Fill:      "toself",
		FillColor: FillRGBA(style.FillColor, style.FillOpacity),
	}

	title := style.Title
	if exampleActive {
		title = ExampleTitle
	}

	layout := models.Layout{
		Title: models.Title{
			Text:    title,
			X:       0.5,
			XAnchor: "center",
		},
		PaperBGColor: backgroundRGBA,
		PlotBGColor:  backgroundRGBA,
	}

	return models.ChartDescription{
		Data:   []models.Trace{trace},
		Layout: layout,
	}, true
}

// FillRGBA combines a "#RRGGBB" fill color and a fill opacity into one rgba
// color string. Malformed input falls back to the default fill.
func FillRGBA(hexColor string, opacity float64) string {
	hex := strings.TrimPrefix(hexColor, "#")
	if len(hex) != 6 {
		return defaultFillRGBA
	}

	var channels [3]int64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseInt(hex[i*2:i*2+2], 16, 32)
		if err != nil {
			return defaultFillRGBA
		}
		channels[i] = v
	}

	return "rgba(" + strconv.FormatInt(channels[0], 10) + ", " +
		strconv.FormatInt(channels[1], 10) + ", " +
		strconv.FormatInt(channels[2], 10) + ", " +
		strconv.FormatFloat(opacity, 'g', -1, 64) + ")"
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
