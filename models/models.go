package models

// Row is one entry of the input table: a category label and its magnitude.
type Row struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// InputTable is the two-column dataset a chart is built from. Extra columns in
// uploaded files are ignored at parse time, so only label/value survive here.
type InputTable struct {
	Rows []Row `json:"rows"`
}

// Clone returns a deep copy, so one session's edits never leak into another.
func (t InputTable) Clone() InputTable {
	rows := make([]Row, len(t.Rows))
	copy(rows, t.Rows)
	return InputTable{Rows: rows}
}

// Data source markers for a session. The example dataset forces the plot title.
const (
	SourceExample = "example"
	SourceUpload  = "upload"
	SourceManual  = "manual"
)

// StyleConfig holds the styling options for the polar trace. One instance lives
// per session; Reset puts every field back to its default.
type StyleConfig struct {
	Title         string   `json:"title"`
	Opacity       float64  `json:"opacity"`
	Mode          []string `json:"mode"`
	HoverTemplate string   `json:"hovertemplate"`
	MarkerColor   string   `json:"marker_color"`
	MarkerOpacity float64  `json:"marker_opacity"`
	MarkerSize    int      `json:"marker_size"`
	MarkerSymbol  string   `json:"marker_symbol"`
	LineColor     string   `json:"line_color"`
	LineDash      string   `json:"line_dash"`
	LineShape     string   `json:"line_shape"`
	LineSmoothing float64  `json:"line_smoothing"`
	LineWidth     int      `json:"line_width"`
	FillColor     string   `json:"fillcolor"`
	FillOpacity   float64  `json:"fill_opacity"`
}

// DefaultStyle returns the documented default configuration.
func DefaultStyle() StyleConfig {
	return StyleConfig{
		Title:         "",
		Opacity:       1,
		Mode:          []string{"lines", "markers"},
		HoverTemplate: "%{theta}: %{r}",
		MarkerColor:   "#636EFA",
		MarkerOpacity: 1,
		MarkerSize:    6,
		MarkerSymbol:  "circle",
		LineColor:     "#636EFA",
		LineDash:      "solid",
		LineShape:     "linear",
		LineSmoothing: 1,
		LineWidth:     2,
		FillColor:     "#636EFA",
		FillOpacity:   0.5,
	}
}

// Reset overwrites every field with its default. It never touches the table.
func (s *StyleConfig) Reset() {
	*s = DefaultStyle()
}

// Marker carries the marker attributes of a scatterpolar trace.
type Marker struct {
	Color   string  `json:"color"`
	Opacity float64 `json:"opacity"`
	Size    int     `json:"size"`
	Symbol  string  `json:"symbol"`
}

// Line carries the line attributes of a scatterpolar trace.
type Line struct {
	Color     string  `json:"color"`
	Dash      string  `json:"dash"`
	Shape     string  `json:"shape"`
	Smoothing float64 `json:"smoothing"`
	Width     int     `json:"width"`
}

// Trace is a plotly scatterpolar trace: radius/angle arrays plus styling.
type Trace struct {
	Type          string    `json:"type"`
	R             []float64 `json:"r"`
	Theta         []string  `json:"theta"`
	Mode          string    `json:"mode"`
	Opacity       float64   `json:"opacity"`
	HoverTemplate string    `json:"hovertemplate"`
	Marker        Marker    `json:"marker"`
	Line          Line      `json:"line"`
	Fill          string    `json:"fill"`
	FillColor     string    `json:"fillcolor"`
}

// Title is a plotly layout title with horizontal anchoring.
type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x"`
	XAnchor string  `json:"xanchor"`
}

// Layout carries the chart-level attributes.
type Layout struct {
	Title        Title  `json:"title"`
	PaperBGColor string `json:"paper_bgcolor"`
	PlotBGColor  string `json:"plot_bgcolor"`
}

// ChartDescription is the renderable chart: one closed-polygon trace plus layout.
// It is derived from (InputTable, StyleConfig) on every request and never stored.
type ChartDescription struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// ExportRecord is the metadata kept for one exported chart artifact.
type ExportRecord struct {
	Filename  string `json:"filename"`
	Format    string `json:"format"` // "html" or "png"
	SessionID string `json:"session_id"`
	Size      int64  `json:"size"`
	CreatedAt string `json:"created_at"`
}

// UpdateStyleRequest is the PUT /api/style body. Pointer fields distinguish
// "not supplied" from zero values, so partial updates are possible.
type UpdateStyleRequest struct {
	Title         *string   `json:"title,omitempty"`
	Opacity       *float64  `json:"opacity,omitempty"`
	Mode          *[]string `json:"mode,omitempty"`
	HoverTemplate *string   `json:"hovertemplate,omitempty"`
	MarkerColor   *string   `json:"marker_color,omitempty"`
	MarkerOpacity *float64  `json:"marker_opacity,omitempty"`
	MarkerSize    *int      `json:"marker_size,omitempty"`
	MarkerSymbol  *string   `json:"marker_symbol,omitempty"`
	LineColor     *string   `json:"line_color,omitempty"`
	LineDash      *string   `json:"line_dash,omitempty"`
	LineShape     *string   `json:"line_shape,omitempty"`
	LineSmoothing *float64  `json:"line_smoothing,omitempty"`
	LineWidth     *int      `json:"line_width,omitempty"`
	FillColor     *string   `json:"fillcolor,omitempty"`
	FillOpacity   *float64  `json:"fill_opacity,omitempty"`
}

// SetDataRequest is the PUT /api/data body for manually entered rows.
type SetDataRequest struct {
	Rows []Row `json:"rows"`
}

// SessionResponse is returned when a new session is created.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// ExportResponse is returned after a successful export.
type ExportResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	Path     string `json:"path"`
}
