package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOpacity(t *testing.T) {
	assert.NoError(t, CheckOpacity("opacity", 0))
	assert.NoError(t, CheckOpacity("opacity", 0.5))
	assert.NoError(t, CheckOpacity("opacity", 1))
	assert.Error(t, CheckOpacity("opacity", -0.1))
	assert.Error(t, CheckOpacity("opacity", 1.1))
}

func TestCheckSmoothing(t *testing.T) {
	assert.NoError(t, CheckSmoothing(0))
	assert.NoError(t, CheckSmoothing(1.3))
	assert.Error(t, CheckSmoothing(1.4))
	assert.Error(t, CheckSmoothing(-0.1))
}

func TestCheckPixelSize(t *testing.T) {
	assert.NoError(t, CheckPixelSize("marker_size", 0))
	assert.NoError(t, CheckPixelSize("marker_size", 10))
	assert.Error(t, CheckPixelSize("marker_size", 11))
	assert.Error(t, CheckPixelSize("marker_size", -1))
}

func TestCheckColor(t *testing.T) {
	assert.NoError(t, CheckColor("marker_color", "#636EFA"))
	assert.NoError(t, CheckColor("marker_color", "#ff00aa"))
	assert.Error(t, CheckColor("marker_color", "636EFA"))
	assert.Error(t, CheckColor("marker_color", "#fff"))
	assert.Error(t, CheckColor("marker_color", "#zzzzzz"))
	assert.Error(t, CheckColor("marker_color", ""))
}

func TestCheckEnum(t *testing.T) {
	assert.NoError(t, CheckEnum("line_dash", "solid", LineDashes))
	assert.NoError(t, CheckEnum("line_dash", "longdashdot", LineDashes))
	assert.Error(t, CheckEnum("line_dash", "wavy", LineDashes))

	assert.NoError(t, CheckEnum("line_shape", "spline", LineShapes))
	assert.Error(t, CheckEnum("line_shape", "step", LineShapes))
}

func TestCheckMode(t *testing.T) {
	assert.NoError(t, CheckMode(nil))
	assert.NoError(t, CheckMode([]string{}))
	assert.NoError(t, CheckMode([]string{"lines"}))
	assert.NoError(t, CheckMode([]string{"lines", "markers"}))
	assert.Error(t, CheckMode([]string{"lines", "lines"}))
	assert.Error(t, CheckMode([]string{"text"}))
}

func TestCheckMarkerSymbol(t *testing.T) {
	assert.NoError(t, CheckMarkerSymbol("circle"))
	assert.NoError(t, CheckMarkerSymbol("star-triangle-down-open-dot"))
	assert.NoError(t, CheckMarkerSymbol("y-up-open"))
	assert.Error(t, CheckMarkerSymbol("blob"))
	assert.Error(t, CheckMarkerSymbol(""))
}

func TestMarkerSymbols_NoDuplicates(t *testing.T) {
	assert.Len(t, markerSymbolSet, len(MarkerSymbols))
}
