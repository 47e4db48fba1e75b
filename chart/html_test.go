package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarplotter/models"
)

func TestWriteHTML_SelfContainedDocument(t *testing.T) {
	desc, ok := Build(testTable(), models.DefaultStyle(), false)
	require.True(t, ok)

	html, err := WriteHTML(desc)
	require.NoError(t, err)

	doc := string(html)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, plotlyCDN)
	assert.Contains(t, doc, "Plotly.newPlot")
	assert.Contains(t, doc, "scatterpolar")
	assert.Contains(t, doc, `<title>Polar Plotter</title>`)
}

func TestWriteHTML_UsesChartTitle(t *testing.T) {
	style := models.DefaultStyle()
	style.Title = "Team skills"

	desc, ok := Build(testTable(), style, false)
	require.True(t, ok)

	html, err := WriteHTML(desc)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<title>Team skills</title>")
}

func TestWriteHTML_Deterministic(t *testing.T) {
	desc, ok := Build(testTable(), models.DefaultStyle(), true)
	require.True(t, ok)

	a, err := WriteHTML(desc)
	require.NoError(t, err)
	b, err := WriteHTML(desc)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
