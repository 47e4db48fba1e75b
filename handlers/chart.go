package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polarplotter/chart"
)

// GetChartHandler builds the chart from the session's current state
// @Summary      Build the chart
// @Description  Derive the renderable chart description from the current table and style snapshots. Returns 204 when there is nothing to draw (empty table).
// @Tags         Chart
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID"
// @Success      200           {object}  models.ChartDescription
// @Success      204           "No chart"
// @Router       /api/chart [get]
func (h *Handlers) GetChartHandler(c *gin.Context) {
	sess := h.sessionFromRequest(c)

	desc, ok := chart.Build(&sess.Table, sess.Style, sess.ExampleActive())
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, desc)
}
