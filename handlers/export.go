package handlers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"polarplotter/chart"
	"polarplotter/models"
)

// ExportHTMLHandler exports the chart as an interactive HTML document
// @Summary      Export interactive HTML
// @Description  Serialize the current chart to a self-contained interactive HTML file and store it for download
// @Tags         Export
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID"
// @Success      200           {object}  models.ExportResponse
// @Failure      400           {object}  map[string]string  "No chart to export"
// @Failure      500           {object}  map[string]string  "Export failed"
// @Router       /api/export/html [post]
func (h *Handlers) ExportHTMLHandler(c *gin.Context) {
	sess := h.sessionFromRequest(c)

	desc, ok := chart.Build(&sess.Table, sess.Style, sess.ExampleActive())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No chart to export"})
		return
	}

	rec, err := h.exports.SaveHTML(desc, sess.ID)
	if err != nil {
		log.Printf("Error exporting HTML: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to export chart: %v", err)})
		return
	}

	c.JSON(http.StatusOK, models.ExportResponse{
		Message:  "Chart exported successfully",
		Filename: rec.Filename,
		Path:     fmt.Sprintf("/api/exports/file/%s", rec.Filename),
	})
}

// ExportPNGHandler exports the chart as a static PNG image
// @Summary      Export static PNG
// @Description  Render the chart in headless Chrome and store the screenshot for download. Requires Chrome/Chromium on the server.
// @Tags         Export
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID"
// @Success      200           {object}  models.ExportResponse
// @Failure      400           {object}  map[string]string  "No chart to export"
// @Failure      503           {object}  map[string]string  "Chrome not available"
// @Failure      500           {object}  map[string]string  "Export failed"
// @Router       /api/export/png [post]
func (h *Handlers) ExportPNGHandler(c *gin.Context) {
	sess := h.sessionFromRequest(c)

	desc, ok := chart.Build(&sess.Table, sess.Style, sess.ExampleActive())
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No chart to export"})
		return
	}

	rec, err := h.exports.SavePNG(c.Request.Context(), desc, sess.ID)
	if err != nil {
		log.Printf("Error exporting PNG: %v", err)
		if strings.Contains(err.Error(), "executable file not found") {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chrome is not available on this server"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to export chart: %v", err)})
		return
	}

	c.JSON(http.StatusOK, models.ExportResponse{
		Message:  "Chart exported successfully",
		Filename: rec.Filename,
		Path:     fmt.Sprintf("/api/exports/file/%s", rec.Filename),
	})
}

// ListExportsHandler lists all exported files
// @Summary      List exports
// @Description  Get the records of all exported chart files, newest first
// @Tags         Export
// @Produce      json
// @Success      200  {object}  map[string][]models.ExportRecord  "List of export records"
// @Failure      500  {object}  map[string]string                 "Failed to list exports"
// @Router       /api/exports [get]
func (h *Handlers) ListExportsHandler(c *gin.Context) {
	records, err := h.exports.ListExports()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to list exports: %v", err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": records})
}

// DownloadExportHandler streams an exported file back as a download
// @Summary      Download an exported file
// @Description  Download a previously exported chart file (text/html or image/png)
// @Tags         Export
// @Produce      text/html
// @Produce      png
// @Param        filename  path      string  true  "Exported file name"
// @Success      200       {file}    file
// @Failure      400       {object}  map[string]string  "Filename required"
// @Failure      404       {object}  map[string]string  "File not found"
// @Router       /api/exports/file/{filename} [get]
func (h *Handlers) DownloadExportHandler(c *gin.Context) {
	filename := c.Param("filename")
	if filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Filename is required"})
		return
	}

	rec, err := h.exports.GetExport(filename)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("File not found: %v", err)})
		return
	}

	path := h.exports.FilePath(rec.Filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Exported file no longer exists"})
		return
	}

	contentType := "text/html; charset=utf-8"
	if rec.Format == "png" {
		contentType = "image/png"
	}
	c.Header("Content-Type", contentType)
	c.FileAttachment(path, rec.Filename)
}
