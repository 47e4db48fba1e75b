package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"polarplotter/models"
	"polarplotter/service"
)

// GetDataHandler returns the session's current table
// @Summary      Get input table
// @Description  Get the current input table and which data source is active
// @Tags         Data
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID"
// @Success      200           {object}  map[string]interface{}  "Table rows and source"
// @Router       /api/data [get]
func (h *Handlers) GetDataHandler(c *gin.Context) {
	sess := h.sessionFromRequest(c)
	c.JSON(http.StatusOK, gin.H{
		"rows":   sess.Table.Rows,
		"source": sess.Source,
	})
}

// SetDataHandler replaces the table with manually entered rows
// @Summary      Set input table
// @Description  Replace the session's table with manually entered rows. An empty table is allowed; no chart is rendered until rows exist.
// @Tags         Data
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string                 false  "Session ID"
// @Param        request       body      models.SetDataRequest  true   "Table rows"
// @Success      200           {object}  map[string]interface{}
// @Failure      400           {object}  map[string]string  "Invalid request"
// @Router       /api/data [put]
func (h *Handlers) SetDataHandler(c *gin.Context) {
	var req models.SetDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sess := h.sessionFromRequest(c)
	sess.Table = models.InputTable{Rows: req.Rows}.Clone()
	sess.Source = models.SourceManual

	c.JSON(http.StatusOK, gin.H{
		"rows":   sess.Table.Rows,
		"source": sess.Source,
	})
}

// UploadDataHandler loads the table from an uploaded spreadsheet
// @Summary      Upload a spreadsheet
// @Description  Upload an xlsx or csv file with the format Label|Value. The parsed rows replace the session's table. The file itself is not kept.
// @Tags         Data
// @Accept       multipart/form-data
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID"
// @Param        file          formData  file    true   "Spreadsheet to upload"
// @Success      200           {object}  map[string]interface{}
// @Failure      400           {object}  map[string]string  "No file or malformed content"
// @Router       /api/data/upload [post]
func (h *Handlers) UploadDataHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
		return
	}
	defer src.Close()

	table, err := service.ParseUpload(file.Filename, src)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to parse file: %v", err)})
		return
	}

	sess := h.sessionFromRequest(c)
	sess.Table = table
	sess.Source = models.SourceUpload

	c.JSON(http.StatusOK, gin.H{
		"rows":   sess.Table.Rows,
		"source": sess.Source,
	})
}

// UseExampleHandler switches back to the built-in example dataset
// @Summary      Use the example dataset
// @Description  Load the built-in 16-row example dataset. While it is active the plot title is fixed.
// @Tags         Data
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID"
// @Success      200           {object}  map[string]interface{}
// @Router       /api/data/example [post]
func (h *Handlers) UseExampleHandler(c *gin.Context) {
	sess := h.sessionFromRequest(c)
	h.sessions.UseExample(sess)

	c.JSON(http.StatusOK, gin.H{
		"rows":   sess.Table.Rows,
		"source": sess.Source,
	})
}
