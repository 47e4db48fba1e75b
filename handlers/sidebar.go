package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"polarplotter/config"
)

// SidebarHandler serves the templated help panel
// @Summary      Sidebar help content
// @Description  Static help panel with the current version substituted in
// @Tags         Misc
// @Produce      text/html
// @Success      200  {string}  string  "Sidebar HTML"
// @Router       /api/sidebar [get]
func (h *Handlers) SidebarHandler(c *gin.Context) {
	html := strings.ReplaceAll(config.SidebarHTML, "{VERSION}", config.Version)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// VersionHandler returns the service version
// @Summary      Service version
// @Tags         Misc
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/version [get]
func (h *Handlers) VersionHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"version": config.Version})
}
