package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"polarplotter/models"
	"polarplotter/validation"
)

// GetStyleHandler returns the current style configuration
// @Summary      Get style configuration
// @Description  Get the current styling options of the session
// @Tags         Style
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID"
// @Success      200           {object}  models.StyleConfig
// @Router       /api/style [get]
func (h *Handlers) GetStyleHandler(c *gin.Context) {
	sess := h.sessionFromRequest(c)
	c.JSON(http.StatusOK, sess.Style)
}

// UpdateStyleHandler updates style fields
// @Summary      Update style configuration
// @Description  Update one or more styling options. Omitted fields keep their current value. Values outside the documented ranges are rejected, so the stored style is always valid.
// @Tags         Style
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header    string                     false  "Session ID"
// @Param        request       body      models.UpdateStyleRequest  true   "Fields to update"
// @Success      200           {object}  models.StyleConfig
// @Failure      400           {object}  map[string]string  "Invalid request or out-of-range value"
// @Router       /api/style [put]
func (h *Handlers) UpdateStyleHandler(c *gin.Context) {
	var req models.UpdateStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	sess := h.sessionFromRequest(c)

	// Validate everything before touching the session so a bad field does not
	// leave a half-applied update behind.
	if err := checkStyleUpdate(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applyStyleUpdate(&sess.Style, req)
	c.JSON(http.StatusOK, sess.Style)
}

// ResetStyleHandler resets the style configuration to defaults
// @Summary      Reset style to defaults
// @Description  Overwrite every styling option with its default value. The data table is not touched.
// @Tags         Style
// @Produce      json
// @Param        X-Session-ID  header    string  false  "Session ID"
// @Success      200           {object}  models.StyleConfig
// @Router       /api/style/reset [post]
func (h *Handlers) ResetStyleHandler(c *gin.Context) {
	sess := h.sessionFromRequest(c)
	sess.Style.Reset()
	c.JSON(http.StatusOK, sess.Style)
}

func checkStyleUpdate(req models.UpdateStyleRequest) error {
	if req.Opacity != nil {
		if err := validation.CheckOpacity("opacity", *req.Opacity); err != nil {
			return err
		}
	}
	if req.Mode != nil {
		if err := validation.CheckMode(*req.Mode); err != nil {
			return err
		}
	}
	if req.MarkerColor != nil {
		if err := validation.CheckColor("marker_color", *req.MarkerColor); err != nil {
			return err
		}
	}
	if req.MarkerOpacity != nil {
		if err := validation.CheckOpacity("marker_opacity", *req.MarkerOpacity); err != nil {
			return err
		}
	}
	if req.MarkerSize != nil {
		if err := validation.CheckPixelSize("marker_size", *req.MarkerSize); err != nil {
			return err
		}
	}
	if req.MarkerSymbol != nil {
		if err := validation.CheckMarkerSymbol(*req.MarkerSymbol); err != nil {
			return err
		}
	}
	if req.LineColor != nil {
		if err := validation.CheckColor("line_color", *req.LineColor); err != nil {
			return err
		}
	}
	if req.LineDash != nil {
		if err := validation.CheckEnum("line_dash", *req.LineDash, validation.LineDashes); err != nil {
			return err
		}
	}
	if req.LineShape != nil {
		if err := validation.CheckEnum("line_shape", *req.LineShape, validation.LineShapes); err != nil {
			return err
		}
	}
	if req.LineSmoothing != nil {
		if err := validation.CheckSmoothing(*req.LineSmoothing); err != nil {
			return err
		}
	}
	if req.LineWidth != nil {
		if err := validation.CheckPixelSize("line_width", *req.LineWidth); err != nil {
			return err
		}
	}
	if req.FillColor != nil {
		if err := validation.CheckColor("fillcolor", *req.FillColor); err != nil {
			return err
		}
	}
	if req.FillOpacity != nil {
		if err := validation.CheckOpacity("fill_opacity", *req.FillOpacity); err != nil {
			return err
		}
	}
	return nil
}

func applyStyleUpdate(style *models.StyleConfig, req models.UpdateStyleRequest) {
	if req.Title != nil {
		style.Title = *req.Title
	}
	if req.Opacity != nil {
		style.Opacity = *req.Opacity
	}
	if req.Mode != nil {
		style.Mode = *req.Mode
	}
	if req.HoverTemplate != nil {
		style.HoverTemplate = *req.HoverTemplate
	}
	if req.MarkerColor != nil {
		style.MarkerColor = *req.MarkerColor
	}
	if req.MarkerOpacity != nil {
		style.MarkerOpacity = *req.MarkerOpacity
	}
	if req.MarkerSize != nil {
		style.MarkerSize = *req.MarkerSize
	}
	if req.MarkerSymbol != nil {
		style.MarkerSymbol = *req.MarkerSymbol
	}
	if req.LineColor != nil {
		style.LineColor = *req.LineColor
	}
	if req.LineDash != nil {
		style.LineDash = *req.LineDash
	}
	if req.LineShape != nil {
		style.LineShape = *req.LineShape
	}
	if req.LineSmoothing != nil {
		style.LineSmoothing = *req.LineSmoothing
	}
	if req.LineWidth != nil {
		style.LineWidth = *req.LineWidth
	}
	if req.FillColor != nil {
		style.FillColor = *req.FillColor
	}
	if req.FillOpacity != nil {
		style.FillOpacity = *req.FillOpacity
	}
}
