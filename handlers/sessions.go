package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"polarplotter/models"
)

// CreateSessionHandler creates a new session with the default style and the
// example dataset active.
// @Summary      Create a new session
// @Description  Create a session holding its own table and style state. Pass the returned ID in the X-Session-ID header on subsequent requests.
// @Tags         Sessions
// @Produce      json
// @Success      201  {object}  models.SessionResponse
// @Router       /api/sessions [post]
func (h *Handlers) CreateSessionHandler(c *gin.Context) {
	id := uuid.New().String()
	h.sessions.GetOrCreate(id)
	c.JSON(http.StatusCreated, models.SessionResponse{SessionID: id})
}
