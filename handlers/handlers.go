package handlers

import (
	"github.com/gin-gonic/gin"

	"polarplotter/service"
	"polarplotter/session"
)

// @title           Polar Plotter API
// @version         0.3.1
// @description     Polar Plotter API - build rich polar/radar/spider plots from a two-column dataset and export them as interactive HTML or static PNG
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:9090
// @BasePath  /

// @schemes   http https

type Handlers struct {
	sessions *session.Manager
	exports  *service.ExportService
}

func New(sessions *session.Manager, exports *service.ExportService) *Handlers {
	return &Handlers{
		sessions: sessions,
		exports:  exports,
	}
}

// sessionFromRequest resolves the caller's session from the X-Session-ID
// header, falling back to the shared default session.
func (h *Handlers) sessionFromRequest(c *gin.Context) *session.Session {
	return h.sessions.GetOrCreate(c.GetHeader("X-Session-ID"))
}
