package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/gearbox-dev/gearbox/pkg/models"
)

// websocketHandler handles GET /ws: upgrades the connection and hands
// it to the connection manager, which owns the subscribe/unsubscribe
// protocol. Blocks for the lifetime of the connection.
func (s *Server) websocketHandler(c *gin.Context) {
	if s.deps.Manager == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, errorBody{
			Code:    models.CodeHandlerFailed,
			Message: "event streaming is not enabled",
		})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// Local-first runtime; the server binds loopback.
		OriginPatterns: []string{"localhost:*", "127.0.0.1:*"},
	})
	if err != nil {
		// Accept already wrote the HTTP error response.
		return
	}

	s.deps.Manager.HandleConnection(c.Request.Context(), conn)
}
