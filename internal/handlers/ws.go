package handlers

import (
	"net/http"

	"github.com/clowiiza1/pukkeconnect-backend/internal/logging"
	"github.com/clowiiza1/pukkeconnect-backend/internal/middleware"
	"github.com/clowiiza1/pukkeconnect-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler accepts upgrades from the given origins. An empty list or "*"
// accepts any origin.
func NewWSHandler(hub *ws.Hub, allowedOrigins []string) *WSHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return len(allowed) == 0 || allowed["*"] || origin == "" || allowed[origin]
			},
		},
	}
}

// HandleWebSocket godoc
// @Summary      WebSocket for interest updates
// @Description  Receives "interests.synced" messages whenever the caller's interests change
// @Tags         websocket
// @Param        token query string true "Access token"
// @Router       /ws/students/me [get]
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Ctx(c.Request.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.hub.AddConnection(identity.StudentID, conn)
	defer h.hub.RemoveConnection(identity.StudentID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
