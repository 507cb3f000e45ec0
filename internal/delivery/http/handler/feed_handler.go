package handler

import (
	"net/http"

	"rentnest/internal/realtime"
	utils "rentnest/pkg"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Mobile clients connect from app webviews with no stable origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type FeedHandler struct {
	hub *realtime.Hub
	log zerolog.Logger
}

func NewFeedHandler(hub *realtime.Hub, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{hub: hub, log: log}
}

// Serve upgrades to a WebSocket and streams the user's realtime feed.
// Browsers cannot set headers on the upgrade request, so the token rides
// in the query string.
func (h *FeedHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	realtime.NewClient(h.hub, claims.UserID, conn).Run()
}
