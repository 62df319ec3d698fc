package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/SumukhPhulari10/Interactivequizplatform/internal/config"
	"github.com/SumukhPhulari10/Interactivequizplatform/internal/middleware"
)

const (
	feedWriteTimeout = 10 * time.Second
	feedPingInterval = 30 * time.Second
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allowedOrigins slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// ActivityFeedHandler streams the live activity feed to admins over
// WebSocket, fed by the Redis Pub/Sub channel the telemetry sink
// publishes on.
type ActivityFeedHandler struct {
	rdb      *redis.Client
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewActivityFeedHandler creates a new ActivityFeedHandler.
func NewActivityFeedHandler(rdb *redis.Client, log zerolog.Logger, allowedOrigins []string) *ActivityFeedHandler {
	return &ActivityFeedHandler{
		rdb:      rdb,
		log:      log.With().Str("component", "activity_feed").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// Stream godoc
// WS /ws/v1/admin/activity?token=...
// Forwards every published activity event to the connected admin.
func (h *ActivityFeedHandler) Stream(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	reqCtx := c.Request.Context()

	pubsub := h.rdb.Subscribe(reqCtx, config.CacheKey.ActivityFeedChannel())
	defer pubsub.Close()
	ch := pubsub.Channel()

	feedLog := h.log.With().Str("admin_id", claims.UserID.String()).Logger()
	feedLog.Info().Msg("Admin attached to activity feed")

	// Drain client frames so close messages and pongs are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pingTicker := time.NewTicker(feedPingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-reqCtx.Done():
			feedLog.Info().Msg("Admin disconnected from activity feed")
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				feedLog.Debug().Err(err).Msg("feed write failed, closing")
				return
			}

		case <-pingTicker.C:
			conn.SetWriteDeadline(time.Now().Add(feedWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
