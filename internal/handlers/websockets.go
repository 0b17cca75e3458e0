package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ocs_dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait   = 10 * time.Second
	pongWait    = 60 * time.Second
	pingPeriod  = (pongWait * 9) / 10
	maxReadSize = 1 << 10

	defaultInterval = 3 * time.Second
	maxInterval     = 10 * time.Second
)

// Snapshots are read-only; any origin may subscribe.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// feedSession is one live /ws subscriber.
type feedSession struct {
	h    *Handler
	conn *websocket.Conn
	feed *fleetFeed
}

// wsConnect streams the fleet: a snapshot with recent log entries first, then
// a frame per poll carrying only moved assets and new entries. ?asset=KEY
// narrows the stream to one asset.
func (h *Handler) wsConnect(c *gin.Context) {
	interval := pollInterval(c)
	asset := strings.TrimSpace(c.Query("asset"))
	if asset != "" {
		if _, err := h.services.Assets.GetAsset(c.Request.Context(), asset); err != nil {
			h.respondControlError(c, "ws_asset_lookup_failed", asset, err)
			return
		}
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	s := &feedSession{h: h, conn: conn, feed: newFleetFeed(asset)}
	s.run(c.Request.Context(), interval)
}

func (s *feedSession) run(ctx context.Context, interval time.Duration) {
	s.conn.SetReadLimit(maxReadSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go s.drain(closed)

	if err := s.push(ctx, feedSnapshot); err != nil {
		s.logClose("ws_snapshot_failed", err)
		return
	}

	poll := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer poll.Stop()
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logClose("ws_ping_failed", err)
				return
			}
		case <-poll.C:
			if err := s.push(ctx, feedUpdate); err != nil {
				s.logClose("ws_update_failed", err)
				return
			}
		}
	}
}

// push builds the next frame and writes it. Empty updates are skipped.
func (s *feedSession) push(ctx context.Context, kind string) error {
	assets, err := s.h.services.Assets.ListAssets(ctx)
	if err != nil {
		return err
	}

	filter := service.LogFilter{AssetKey: s.feed.asset, Limit: feedBacklog}
	if kind == feedUpdate {
		filter = service.LogFilter{From: s.feed.cursor, AssetKey: s.feed.asset, Limit: feedBatch}
	}
	events, err := s.h.services.EventLog.List(ctx, filter)
	if err != nil {
		return err
	}

	msg := feedMessage{Type: kind, Assets: s.feed.changed(assets), Events: s.feed.fresh(events)}
	if kind == feedSnapshot {
		msg.Assets = s.feed.watched(assets)
	} else if msg.empty() {
		return nil
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(msg)
}

// drain reads until the peer goes away so control frames get handled.
func (s *feedSession) drain(closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *feedSession) logClose(key string, err error) {
	if s.h.log != nil {
		s.h.log.Infow(key, "asset", s.feed.asset, "err", err)
	}
}

// pollInterval reads ?interval=2s, falling back to the page refresh cadence.
func pollInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d > 0 && d <= maxInterval {
			return d
		}
	}
	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v > 0 && time.Duration(v)*time.Millisecond <= maxInterval {
			return time.Duration(v) * time.Millisecond
		}
	}
	return defaultInterval
}
