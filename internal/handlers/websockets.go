package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"alerts_review/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait        = 10 * time.Second
	pongWait         = 60 * time.Second
	pingPeriod       = (pongWait * 9) / 10
	maxMsgSize       = 1 << 12 // 4 KB
	defaultInterval  = 5 * time.Second
	minInterval      = 500 * time.Millisecond
	maxInterval      = time.Minute
	maxIntervalMilli = 60_000
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

const (
	wsTypeReview = "review"
	wsTypeError  = "error"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: check Origin against the configured dashboard host
}

// @Summary      Stream case review
// @Description  WebSocket. Pushes {"type":"review","data":CaseReview} immediately and then every interval while the case is loaded.
// @Tags         cases
// @Param        case_id      path   string  true   "Case ID"
// @Param        token        query  string  true   "Bearer token"
// @Param        interval     query  string  false  "Push interval, e.g. 5s (500ms..1m)"
// @Param        interval_ms  query  int     false  "Push interval in milliseconds"
// @Failure      401  {object}  map[string]string
// @Router       /ws/cases/{case_id} [get]
func (h *Handler) wsReview(c *gin.Context) {
	if !h.authenticate(c, c.Query("token")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}
	caseID := c.Param("case_id")
	interval := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Errorw("ws_upgrade_failed", "err", err, "case_id", caseID)
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	done := make(chan struct{})
	go h.startReader(conn, done)

	ticker := time.NewTicker(interval)
	ping := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ping.Stop()
	}()

	ctx := c.Request.Context()
	if err := h.sendReview(ctx, conn, caseID); err != nil {
		h.log.Infow("ws_write_failed_initial", "err", err, "case_id", caseID)
		return
	}

	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.log.Infow("ws_ping_failed", "err", err, "case_id", caseID)
				return
			}
		case <-ticker.C:
			if err := h.sendReview(ctx, conn, caseID); err != nil {
				h.log.Infow("ws_write_failed", "err", err, "case_id", caseID)
				return
			}
		}
	}
}

// parseInterval reads ?interval=5s or ?interval_ms=5000 with bounds.
func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	if s := c.Query("interval"); s != "" {
		if d, err := time.ParseDuration(s); err == nil && d >= minInterval && d <= maxInterval {
			return d
		}
	}

	if ms := c.Query("interval_ms"); ms != "" {
		if v, err := strconv.Atoi(ms); err == nil && v <= maxIntervalMilli {
			if d := time.Duration(v) * time.Millisecond; d >= minInterval {
				return d
			}
		}
	}

	return defaultInterval
}

// startReader drains incoming messages to handle control frames and detect closure.
func (h *Handler) startReader(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.log.Debugw("ws_read_closed", "err", err)
			return
		}
	}
}

// sendReview writes the current review of caseID. A missing case is reported
// to the client and ends the stream; other failures are sent as errors and
// the stream keeps going.
func (h *Handler) sendReview(ctx context.Context, conn *websocket.Conn, caseID string) error {
	review, err := h.services.Reviewer.Review(ctx, caseID)
	msg := wsEnvelope{Type: wsTypeReview, Data: review}
	if err != nil {
		h.log.Errorw("ws_review_failed", "err", err, "case_id", caseID)
		msg = wsEnvelope{Type: wsTypeError, Error: errGetReview}
		if errors.Is(err, service.ErrCaseNotFound) {
			msg.Error = errCaseNotFound
		}
	}
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if werr := conn.WriteJSON(msg); werr != nil {
		return werr
	}
	if errors.Is(err, service.ErrCaseNotFound) {
		return err
	}
	return nil
}
