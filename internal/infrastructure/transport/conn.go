package transport

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/bnema/hostd/internal/application/port"
	"github.com/bnema/hostd/internal/ipc"
	"github.com/bnema/hostd/internal/logging"
)

// WebSocket timeouts.
const (
	wsWriteWait      = 10 * time.Second
	wsPongWait       = 60 * time.Second
	wsPingPeriod     = (wsPongWait * 9) / 10
	wsMaxMessageSize = 1 << 20
	wsSendBuffer     = 64
)

var (
	// ErrConnectionClosed is returned when writing to a front-end that has gone away.
	ErrConnectionClosed = errors.New("front-end connection closed")
	// ErrSlowConsumer is returned when a front-end is not draining its frames.
	ErrSlowConsumer = errors.New("front-end send buffer full")
)

// conn is one front-end WebSocket. It is the window's event sink and the
// replier for every request read from it.
type conn struct {
	server   *Server
	ws       *websocket.Conn
	frontend port.FrontendID

	send      chan ipc.OutboundFrame
	closed    chan struct{}
	closeOnce sync.Once

	// Frames enqueued before writePump runs, such as events queued on the
	// window before attach, are held here without the buffer limit.
	mu      sync.Mutex
	started bool
	backlog []ipc.OutboundFrame
}

func newConn(server *Server) *conn {
	return &conn{
		server: server,
		send:   make(chan ipc.OutboundFrame, wsSendBuffer),
		closed: make(chan struct{}),
	}
}

func (c *conn) enqueue(frame ipc.OutboundFrame) error {
	select {
	case <-c.closed:
		return ErrConnectionClosed
	default:
	}

	c.mu.Lock()
	if !c.started {
		c.backlog = append(c.backlog, frame)
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	select {
	case c.send <- frame:
		return nil
	case <-c.closed:
		return ErrConnectionClosed
	default:
		return ErrSlowConsumer
	}
}

// SendEvent implements windowing.EventSink.
func (c *conn) SendEvent(_ context.Context, channel string, payload any) error {
	return c.enqueue(ipc.EventFrame(channel, payload))
}

// Reply implements ipc.Replier.
func (c *conn) Reply(_ context.Context, reply ipc.Reply) error {
	return c.enqueue(ipc.ReplyFrame(reply))
}

func (c *conn) close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}

// readPump decodes inbound frames until the socket fails.
func (c *conn) readPump(ctx context.Context) {
	log := logging.FromContext(ctx)
	defer func() {
		c.close()
		c.server.windows.Detach(ctx, c.frontend)
		_ = c.ws.Close()
	}()

	c.ws.SetReadLimit(wsMaxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(wsPongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("front-end read failed")
			}
			return
		}

		var frame ipc.InboundFrame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Warn().Err(err).Int("bytes", len(data)).Msg("malformed frame dropped")
			continue
		}
		if !c.handle(ctx, frame) {
			return
		}
	}
}

// handle processes one frame. It returns false when the server is shutting down.
func (c *conn) handle(ctx context.Context, frame ipc.InboundFrame) bool {
	log := logging.FromContext(ctx)

	switch frame.Kind {
	case ipc.FrameInvoke, ipc.FrameSend:
		env := ipc.Envelope{Request: frame.Request(c.frontend), Replier: c}
		select {
		case c.server.requests <- env:
		case <-ctx.Done():
			return false
		}

	case ipc.FrameNavigate:
		cancelled, err := c.server.windows.Navigate(ctx, c.frontend, frame.URL)
		if err != nil {
			log.Warn().Err(err).Msg("navigation for detached front-end")
			cancelled = true
		}
		if err := c.enqueue(ipc.NavigateResultFrame(frame.ID, cancelled)); err != nil {
			log.Warn().Err(err).Msg("failed to answer navigate")
		}

	case ipc.FrameFocus:
		if err := c.server.windows.Focus(c.frontend); err != nil {
			log.Debug().Err(err).Msg("focus ignored")
		}

	case ipc.FrameBlur:
		if err := c.server.windows.Blur(c.frontend); err != nil {
			log.Debug().Err(err).Msg("blur ignored")
		}

	default:
		log.Warn().Str("kind", string(frame.Kind)).Msg("unknown frame kind")
	}
	return true
}

// writePump serializes outbound frames and keeps the socket alive with pings.
func (c *conn) writePump(ctx context.Context) {
	log := logging.FromContext(ctx)
	ticker := time.NewTicker(wsPingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	c.mu.Lock()
	backlog := c.backlog
	c.backlog = nil
	c.started = true
	c.mu.Unlock()

	for _, frame := range backlog {
		if err := c.write(frame); err != nil {
			log.Debug().Err(err).Msg("front-end write failed")
			c.close()
			return
		}
	}

	for {
		select {
		case frame := <-c.send:
			if err := c.write(frame); err != nil {
				log.Debug().Err(err).Msg("front-end write failed")
				c.close()
				return
			}
		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.close()
				return
			}
		case <-c.closed:
			c.writeClose()
			return
		case <-ctx.Done():
			c.close()
			c.writeClose()
			return
		}
	}
}

func (c *conn) write(frame ipc.OutboundFrame) error {
	_ = c.ws.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return c.ws.WriteJSON(frame)
}

func (c *conn) writeClose() {
	_ = c.ws.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(wsWriteWait),
	)
}
