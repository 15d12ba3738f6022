// Package ws exposes the websocket endpoint that delivers task lifecycle
// notifications. A connection authenticates once during the handshake with
// the same token checks the HTTP access guard applies; connections that fail
// are closed immediately and never reach the fanout registry.
package ws

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-server/internal/logger"
	"github.com/taskboard/taskboard-server/internal/model"
	"github.com/taskboard/taskboard-server/internal/notify"
)

const (
	// writeWait bounds a single frame write to a slow client.
	writeWait = 10 * time.Second
	// pongWait is how long a connection may stay silent before it is
	// considered dead.
	pongWait = 60 * time.Second
	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// maxMessageSize limits inbound frames; clients only ever send
	// control traffic.
	maxMessageSize = 512
)

// TokenVerifier checks handshake tokens against the revocation cache and the
// signature/expiry rules.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (model.TokenClaims, error)
	IsRevoked(ctx context.Context, token string) bool
}

// Gateway upgrades authenticated requests to websocket subscriptions on the
// notification hub.
type Gateway struct {
	hub      *notify.Hub
	tokens   TokenVerifier
	logger   *logger.Logger
	upgrader websocket.Upgrader
}

// NewGateway creates a new Gateway.
func NewGateway(hub *notify.Hub, tokens TokenVerifier, logger *logger.Logger) *Gateway {
	return &Gateway{
		hub:    hub,
		tokens: tokens,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browsers cannot set an Authorization header on websocket
			// handshakes, so cross-origin clients pass the token in the
			// query string instead.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handle upgrades GET /ws. The token comes from the Authorization header or
// the "token" query parameter.
func (g *Gateway) Handle(c echo.Context) error {
	token := handshakeToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "token not provided")
	}

	ctx := c.Request().Context()
	if g.tokens.IsRevoked(ctx, token) {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, err := g.tokens.Verify(ctx, token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	conn, err := g.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade already wrote the handshake failure response.
		return nil
	}

	sub := g.hub.Register(claims.UserID)
	g.logger.Info("websocket client connected", "user_id", claims.UserID, "username", claims.Username)

	go g.writePump(conn, sub)
	go g.readPump(conn, sub)

	return nil
}

// writePump serializes hub events to the connection and keeps it alive with
// pings. It exits when the subscriber is unregistered or a write fails.
func (g *Gateway) writePump(conn *websocket.Conn, sub *notify.Subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case env, ok := <-sub.Events():
			if !ok {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(env); err != nil {
				g.logger.Debug("websocket write failed", "user_id", sub.UserID(), "error", err.Error())
				g.hub.Unregister(sub)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				g.hub.Unregister(sub)
				return
			}
		}
	}
}

// readPump discards inbound frames and unregisters the subscriber when the
// peer goes away.
func (g *Gateway) readPump(conn *websocket.Conn, sub *notify.Subscriber) {
	defer func() {
		g.hub.Unregister(sub)
		conn.Close()
		g.logger.Info("websocket client disconnected", "user_id", sub.UserID())
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func handshakeToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 {
			return parts[1]
		}
		return ""
	}
	return c.QueryParam("token")
}
