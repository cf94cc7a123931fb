package handlers

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/c00p75/fitness-league-sub000/internal/middleware"
	livews "github.com/c00p75/fitness-league-sub000/internal/websocket"
)

const eventsUserKey = "events_user_id"

type EventsHandler struct {
	hub *livews.Hub
}

func NewEventsHandler(hub *livews.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Upgrade admits authenticated WebSocket handshakes.
func (h *EventsHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}
	user, ok := middleware.IdentityFrom(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}
	c.Locals(eventsUserKey, user.UID)
	return c.Next()
}

func (h *EventsHandler) Stream(conn *websocket.Conn) {
	userID, _ := conn.Locals(eventsUserKey).(string)
	client := livews.NewClient(h.hub, conn, userID)
	if !h.hub.Register(client) {
		_ = conn.Close()
		return
	}
	go client.WritePump()
	client.ReadPump()
}
