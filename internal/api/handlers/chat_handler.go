package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"

	"strays-backend/pkg/chat"
	"strays-backend/pkg/jwt"
	"strays-backend/pkg/user"
)

type (
	ChatHandler interface {
		Upgrade(c *fiber.Ctx) error
		Serve() fiber.Handler
	}

	chatHandler struct {
		hub         *chat.Hub
		jwtService  jwt.JWTService
		userService user.UserService
	}
)

func NewChatHandler(hub *chat.Hub, jwtService jwt.JWTService, userService user.UserService) ChatHandler {
	return &chatHandler{
		hub:         hub,
		jwtService:  jwtService,
		userService: userService,
	}
}

// Upgrade authenticates the websocket handshake. Browsers cannot set
// headers on websocket requests, so the token travels as a query param.
func (h *chatHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	token := c.Query("token")
	userID, _, err := h.jwtService.GetUserIDByToken(token)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	me, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	c.Locals("username", me.Username)
	return c.Next()
}

func (h *chatHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		username := conn.Locals("username").(string)
		client := chat.NewClient(username)
		h.hub.Register(client)
		defer h.hub.Unregister(client)

		// Writer drains until the hub closes the channel on unregister.
		go func() {
			for message := range client.Messages() {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					return
				}
			}
		}()

		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Warnf("chat read error for %s: %v", username, err)
				}
				break
			}
			h.hub.Broadcast([]byte(fmt.Sprintf("%s: %s", username, message)))
		}
	})
}
