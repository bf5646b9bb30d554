package routers

import (
	"fmt"

	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/realtime"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// WebsocketRouter registriert den Echtzeit-Endpunkt. Das Token kommt als
// Query-Parameter, da Browser-Websockets keine Header setzen koennen.
func WebsocketRouter(app *fiber.App, redis *redis.Client, paseto *utils.PasetoMaker, hub *realtime.Hub) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}

		token := c.Query("token")
		if token == "" {
			return fiber.ErrUnauthorized
		}
		payload, err := paseto.VerifyToken(token)
		if err != nil || payload.Scope != utils.ScopeAccess {
			return fiber.ErrUnauthorized
		}
		session, _ := utils.GetCacheData[middleware.SessionTracker](c.Context(), redis, fmt.Sprintf("session:%s", payload.JTI))
		if session == nil || session.Token != token {
			return fiber.ErrUnauthorized
		}

		c.Locals("user_id", payload.UserID)
		return c.Next()
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		userID, _ := conn.Locals("user_id").(string)
		hub.HandleConn(conn, userID)
	}))
}
