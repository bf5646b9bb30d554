package middleware

import (
	"fmt"
	"strings"

	"github.com/DevITJAX/FlowOps/internal/dtos"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// SessionTracker ist der in Redis abgelegte Sitzungszustand je ausgegebenem Token.
type SessionTracker struct {
	JTI     string `json:"jti"`
	UserID  string `json:"user_id"`
	Token   string `json:"token"`
	LoginAt string `json:"login_at"`
}

// AuthMiddleware validiert das Authorization-Header ("Bearer <token>") und verifiziert das PASETO-Token.
// Verhalten:
// - Sendet bei fehlendem Header, falschem Format oder ungültigem/abgelaufenem Token HTTP 401 mit einer JSON-Fehlerantwort.
// - Bei erfolgreicher Verifizierung setzt es die Context-Lokale: "user_id", "user_name", "email", "role".
func AuthMiddleware(pasetoMaker *utils.PasetoMaker, redis *redis.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header fehlt")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c, "Token-Format ist falsch. Nutze Bearer <token>.")
		}

		token := parts[1]

		// Verifizieren via PASETO
		payload, err := pasetoMaker.VerifyToken(token)
		if err != nil {
			log.Err(err).Msg("Verification error")
			return unauthorized(c, "Token ist ungültig oder abgelaufen (1)") // 1 => Token kann nicht verifiziert werden
		}

		if payload.Scope != utils.ScopeAccess {
			return unauthorized(c, "Token ist ungültig oder abgelaufen (1)")
		}

		// Überprüft ein Token, ob es noch in Redis oder nicht ist.
		redisKey := fmt.Sprintf("session:%s", payload.JTI)
		session, _ := utils.GetCacheData[SessionTracker](c.Context(), redis, redisKey)
		if session == nil || session.Token != token {
			return unauthorized(c, "Token ist ungültig oder abgelaufen (2)") // 2 => Token ist nicht mehr in Redis
		}

		// Speichern zu kontext, sodass Handler es nutzen kann
		c.Locals("user_id", payload.UserID)
		c.Locals("user_name", payload.Name)
		c.Locals("email", payload.Email)
		c.Locals("role", payload.Role)
		c.Locals("jti", payload.JTI)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"status": "error",
		"error": dtos.ErrorResponse{
			Code:    fiber.StatusUnauthorized,
			Message: message,
		},
	})
}
