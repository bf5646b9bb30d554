package routers

import (
	"net"
	"strconv"
	"time"

	"github.com/DevITJAX/FlowOps/internal/handlers/auth"
	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/middleware"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// CfgRedisStorage traegt die Redis-Verbindung fuer den Limiter-Store.
type CfgRedisStorage struct {
	Host     string
	Password string
}

func AuthRouter(api fiber.Router, db *pgxpool.Pool, redis *redis.Client, i18nSvc *i18n.I18nService, paseto *utils.PasetoMaker, cfgStorage CfgRedisStorage) {
	handler := auth.NewAuthHandler(db, redis, i18nSvc, paseto)

	host, portStr, err := net.SplitHostPort(cfgStorage.Host)
	if err != nil {
		host = cfgStorage.Host
		portStr = "6379"
	}
	port, _ := strconv.Atoi(portStr)

	redisStore := redis_fiber.New(redis_fiber.Config{
		Host:     host,
		Port:     port,
		Password: cfgStorage.Password,
		Database: 1,
	})

	loginLimiter := limiter.New(limiter.Config{
		Max:        5,
		Expiration: 30 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "zu viele Anfragen, bitte spaeter erneut versuchen")
		},
		Storage: redisStore,
	})

	r := api.Group("/auth")

	r.Post("/register", handler.Register)
	r.Post("/login", loginLimiter, handler.Login)
	r.Post("/forgot-password", loginLimiter, handler.ForgotPassword)
	r.Post("/reset-password/:token", handler.ResetPassword)
	r.Post("/refresh-token", handler.RefreshToken)

	authed := middleware.AuthMiddleware(paseto, redis)
	r.Get("/me", authed, handler.Me)
	r.Put("/update-password", authed, handler.UpdatePassword)
	r.Put("/update-profile", authed, handler.UpdateProfile)
	r.Post("/logout", authed, handler.Logout)
}
