package routers

import (
	"testing"

	"github.com/DevITJAX/FlowOps/internal/i18n"
	"github.com/DevITJAX/FlowOps/internal/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func hasRoute(app *fiber.App, method, path string) bool {
	for _, route := range app.GetRoutes() {
		if route.Method == method && route.Path == path {
			return true
		}
	}
	return false
}

// Start und Abschluss eines Sprints sind idempotente Zustandswechsel und
// werden als PUT registriert.
func TestSprintRouter_LifecycleVerbs(t *testing.T) {
	app := fiber.New()
	rdb := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	paseto, err := utils.NewPasetoMaker(utils.GenerateSymmetricKey())
	assert.NoError(t, err)

	SprintRouter(app.Group("/api/v1"), nil, rdb, &i18n.I18nService{}, paseto)

	assert.True(t, hasRoute(app, fiber.MethodPut, "/api/v1/sprints/:id/start"))
	assert.True(t, hasRoute(app, fiber.MethodPut, "/api/v1/sprints/:id/complete"))
	assert.False(t, hasRoute(app, fiber.MethodPost, "/api/v1/sprints/:id/start"))
	assert.False(t, hasRoute(app, fiber.MethodPost, "/api/v1/sprints/:id/complete"))
	assert.True(t, hasRoute(app, fiber.MethodPost, "/api/v1/sprints/:id/tasks"))
	assert.True(t, hasRoute(app, fiber.MethodDelete, "/api/v1/sprints/:id/tasks"))
}
