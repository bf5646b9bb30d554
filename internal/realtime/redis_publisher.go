package realtime

import (
	"context"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Channel ist der Redis-Pub/Sub-Kanal, über den API und Worker Ereignisse
// an alle laufenden API-Instanzen verteilen.
const Channel = "flowops:events"

type RedisPublisher struct {
	rdb *redis.Client
}

func NewRedisPublisher(rdb *redis.Client) *RedisPublisher {
	return &RedisPublisher{rdb: rdb}
}

func (p *RedisPublisher) publish(ctx context.Context, room, event string, data any) error {
	payload, err := json.Marshal(Event{Room: room, Name: event, Data: data})
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("Fehler beim Serialisieren des Ereignisses")
		return err
	}

	if err := p.rdb.Publish(ctx, Channel, payload).Err(); err != nil {
		log.Error().Err(err).Str("room", room).Str("event", event).Msg("Fehler beim Publizieren des Ereignisses")
		return err
	}
	return nil
}

func (p *RedisPublisher) ToProject(ctx context.Context, projectID, event string, data any) error {
	return p.publish(ctx, ProjectRoom(projectID), event, data)
}

func (p *RedisPublisher) ToUser(ctx context.Context, userID, event string, data any) error {
	return p.publish(ctx, UserRoom(userID), event, data)
}
