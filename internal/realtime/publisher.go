package realtime

import "context"

// Event ist das über den Side-Channel verteilte Ereignis.
type Event struct {
	Room  string `json:"room"`
	Name  string `json:"name"`
	Data  any    `json:"data"`
}

// Publisher ist die injizierte Fähigkeit, Echtzeit-Ereignisse zu verteilen.
// Alle Aufrufe sind best-effort: Fehler werden vom Aufrufer nur geloggt und
// schlagen niemals auf die auslösende Operation durch.
type Publisher interface {
	ToProject(ctx context.Context, projectID, event string, data any) error
	ToUser(ctx context.Context, userID, event string, data any) error
}

// NoopPublisher verwirft alle Ereignisse. Für Tests und den Worker ohne Hub.
type NoopPublisher struct{}

func (NoopPublisher) ToProject(context.Context, string, string, any) error { return nil }

func (NoopPublisher) ToUser(context.Context, string, string, any) error { return nil }

func ProjectRoom(projectID string) string { return "project:" + projectID }

func UserRoom(userID string) string { return "user:" + userID }
