package mail

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/DevITJAX/FlowOps/internal/config"
	"github.com/DevITJAX/FlowOps/internal/entity"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

type Mailer interface {
	SendPasswordResetEmail(to string, name string, resetLink string) error
	SendDueSoonReminder(task *entity.DueSoonTask) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return &MailService{
			DomainSender: cfg.MAILTRAP.API.MailtrapDomain,
			MailtrapUrl:  cfg.MAILTRAP.API.MailtrapURL,
			MailAPI:      cfg.MAILTRAP.API.MailtrapTokenAPI,
		}
	}
	return &MailService{
		DomainSender: cfg.MAILTRAP.Sandbox.SandboxDomain,
		MailtrapUrl:  cfg.MAILTRAP.Sandbox.SandboxURL,
		MailAPI:      cfg.MAILTRAP.Sandbox.SandboxAPI,
	}
}

func (m *MailService) send(payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Serialisieren des Mail-Payloads")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Erstellen des Mail-Requests")
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Fehler beim Senden der Mail")
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}

func (m *MailService) SendPasswordResetEmail(to string, name string, resetLink string) error {
	log.Info().Msg("Mailer: Passwort-Zurücksetzen-Mail wird versendet.")
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "FlowOps - Passwort zurücksetzen",
		},
		"to": []map[string]string{
			{
				"email": to,
			},
		},
		"subject": "Reset your FlowOps password",
		"text": fmt.Sprintf(`
		Hi %s,

		We received a request to reset your FlowOps password.

		Reset it here:
		%s

		This link expires in 10 minutes. If you did not request a reset, you can safely ignore this email.

		— FlowOps
		`, name, resetLink),
		"category": "Password Reset",
	}

	return m.send(payload)
}

func (m *MailService) SendDueSoonReminder(task *entity.DueSoonTask) error {
	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "FlowOps - Fälligkeitserinnerung",
		},
		"to": []map[string]string{
			{
				"email": task.EmailAssignee,
			},
		},
		"subject": fmt.Sprintf("%s is due soon (%s)", task.TaskKey, task.ProjectName),
		"text": fmt.Sprintf(`
		Hi %s,

		A task assigned to you is approaching its due date.

		Project	: %s
		Task   	: %s %s
		Status 	: %s
		Priority: %s
		Due at	: %s

		Please make sure to:
		- update the task status if you're already working on it, or
		- communicate early if you are blocked or need assistance.

		Keeping tasks up to date helps the whole team stay aligned.

		— FlowOps
		`, task.AssigneeName, task.ProjectName, task.TaskKey, task.Title, task.Status, task.Priority, task.DueDate.Format("02 Jan 2006 15:04 MST")),
		"category": "Due Soon Reminder",
	}

	return m.send(payload)
}
