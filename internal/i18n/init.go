package i18n

import (
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

type Service interface {
	T(lang string, key string, params map[string]any) string
}

type I18nService struct {
	bundle *i18n.Bundle
}

// NewInitI18nService lädt alle Sprachkataloge aus internal/i18n; Englisch
// ist die Fallback-Sprache.
func NewInitI18nService() *I18nService {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := filepath.Glob("./internal/i18n/*.json")
	if err != nil || len(files) == 0 {
		log.Fatal().Err(err).Msg("keine Sprachkataloge gefunden")
	}
	for _, file := range files {
		bundle.MustLoadMessageFile(file)
	}

	return &I18nService{bundle: bundle}
}

// T löst einen Katalog-Schlüssel für die gewünschte Sprache auf; unbekannte
// Schlüssel kommen unverändert zurück.
func (g *I18nService) T(lang string, key string, params map[string]any) string {
	localizer := i18n.NewLocalizer(g.bundle, lang)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: params,
	})

	if err != nil {
		return key
	}

	return msg
}
