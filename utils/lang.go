package utils

import (
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v2"

	"github.com/deepheart/deepheart-api/schema"
)

var bundle *i18n.Bundle

// InitI18NBundle loads the message files of every supported language from
// dir.
func InitI18NBundle(dir string) error {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	for _, file := range []string{"en.yaml", "zh_tw.yaml"} {
		if _, err := b.LoadMessageFile(path.Join(dir, file)); err != nil {
			return err
		}
	}
	bundle = b
	return nil
}

// NewLocalizer returns nil until a bundle is loaded.
func NewLocalizer(lang string) *i18n.Localizer {
	if bundle == nil {
		return nil
	}
	return i18n.NewLocalizer(bundle, lang)
}

func localize(loc *i18n.Localizer, messageID, fallback string) string {
	if loc == nil {
		return fallback
	}

	msg, err := loc.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    messageID,
			Other: fallback,
		},
	})
	if err != nil {
		return fallback
	}
	return msg
}

// LabelDescription returns the clinical description of a label in the
// language of loc, falling back to English.
func LabelDescription(loc *i18n.Localizer, l schema.Label) string {
	return localize(loc, "label."+string(l)+".description", l.Description())
}
