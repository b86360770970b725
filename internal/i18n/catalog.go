// Package i18n holds the built-in translation catalog and builds the
// app translator.
package i18n

import (
	i18n "github.com/goliatone/go-i18n"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Locales lists the catalog locales in cycle order.
func Locales() []string { return []string{"en", "es"} }

// Translations returns the message catalog for every supported locale.
// Both locales carry the same key set.
func Translations() i18n.Translations {
	return i18n.Translations{
		"en": newCatalog("en", map[string]string{
			"menu.main":       "Main Menu",
			"menu.tools":      "Tools",
			"menu.history":    "History",
			"menu.stats":      "Stats",
			"menu.settings":   "Settings",
			"menu.about":      "About",
			"status.opened":   "Opened %s",
			"settings.locale": "Locale",
			"settings.saved":  "Settings saved",
			"settings.hint":   "enter cycles the locale, s saves",
		}),
		"es": newCatalog("es", map[string]string{
			"menu.main":       "Menú Principal",
			"menu.tools":      "Herramientas",
			"menu.history":    "Historial",
			"menu.stats":      "Estadísticas",
			"menu.settings":   "Ajustes",
			"menu.about":      "Acerca de",
			"status.opened":   "Abierto %s",
			"settings.locale": "Idioma",
			"settings.saved":  "Ajustes guardados",
			"settings.hint":   "enter cambia el idioma, s guarda",
		}),
	}
}

// NewTranslator builds the catalog-backed translator with English as
// the default locale.
func NewTranslator() (i18n.Translator, error) {
	store := i18n.NewStaticStore(Translations())
	return i18n.NewSimpleTranslator(store, i18n.WithTranslatorDefaultLocale(DefaultLocale))
}

func newCatalog(locale string, entries map[string]string) *i18n.TranslationCatalog {
	catalog := &i18n.TranslationCatalog{
		Locale:   i18n.Locale{Code: locale},
		Messages: make(map[string]i18n.Message),
	}
	for key, content := range entries {
		msg := i18n.Message{}
		msg.SetContent(content)
		catalog.Messages[key] = msg
	}
	return catalog
}
