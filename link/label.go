package link

// LabelFunc builds the link's visible text. It is re-evaluated on every
// render, so labels may reflect live state such as the active locale.
type LabelFunc func() string

// Translator resolves message keys to localized text. It matches the
// translator surface of go-i18n so a catalog-backed translator can be
// passed in directly.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// Title returns a label builder for a fixed title.
func Title(title string) LabelFunc {
	return func() string { return title }
}

// TitleKey returns a label builder that resolves msgKey through tr in
// the given locale, falling back to the key itself when tr is nil or
// the key is missing.
func TitleKey(tr Translator, locale, msgKey string) LabelFunc {
	return func() string { return resolveKey(tr, locale, msgKey) }
}

func resolveKey(tr Translator, locale, msgKey string) string {
	if tr == nil {
		return msgKey
	}
	text, err := tr.Translate(locale, msgKey)
	if err != nil || text == "" {
		return msgKey
	}
	return text
}
