package i18n

import "strings"

// Language codes match the original portal's locale switcher.
type Language string

const (
	EN Language = "en"
	HI Language = "hi"
	TA Language = "ta"
	TE Language = "te"
	BN Language = "bn"
	MR Language = "mr"
)

// Languages in switcher order, with their native display names.
var Languages = []struct {
	Code Language
	Name string
}{
	{EN, "English"},
	{HI, "हिन्दी"},
	{TA, "தமிழ்"},
	{TE, "తెలుగు"},
	{BN, "বাংলা"},
	{MR, "मराठी"},
}

// lowercased key -> per-language strings
var index = buildIndex()

func buildIndex() map[string]map[Language]string {
	m := make(map[string]map[Language]string, len(translations))
	for k, v := range translations {
		m[strings.ToLower(k)] = v
	}
	return m
}

// T resolves key for the given language. The lookup is case-insensitive and
// unknown keys come back verbatim, so missing copy degrades to the key name
// instead of an empty label.
func T(lang Language, key string) string {
	if entry, ok := index[strings.ToLower(key)]; ok {
		if s, ok := entry[lang]; ok && s != "" {
			return s
		}
	}
	return key
}

// Parse maps a stored language code to a Language, defaulting to English.
func Parse(code string) Language {
	for _, l := range Languages {
		if string(l.Code) == code {
			return l.Code
		}
	}
	return EN
}
