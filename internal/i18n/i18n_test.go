package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Community Hub", T(EN, "communityHub"))
	assert.Equal(t, "Community Hub", T(EN, "COMMUNITYHUB"))
	assert.Equal(t, "Community Hub", T(EN, "communityhub"))
}

func TestUnknownKeyFallsBackToKey(t *testing.T) {
	assert.Equal(t, "noSuchKey", T(EN, "noSuchKey"))
	// Seeded alert A005 references a description key that has no copy; it
	// must render as the key, not an empty string.
	assert.Equal(t, "alertDescProtocolReminder", T(HI, "alertDescProtocolReminder"))
}

func TestAllKeysCoverAllLanguages(t *testing.T) {
	langs := []Language{EN, HI, TA, TE, BN, MR}
	for key, entry := range translations {
		for _, lang := range langs {
			assert.NotEmpty(t, entry[lang], "key %q missing %q", key, lang)
		}
	}
}

func TestParse(t *testing.T) {
	assert.Equal(t, HI, Parse("hi"))
	assert.Equal(t, EN, Parse(""))
	assert.Equal(t, EN, Parse("xx"))
}
