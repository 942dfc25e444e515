package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := NewTranslator()
	require.NoError(t, err)
	return tr
}

func TestNegotiate(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, language.German, tr.Negotiate(""))
	assert.Equal(t, language.German, tr.Negotiate("de-DE,de;q=0.9"))
	assert.Equal(t, language.English, tr.Negotiate("en-US,en;q=0.8"))
	assert.Equal(t, language.German, tr.Negotiate("ja"))
}

func TestTextWithParams(t *testing.T) {
	tr := newTranslator(t)

	assert.Equal(t, "Room 101 was created.", tr.Text(language.English, RoomCreated, "101"))
	assert.Equal(t, "Neues Zimmer 101 wurde erfolgreich angelegt.", tr.Text(language.German, RoomCreated, "101"))
	assert.Equal(t, "Zugriff verweigert.", tr.Text(language.German, CancelDenied))
}

func TestEveryKeyTranslatedInEveryLanguage(t *testing.T) {
	for _, tag := range Supported {
		for key := range entries[Supported[0]] {
			_, ok := entries[tag][key]
			assert.True(t, ok, "%s missing %s", tag, key)
		}
	}
}
