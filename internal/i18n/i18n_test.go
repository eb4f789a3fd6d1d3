package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	tr := NewTranslator("en")

	assert.Equal(t, "Failed to submit booking. Please try again.", tr.T("", MsgBookingFailed, nil))
	assert.Equal(t, "Tempahan gagal dihantar. Sila cuba lagi.", tr.T("ms", MsgBookingFailed, nil))
	assert.Equal(t, "Participant 2", tr.T("fr", "participant", map[string]any{"Index": 2}))
	assert.Equal(t, "missing_key", tr.T("en", "missing_key", nil))
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestTranslateBadDefault(t *testing.T) {
	tr := NewTranslator("%%")
	assert.Equal(t, "Invalid login credentials", tr.T("", MsgInvalidCredentials, nil))
}

func TestLocaleFromRequest(t *testing.T) {
	tr := NewTranslator("en")

	r := httptest.NewRequest("GET", "/?lang=ms", nil)
	assert.Equal(t, "ms", tr.LocaleFromRequest(r))

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "ms-MY,ms;q=0.9,en;q=0.8")
	assert.Equal(t, "ms", tr.LocaleFromRequest(r))

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "en-GB")
	assert.Equal(t, "en", tr.LocaleFromRequest(r))

	r = httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "", tr.LocaleFromRequest(r))
}
