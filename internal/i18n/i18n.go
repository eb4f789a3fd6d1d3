// Package i18n localizes the user-facing text of the booking pages.
package i18n

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed active.*.toml
var localeFS embed.FS

// Message ids shared by handlers and templates.
const (
	MsgBookingSuccessTitle = "booking_success_title"
	MsgBookingSuccessBody  = "booking_success_body"
	MsgBookingFailed       = "booking_failed"
	MsgBookingInvalid      = "booking_invalid"
	MsgInvalidCredentials  = "invalid_credentials"
	MsgTooManyRequests     = "too_many_requests"
	MsgDashboard           = "dashboard"
	MsgAdminLogin          = "admin_login"
)

type Config struct {
	DefaultLocale string `mapstructure:"default_locale"`
}

// Translator wraps a go-i18n bundle loaded from the embedded catalogs.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator loads the embedded catalogs. An unparsable default locale
// falls back to English.
func NewTranslator(defaultLocale string) *Translator {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range []string{"active.en.toml", "active.ms.toml"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			slog.Default().Error("i18n: failed to load catalog", slog.String("file", file), slog.String("err", err.Error()))
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}
}

// Locales lists the languages with a catalog.
func (t *Translator) Locales() []language.Tag {
	return t.bundle.LanguageTags()
}

// T renders key for the given locale, falling back to the default locale
// and finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	msg, err := i18n.NewLocalizer(t.bundle, languages...).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		slog.Default().Warn("i18n: localize failed", slog.String("key", key), slog.Any("locales", languages))
		return key
	}
	return msg
}

// LocaleFromRequest picks the locale from the lang query parameter, then
// the Accept-Language header. It returns "" when neither matches a catalog.
func (t *Translator) LocaleFromRequest(r *http.Request) string {
	matcher := language.NewMatcher(t.Locales())
	if lang := r.URL.Query().Get("lang"); lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if _, _, c := matcher.Match(tag); c != language.No {
				return base(tag)
			}
		}
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, idx, c := matcher.Match(tags...)
	if c == language.No {
		return ""
	}
	return base(t.Locales()[idx])
}

func base(tag language.Tag) string {
	b, _ := tag.Base()
	return b.String()
}
