package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/gin-gonic/gin"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

const localizerKey = "i18n.localizer"

type Translator struct {
	bundle    *goi18n.Bundle
	fallback  language.Tag
	supported []language.Tag
	matcher   language.Matcher
}

// New loads the embedded locale files. defaultLocale is used whenever the
// request asks for a language that has no messages.
func New(defaultLocale string) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("parse default locale %q: %w", defaultLocale, err)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.json")
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		if _, err := bundle.LoadMessageFileFS(locales, f); err != nil {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	supported := bundle.LanguageTags()
	return &Translator{
		bundle:    bundle,
		fallback:  tag,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Localizer accepts language tags or raw Accept-Language header values.
// Languages without messages resolve to the default locale.
func (t *Translator) Localizer(langs ...string) *goi18n.Localizer {
	return goi18n.NewLocalizer(t.bundle, t.resolve(langs...).String(), t.fallback.String())
}

// resolve only trusts High or Exact matches; a weaker match between unrelated
// languages (fr to en) would otherwise win over the default.
func (t *Translator) resolve(langs ...string) language.Tag {
	var wanted []language.Tag
	for _, l := range langs {
		if l == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(l)
		if err != nil {
			continue
		}
		wanted = append(wanted, tags...)
	}
	if len(wanted) == 0 {
		return t.fallback
	}

	_, idx, conf := t.matcher.Match(wanted...)
	if conf < language.High || idx < 0 || idx >= len(t.supported) {
		return t.fallback
	}
	return t.supported[idx]
}

// T translates msgID for lang. Unknown ids are returned unchanged.
func (t *Translator) T(lang, msgID string) string {
	return localize(t.Localizer(lang), msgID)
}

// Middleware picks the request locale from ?lang= or Accept-Language.
func (t *Translator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localizerKey, t.Localizer(c.Query("lang"), c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// Message translates msgID with the localizer attached by Middleware.
func Message(c *gin.Context, msgID string) string {
	v, ok := c.Get(localizerKey)
	if !ok {
		return msgID
	}
	loc, ok := v.(*goi18n.Localizer)
	if !ok {
		return msgID
	}
	return localize(loc, msgID)
}

func localize(loc *goi18n.Localizer, msgID string) string {
	msg, err := loc.Localize(&goi18n.LocalizeConfig{MessageID: msgID})
	if err != nil || msg == "" {
		return msgID
	}
	return msg
}
