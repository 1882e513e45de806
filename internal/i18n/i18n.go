// Package i18n holds the English and Traditional Chinese messages shown to
// box office users and picks a language per request.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
)

// Lang is a supported message language.
type Lang string

const (
	English Lang = "ENGLISH"
	Chinese Lang = "CHINESE"
)

// supported is ordered so that index 0 is the matcher fallback.
var supported = []language.Tag{language.English, language.TraditionalChinese}

var matcher = language.NewMatcher(supported)

// Parse accepts "en", "zh", "ENGLISH", "CHINESE" and BCP 47 tags such as
// "zh-Hant-TW".
func Parse(s string) (Lang, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToUpper(s) {
	case "":
		return "", false
	case "ENGLISH", "EN":
		return English, true
	case "CHINESE", "ZH":
		return Chinese, true
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", false
	}
	return fromTag(tag), true
}

func fromTag(tag language.Tag) Lang {
	if base, _ := tag.Base(); base.String() == "zh" {
		return Chinese
	}
	return English
}

// Negotiate picks the language for a request: an explicit query value
// first, then the Accept-Language header, then def.
func Negotiate(query, acceptLanguage string, def Lang) Lang {
	if l, ok := Parse(query); ok {
		return l
	}
	if acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil && len(tags) > 0 {
			_, idx, conf := matcher.Match(tags...)
			if conf != language.No {
				return fromTag(supported[idx])
			}
		}
	}
	if def == Chinese {
		return Chinese
	}
	return English
}

// Message returns the text for code in lang.  Unknown codes fall back to
// the English text and finally to the code itself.
func Message(lang Lang, code string) string {
	m, ok := messages[code]
	if !ok {
		return code
	}
	if lang == Chinese && m.zh != "" {
		return m.zh
	}
	return m.en
}

// KindMessage returns the text for a coordinate expression error kind.
func KindMessage(lang Lang, k coorexpr.Kind) string {
	return Message(lang, k.String())
}

// Has reports whether code has a message.
func Has(code string) bool {
	_, ok := messages[code]
	return ok
}
