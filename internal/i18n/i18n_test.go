package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/cinema-box-office/internal/coorexpr"
)

func TestParse(t *testing.T) {
	cases := map[string]Lang{
		"en":         English,
		"ENGLISH":    English,
		"zh":         Chinese,
		"chinese":    Chinese,
		"zh-Hant-TW": Chinese,
		"en-GB":      English,
		"fr":         English,
	}
	for in, want := range cases {
		got, ok := Parse(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := Parse("")
	assert.False(t, ok)
	_, ok = Parse("!!")
	assert.False(t, ok)
}

func TestNegotiate(t *testing.T) {
	assert.Equal(t, Chinese, Negotiate("zh", "en-US", English))
	assert.Equal(t, Chinese, Negotiate("", "zh-TW,zh;q=0.9,en;q=0.8", English))
	assert.Equal(t, English, Negotiate("", "en-US,en;q=0.9", Chinese))
	assert.Equal(t, Chinese, Negotiate("", "", Chinese))
	assert.Equal(t, English, Negotiate("", "", ""))
	assert.Equal(t, English, Negotiate("bogus!!", "", English))
}

func TestMessages_EveryKind(t *testing.T) {
	for _, k := range coorexpr.Kinds() {
		assert.True(t, Has(k.String()), k.String())
		assert.NotEqual(t, KindMessage(English, k), KindMessage(Chinese, k), k.String())
	}
}

func TestMessage_Fallback(t *testing.T) {
	assert.Equal(t, "No such house", Message(English, "house_not_found"))
	assert.Equal(t, "無此電影院", Message(Chinese, "house_not_found"))
	assert.Equal(t, "no_such_code", Message(Chinese, "no_such_code"))
}
