package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cinema-box-office/internal/config"
	"github.com/iliyamo/cinema-box-office/internal/i18n"
	"github.com/iliyamo/cinema-box-office/internal/utils"
)

const testSecret = "middleware-test-secret"

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func newProtected(roles ...string) *echo.Echo {
	e := echo.New()
	g := e.Group("", Language(i18n.English), JWTAuth(testSecret))
	if len(roles) > 0 {
		g.Use(RequireRole(roles...))
	}
	g.GET("/who", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"user_id": c.Get("user_id"), "role": c.Get("role")})
	})
	return e
}

func TestJWTAuth_MissingToken(t *testing.T) {
	e := newProtected()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/who", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "missing_token", decodeError(t, rec)["error"])
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	e := newProtected()
	other, err := utils.NewAccessToken("another-secret", 1, "ADMIN", 5)
	require.NoError(t, err)

	for _, tok := range []string{"garbage", other.Token} {
		req := httptest.NewRequest(http.MethodGet, "/who", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "invalid_token", decodeError(t, rec)["error"])
	}
}

func TestJWTAuth_SetsIdentity(t *testing.T) {
	e := newProtected()
	tok, err := utils.NewAccessToken(testSecret, 42, "STAFF", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer "+tok.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"user_id":42,"role":"STAFF"}`, rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	e := newProtected("ADMIN")
	staff, err := utils.NewAccessToken(testSecret, 2, "STAFF", 5)
	require.NoError(t, err)
	admin, err := utils.NewAccessToken(testSecret, 1, "ADMIN", 5)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/who?lang=zh", nil)
	req.Header.Set("Authorization", "Bearer "+staff.Token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "forbidden", body["error"])
	assert.Equal(t, i18n.Message(i18n.Chinese, "forbidden"), body["message"])

	req = httptest.NewRequest(http.MethodGet, "/who", nil)
	req.Header.Set("Authorization", "Bearer "+admin.Token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLanguage_Negotiation(t *testing.T) {
	e := echo.New()
	e.Use(Language(i18n.English))
	e.GET("/lang", func(c echo.Context) error { return c.String(http.StatusOK, string(Lang(c))) })

	cases := []struct {
		target, accept string
		want           i18n.Lang
		header         string
	}{
		{"/lang", "", i18n.English, "en"},
		{"/lang?lang=CHINESE", "", i18n.Chinese, "zh-Hant"},
		{"/lang", "zh-TW,zh;q=0.9", i18n.Chinese, "zh-Hant"},
		{"/lang?lang=en", "zh-TW", i18n.English, "en"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		if tc.accept != "" {
			req.Header.Set("Accept-Language", tc.accept)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, string(tc.want), rec.Body.String(), tc.target)
		assert.Equal(t, tc.header, rec.Header().Get("Content-Language"))
	}
}

func TestLang_DefaultsToEnglish(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, i18n.English, Lang(c))
}

func TestDisabledFeaturesPassThrough(t *testing.T) {
	e := echo.New()
	e.Use(NewRedisCache(config.CacheConfig{Enabled: false}, nil))
	e.Use(NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil))
	e.Use(NewCachePurge(config.CacheConfig{Enabled: true}, nil))
	e.POST("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestCacheKey_VariesByLanguageAndPath(t *testing.T) {
	e := echo.New()
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query_lang"}

	key := func(target string, lang i18n.Lang) string {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
		c.SetPath("/v1/houses/:number")
		c.Set(langKey, lang)
		return cacheKeyFrom(cfg, c)
	}

	en := key("/v1/houses/1", i18n.English)
	assert.Regexp(t, `^cache:[0-9a-f]{40}$`, en)
	assert.Equal(t, en, key("/v1/houses/1", i18n.English))
	assert.NotEqual(t, en, key("/v1/houses/1", i18n.Chinese))
	assert.NotEqual(t, en, key("/v1/houses/2", i18n.English))

	cfg.KeyStrategy = "route"
	assert.Equal(t, key("/v1/houses/1", i18n.English), key("/v1/houses/1", i18n.Chinese))
}

func TestPayload_RoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"text/plain; charset=UTF-8"}}
	bs, err := encodePayload(http.StatusOK, hdr, []byte("SCREEN"))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr.Get("Content-Type"), gotHdr.Get("Content-Type"))
	assert.Equal(t, "SCREEN", string(body))

	_, _, _, ok = decodePayload(bs[:5])
	assert.False(t, ok)
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 1, 0})
	assert.False(t, ok)
}

func TestCaptureWriter_Truncation(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 4}
	_, _ = cw.Write([]byte("abc"))
	assert.False(t, cw.truncated())
	_, _ = cw.Write([]byte("def"))
	assert.True(t, cw.truncated())
	assert.Equal(t, "abcdef", rec.Body.String())
}

func TestBuildRateKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/tickets", nil)
	req.Header.Set(echo.HeaderXRealIP, "10.0.0.7")
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/v1/tickets")

	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "ip_user_route"}
	assert.Equal(t, "rl:ip:10.0.0.7:user:anon:route:POST /v1/tickets", buildRateKey(cfg, c))

	c.Set("user_id", uint64(9))
	cfg.KeyStrategy = "user"
	assert.Equal(t, "rl:user:9", buildRateKey(cfg, c))
	cfg.KeyStrategy = "ip"
	assert.Equal(t, "rl:ip:10.0.0.7", buildRateKey(cfg, c))
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 0, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(1))
	assert.Equal(t, 2, retryAfterSeconds(1500))
	assert.Equal(t, 1, retryAfterSeconds(int64(time.Second/time.Millisecond)))
}
