package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cinema-box-office/internal/i18n"
)

const langKey = "lang"

// Language picks the message language of each request from ?lang=, then
// Accept-Language, then def, and stores it for Lang.  The chosen language
// is echoed in the Content-Language header.
func Language(def i18n.Lang) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := i18n.Negotiate(c.QueryParam("lang"), c.Request().Header.Get("Accept-Language"), def)
			c.Set(langKey, lang)
			if lang == i18n.Chinese {
				c.Response().Header().Set("Content-Language", "zh-Hant")
			} else {
				c.Response().Header().Set("Content-Language", "en")
			}
			return next(c)
		}
	}
}

// Lang returns the language chosen by Language, or English when the
// middleware did not run.
func Lang(c echo.Context) i18n.Lang {
	if l, ok := c.Get(langKey).(i18n.Lang); ok {
		return l
	}
	return i18n.English
}

// Abort writes the JSON error body shared by every endpoint:
// {"error": code, "message": localized text}.
func Abort(c echo.Context, status int, code string) error {
	return c.JSON(status, echo.Map{"error": code, "message": i18n.Message(Lang(c), code)})
}

// passThrough is used when a feature is disabled.
func passThrough(next echo.HandlerFunc) echo.HandlerFunc { return next }

