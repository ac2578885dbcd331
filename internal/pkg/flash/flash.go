// Package flash implements one-shot user-visible notices. A notice survives
// exactly one redirect: it is written as a short-lived cookie and cleared as
// soon as the next page render reads it.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const cookieName = "classpoint_flash"

// cookie lifetime; a notice not consumed within this window is dropped
const cookieMaxAge = 60

// secureCookies marks notice cookies Secure, matching the session cookie
var secureCookies bool

// Configure sets whether notice cookies carry the Secure flag. Called once
// at startup with the session cookie setting.
func Configure(secure bool) {
	secureCookies = secure
}

// Level categorizes a notice for rendering
type Level string

const (
	LevelSuccess Level = "success"
	LevelDanger  Level = "danger"
	LevelInfo    Level = "info"
)

// Notice is a transient user-visible message
type Notice struct {
	Level   Level  `json:"level"`
	Message string `json:"message"`
}

// Set stores a notice to be shown on the next rendered page
func Set(c *gin.Context, level Level, message string) {
	payload, err := json.Marshal(Notice{Level: level, Message: message})
	if err != nil {
		return
	}
	encoded := base64.URLEncoding.EncodeToString(payload)
	c.SetCookie(cookieName, encoded, cookieMaxAge, "/", "", secureCookies, true)
}

// Pop returns the pending notice, if any, and clears it
func Pop(c *gin.Context) *Notice {
	encoded, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}

	// Clear regardless of whether the payload decodes
	c.SetCookie(cookieName, "", -1, "/", "", secureCookies, true)

	payload, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}

	var notice Notice
	if err := json.Unmarshal(payload, &notice); err != nil {
		return nil
	}
	return &notice
}

// Peek reads the pending notice from a response's Set-Cookie headers.
// Test helper for asserting on notices across a redirect. The raw cookie
// value is URL-escaped by gin, so it is unescaped before decoding.
func Peek(resp *http.Response) *Notice {
	for _, ck := range resp.Cookies() {
		if ck.Name != cookieName || ck.MaxAge < 0 || ck.Value == "" {
			continue
		}
		unescaped, err := url.QueryUnescape(ck.Value)
		if err != nil {
			continue
		}
		payload, err := base64.URLEncoding.DecodeString(unescaped)
		if err != nil {
			continue
		}
		var notice Notice
		if err := json.Unmarshal(payload, &notice); err != nil {
			continue
		}
		return &notice
	}
	return nil
}
