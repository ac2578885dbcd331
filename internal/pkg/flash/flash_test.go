package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSetThenPop(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// First request writes the notice.
	setRecorder := httptest.NewRecorder()
	setCtx, _ := gin.CreateTestContext(setRecorder)
	setCtx.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	Set(setCtx, LevelSuccess, "Login successful!")

	resp := setRecorder.Result()
	var carried *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == cookieName {
			carried = ck
		}
	}
	if carried == nil {
		t.Fatal("expected a notice cookie to be set")
	}
	if !carried.HttpOnly {
		t.Error("notice cookie should be HttpOnly")
	}

	// Second request carries the cookie and pops the notice.
	popRecorder := httptest.NewRecorder()
	popCtx, _ := gin.CreateTestContext(popRecorder)
	popCtx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	popCtx.Request.AddCookie(carried)

	notice := Pop(popCtx)
	if notice == nil {
		t.Fatal("expected a notice")
	}
	if notice.Level != LevelSuccess {
		t.Errorf("level = %q, want %q", notice.Level, LevelSuccess)
	}
	if notice.Message != "Login successful!" {
		t.Errorf("message = %q, want %q", notice.Message, "Login successful!")
	}

	// Pop must clear the cookie so the notice shows exactly once.
	cleared := false
	for _, ck := range popRecorder.Result().Cookies() {
		if ck.Name == cookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected Pop to clear the notice cookie")
	}
}

func TestPopWithoutNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if notice := Pop(ctx); notice != nil {
		t.Errorf("expected no notice, got %+v", notice)
	}
}

func TestPopGarbageCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: cookieName, Value: "not-base64!"})

	if notice := Pop(ctx); notice != nil {
		t.Errorf("expected no notice from a garbage cookie, got %+v", notice)
	}

	// The garbage cookie must still be cleared.
	cleared := false
	for _, ck := range recorder.Result().Cookies() {
		if ck.Name == cookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the garbage cookie to be cleared")
	}
}

// Payloads whose base64 form carries padding are written with the padding
// URL-escaped (= becomes %3D); Peek must still decode them.
func TestPeekEscapedPadding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/logout", nil)
	Set(ctx, LevelInfo, "Logged out successfully.")

	resp := recorder.Result()
	escaped := false
	for _, ck := range resp.Cookies() {
		if ck.Name == cookieName && strings.Contains(ck.Value, "%3D") {
			escaped = true
		}
	}
	if !escaped {
		t.Fatal("expected the cookie value to carry escaped base64 padding")
	}

	notice := Peek(resp)
	if notice == nil {
		t.Fatal("expected Peek to decode the escaped cookie value")
	}
	if notice.Message != "Logged out successfully." {
		t.Errorf("message = %q, want %q", notice.Message, "Logged out successfully.")
	}
}

func TestConfigureSecure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	Configure(true)
	t.Cleanup(func() { Configure(false) })

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/login", nil)
	Set(ctx, LevelSuccess, "Login successful!")

	secure := false
	for _, ck := range recorder.Result().Cookies() {
		if ck.Name == cookieName && ck.Secure {
			secure = true
		}
	}
	if !secure {
		t.Error("expected the notice cookie to be marked Secure")
	}
}

func TestPeek(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodPost, "/signup", nil)
	Set(ctx, LevelDanger, "Username already exists! Please choose a different one.")

	notice := Peek(recorder.Result())
	if notice == nil {
		t.Fatal("expected Peek to find the notice")
	}
	if notice.Level != LevelDanger {
		t.Errorf("level = %q, want %q", notice.Level, LevelDanger)
	}
}
