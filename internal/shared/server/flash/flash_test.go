package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestFlashRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// First request queues the banner.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
	Success(c, "record saved")

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a flash cookie to be set")
	}

	// Second request pops it.
	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		c2.Request.AddCookie(ck)
	}

	msg, ok := Pop(c2)
	if !ok {
		t.Fatal("expected a flash message")
	}
	if msg.Kind != "success" || msg.Text != "record saved" {
		t.Fatalf("unexpected message: %+v", msg)
	}

	// The pop must clear the cookie.
	cleared := false
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == cookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatal("expected flash cookie to be cleared after Pop")
	}
}

func TestPopWithoutCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := Pop(c); ok {
		t.Fatal("expected no flash message")
	}
}
