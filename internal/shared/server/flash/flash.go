// Package flash carries a one-shot notification banner across a
// post-redirect-get cycle in a cookie.
package flash

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "medlog_flash"

// Message is a banner rendered once on the next page load.
type Message struct {
	Kind string // "success" or "error"
	Text string
}

// Success queues a success banner for the next rendered page.
func Success(c *gin.Context, text string) {
	set(c, Message{Kind: "success", Text: text})
}

// Error queues an error banner for the next rendered page.
func Error(c *gin.Context, text string) {
	set(c, Message{Kind: "error", Text: text})
}

// Pop returns the pending banner, if any, and clears it.
func Pop(c *gin.Context) (Message, bool) {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return Message{}, false
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return Message{}, false
	}
	kind, text, found := strings.Cut(decoded, "|")
	if !found || text == "" {
		return Message{}, false
	}
	return Message{Kind: kind, Text: text}, true
}

func set(c *gin.Context, msg Message) {
	encoded := url.QueryEscape(msg.Kind + "|" + msg.Text)
	c.SetCookie(cookieName, encoded, 60, "/", "", false, true)
}
