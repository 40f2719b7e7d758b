//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertSessionEchoed checks the session id came back in both the header and the session cookie.
func AssertSessionEchoed(t *testing.T, w *httptest.ResponseRecorder, sessionID string) {
	t.Helper()
	assert.Equal(t, sessionID, w.Header().Get(SessionHeader), "session header mismatch")

	c := ExtractCookie(w, "session_id")
	if assert.NotNil(t, c, "session cookie missing") {
		assert.Equal(t, sessionID, c.Value, "session cookie mismatch")
		assert.True(t, c.HttpOnly, "session cookie must be HttpOnly")
	}
}
