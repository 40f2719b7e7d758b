//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"appointment-assistant/internal/handler/middleware"
	"appointment-assistant/internal/pkg/config"
	"appointment-assistant/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const knownID = "3f2504e0-4f89-41d3-9a0c-0305e82c3301"

func newSessionRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.SessionMiddleware(config.NewTestConfig()))
	r.GET("/ping", func(c *gin.Context) {
		*seen = middleware.GetSessionID(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestSessionMiddleware(t *testing.T) {
	testCases := []struct {
		name   string
		header string
		cookie string
		want   string
		fresh  bool
	}{
		{name: "header wins", header: knownID, cookie: uuid.NewString(), want: knownID},
		{name: "cookie fallback", cookie: knownID, want: knownID},
		{name: "mints when absent", fresh: true},
		{name: "replaces non-uuid header", header: "../../etc/passwd", fresh: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var seen string
			r := newSessionRouter(&seen)

			var cookies []*http.Cookie
			if tc.cookie != "" {
				cookies = append(cookies, &http.Cookie{Name: "session_id", Value: tc.cookie})
			}
			rec := httptest.PerformRequestWithCookies(t, r, http.MethodGet, "/ping", nil, cookies, tc.header)

			require.Equal(t, http.StatusNoContent, rec.Code)
			if tc.fresh {
				_, err := uuid.Parse(seen)
				assert.NoError(t, err)
				assert.NotEqual(t, tc.header, seen)
			} else {
				assert.Equal(t, tc.want, seen)
			}
			assert.Equal(t, seen, rec.Header().Get(middleware.SessionHeader))

			c := httptest.ExtractCookie(rec, "session_id")
			require.NotNil(t, c)
			assert.Equal(t, seen, c.Value)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, int(config.NewTestConfig().Session.IdleTTL.Seconds()), c.MaxAge)
		})
	}
}

func TestGetSessionID_WithoutMiddleware(t *testing.T) {
	assert.Empty(t, middleware.GetSessionID(&gin.Context{}))
}
