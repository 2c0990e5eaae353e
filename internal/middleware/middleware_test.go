package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/vancomm/minefield/internal/metrics"
)

func TestWrapOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	h := Wrap(http.NotFoundHandler(), mark("inner"), mark("outer"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestAuthToken(t *testing.T) {
	tests := []struct {
		name   string
		req    func() *http.Request
		token  string
		exists bool
	}{
		{
			name: "bearer header",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/v1/game/a/reveal", nil)
				r.Header.Set("Authorization", "Bearer abc.def.ghi")
				return r
			},
			token:  "abc.def.ghi",
			exists: true,
		},
		{
			name: "query parameter",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/v1/game/a/connect?token=xyz", nil)
			},
			token:  "xyz",
			exists: true,
		},
		{
			name: "missing",
			req: func() *http.Request {
				return httptest.NewRequest(http.MethodGet, "/v1/game/a", nil)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var (
				token  string
				exists bool
			)
			h := Auth()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				token, exists = Token(r)
			}))
			h.ServeHTTP(httptest.NewRecorder(), test.req())

			assert.Equal(t, test.exists, exists)
			assert.Equal(t, test.token, token)
		})
	}
}

func TestLoggingCountsRequests(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	m := metrics.New(prometheus.NewRegistry())

	h := Logging(log, m)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("ok"))
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("GET", "404")))
}
