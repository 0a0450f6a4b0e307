package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HenrikBaltazar/linked-list-graph/internal/command"
	"github.com/HenrikBaltazar/linked-list-graph/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)

	return l
}

// newRegistry returns a registry with the production command table installed.
func newRegistry() *command.Registry {
	r := command.NewRegistry(testLogger())
	if err := command.Install(r, service.NewGraphService(testLogger())); err != nil {
		panic(err)
	}

	return r
}

// mockRegistry implements api.CommandRegistry for testing.
type mockRegistry struct {
	invokeFn func(ctx context.Context, name string) (any, error)
	names    []string
}

func (m *mockRegistry) Invoke(ctx context.Context, name string) (any, error) {
	return m.invokeFn(ctx, name)
}

func (m *mockRegistry) Names() []string { return m.names }

// doRequest performs an HTTP request against the test router and returns the recorder.
func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, http.NoBody)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func newPreflight(path, origin string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, path, http.NoBody)
	req.Header.Set("Origin", origin)
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}
