package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/haguru/signupgate/config"
	"github.com/haguru/signupgate/internal/routes"
	"github.com/haguru/signupgate/internal/server"
	"github.com/haguru/signupgate/pkg/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structValidator "github.com/go-playground/validator/v10"
)

func testConfig(baseURL string) *config.ServiceConfig {
	return &config.ServiceConfig{
		ServiceName:     "signupgate_test",
		LogLevel:        "debug",
		Host:            "127.0.0.1",
		Port:            "0",
		ShutdownTimeout: time.Second,
		Downstream: config.DownstreamConfig{
			BaseURL: baseURL,
			Timeout: time.Second,
		},
	}
}

func newTestApp(t *testing.T, baseURL string) *App {
	t.Helper()
	logger := zerolog.NewLoggerWithWriter("signupgate-test", io.Discard)
	app, err := newApp(testConfig(baseURL), logger, structValidator.New())
	require.NoError(t, err)
	return app
}

func TestNewApp_Errors(t *testing.T) {
	dir := t.TempDir()
	invalidPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(invalidPath, []byte("service_name: signupgate\nloglevel: info\nhost: localhost\nport: \"8080\"\n"), 0600))

	tests := []struct {
		name       string
		configPath string
	}{
		{name: "missing file", configPath: filepath.Join(dir, "missing.yaml")},
		{name: "missing downstream", configPath: invalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.configPath)
			assert.Error(t, err)
			assert.Nil(t, app)
		})
	}
}

func TestApp_Routes(t *testing.T) {
	downstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42}`))
	}))
	defer downstream.Close()

	app := newTestApp(t, downstream.URL)
	handler := app.Server.(*server.Server)

	form := url.Values{"username": {"naruto"}, "password": {"hokage123"}}
	req := httptest.NewRequest(http.MethodPost, routes.SignupRouteAPI, strings.NewReader(form.Encode()))
	req.Header.Set(routes.ContentType, routes.ContentTypeFormURLEncoded)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"status": 201, "body": {"id": 42}}`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routes.MetricsRouteAPI, nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `signupgate_test_signup_results_total{status_class="2xx"} 1`)
	assert.Contains(t, rr.Body.String(), "signupgate_test_signup_submissions_total 1")
}

func TestApp_ServeStopsOnCancel(t *testing.T) {
	app := newTestApp(t, "http://localhost:3000")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
