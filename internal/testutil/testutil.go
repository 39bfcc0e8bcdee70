// Package testutil provides utilities for testing
package testutil

import (
	"encoding/json"
	"io"
	"k8s-azure-app/internal/api/routes"
	"k8s-azure-app/internal/config"
	"k8s-azure-app/internal/sysinfo"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	// TestHostname is reported by the provider built in NewTestContext
	TestHostname = "test-pod-0"
	// TestRuntimeVersion is reported by the provider built in NewTestContext
	TestRuntimeVersion = "go1.23.3"
)

// TestStartTime is when the test process is considered started
var TestStartTime = time.Date(2024, 3, 20, 13, 0, 0, 0, time.UTC)

// Clock is a manually advanced clock safe for concurrent use
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock stopped at t
func NewClock(t time.Time) *Clock {
	return &Clock{now: t}
}

// Now returns the current fake time
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// TestContext holds common test dependencies
type TestContext struct {
	T      *testing.T
	Config *config.Config
	Clock  *Clock
	Info   *sysinfo.Provider
	Logger *zap.Logger
	Router *gin.Engine
}

// LoadTestConfig returns the configuration used by the test router
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{
		API: config.APIConfig{
			Port:            config.DefaultPort,
			ShutdownTimeout: time.Second,
			BodyLimit:       config.DefaultBodyLimit,
		},
		App: config.AppConfig{Environment: "test"},
		Log: config.LogConfig{Level: "debug"},
	}
	require.NoError(t, cfg.Validate(), "Failed to validate test config")
	return cfg
}

// NewTestContext creates a new test context with a fully wired router whose
// clock starts one minute after TestStartTime.
func NewTestContext(t *testing.T, opts ...sysinfo.Option) *TestContext {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	cfg := LoadTestConfig(t)
	clock := NewClock(TestStartTime.Add(time.Minute))

	defaults := []sysinfo.Option{
		sysinfo.WithClock(clock.Now),
		sysinfo.WithStartTime(TestStartTime),
		sysinfo.WithHostname(func() (string, error) { return TestHostname, nil }),
		sysinfo.WithRuntimeVersion(TestRuntimeVersion),
	}
	info := sysinfo.New(append(defaults, opts...)...)
	logger := zap.NewNop()

	return &TestContext{
		T:      t,
		Config: cfg,
		Clock:  clock,
		Info:   info,
		Logger: logger,
		Router: routes.SetupRoutes(cfg, info, logger),
	}
}

// Do sends a request through the test router and returns the recorded response
func (tc *TestContext) Do(method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	tc.T.Helper()

	req, err := http.NewRequest(method, target, body)
	require.NoError(tc.T, err, "Failed to build request")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	tc.Router.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded body into v
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "Failed to decode response body: %s", w.Body.String())
}
