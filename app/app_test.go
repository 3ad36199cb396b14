package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncobase/taskboard/config"
	dc "github.com/ncobase/taskboard/data/config"
	lc "github.com/ncobase/taskboard/logging/logger/config"
	"github.com/ncobase/taskboard/middleware"
	"github.com/ncobase/taskboard/utils/nanoid"
)

func testConfig() *config.Config {
	return &config.Config{
		AppName: "taskboard",
		RunMode: "test",
		Server: &config.Server{
			Host:            "127.0.0.1",
			Port:            0,
			ReadTimeout:     time.Second,
			WriteTimeout:    time.Second,
			IdleTimeout:     time.Second,
			ShutdownTimeout: time.Second,
		},
		Logger: &lc.Config{Level: 2, Format: "json", Output: "stderr"},
		Data: &dc.Config{
			Database: &dc.Database{
				Migrate: true,
				Master: &dc.DBNode{
					Driver: "sqlite",
					Source: "file:" + nanoid.Must() + "?mode=memory&cache=shared&_fk=1",
				},
			},
			Redis: &dc.Redis{},
		},
		Observes: &config.Observes{Sentry: &config.Sentry{}, Tracer: &config.Tracer{}},
	}
}

func TestInitializeApp(t *testing.T) {
	a, cleanup, err := InitializeApp(testConfig())
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.TraceHeader))

	w = httptest.NewRecorder()
	a.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRunStopsOnCancel(t *testing.T) {
	a, cleanup, err := InitializeApp(testConfig())
	require.NoError(t, err)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
