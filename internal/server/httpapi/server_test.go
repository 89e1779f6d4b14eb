package httpapi

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/mygymbro/mygymbro/internal/logging"
	"github.com/mygymbro/mygymbro/internal/server/config"
	"github.com/mygymbro/mygymbro/internal/server/repositories/inmemory"
	"github.com/mygymbro/mygymbro/internal/server/services"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"
	cfg.TokenValidityDuration = time.Hour
	return cfg
}

type testAPI struct {
	router chi.Router
	repos  *inmemory.Manager
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	cfg := testConfig()
	repos := inmemory.NewManager()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))

	srv := NewServer(cfg.EndpointAddrHTTP, logger,
		services.NewUserService(repos.Users(), cfg),
		services.NewCatalogService(repos.Exercises(), repos.Meals(), repos.Users()),
		services.NewWorkoutService(repos.Users(), repos.UserExercises()),
		services.NewPicService(repos.Users(), cfg),
		cfg.TokenValidityDuration)

	return &testAPI{router: srv.Routes(), repos: repos}
}

// do performs a request, optionally with a session cookie and JSON body.
func (a *testAPI) do(t *testing.T, method, target string, body any, session *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if session != nil {
		req.AddCookie(session)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	t.Fatalf("no session cookie in response")
	return nil
}

// signup registers a user and returns the id plus a usable session cookie.
func (a *testAPI) signup(t *testing.T, username, email, password string) (string, *http.Cookie) {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/signup", map[string]string{
		"username": username, "email": email, "password": password,
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	id, _ := body["user"].(string)
	require.NotEmpty(t, id)

	return id, sessionCookie(t, rec)
}
