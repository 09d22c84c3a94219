package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	config "github.com/JoseMiguelMilani/teste-site/configs"
	"github.com/JoseMiguelMilani/teste-site/internal/auth"
	"github.com/JoseMiguelMilani/teste-site/internal/db"
	"github.com/JoseMiguelMilani/teste-site/internal/events"
	"github.com/JoseMiguelMilani/teste-site/internal/handlers"
	"github.com/JoseMiguelMilani/teste-site/internal/models"
	"github.com/JoseMiguelMilani/teste-site/internal/service"
	"github.com/JoseMiguelMilani/teste-site/internal/store"
)

const testSecret = "test-secret-key"

var testNow = time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)

type recordingNotifier struct {
	mu     sync.Mutex
	orders []models.Order
}

func (n *recordingNotifier) NotifyOrder(_ context.Context, order models.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, order)
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *recordingPublisher) Publish(_ context.Context, subject string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type testEnv struct {
	router    *gin.Engine
	handler   *handlers.Handler
	notifier  *recordingNotifier
	publisher *recordingPublisher
}

func setupTestRouter(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(config.DatabaseConfig{Driver: "sqlite", Path: filepath.Join(t.TempDir(), "handlers.db")})
	if err != nil {
		panic("failed to connect test database: " + err.Error())
	}
	st := store.NewGormStore(gdb)
	require.NoError(t, store.SeedCatalog(context.Background(), st, testNow.Add(-time.Hour)))

	svc := service.New(st, service.WithClock(func() time.Time { return testNow }))
	env := &testEnv{notifier: &recordingNotifier{}, publisher: &recordingPublisher{}}
	env.handler = handlers.New(svc, env.notifier, events.NewOrderEvents(env.publisher, "marmita"))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sessions.Sessions(auth.SessionName, cookie.NewStore([]byte(testSecret))))

	pw := auth.NewPasswordAuth(config.ServerConfig{AdminUsername: "admin", AdminPassword: "123456"})
	env.handler.RegisterRoutes(r, pw.Login)
	env.router = r

	t.Cleanup(env.handler.Wait)
	return env
}

func createRequest(method, path string, body interface{}) *http.Request {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, createRequest(method, path, body))
	return recorder
}

// performAuthenticatedRequest mints an admin session cookie through a
// temporary gin context and sends it with the request.
func performAuthenticatedRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := createRequest(method, path, body)

	tempW := httptest.NewRecorder()
	tempC, _ := gin.CreateTestContext(tempW)
	tempC.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	sessions.Sessions(auth.SessionName, cookie.NewStore([]byte(testSecret)))(tempC)

	session := sessions.Default(tempC)
	auth.SetAdmin(session, "admin")
	_ = session.Save()

	req.Header.Set("Cookie", tempW.Header().Get("Set-Cookie"))

	router.ServeHTTP(recorder, req)
	return recorder
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decode[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &out), recorder.Body.String())
	return out
}
