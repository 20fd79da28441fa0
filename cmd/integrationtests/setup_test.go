package integrationtests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"auction-marketplace/internal/auth"
	marketplace "auction-marketplace/internal/marketplaceService"
	model "auction-marketplace/internal/models"
	"auction-marketplace/internal/repository"
	"auction-marketplace/internal/server"

	"github.com/gin-gonic/gin"
)

const testSecret = "integration-secret"

var (
	staff = model.Principal{UserID: 1, Username: "admin", IsStaff: true}
	alice = model.Principal{UserID: 2, Username: "alice"}
	bob   = model.Principal{UserID: 3, Username: "bob"}
)

// TestClock is a settable clock shared by the service under test
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *TestClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// TestEnv bundles a router backed by an in-memory store and its clock
type TestEnv struct {
	Router *gin.Engine
	Clock  *TestClock
	Repo   *repository.MemoryRepo
}

// SetupTestEnv initializes the router with in-memory repository for integration testing.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	clock := &TestClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := repository.NewMemoryRepo()
	service := marketplace.NewMarketplaceService(repo, marketplace.WithClock(clock.Now))
	router := server.SetupRouter(service, server.Options{JWTSecret: testSecret})
	return &TestEnv{Router: router, Clock: clock, Repo: repo}
}

// Token issues a bearer token for p that outlives any clock advance in the tests
func Token(t *testing.T, p model.Principal) string {
	t.Helper()
	token, err := auth.IssueToken(p, testSecret, 24*time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

// ClosingDate renders now+d in the minute-precision input format
func (e *TestEnv) ClosingDate(d time.Duration) string {
	return e.Clock.Now().Add(d).Format("2006-01-02T15:04")
}

// ExecuteRequestAndParse executes an HTTP request on the router as the given token
// holder (empty for anonymous) and parses the response envelope
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()
	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Data returns the object payload of a success envelope
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no object data: %v", resp)
	}
	return data
}

// DataList returns the list payload of a success envelope
func DataList(t *testing.T, resp map[string]any) []any {
	t.Helper()
	data, ok := resp["data"].([]any)
	if !ok {
		t.Fatalf("response has no list data: %v", resp)
	}
	return data
}

// ID extracts a numeric id from a decoded JSON object
func ID(obj map[string]any) string {
	return fmt.Sprintf("%d", int(obj["id"].(float64)))
}

// CreateCategory creates a category as staff and returns its id
func (e *TestEnv) CreateCategory(t *testing.T, name string) string {
	t.Helper()
	resp, w := ExecuteRequestAndParse(t, e.Router, "POST", "/categories/", Token(t, staff), map[string]any{"name": name})
	if w.Code != 201 {
		t.Fatalf("create category: status %d: %s", w.Code, w.Body.String())
	}
	return ID(Data(t, resp))
}

// CreateAuction creates an auction as p and returns the decoded object
func (e *TestEnv) CreateAuction(t *testing.T, p model.Principal, categoryID string, overrides map[string]any) map[string]any {
	t.Helper()
	body := map[string]any{
		"title":        "Leica M3",
		"description":  "rangefinder in working condition",
		"price":        350,
		"stock":        1,
		"brand":        "Leica",
		"category":     json.Number(categoryID),
		"closing_date": e.ClosingDate(20 * 24 * time.Hour),
	}
	for k, v := range overrides {
		body[k] = v
	}
	resp, w := ExecuteRequestAndParse(t, e.Router, "POST", "/", Token(t, p), body)
	if w.Code != 201 {
		t.Fatalf("create auction: status %d: %s", w.Code, w.Body.String())
	}
	return Data(t, resp)
}
