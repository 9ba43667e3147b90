package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	auction "smart-auction/internal/auctionService"
	"smart-auction/internal/events"
	model "smart-auction/internal/models"
	"smart-auction/internal/repository"
	"smart-auction/internal/server"
)

// TestEnv bundles the full stack wired against the in-memory store so
// scenarios can drive HTTP and reach under the hood for sweeps.
type TestEnv struct {
	Router  *gin.Engine
	Store   *repository.MemoryStore
	Service *auction.AuctionService
}

// SetupTestEnv initializes the router with the in-memory store and a
// discarding emitter for integration testing.
func SetupTestEnv(users ...model.User) *TestEnv {
	gin.SetMode(gin.TestMode)

	store := repository.NewMemoryStore()
	for _, u := range users {
		_ = store.SaveUser(u)
	}

	svc := auction.NewAuctionService(store, events.Discard{})
	router := server.SetupRouter(svc, nil)

	return &TestEnv{Router: router, Store: store, Service: svc}
}

// ExecuteRequest executes an HTTP request as the given caller and
// returns the response recorder.
func (env *TestEnv) ExecuteRequest(t *testing.T, method, url string, caller *model.User, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if caller != nil {
		req.Header.Set("X-User-ID", caller.UserID)
		req.Header.Set("X-User-Role", caller.Role)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)
	return w
}

// ParseResponse unmarshals the standard response envelope.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp
}
