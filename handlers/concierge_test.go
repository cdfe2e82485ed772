package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"concierge/models"
	"concierge/services/concierge"
	"concierge/services/livecontext"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type testGenerator struct {
	response string
	err      error
	calls    int
}

func (g *testGenerator) Generate(ctx context.Context, conv concierge.Conversation) (string, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

func newTestRouter(gen *testGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	fetcher := livecontext.NewDefaultFetcher("", zap.NewNop())
	svc := concierge.NewDefaultService(fetcher, gen, nil, zap.NewNop())
	handler := NewConciergeHandler(svc)

	r := gin.New()
	r.POST("/ai/concierge", handler.PlanItineraryHandler)
	return r
}

func postConcierge(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ai/concierge", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConciergeMinimalRequest(t *testing.T) {
	// No preferences, no search credential: the pipeline still returns all
	// four keys with defaults backfilled.
	gen := &testGenerator{response: `{"plan": [{"day": 1, "date": "2025-10-20"}]}`}
	r := newTestRouter(gen)

	w := postConcierge(t, r, `{"booking": {"start_date": "2025-10-20", "end_date": "2025-10-21", "location": "Austin, TX", "party_type": "couple"}}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result models.ItineraryResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	for _, k := range []string{"plan", "activities", "restaurants", "packing_checklist"} {
		if _, ok := result[k]; !ok {
			t.Errorf("response missing key %q", k)
		}
	}
	packing, ok := result["packing_checklist"].([]any)
	if !ok || len(packing) == 0 || packing[0] != "light jacket" {
		t.Errorf("packing_checklist default missing: %v", result["packing_checklist"])
	}
}

func TestConciergeMissingLocationRejectedBeforePipeline(t *testing.T) {
	gen := &testGenerator{response: `{}`}
	r := newTestRouter(gen)

	w := postConcierge(t, r, `{"booking": {"start_date": "2025-10-20", "end_date": "2025-10-21", "party_type": "couple"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if gen.calls != 0 {
		t.Errorf("model invoked %d times for an invalid request", gen.calls)
	}
	if !strings.Contains(w.Body.String(), "detail") {
		t.Errorf("error body missing detail field: %s", w.Body.String())
	}
}

func TestConciergeMalformedBody(t *testing.T) {
	gen := &testGenerator{}
	r := newTestRouter(gen)

	w := postConcierge(t, r, `{"booking": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if gen.calls != 0 {
		t.Errorf("model invoked for malformed body")
	}
}

func TestConciergeModelFailureSurfacesDetail(t *testing.T) {
	gen := &testGenerator{err: errors.New("permission denied: invalid API key")}
	r := newTestRouter(gen)

	w := postConcierge(t, r, `{"booking": {"start_date": "2025-10-20", "end_date": "2025-10-21", "location": "Austin, TX", "party_type": "couple"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body is not JSON: %v", err)
	}
	if !strings.Contains(body["detail"], "invalid API key") {
		t.Errorf("detail %q does not carry the underlying failure", body["detail"])
	}
}
