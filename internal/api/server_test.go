// ABOUTME: Tests for the HTTP API using httptest and fake answer pipelines
// ABOUTME: Covers question extraction, mode dispatch, error mapping, and CORS preflight
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avikd/folio-assistant/internal/fault"
)

type fakeSite struct {
	answer   string
	err      error
	lastSeen string
}

func (f *fakeSite) Answer(_ context.Context, question string) (string, error) {
	f.lastSeen = question
	return f.answer, f.err
}

type fakeResume struct{ answer string }

func (f *fakeResume) Answer(string) string { return f.answer }

func postAsk(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ask", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeAnswer(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp AskResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.Answer
}

func TestAsk_AnswersLastUserMessage(t *testing.T) {
	site := &fakeSite{answer: "Go and distributed systems."}
	s := NewServer(":0", site, nil)

	rec := postAsk(t, s.Handler(), `{"messages":[
		{"role":"user","content":"hi"},
		{"role":"assistant","content":"hello"},
		{"role":"user","content":"what do you work with?"}
	]}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if site.lastSeen != "what do you work with?" {
		t.Errorf("question = %q, want the most recent user message", site.lastSeen)
	}
	if got := decodeAnswer(t, rec); got != "Go and distributed systems." {
		t.Errorf("answer = %q", got)
	}
}

func TestAsk_NoUserMessageIs400(t *testing.T) {
	s := NewServer(":0", &fakeSite{}, nil)

	for _, body := range []string{
		`{"messages":[]}`,
		`{"messages":[{"role":"assistant","content":"hello"}]}`,
		`{"messages":[{"role":"user","content":"   "}]}`,
	} {
		rec := postAsk(t, s.Handler(), body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestAsk_MalformedJSONIs400(t *testing.T) {
	s := NewServer(":0", &fakeSite{}, nil)
	rec := postAsk(t, s.Handler(), `{"messages":`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAsk_ResumeMode(t *testing.T) {
	s := NewServer(":0", &fakeSite{}, &fakeResume{answer: "Currently, you are working as Senior Developer"})

	rec := postAsk(t, s.Handler(), `{"mode":"resume","messages":[{"role":"user","content":"where do you work"}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := decodeAnswer(t, rec); !strings.Contains(got, "Senior Developer") {
		t.Errorf("answer = %q", got)
	}
}

func TestAsk_ResumeModeWithoutPipelineIs500(t *testing.T) {
	s := NewServer(":0", &fakeSite{}, nil)
	rec := postAsk(t, s.Handler(), `{"mode":"resume","messages":[{"role":"user","content":"q"}]}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestAsk_UnknownModeIs400(t *testing.T) {
	s := NewServer(":0", &fakeSite{}, nil)
	rec := postAsk(t, s.Handler(), `{"mode":"psychic","messages":[{"role":"user","content":"q"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAsk_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing api key", fault.ErrMissingAPIKey, http.StatusInternalServerError},
		{"provider failure", &fault.ProviderError{Provider: "openai embeddings", StatusCode: 500, Body: "boom"}, http.StatusInternalServerError},
		{"no question sentinel", fault.ErrNoQuestion, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewServer(":0", &fakeSite{err: tt.err}, nil)
			rec := postAsk(t, s.Handler(), `{"messages":[{"role":"user","content":"q"}]}`)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var resp errorResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil || resp.Error == "" {
				t.Errorf("expected an error body, got %q (%v)", rec.Body.String(), err)
			}
		})
	}
}

// An empty corpus is a content state: the pipeline returns the canned
// answer with no error and the API passes it through as a 200.
func TestAsk_CannedAnswerIs200(t *testing.T) {
	s := NewServer(":0", &fakeSite{answer: "No knowledge added yet. Please add content to the knowledge file and redeploy."}, nil)
	rec := postAsk(t, s.Handler(), `{"messages":[{"role":"user","content":"q"}]}`)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAsk_CORSPreflight(t *testing.T) {
	s := NewServer(":0", &fakeSite{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/ask", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("preflight status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestHealthz(t *testing.T) {
	s := NewServer(":0", &fakeSite{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil || body["status"] != "ok" {
		t.Errorf("body = %q (%v)", rec.Body.String(), err)
	}
}

func TestAsk_GetMethodNotAllowed(t *testing.T) {
	s := NewServer(":0", &fakeSite{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/ask", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}
