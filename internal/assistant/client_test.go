package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAsk(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ask" {
			t.Errorf("Path = %q, want /ask", r.URL.Path)
		}
		var req askRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		if req.Question != "what is RAG?" {
			t.Errorf("Question = %q", req.Question)
		}
		json.NewEncoder(w).Encode(askResponse{Answer: "Retrieval-augmented generation.", Success: true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	answer, err := c.Ask(context.Background(), "what is RAG?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if answer != "Retrieval-augmented generation." {
		t.Errorf("Answer = %q", answer)
	}
}

func TestAskBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(askResponse{Success: false, Error: "index unavailable"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Ask(context.Background(), "anything"); err == nil {
		t.Fatal("Expected error when backend reports failure")
	}
}

func TestAskNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Ask(context.Background(), "anything"); err == nil {
		t.Fatal("Expected error for non-200 status")
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("Path = %q, want /health", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if err := c.Health(context.Background()); err != nil {
		t.Fatalf("Health: %v", err)
	}
}
