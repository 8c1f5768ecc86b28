package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/richabhowmik03/slashbyte-rjs/internal/config"
	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

func testConfig(endpoint string) config.EmailConfig {
	return config.EmailConfig{
		Endpoint:    endpoint,
		ServiceID:   "svc_1",
		TemplateID:  "tpl_1",
		PublicKey:   "pk_1",
		Destination: "hello@slashbyte.org",
	}
}

func TestSendContactMessage(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL))
	err := c.SendContactMessage(context.Background(), domain.ContactMessage{
		Name:        "Jane Smith",
		Email:       "jane@example.com",
		Company:     "Acme",
		ProjectType: "AI Solutions",
		Message:     "We need a chatbot.",
	})
	if err != nil {
		t.Fatalf("SendContactMessage: %v", err)
	}

	if got.ServiceID != "svc_1" || got.TemplateID != "tpl_1" || got.UserID != "pk_1" {
		t.Errorf("Credentials not forwarded: %+v", got)
	}
	if got.TemplateParams["from_email"] != "jane@example.com" {
		t.Errorf("from_email = %q", got.TemplateParams["from_email"])
	}
	if got.TemplateParams["to_email"] != "hello@slashbyte.org" {
		t.Errorf("to_email = %q", got.TemplateParams["to_email"])
	}
	if got.TemplateParams["message"] != "We need a chatbot." {
		t.Errorf("message = %q", got.TemplateParams["message"])
	}
}

func TestSendLeadNotification(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("Failed to decode request: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL))
	err := c.SendLeadNotification(context.Background(), domain.LeadRecord{
		Name:    "Sam Lee",
		Email:   "sam@example.com",
		Service: "Digital Development",
	})
	if err != nil {
		t.Fatalf("SendLeadNotification: %v", err)
	}

	if got.TemplateParams["from_name"] != "Sam Lee" {
		t.Errorf("from_name = %q", got.TemplateParams["from_name"])
	}
	if got.TemplateParams["project_type"] != "Digital Development" {
		t.Errorf("project_type = %q", got.TemplateParams["project_type"])
	}
}

func TestSendReportsAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad template", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(testConfig(srv.URL))
	err := c.SendContactMessage(context.Background(), domain.ContactMessage{
		Name: "Jane", Email: "jane@example.com", Message: "hi",
	})
	if err == nil {
		t.Fatal("Expected error for non-2xx response")
	}
}
