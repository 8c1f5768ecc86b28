// Package mailer sends transactional email through the EmailJS REST API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/richabhowmik03/slashbyte-rjs/internal/config"
	"github.com/richabhowmik03/slashbyte-rjs/internal/domain"
)

// Sender delivers site email. Implementations must be safe for
// concurrent use.
type Sender interface {
	SendContactMessage(ctx context.Context, msg domain.ContactMessage) error
	SendLeadNotification(ctx context.Context, lead domain.LeadRecord) error
}

// Noop discards all mail. Used when email is not configured.
type Noop struct{}

func (Noop) SendContactMessage(context.Context, domain.ContactMessage) error { return nil }
func (Noop) SendLeadNotification(context.Context, domain.LeadRecord) error   { return nil }

// Client posts templated sends to the EmailJS HTTP API.
type Client struct {
	cfg  config.EmailConfig
	http *http.Client
}

// New creates an EmailJS client.
func New(cfg config.EmailConfig) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 15 * time.Second},
	}
}

// sendRequest is the EmailJS send payload.
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// SendContactMessage forwards a contact-form submission to the site
// inbox.
func (c *Client) SendContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	return c.send(ctx, map[string]string{
		"from_name":    msg.Name,
		"from_email":   msg.Email,
		"company":      msg.Company,
		"project_type": msg.ProjectType,
		"message":      msg.Message,
		"to_email":     c.cfg.Destination,
	})
}

// SendLeadNotification tells the site inbox a chat lead was captured.
func (c *Client) SendLeadNotification(ctx context.Context, lead domain.LeadRecord) error {
	return c.send(ctx, map[string]string{
		"from_name":    lead.Name,
		"from_email":   lead.Email,
		"project_type": lead.Service,
		"message":      fmt.Sprintf("Chat lead: %s (%s) asked for details about %s.", lead.Name, lead.Email, lead.Service),
		"to_email":     c.cfg.Destination,
	})
}

func (c *Client) send(ctx context.Context, params map[string]string) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}
