package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/model"
)

// ErrNotConfigured is returned by every send when no notify address is set.
var ErrNotConfigured = errors.New("NOTIFY_EMAIL not configured")

// Notifier is the store owner's notification sink.
type Notifier interface {
	SendOrderNotification(ctx context.Context, n *model.OrderNotification) error
	SendContactInquiry(ctx context.Context, req *model.ContactRequest) error
	SendLowStockAlert(ctx context.Context, items []model.LowStockItem) error
}

// Client sends mail through the Resend HTTP API.
type Client struct {
	apiKey     string
	apiURL     string
	from       string
	notify     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.MailConfig) *Client {
	return &Client{
		apiKey:     cfg.APIKey,
		apiURL:     cfg.APIURL,
		from:       cfg.FromEmail,
		notify:     cfg.NotifyEmail,
		baseURL:    cfg.PublicBaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

type sendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (c *Client) SendOrderNotification(ctx context.Context, n *model.OrderNotification) error {
	if c.notify == "" {
		return ErrNotConfigured
	}
	html, text, err := renderOrder(n)
	if err != nil {
		return err
	}
	return c.send(ctx, sendRequest{
		Subject: fmt.Sprintf("New Order #%s - %s", n.OrderNumber, n.Customer.Name),
		HTML:    html,
		Text:    text,
		ReplyTo: n.Customer.Email,
	})
}

func (c *Client) SendContactInquiry(ctx context.Context, req *model.ContactRequest) error {
	if c.notify == "" {
		return ErrNotConfigured
	}
	html, text, err := renderContact(req)
	if err != nil {
		return err
	}
	return c.send(ctx, sendRequest{
		Subject: "Website Inquiry from " + req.Name,
		HTML:    html,
		Text:    text,
	})
}

func (c *Client) SendLowStockAlert(ctx context.Context, items []model.LowStockItem) error {
	if c.notify == "" {
		return ErrNotConfigured
	}
	if len(items) == 0 {
		return nil
	}
	html, text, err := renderLowStock(items, c.baseURL+"/admin/inventory")
	if err != nil {
		return err
	}
	return c.send(ctx, sendRequest{
		Subject: fmt.Sprintf("Low Stock Alert - %d item(s) need reordering", len(items)),
		HTML:    html,
		Text:    text,
	})
}

func (c *Client) send(ctx context.Context, msg sendRequest) error {
	msg.From = c.from
	msg.To = []string{c.notify}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var se sendError
		if json.Unmarshal(raw, &se) == nil && se.Message != "" {
			return fmt.Errorf("mail api returned %d after %s: %s", resp.StatusCode, time.Since(start).Round(time.Millisecond), se.Message)
		}
		return fmt.Errorf("mail api returned %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
