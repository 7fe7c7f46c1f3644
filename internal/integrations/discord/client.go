package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/xm-division/ATC-BookingService/internal/domain"
)

// embedColorBlue is the accent color of booking announcements.
const embedColorBlue = 0x3498db

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client posts booking announcements to a Discord webhook. Delivery is
// best-effort: callers log failures and move on.
type Client struct {
	webhookURL string
	httpClient *http.Client
	log        Logger
}

// NewClient builds a Discord webhook client. An empty webhookURL yields a
// disabled client whose sends are silent no-ops.
func NewClient(webhookURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled reports whether a webhook URL is configured.
func (c *Client) Enabled() bool {
	return c.webhookURL != ""
}

// NotifyBookingCreated announces a freshly created booking.
func (c *Client) NotifyBookingCreated(ctx context.Context, b *domain.Booking) error {
	if !c.Enabled() {
		c.log.Info("Discord webhook not configured, skipping notification for booking id=%d", b.ID)
		return nil
	}

	embed := Embed{
		Title: "New ATC Booking",
		Color: embedColorBlue,
		Fields: []EmbedField{
			{Name: "Position", Value: b.Position, Inline: true},
			{Name: "Date", Value: b.Date.Format(domain.DateFormat), Inline: true},
			{Name: "Time", Value: fmt.Sprintf("%s - %s", b.StartTime, b.EndTime), Inline: true},
			{Name: "Type", Value: titleCase(string(b.Type)), Inline: true},
			{Name: "User", Value: fmt.Sprintf("VID: %s", b.UserID), Inline: true},
		},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Footer: EmbedFooter{
			Text: "XM Booking System",
		},
	}

	body, err := json.Marshal(webhookPayload{Embeds: []Embed{embed}})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
