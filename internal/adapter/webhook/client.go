// Package webhook implements the outbound trigger client that notifies the
// external workflow engine that a run should begin.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"

	"leadflow/internal/config/configs"
	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
)

// Client posts run payloads to one of two configured endpoints selected by
// campaign mode. The outbound call is bounded by the configured timeout; a
// timeout is reported as indeterminate rather than failed because the
// workflow may have started despite the client not observing a response.
type Client struct {
	urls   map[domain.Mode]string
	http   *http.Client
	logger *slog.Logger
}

// NewClient builds a Client from configuration.
func NewClient(cfg configs.Webhook, logger *slog.Logger) *Client {
	return &Client{
		urls: map[domain.Mode]string{
			domain.ModeStandard:        cfg.URL,
			domain.ModeLocalBusinesses: cfg.LocalBusinessesURL,
		},
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Ready reports whether an endpoint URL is configured for the mode.
func (c *Client) Ready(mode domain.Mode) error {
	if c.urls[mode] == "" {
		return port.Misconfigured(
			"Workflow endpoint is not configured",
			"Check the N8N_WEBHOOK_URL configuration for mode "+string(mode)+".",
		)
	}
	return nil
}

// Trigger posts the payload as JSON. The NotifyStatus is always meaningful;
// the error only adds diagnostic detail for logging.
func (c *Client) Trigger(ctx context.Context, mode domain.Mode, p port.TriggerPayload) (port.NotifyStatus, error) {
	url := c.urls[mode]
	if url == "" {
		return port.NotifyFailed, c.Ready(mode)
	}

	body, err := json.Marshal(p)
	if err != nil {
		return port.NotifyFailed, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return port.NotifyFailed, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Warn("workflow trigger timed out, treating as indeterminate",
				slog.String("mode", string(mode)))
			return port.NotifyIndeterminate, nil
		}
		return port.NotifyFailed, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return port.NotifyFailed, errors.New("workflow endpoint returned " + resp.Status)
	}
	return port.NotifyDelivered, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
