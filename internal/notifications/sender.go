package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ecostylo/ecostylo-backend/pkg/config"
	"github.com/ecostylo/ecostylo-backend/pkg/db/models"
	pkgerrors "github.com/ecostylo/ecostylo-backend/pkg/errors"
	"github.com/ecostylo/ecostylo-backend/pkg/logger"
)

const defaultTimeout = 5 * time.Second

const responseBodyReadLimit int64 = 1024

// Sender posts plain-text notifications to the merchant webhook bridge.
// A sender with no webhook URL configured is a no-op, which keeps local
// development working without a bridge.
type Sender struct {
	httpClient *http.Client
	webhookURL string
	recipient  string
	logg       *logger.Logger
}

// Option configures optional sender behavior.
type Option func(*Sender)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Sender) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// NewSender builds a webhook sender from configuration.
func NewSender(cfg config.NotificationConfig, logg *logger.Logger, opts ...Option) *Sender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	sender := &Sender{
		httpClient: &http.Client{Timeout: timeout},
		webhookURL: strings.TrimSpace(cfg.WebhookURL),
		recipient:  strings.TrimSpace(cfg.Recipient),
		logg:       logg,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(sender)
		}
	}
	return sender
}

type webhookPayload struct {
	Recipient string `json:"recipient,omitempty"`
	Message   string `json:"message"`
}

// Send posts one plain-text message to the configured webhook.
func (s *Sender) Send(ctx context.Context, message string) error {
	if s.webhookURL == "" {
		if s.logg != nil {
			s.logg.Info(ctx, "notification webhook not configured, skipping")
		}
		return nil
	}

	payload, err := json.Marshal(webhookPayload{Recipient: s.recipient, Message: message})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal notification payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build notification request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute notification request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency,
			fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))),
			"notification request failed")
	}
	return nil
}

// OrderPlaced formats and delivers the merchant summary for a new order.
func (s *Sender) OrderPlaced(ctx context.Context, order *models.Order, customer *models.User) error {
	return s.Send(ctx, FormatOrderMessage(order, customer))
}
