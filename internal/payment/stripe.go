package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultStripeBaseURL = "https://api.stripe.com"

// StripeProvider creates hosted Stripe Checkout sessions over the
// form-encoded REST API.
type StripeProvider struct {
	secretKey string
	baseURL   string
	client    *http.Client
	logger    zerolog.Logger
}

// NewStripeProvider creates a Stripe session provider with a bounded request
// timeout; a timed-out session creation is a provider failure.
func NewStripeProvider(secretKey string, timeout time.Duration, logger zerolog.Logger) *StripeProvider {
	return &StripeProvider{
		secretKey: secretKey,
		baseURL:   defaultStripeBaseURL,
		client:    &http.Client{Timeout: timeout},
		logger:    logger.With().Str("provider", "stripe").Logger(),
	}
}

type stripeSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type stripeError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateSession submits the session-creation request and unwraps the
// session identifier and redirect URL.
func (p *StripeProvider) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	form := encodeSessionForm(req)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		p.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build session request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.secretKey)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		p.logger.Error().Err(err).Msg("stripe session request failed")
		return nil, fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read session response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var stripeErr stripeError
		message := http.StatusText(resp.StatusCode)
		if err := json.Unmarshal(body, &stripeErr); err == nil && stripeErr.Error.Message != "" {
			message = stripeErr.Error.Message
		}
		p.logger.Error().
			Int("status", resp.StatusCode).
			Str("message", message).
			Msg("stripe rejected session request")
		return nil, fmt.Errorf("provider rejected session: %s", message)
	}

	var session stripeSession
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session response: %w", err)
	}

	p.logger.Info().Str("session_id", session.ID).Msg("stripe session created")

	return &Session{ID: session.ID, URL: session.URL}, nil
}

// encodeSessionForm flattens a session request into Stripe's bracketed
// form-field convention.
func encodeSessionForm(req *SessionRequest) url.Values {
	form := url.Values{}
	form.Set("mode", req.Mode)
	form.Set("success_url", req.SuccessURL)
	form.Set("cancel_url", req.CancelURL)
	form.Set("payment_method_types[0]", "card")

	for i, item := range req.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
		form.Set(prefix+"[price_data][currency]", req.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
		if item.Description != "" {
			form.Set(prefix+"[price_data][product_data][description]", item.Description)
		}
		if item.ImageURL != "" {
			form.Set(prefix+"[price_data][product_data][images][0]", item.ImageURL)
		}
	}

	for key, value := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", key), value)
	}

	return form
}
