// Package payment constructs and submits external checkout sessions. The
// provider hosts the actual payment page; checkout only stages a priced
// session and hands the customer the redirect URL.
package payment

import "context"

// LineItem is one priced entry in a session request. UnitAmount is in the
// currency's minor unit (cents for usd).
type LineItem struct {
	Name        string
	Description string
	ImageURL    string
	UnitAmount  int64
	Quantity    int
}

// SessionRequest is the provider-facing session-creation payload.
type SessionRequest struct {
	Currency   string
	Mode       string
	LineItems  []LineItem
	Metadata   map[string]string
	SuccessURL string
	CancelURL  string
}

// Session is the provider's response: an opaque session identifier and the
// customer-facing redirect URL, both returned verbatim.
type Session struct {
	ID  string
	URL string
}

// SessionProvider creates hosted checkout sessions with an external payment
// service. Implementations must apply a bounded timeout; an unreachable or
// rejecting provider is a checkout failure.
type SessionProvider interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
}

// SessionOptions carries the per-deployment session parameters.
type SessionOptions struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}
