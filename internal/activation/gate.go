package activation

import (
	"context"

	"github.com/leadbothq/leadbot-widget/internal/transport"
	"github.com/leadbothq/leadbot-widget/pkg/logging"
)

// Fallback banner texts when the backend gives no message of its own.
const (
	ServiceUnavailableText = "Service unavailable"
	InactiveDefaultText    = "Chat service unavailable"
)

// StatusResult is the gate's decision. It is consumed once and not stored.
type StatusResult struct {
	Active  bool
	Message string
}

// StatusFetcher is the slice of the transport client the gate consumes.
type StatusFetcher interface {
	FetchStatus(ctx context.Context, tenantID string) (*transport.StatusResponse, error)
}

// Gate performs the one-shot tenant activation check before a session may
// exist. It is not retried automatically.
type Gate struct {
	fetcher StatusFetcher
	logger  *logging.Logger
}

// New creates an activation gate.
func New(fetcher StatusFetcher, logger *logging.Logger) *Gate {
	if logger == nil {
		logger = logging.Default()
	}
	return &Gate{fetcher: fetcher, logger: logger}
}

// Check queries the status endpoint once. It never returns an error:
// a transport or parse failure maps to an inactive result so activation
// can never crash the host page.
func (g *Gate) Check(ctx context.Context, tenantID string) StatusResult {
	status, err := g.fetcher.FetchStatus(ctx, tenantID)
	if err != nil {
		g.logger.Warn("activation check failed", "tenant_id", tenantID, "error", err)
		return StatusResult{Active: false, Message: ServiceUnavailableText}
	}
	if !status.Active() {
		msg := status.Message
		if msg == "" {
			msg = InactiveDefaultText
		}
		return StatusResult{Active: false, Message: msg}
	}
	return StatusResult{Active: true}
}
