package widget

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/leadbothq/leadbot-widget/internal/activation"
	"github.com/leadbothq/leadbot-widget/internal/leads"
	"github.com/leadbothq/leadbot-widget/internal/observability/metrics"
	"github.com/leadbothq/leadbot-widget/internal/session"
	"github.com/leadbothq/leadbot-widget/internal/transport"
	"github.com/leadbothq/leadbot-widget/pkg/logging"
)

// ErrNoTenant means the embedding surface supplied no tenant id. The
// widget never activates and makes no network calls at all.
var ErrNoTenant = errors.New("widget: no tenant id supplied")

// ActivationError means the one-shot status check failed or reported the
// tenant inactive. It is fatal to the whole session: the caller gets a
// static banner and nothing interactive.
type ActivationError struct {
	Message string
}

func (e *ActivationError) Error() string {
	return fmt.Sprintf("widget: activation failed: %s", e.Message)
}

// Config carries the deploy-time knobs for a widget instance. Host pages
// cannot reach any of these; the base URL in particular is fixed at
// deploy time.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
	Metrics    *metrics.WidgetMetrics
}

// SessionHandle is the one live conversation a successful bootstrap
// yields. There is no hidden singleton: callers own the handle and there
// is at most one per bootstrap call.
type SessionHandle struct {
	tenantID string
	session  *session.Session
}

// TenantID returns the tenant this handle talks to.
func (h *SessionHandle) TenantID() string { return h.tenantID }

// Send forwards one user message to the conversation.
func (h *SessionHandle) Send(ctx context.Context, text string) error {
	return h.session.Send(ctx, text)
}

// SubmitInfo forwards a contact-form submission.
func (h *SessionHandle) SubmitInfo(ctx context.Context, name, email, phone string) error {
	return h.session.SubmitInfo(ctx, name, email, phone)
}

// Stage returns the current conversation stage.
func (h *SessionHandle) Stage() session.Stage { return h.session.Stage() }

// Messages returns a transcript snapshot.
func (h *SessionHandle) Messages() []session.Message { return h.session.Messages() }

// UserInfo returns the captured contact details.
func (h *SessionHandle) UserInfo() leads.UserInfo { return h.session.UserInfo() }

// InfoCaptured reports whether a lead has been submitted successfully.
func (h *SessionHandle) InfoCaptured() bool { return h.session.InfoCaptured() }

// Bootstrap is the explicit entry point for one widget instance: it runs
// the activation gate and, only when the tenant is active, constructs the
// conversation session. On an inactive or failed check it renders a fatal
// banner through the projector and returns a typed error — nothing
// interactive is ever attached for an inactive tenant.
func Bootstrap(ctx context.Context, tenantID string, cfg Config, projector session.Projector) (*SessionHandle, error) {
	tenantID = strings.TrimSpace(tenantID)
	if tenantID == "" {
		return nil, ErrNoTenant
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	client, err := transport.New(transport.Config{
		BaseURL:    cfg.BaseURL,
		Timeout:    cfg.Timeout,
		HTTPClient: cfg.HTTPClient,
		Logger:     logger,
		Metrics:    cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}

	gate := activation.New(client, logger)
	status := gate.Check(ctx, tenantID)
	if !status.Active {
		logger.Info("widget inactive", "tenant_id", tenantID, "message", status.Message)
		projector.ShowFatalBanner(status.Message)
		return nil, &ActivationError{Message: status.Message}
	}

	sess := session.New(session.Config{
		TenantID:  tenantID,
		Transport: client,
		Projector: projector,
		Logger:    logger,
		Metrics:   cfg.Metrics,
	})
	logger.Info("widget activated", "tenant_id", tenantID)
	return &SessionHandle{tenantID: tenantID, session: sess}, nil
}
