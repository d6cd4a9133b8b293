package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/leadbothq/leadbot-widget/internal/leads"
	"github.com/leadbothq/leadbot-widget/internal/observability/metrics"
	"github.com/leadbothq/leadbot-widget/internal/transport"
	"github.com/leadbothq/leadbot-widget/pkg/logging"
)

// Fixed user-visible strings. Failures always surface as text in the
// transcript, never as a silent no-op.
const (
	GreetingText            = "Hello! I'm your sales assistant. How can I help you today?"
	ThinkingText            = "Thinking..."
	ConnectionErrorText     = "Connection issue. Please try again."
	SubmittingText          = "Submitting your information..."
	SubmitFailedText        = "Failed to submit information. Please try again."
	DefaultConfirmationText = "Thank you! We'll contact you shortly."
)

// ErrNotCollectingInfo is returned when the contact form is submitted
// outside the collecting_info stage.
var ErrNotCollectingInfo = errors.New("session: info form is not open")

// Transport is the slice of the backend client the session consumes.
type Transport interface {
	SendChatMessage(ctx context.Context, tenantID, text string) (*transport.ChatTurnResponse, error)
	SubmitLead(ctx context.Context, tenantID string, info leads.UserInfo) (*transport.LeadSubmitResponse, error)
}

// Config wires a Session's collaborators.
type Config struct {
	TenantID  string
	Transport Transport
	Projector Projector
	Logger    *logging.Logger
	Metrics   *metrics.WidgetMetrics
}

type entry struct {
	msg    Message
	handle Handle
}

// Session is the conversation state machine. It owns the transcript and
// the captured contact details, consumes transport results to advance the
// stage, and announces every observable effect through the projector.
// A mutex serializes transcript and stage mutation; network calls run
// outside the lock, so sends may overlap while appends still happen in
// user-action order.
type Session struct {
	tenantID  string
	transport Transport
	projector Projector
	logger    *logging.Logger
	metrics   *metrics.WidgetMetrics

	mu           sync.Mutex
	stage        Stage
	entries      []*entry
	byHandle     map[Handle]*entry
	userInfo     leads.UserInfo
	infoCaptured bool
}

// New constructs a session in the welcomed stage and renders the greeting.
// No network call is made.
func New(cfg Config) *Session {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	s := &Session{
		tenantID:  cfg.TenantID,
		transport: cfg.Transport,
		projector: cfg.Projector,
		logger:    logger,
		metrics:   cfg.Metrics,
		stage:     StageWelcomed,
		byHandle:  make(map[Handle]*entry),
	}
	s.mu.Lock()
	s.appendLocked(GreetingText, SenderBot)
	s.mu.Unlock()
	return s
}

// Send delivers one user message. Whitespace-only input is a strict
// no-op: nothing is appended and no request is issued. Otherwise the user
// entry and a thinking placeholder are appended immediately, the backend
// is called once, and the placeholder is rewritten exactly once with the
// reply or with the fixed connection-error text. A transport failure is
// returned to the caller after being surfaced in the transcript; the
// stage does not change on failure.
func (s *Session) Send(ctx context.Context, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	s.mu.Lock()
	s.appendLocked(trimmed, SenderUser)
	placeholder := s.appendLocked(ThinkingText, SenderBot)
	s.mu.Unlock()

	turn, err := s.transport.SendChatMessage(ctx, s.tenantID, trimmed)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.rewriteLocked(placeholder, ConnectionErrorText)
		return err
	}

	s.rewriteLocked(placeholder, turn.Reply)
	if turn.AdvanceToInfoCollection() {
		s.enterCollectingLocked()
	} else if s.stage != StageCollectingInfo {
		s.stage = StageChatting
	}
	return nil
}

// SubmitInfo validates and submits the contact form. Validation failure
// returns the field error without a network call; the form stays open.
// A transport failure appends the fixed failure text and leaves the stage
// at collecting_info so the visitor can resubmit. Success appends the
// confirmation, hides the form, re-enables input and completes the
// collection sub-flow.
func (s *Session) SubmitInfo(ctx context.Context, name, email, phone string) error {
	info, err := leads.Validate(name, email, phone)
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.stage != StageCollectingInfo {
		s.mu.Unlock()
		return ErrNotCollectingInfo
	}
	s.userInfo = info
	s.appendLocked(SubmittingText, SenderBot)
	s.mu.Unlock()

	res, err := s.transport.SubmitLead(ctx, s.tenantID, info)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.appendLocked(SubmitFailedText, SenderBot)
		return err
	}

	confirmation := res.Message
	if confirmation == "" {
		confirmation = DefaultConfirmationText
	}
	s.appendLocked(confirmation, SenderBot)
	s.projector.HideInfoForm()
	s.projector.SetInputEnabled(true)
	s.stage = StageCompleted
	s.infoCaptured = true
	s.metrics.ObserveLeadSubmitted()
	s.logger.Info("lead captured", "tenant_id", s.tenantID, "name", info.Name)
	return nil
}

// Stage returns the current conversation stage.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Messages returns a snapshot of the transcript in display order.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.msg
	}
	return out
}

// UserInfo returns the captured contact details, zero until a submission
// passes validation.
func (s *Session) UserInfo() leads.UserInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userInfo
}

// InfoCaptured reports whether a lead submission has succeeded.
func (s *Session) InfoCaptured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.infoCaptured
}

func (s *Session) appendLocked(text string, sender Sender) Handle {
	handle := s.projector.AppendMessage(text, sender)
	e := &entry{
		msg:    Message{Text: text, Sender: sender, CreatedAt: time.Now().UTC()},
		handle: handle,
	}
	s.entries = append(s.entries, e)
	s.byHandle[handle] = e
	return handle
}

func (s *Session) rewriteLocked(handle Handle, text string) {
	if e, ok := s.byHandle[handle]; ok {
		e.msg.Text = text
	}
	s.projector.UpdateMessage(handle, text)
}

// enterCollectingLocked reveals the form and disables input exactly once
// per entry into collecting_info; repeated collect_info replies while
// already collecting are idempotent.
func (s *Session) enterCollectingLocked() {
	if s.stage == StageCollectingInfo {
		return
	}
	s.projector.RevealInfoForm()
	s.projector.SetInputEnabled(false)
	s.stage = StageCollectingInfo
}
