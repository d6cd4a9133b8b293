package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/leadbothq/leadbot-widget/internal/session"
)

// consoleProjector renders the session's instructions as terminal lines.
// It can rewrite the most recent line in place (the thinking placeholder
// case); older entries get their update printed as a fresh line.
type consoleProjector struct {
	mu      sync.Mutex
	out     io.Writer
	last    session.Handle
	senders map[session.Handle]session.Sender
}

func newConsoleProjector(out io.Writer) *consoleProjector {
	return &consoleProjector{out: out, senders: make(map[session.Handle]session.Sender)}
}

func (p *consoleProjector) AppendMessage(text string, sender session.Sender) session.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	handle := session.Handle(uuid.New().String())
	p.senders[handle] = sender
	p.last = handle
	fmt.Fprintf(p.out, "%s %s\n", prefix(sender), text)
	return handle
}

func (p *consoleProjector) UpdateMessage(handle session.Handle, text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	sender := p.senders[handle]
	if handle == p.last {
		// Move up one line and redraw it.
		fmt.Fprintf(p.out, "\033[A\033[2K%s %s\n", prefix(sender), text)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", prefix(sender), text)
}

func (p *consoleProjector) RevealInfoForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, "--- Almost done! Please share your contact details. ---")
}

func (p *consoleProjector) HideInfoForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, "--- Contact details received. ---")
}

func (p *consoleProjector) SetInputEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !enabled {
		fmt.Fprintln(p.out, "(free-text input disabled)")
	} else {
		fmt.Fprintln(p.out, "(free-text input enabled)")
	}
}

func (p *consoleProjector) ShowFatalBanner(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, "!! %s\n", text)
}

func prefix(sender session.Sender) string {
	if sender == session.SenderUser {
		return "you:"
	}
	return "bot:"
}
