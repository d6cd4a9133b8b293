package session

import "time"

// Sender identifies who produced a transcript entry.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one transcript entry. The transcript is append-only and its
// order is the display order.
type Message struct {
	Text      string    `json:"text"`
	Sender    Sender    `json:"sender"`
	CreatedAt time.Time `json:"created_at"`
}

// Handle is an opaque reference to a rendered transcript entry, issued by
// the projector on append and used to rewrite that entry in place. Each
// in-flight request holds its own handle, so replies resolving out of
// order never touch other entries.
type Handle string

// Projector is the narrow rendering contract the session drives. Every
// call is a fire-and-forget instruction; the session never observes a
// return value beyond the append handle. Implementations decide how the
// instructions are drawn.
type Projector interface {
	AppendMessage(text string, sender Sender) Handle
	UpdateMessage(handle Handle, text string)
	RevealInfoForm()
	HideInfoForm()
	SetInputEnabled(enabled bool)
	ShowFatalBanner(text string)
}
