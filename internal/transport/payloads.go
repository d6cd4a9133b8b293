package transport

// Wire shapes for the three widget endpoints.

// StatusActive is the only bot_status value that activates the widget.
const StatusActive = "active"

// NextStepCollectInfo signals that the widget should reveal the contact form.
const NextStepCollectInfo = "collect_info"

// LeadCaptureNote is the fixed descriptive text sent with every captured lead.
const LeadCaptureNote = "User provided contact information"

// StatusResponse is the bot_status reply.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Active reports whether the tenant's bot is enabled. Any status other
// than "active" counts as inactive.
func (r *StatusResponse) Active() bool {
	return r != nil && r.Status == StatusActive
}

// ChatMessageRequest is the chat_message request body.
type ChatMessageRequest struct {
	TenantID string `json:"tenant_id"`
	Message  string `json:"message"`
}

// ChatTurnResponse is the chat_message reply.
type ChatTurnResponse struct {
	Reply    string `json:"reply"`
	NextStep string `json:"next_step,omitempty"`
}

// AdvanceToInfoCollection reports whether the backend asked for the
// contact form. next_step == "collect_info" is the sole signal.
func (r *ChatTurnResponse) AdvanceToInfoCollection() bool {
	return r != nil && r.NextStep == NextStepCollectInfo
}

// LeadCaptureRequest is the capture_lead request body.
type LeadCaptureRequest struct {
	TenantID string `json:"tenant_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}

// LeadSubmitResponse is the capture_lead reply. Message may be empty;
// callers fall back to a default confirmation.
type LeadSubmitResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}
