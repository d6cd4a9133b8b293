package devserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/leadbothq/leadbot-widget/internal/tenancy"
	"github.com/leadbothq/leadbot-widget/internal/transport"
	"github.com/leadbothq/leadbot-widget/pkg/logging"
)

// Canned responses mirroring the production service's visible behavior.
const (
	unavailableReply      = "Our chat service is currently unavailable. Please contact us directly."
	defaultReply          = "Thanks for your message! How can I assist you today?"
	collectInfoReply      = "Great! To help you quickly, could you please share your name and email address?"
	captureSuccessMessage = "We'll contact you shortly!"

	nextStepContinue = "continue"
)

// Handler serves the three widget endpoints against in-memory state. It
// is a development and test stand-in for the real backend, not the
// backend itself.
type Handler struct {
	registry *TenantRegistry
	store    *LeadStore
	logger   *logging.Logger
}

// NewHandler creates a devserver handler.
func NewHandler(registry *TenantRegistry, store *LeadStore, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{registry: registry, store: store, logger: logger}
}

// Health responds to liveness probes.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BotStatus implements GET /bot_status. The tenant id arrives through the
// tenancy middleware.
func (h *Handler) BotStatus(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := tenancy.TenantIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "Missing tenant_id")
		return
	}

	tenant, registered := h.registry.Lookup(tenantID)
	switch {
	case !registered:
		writeJSON(w, http.StatusOK, transport.StatusResponse{Status: "inactive", Message: "Tenant not registered"})
	case !tenant.Active:
		writeJSON(w, http.StatusOK, transport.StatusResponse{Status: "inactive", Message: "Subscription expired"})
	default:
		writeJSON(w, http.StatusOK, transport.StatusResponse{Status: transport.StatusActive})
	}
}

// ChatMessage implements POST /chat_message with canned replies: a
// high-intent message flips the conversation into info collection.
func (h *Handler) ChatMessage(w http.ResponseWriter, r *http.Request) {
	var req transport.ChatMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.TenantID == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	tenant, registered := h.registry.Lookup(req.TenantID)
	if !registered || !tenant.Active {
		writeJSON(w, http.StatusOK, transport.ChatTurnResponse{Reply: unavailableReply})
		return
	}

	resp := transport.ChatTurnResponse{Reply: defaultReply, NextStep: nextStepContinue}
	if detectHighIntent(req.Message) {
		resp.Reply = collectInfoReply
		resp.NextStep = transport.NextStepCollectInfo
	}
	h.logger.Debug("chat turn", "tenant_id", req.TenantID, "next_step", resp.NextStep)
	writeJSON(w, http.StatusOK, resp)
}

// CaptureLead implements POST /capture_lead: scores and stores the lead.
func (h *Handler) CaptureLead(w http.ResponseWriter, r *http.Request) {
	var req transport.LeadCaptureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)
	if req.TenantID == "" || req.Name == "" || req.Email == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	tenant, registered := h.registry.Lookup(req.TenantID)
	if !registered || !tenant.Active {
		writeError(w, http.StatusBadRequest, "Tenant not active")
		return
	}

	ctx := tenancy.WithTenantID(r.Context(), req.TenantID)
	lead := h.store.Create(ctx, Lead{
		TenantID: req.TenantID,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		Score:    calculateLeadScore(req.Message, req.Name, req.Email, req.Phone),
	})
	h.logger.Info("lead stored", "tenant_id", req.TenantID, "lead_id", lead.ID, "score", lead.Score)

	writeJSON(w, http.StatusOK, transport.LeadSubmitResponse{Status: "success", Message: captureSuccessMessage})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
