package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/leadbothq/leadbot-widget/internal/leads"
)

func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := New(Config{BaseURL: server.URL, Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewClientDefaults(t *testing.T) {
	client, err := New(Config{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.baseURL != DefaultBaseURL {
		t.Fatalf("expected default base url, got %s", client.baseURL)
	}
	if client.httpClient == nil || client.httpClient.Timeout != defaultTimeout {
		t.Fatalf("expected default timeout")
	}
	if client.logger == nil {
		t.Fatalf("expected default logger")
	}
}

func TestNewClientTrimsBaseURL(t *testing.T) {
	client, err := New(Config{BaseURL: "http://localhost:5000/"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if client.baseURL != "http://localhost:5000" {
		t.Fatalf("expected trailing slash trimmed, got %s", client.baseURL)
	}
}

func TestFetchStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/bot_status" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if got := r.URL.Query().Get("tenant_id"); got != "tenant-1" {
			t.Fatalf("unexpected tenant_id %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"active"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	status, err := client.FetchStatus(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("fetch status: %v", err)
	}
	if !status.Active() {
		t.Fatalf("expected active, got %#v", status)
	}
}

func TestFetchStatusInactiveMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"inactive","message":"Subscription expired"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	status, err := client.FetchStatus(context.Background(), "tenant-1")
	if err != nil {
		t.Fatalf("fetch status: %v", err)
	}
	if status.Active() || status.Message != "Subscription expired" {
		t.Fatalf("unexpected status: %#v", status)
	}
}

func TestSendChatMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat_message" || r.Method != http.MethodPost {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		var req ChatMessageRequest
		if err := json.Unmarshal(body, &req); err != nil {
			t.Fatalf("unmarshal body: %v", err)
		}
		if req.TenantID != "tenant-1" || req.Message != "what is pricing?" {
			t.Fatalf("unexpected request: %#v", req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"Great question!","next_step":"collect_info"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	turn, err := client.SendChatMessage(context.Background(), "tenant-1", "what is pricing?")
	if err != nil {
		t.Fatalf("send chat message: %v", err)
	}
	if turn.Reply != "Great question!" || !turn.AdvanceToInfoCollection() {
		t.Fatalf("unexpected turn: %#v", turn)
	}
}

func TestSendChatMessagePlainReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"Hello there"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	turn, err := client.SendChatMessage(context.Background(), "tenant-1", "hi")
	if err != nil {
		t.Fatalf("send chat message: %v", err)
	}
	if turn.AdvanceToInfoCollection() {
		t.Fatalf("expected no info collection signal: %#v", turn)
	}
}

func TestSubmitLead(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/capture_lead" || r.Method != http.MethodPost {
			t.Fatalf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req LeadCaptureRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if req.Name != "A" || req.Email != "a@x.com" || req.Phone != "" {
			t.Fatalf("unexpected lead: %#v", req)
		}
		if req.Message != LeadCaptureNote {
			t.Fatalf("expected fixed note, got %q", req.Message)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"success","message":"Thanks A!"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	res, err := client.SubmitLead(context.Background(), "tenant-1", leads.UserInfo{Name: "A", Email: "a@x.com"})
	if err != nil {
		t.Fatalf("submit lead: %v", err)
	}
	if res.Message != "Thanks A!" {
		t.Fatalf("unexpected response: %#v", res)
	}
}

func TestInvokeHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Missing required fields"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.SendChatMessage(context.Background(), "", "")
	if err == nil {
		t.Fatalf("expected error on 400")
	}
	te, ok := AsError(err)
	if !ok {
		t.Fatalf("expected transport.Error, got %T", err)
	}
	if te.Op != "chat_message" {
		t.Fatalf("unexpected op %q", te.Op)
	}
}

func TestInvokeBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.FetchStatus(context.Background(), "tenant-1")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestInvokeConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse all connections

	client := newTestClient(t, server)
	_, err := client.FetchStatus(context.Background(), "tenant-1")
	if err == nil {
		t.Fatalf("expected network error")
	}
	if _, ok := AsError(err); !ok {
		t.Fatalf("expected transport.Error, got %T", err)
	}
}

func TestInvokeContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Drain the body so the server detects the client disconnect and
		// cancels the request context; otherwise Close hangs forever.
		io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := newTestClient(t, server)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := client.SendChatMessage(ctx, "tenant-1", "hi")
	if err == nil {
		t.Fatalf("expected context error")
	}
}
