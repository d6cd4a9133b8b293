package devserver_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadbothq/leadbot-widget/internal/devserver"
	"github.com/leadbothq/leadbot-widget/internal/session"
	"github.com/leadbothq/leadbot-widget/internal/widget"
	"github.com/leadbothq/leadbot-widget/pkg/logging"
)

type nullProjector struct {
	next    int
	reveals int
	hides   int
	banners []string
}

func (p *nullProjector) AppendMessage(_ string, _ session.Sender) session.Handle {
	p.next++
	return session.Handle(fmt.Sprintf("m%d", p.next))
}
func (p *nullProjector) UpdateMessage(_ session.Handle, _ string) {}
func (p *nullProjector) RevealInfoForm()                          { p.reveals++ }
func (p *nullProjector) HideInfoForm()                            { p.hides++ }
func (p *nullProjector) SetInputEnabled(_ bool)                   {}
func (p *nullProjector) ShowFatalBanner(text string)              { p.banners = append(p.banners, text) }

// Full widget-against-devserver walk: activation, chat, intent escalation,
// lead capture.
func TestWidgetAgainstDevserver(t *testing.T) {
	registry := devserver.NewTenantRegistry(map[string]devserver.Tenant{
		"acme": {Active: true, BusinessName: "Acme Corp"},
	})
	store := devserver.NewLeadStore()
	server := httptest.NewServer(devserver.NewRouter(devserver.NewHandler(registry, store, logging.New("error"))))
	defer server.Close()

	cfg := widget.Config{BaseURL: server.URL, Logger: logging.New("error")}
	ctx := context.Background()

	p := &nullProjector{}
	handle, err := widget.Bootstrap(ctx, "acme", cfg, p)
	require.NoError(t, err)

	require.NoError(t, handle.Send(ctx, "hello there"))
	assert.Equal(t, session.StageChatting, handle.Stage())

	require.NoError(t, handle.Send(ctx, "I am ready to buy"))
	assert.Equal(t, session.StageCollectingInfo, handle.Stage())
	assert.Equal(t, 1, p.reveals)

	require.NoError(t, handle.SubmitInfo(ctx, "Ada", "ada@example.com", "555-0100"))
	assert.Equal(t, session.StageCompleted, handle.Stage())
	assert.True(t, handle.InfoCaptured())
	assert.Equal(t, 1, p.hides)

	stored := store.ListByTenant(ctx, "acme")
	require.Len(t, stored, 1)
	assert.Equal(t, "Ada", stored[0].Name)
	assert.Equal(t, "ada@example.com", stored[0].Email)
	assert.Positive(t, stored[0].Score)
}

func TestWidgetInactiveAgainstDevserver(t *testing.T) {
	registry := devserver.NewTenantRegistry(map[string]devserver.Tenant{
		"lapsed": {Active: false},
	})
	server := httptest.NewServer(devserver.NewRouter(devserver.NewHandler(registry, devserver.NewLeadStore(), logging.New("error"))))
	defer server.Close()

	p := &nullProjector{}
	handle, err := widget.Bootstrap(context.Background(), "lapsed", widget.Config{BaseURL: server.URL, Logger: logging.New("error")}, p)

	require.Error(t, err)
	assert.Nil(t, handle)
	assert.Equal(t, []string{"Subscription expired"}, p.banners)
}
