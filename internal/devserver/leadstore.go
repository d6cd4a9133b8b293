package devserver

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Lead is a captured contact record with its intent score.
type Lead struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

// LeadStore is the devserver's in-memory lead repository.
type LeadStore struct {
	mu    sync.RWMutex
	leads map[string]*Lead
	order []string
}

// NewLeadStore creates an empty lead store.
func NewLeadStore() *LeadStore {
	return &LeadStore{leads: make(map[string]*Lead)}
}

// Create stores a lead and assigns it an id and timestamp.
func (s *LeadStore) Create(_ context.Context, lead Lead) *Lead {
	lead.ID = uuid.New().String()
	lead.CreatedAt = time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := lead
	s.leads[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	return &stored
}

// ListByTenant returns a tenant's leads in insertion order.
func (s *LeadStore) ListByTenant(_ context.Context, tenantID string) []*Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Lead
	for _, id := range s.order {
		if lead := s.leads[id]; lead.TenantID == tenantID {
			out = append(out, lead)
		}
	}
	return out
}
