package devserver

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Tenant is one registered customer of the stub backend.
type Tenant struct {
	Active       bool   `json:"active"`
	BusinessName string `json:"business_name,omitempty"`
}

// TenantRegistry holds the stub backend's tenant roster. The production
// service keeps this elsewhere; the devserver loads it from a small JSON
// file or seeds it in memory for tests.
type TenantRegistry struct {
	mu      sync.RWMutex
	tenants map[string]Tenant
}

// NewTenantRegistry creates a registry seeded with the given tenants.
func NewTenantRegistry(seed map[string]Tenant) *TenantRegistry {
	tenants := make(map[string]Tenant, len(seed))
	for id, t := range seed {
		tenants[id] = t
	}
	return &TenantRegistry{tenants: tenants}
}

// LoadTenantRegistry reads a registry from a JSON file shaped
// {"tenants": {"<id>": {"active": true, ...}}}.
func LoadTenantRegistry(path string) (*TenantRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("devserver: read tenants file: %w", err)
	}
	var doc struct {
		Tenants map[string]Tenant `json:"tenants"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("devserver: parse tenants file: %w", err)
	}
	return NewTenantRegistry(doc.Tenants), nil
}

// Lookup returns the tenant and whether it is registered.
func (r *TenantRegistry) Lookup(tenantID string) (Tenant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tenants[tenantID]
	return t, ok
}

// Put registers or replaces a tenant.
func (r *TenantRegistry) Put(tenantID string, t Tenant) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tenants[tenantID] = t
}
