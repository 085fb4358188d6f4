package orgs

import (
	"sync"

	"github.com/taskboard-io/taskboard-libraries/auth"
)

// Cache is the shared registry of organizations keyed by remote id.
// Collections hold references into it rather than private copies, so a
// payload refreshed through one collection is visible to every holder.
type Cache struct {
	mu       sync.Mutex
	entities map[string]*Organization
}

// NewCache ...
func NewCache() *Cache {
	return &Cache{
		entities: make(map[string]*Organization),
	}
}

// Resolve returns the canonical entity for the payload's remote id, creating
// one if absent. The fresh payload is always reassigned, so repeated fetches
// refresh the cached entity in place.
func (c *Cache) Resolve(data OrganizationData, a *auth.Context) *Organization {
	c.mu.Lock()
	defer c.mu.Unlock()

	if org, ok := c.entities[data.ID]; ok {
		org.setData(data)
		return org
	}

	org := NewOrganization(data, a)
	c.entities[data.ID] = org
	return org
}

// Get returns the cached entity for id, or nil and false on miss
func (c *Cache) Get(id string) (*Organization, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	org, ok := c.entities[id]
	return org, ok
}

// Len ...
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entities)
}
