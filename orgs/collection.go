package orgs

import (
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/taskboard-io/taskboard-libraries/auth"
	"github.com/taskboard-io/taskboard-libraries/endpoint"
)

// RestProvider executes a resolved endpoint and decodes the response into out
type RestProvider interface {
	Execute(a *auth.Context, ep endpoint.Endpoint, params map[string]string, body []byte, out interface{}) error
}

// Params are the optional query parameters a collection sends with every
// refresh. They persist until the collection is discarded or cloned.
type Params struct {
	Filter Filter
	Limit  int
}

func (p Params) query() map[string]string {
	q := make(map[string]string)
	if p.Filter != "" {
		q["filter"] = p.Filter.String()
	}
	if p.Limit > 0 {
		q["limit"] = strconv.Itoa(p.Limit)
	}
	return q
}

// Collection is the read-only view of the organizations visible to one owner.
// The ordered items reflect exactly the last successful refresh. A single
// mutex serialises refreshes, parameter changes and reads; instances must not
// be copied.
type Collection struct {
	ownerID    string
	auth       *auth.Context
	restClient RestProvider
	cache      *Cache

	mu     sync.Mutex
	params Params
	items  []*Organization
	stale  bool

	log *logrus.Entry
}

// NewCollection builds a collection bound to the owner id; it starts stale
// and refreshes on first read
func NewCollection(ownerID string, a *auth.Context, restClient RestProvider, cache *Cache) *Collection {
	return &Collection{
		ownerID:    ownerID,
		auth:       a,
		restClient: restClient,
		cache:      cache,
		stale:      true,
		log:        logrus.WithField("owner", ownerID),
	}
}

// OwnerID ...
func (c *Collection) OwnerID() string {
	return c.ownerID
}

// SetFilter stores the filter sent with subsequent refreshes, overwriting any
// previous one. No network call is made; the collection is marked stale so
// the next read observes the new filter.
func (c *Collection) SetFilter(f Filter) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.params.Filter = f
	c.stale = true
}

// SetLimit caps the number of organizations a refresh requests
func (c *Collection) SetLimit(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.params.Limit = n
	c.stale = true
}

// Refresh fetches the owner's organizations and replaces the ordered items
// with cache-resolved entities in response order. On failure the prior items
// are left untouched and the error propagates unchanged.
func (c *Collection) Refresh() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.refreshLocked()
}

func (c *Collection) refreshLocked() error {
	ep, err := endpoint.Build(endpoint.MemberReadOrganizations, map[string]string{"_id": c.ownerID})
	if err != nil {
		return err
	}

	var payloads []OrganizationData
	if err := c.restClient.Execute(c.auth, ep, c.params.query(), nil, &payloads); err != nil {
		c.log.Error("organizations refresh failed: ", err)
		return err
	}

	items := make([]*Organization, 0, len(payloads))
	for _, data := range payloads {
		items = append(items, c.cache.Resolve(data, c.auth))
	}

	c.items = items
	c.stale = false
	return nil
}

// Items returns the ordered organizations, refreshing first when stale
func (c *Collection) Items() ([]*Organization, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stale {
		if err := c.refreshLocked(); err != nil {
			return nil, err
		}
	}

	items := make([]*Organization, len(c.items))
	copy(items, c.items)
	return items, nil
}

// GetByKey returns the first organization whose id, name or display name
// equals key. Matching is case-sensitive; a miss yields nil without error.
func (c *Collection) GetByKey(key string) (*Organization, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stale {
		if err := c.refreshLocked(); err != nil {
			return nil, err
		}
	}

	for _, org := range c.items {
		if org.ID() == key || org.Name() == key || org.DisplayName() == key {
			return org, nil
		}
	}
	return nil, nil
}

// Clone builds a collection sharing the owner id, auth context and entity
// cache but with its own copy of the parameters, so the clone's filter can
// diverge from the source's. The clone starts stale.
func (c *Collection) Clone() *Collection {
	c.mu.Lock()
	defer c.mu.Unlock()

	clone := NewCollection(c.ownerID, c.auth, c.restClient, c.cache)
	clone.params = c.params
	return clone
}
