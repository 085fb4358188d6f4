package orgs

import (
	"strconv"
	"time"

	"github.com/taskboard-io/taskboard-libraries/auth"
	"github.com/taskboard-io/taskboard-libraries/configuration"
	"github.com/taskboard-io/taskboard-libraries/http"
	"github.com/taskboard-io/taskboard-libraries/rest"
)

const defaultTimeout = time.Minute

// Client wires the organization collections for one member
type Client struct {
	ownerID    string
	auth       *auth.Context
	restClient RestProvider
	cache      *Cache
	pageLimit  int
}

// NewClient consumes a configuration provider and the owner member id,
// building the transport and request-execution services underneath
func NewClient(cfg *configuration.Configuration, ownerID string) (*Client, error) {
	baseURL, err := cfg.Get(configuration.BaseURL)
	if err != nil {
		return nil, err
	}
	apiKey, err := cfg.Get(configuration.APIKey)
	if err != nil {
		return nil, err
	}
	// token is optional: key-only contexts can read public organizations
	token, _ := cfg.Get(configuration.Token)

	timeout := defaultTimeout
	if v, err := cfg.Get(configuration.TimeoutSeconds); err == nil {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			timeout = time.Duration(secs) * time.Second
		}
	}

	pageLimit := 0
	if v, err := cfg.Get(configuration.PageLimit); err == nil {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			pageLimit = n
		}
	}

	httpClientProvider := http.NewClientProvider(timeout)
	restClientProvider := rest.NewClientProvider(baseURL, httpClientProvider)

	return &Client{
		ownerID:    ownerID,
		auth:       auth.NewContext(apiKey, token),
		restClient: restClientProvider,
		cache:      NewCache(),
		pageLimit:  pageLimit,
	}, nil
}

// Organizations returns a read-only collection of the owner's organizations
func (c *Client) Organizations() *Collection {
	col := NewCollection(c.ownerID, c.auth, c.restClient, c.cache)
	if c.pageLimit > 0 {
		col.SetLimit(c.pageLimit)
	}
	return col
}

// WritableOrganizations returns a collection that can also create
// organizations
func (c *Client) WritableOrganizations() *WritableCollection {
	col := NewWritableCollection(c.ownerID, c.auth, c.restClient, c.cache)
	if c.pageLimit > 0 {
		col.SetLimit(c.pageLimit)
	}
	return col
}
