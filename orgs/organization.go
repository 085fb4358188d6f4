package orgs

import (
	"github.com/taskboard-io/taskboard-libraries/auth"
)

// Organization wraps a remote payload with the auth context it was fetched
// under. Instances fetched through a Cache are canonical: every collection
// resolving the same remote id observes the same *Organization.
type Organization struct {
	data OrganizationData
	auth *auth.Context
}

// NewOrganization ...
func NewOrganization(data OrganizationData, a *auth.Context) *Organization {
	return &Organization{
		data: data,
		auth: a,
	}
}

// ID ...
func (o *Organization) ID() string {
	return o.data.ID
}

// Name ...
func (o *Organization) Name() string {
	return o.data.Name
}

// DisplayName ...
func (o *Organization) DisplayName() string {
	return o.data.DisplayName
}

// Description ...
func (o *Organization) Description() string {
	return o.data.Desc
}

// URL ...
func (o *Organization) URL() string {
	return o.data.URL
}

// setData swaps the backing payload in place so stale entities are refreshed
// without losing identity
func (o *Organization) setData(data OrganizationData) {
	o.data = data
}
