package orgs

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/taskboard-io/taskboard-libraries/auth"
	"github.com/taskboard-io/taskboard-libraries/endpoint"
	"github.com/taskboard-io/taskboard-libraries/validation"
)

// WritableCollection extends the read-only collection with creation. The
// write endpoint is scoped by the auth context, not the owner id.
type WritableCollection struct {
	*Collection
	nameRule validation.Rule
}

// NewWritableCollection ...
func NewWritableCollection(ownerID string, a *auth.Context, restClient RestProvider, cache *Cache) *WritableCollection {
	return &WritableCollection{
		Collection: NewCollection(ownerID, a, restClient, cache),
		nameRule:   validation.NonEmpty{},
	}
}

// Add creates a new organization with the given name and returns it wrapped
// as a fresh entity. The collection's own items are not touched; a later
// refresh picks the new organization up from the server.
func (w *WritableCollection) Add(name string) (*Organization, error) {
	if verr := w.nameRule.Check(name); verr != nil {
		return nil, verr
	}

	body, err := jsoniter.Marshal(OrganizationData{Name: name})
	if err != nil {
		return nil, err
	}

	ep, err := endpoint.Build(endpoint.MemberWriteCreateOrganization, nil)
	if err != nil {
		return nil, err
	}

	var created OrganizationData
	if err := w.restClient.Execute(w.auth, ep, nil, body, &created); err != nil {
		w.log.Error("create organization failed: ", err)
		return nil, err
	}

	return NewOrganization(created, w.auth), nil
}
