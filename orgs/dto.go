package orgs

// OrganizationData is the raw payload of a remote organization, distinct from
// the cached Organization wrapper built around it
type OrganizationData struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Desc        string `json:"desc,omitempty"`
	URL         string `json:"url,omitempty"`
	Website     string `json:"website,omitempty"`
}
