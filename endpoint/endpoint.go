package endpoint

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// RequestType tags the API operation an endpoint stands for
type RequestType string

// Request types supported by the library
const (
	MemberRead                    RequestType = "Member_Read"
	MemberReadOrganizations       RequestType = "Member_Read_Organizations"
	MemberWriteCreateOrganization RequestType = "Member_Write_CreateOrganization"
	OrganizationRead              RequestType = "Organization_Read"
)

// Endpoint is a resolved request descriptor: an HTTP method and a relative
// path with all placeholders substituted
type Endpoint struct {
	Method string
	Path   string
}

type template struct {
	method string
	path   string
}

var templates = map[RequestType]template{
	MemberRead:                    {"GET", "members/{_id}"},
	MemberReadOrganizations:       {"GET", "members/{_id}/organizations"},
	MemberWriteCreateOrganization: {"POST", "organizations"},
	OrganizationRead:              {"GET", "organizations/{_id}"},
}

var placeholderRE = regexp.MustCompile(`\{([^{}]+)\}`)

// Build resolves a request type into an endpoint, substituting every
// {placeholder} in the template from params. An unresolved placeholder is an
// error; extra params are ignored (they travel as query parameters instead).
func Build(t RequestType, params map[string]string) (Endpoint, error) {
	tpl, ok := templates[t]
	if !ok {
		return Endpoint{}, errors.Errorf("endpoint: unknown request type %q", t)
	}

	var buildErr error
	path := placeholderRE.ReplaceAllStringFunc(tpl.path, func(m string) string {
		name := strings.Trim(m, "{}")
		v, ok := params[name]
		if !ok || v == "" {
			buildErr = errors.Errorf("endpoint: missing parameter %q for %q", name, t)
			return m
		}
		return url.PathEscape(v)
	})
	if buildErr != nil {
		return Endpoint{}, buildErr
	}

	return Endpoint{Method: tpl.method, Path: path}, nil
}
