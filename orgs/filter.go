package orgs

// Filter selects which subset of the owner's organizations a read requests.
// The zero value means no filter parameter is sent.
type Filter string

// Filters accepted by the organizations read endpoint
const (
	FilterAll     Filter = "all"
	FilterMembers Filter = "members"
	FilterNone    Filter = "none"
	FilterPublic  Filter = "public"
)

func (f Filter) String() string {
	return string(f)
}
