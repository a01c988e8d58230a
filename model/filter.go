package model

const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// SearchFilter is the structured search input. Empty string fields are
// simply not applied; the provided ones combine with AND. The same
// filter drives both the data query and the count query so the two can
// never drift apart.
type SearchFilter struct {
	Name     string
	League   string
	Club     string
	Position string
	Page     int
	Limit    int
}

// Normalize applies the pagination defaults (page 1, limit 20) and
// clamps nonsense values.
func (f SearchFilter) Normalize() SearchFilter {
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	return f
}

// Offset is the row offset implied by the page and limit.
func (f SearchFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}
