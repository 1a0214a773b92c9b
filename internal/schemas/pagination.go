package schemas

const (
	defaultPage  = 1
	defaultLimit = 10
)

// PaginationParams carries the page/limit query values of a list request.
// Zero values mean "unspecified".
type PaginationParams struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// Normalize applies the defaults (page=1, limit=10) to unspecified or
// out-of-range values. Services call this once before fetching.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = defaultPage
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
}

// Offset returns the row offset for the normalized page/limit pair.
func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.Limit
}
