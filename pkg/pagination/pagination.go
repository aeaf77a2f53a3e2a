package pagination

const (
	// DefaultLimit is the standard catalog page size when a limit is not provided.
	DefaultLimit = 12
	// MaxLimit caps how many rows any page query can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination block returned alongside every paginated listing.
type Meta struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalItems   int64 `json:"totalItems"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

// Normalize enforces the configured defaults: pages are 1-based, limits are
// clamped to [1, MaxLimit].
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(totalItems/limit). Zero items means zero pages.
func TotalPages(totalItems int64, limit int) int {
	if limit <= 0 || totalItems <= 0 {
		return 0
	}
	return int((totalItems + int64(limit) - 1) / int64(limit))
}

// MetaFor assembles the pagination block for a listing response.
func MetaFor(p Params, totalItems int64) Meta {
	p = Normalize(p)
	return Meta{
		CurrentPage:  p.Page,
		TotalPages:   TotalPages(totalItems, p.Limit),
		TotalItems:   totalItems,
		ItemsPerPage: p.Limit,
	}
}
