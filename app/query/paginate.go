package query

import "devclub-portal/app/models"

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// Page clamps a pagination request and returns the [start, end) window into a
// collection of total items alongside the response metadata.
func Page(total int, p models.PaginationQuery) (start, end int, meta models.PaginationMeta) {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}

	// Compare before multiplying so a huge page cannot overflow.
	if p.Page-1 >= (total+p.Limit-1)/p.Limit {
		start = total
	} else {
		start = (p.Page - 1) * p.Limit
	}
	end = start + p.Limit
	if end > total {
		end = total
	}

	meta = models.PaginationMeta{
		CurrentPage: p.Page,
		TotalPage:   (total + p.Limit - 1) / p.Limit,
		TotalData:   total,
		Limit:       p.Limit,
	}
	return start, end, meta
}
