package repository

// Page is the pagination envelope shared by all list queries.
type Page struct {
	Number int // 1-based
	Limit  int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// NewPage clamps page/limit to the allowed range. Limit defaults to def and
// is capped at 50; page is at least 1.
func NewPage(number, limit, def int) Page {
	if number < 1 {
		number = 1
	}
	if limit < 1 {
		limit = def
	}
	if limit > 50 {
		limit = 50
	}
	return Page{Number: number, Limit: limit}
}
