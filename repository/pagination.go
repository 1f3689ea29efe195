package repository

const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Page is a skip/limit window over a listing.
type Page struct {
	Skip  int
	Limit int
}

// Normalize clamps the window to sane values.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = DefaultSkip
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}
