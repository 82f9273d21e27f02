package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 5
	MaxLimit     = 100
)

// Normalize clamps 1-based page/limit query values and returns the row offset.
func Normalize(page, limit int) (int, int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit, (page - 1) * limit
}
