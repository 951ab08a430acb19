package pagination

const (
	// DefaultLimit is the page size used when a caller does not provide one.
	DefaultLimit = 100
	// MaxLimit caps how many rows a single history query can request.
	MaxLimit = 500
)

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
