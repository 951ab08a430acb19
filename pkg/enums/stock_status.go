package enums

// StockStatus is the resolved tri-state classification of a good's latest
// observation. It is derived, never stored.
type StockStatus string

const (
	StockStatusLow    StockStatus = "low"
	StockStatusNormal StockStatus = "normal"
	StockStatusHigh   StockStatus = "high"
)

// NeedsAlert reports whether the status warrants a notification.
func (s StockStatus) NeedsAlert() bool {
	return s == StockStatusLow || s == StockStatusHigh
}
