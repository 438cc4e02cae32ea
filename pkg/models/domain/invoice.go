package domain

import "time"

// Invoice is the subset of an upstream invoice needed to fetch and name its
// PDF rendering.
type Invoice struct {
	ID       string
	Number   string
	Total    int64
	Currency string
	Created  time.Time
	PDFURL   string
}
