package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Page is one window of an ordered result set plus the total row count.
type Page[T any] struct {
	Items []T
	Total int
}
