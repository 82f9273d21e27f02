package domain

import "time"

// RequestLog is the audit row written for each API request.
type RequestLog struct {
	ID             string
	Method         string
	URL            string
	IPAddress      string
	UserAgent      string
	UserID         *string
	GuestID        *string
	RequestBody    *string
	StatusCode     int
	ResponseTimeMs int64
	CreatedAt      time.Time
}
