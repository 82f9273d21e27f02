package models

import "time"

// RequestLog is a row of the request_logs table.
type RequestLog struct {
	ID             string    `db:"id"`
	Method         string    `db:"method"`
	URL            string    `db:"url"`
	IPAddress      string    `db:"ip_address"`
	UserAgent      string    `db:"user_agent"`
	UserID         *string   `db:"user_id"`
	GuestID        *string   `db:"guest_id"`
	RequestBody    *string   `db:"request_body"`
	StatusCode     int       `db:"status_code"`
	ResponseTimeMs int64     `db:"response_time_ms"`
	CreatedAt      time.Time `db:"created_at"`
}
