package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter/internal/utils/mapping"
)

type PgxRequestLogRepository struct {
	db DBTX
}

func newPgxRequestLogRepository(db DBTX) portsrepo.RequestLogWriter {
	return &PgxRequestLogRepository{db: db}
}

func (r *PgxRequestLogRepository) SaveRequestLog(ctx context.Context, entry domain.RequestLog) error {
	m := mapping.ToModelRequestLog(entry)
	query := `
        INSERT INTO request_logs (id, method, url, ip_address, user_agent, user_id, guest_id, request_body,
            status_code, response_time_ms, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		m.ID, m.Method, m.URL, m.IPAddress, m.UserAgent, m.UserID, m.GuestID, m.RequestBody,
		m.StatusCode, m.ResponseTimeMs, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save request log: %w", err)
	}
	return nil
}
