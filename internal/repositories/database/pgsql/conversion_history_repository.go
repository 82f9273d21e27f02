package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_converter/internal/core/ports/repositories"
	"github.com/SscSPs/currency_converter/internal/models"
	"github.com/SscSPs/currency_converter/internal/utils/mapping"
)

type PgxConversionHistoryRepository struct {
	BaseRepository
}

func newPgxConversionHistoryRepository(db DBTX) portsrepo.ConversionHistoryRepositoryFacade {
	return &PgxConversionHistoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.ConversionHistoryRepositoryFacade = (*PgxConversionHistoryRepository)(nil)

// identityFilter returns the WHERE clause and argument selecting identity's partition.
// Guest rows never carry a user id.
func identityFilter(identity domain.Identity) (string, string, error) {
	if userID, ok := identity.UserID(); ok {
		return "user_id = $1", userID, nil
	}
	if guestID, ok := identity.GuestID(); ok {
		return "guest_id = $1 AND user_id IS NULL", guestID, nil
	}
	return "", "", fmt.Errorf("%w: history requires a user or guest id", apperrors.ErrValidation)
}

func (r *PgxConversionHistoryRepository) SaveConversion(ctx context.Context, record domain.ConversionRecord) error {
	m := mapping.ToModelConversion(record)
	query := `
        INSERT INTO conversion_history (id, from_currency, to_currency, amount, converted_amount, exchange_rate,
            historical_date, user_id, guest_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.ID, m.FromCurrency, m.ToCurrency, m.Amount, m.ConvertedAmount, m.ExchangeRate,
		m.HistoricalDate, m.UserID, m.GuestID, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save conversion: %w", err)
	}
	return nil
}

func (r *PgxConversionHistoryRepository) ListConversions(ctx context.Context, identity domain.Identity, limit, offset int) (domain.Page[domain.ConversionRecord], error) {
	where, arg, err := identityFilter(identity)
	if err != nil {
		return domain.Page[domain.ConversionRecord]{}, err
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return domain.Page[domain.ConversionRecord]{}, err
	}

	var total int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM conversion_history WHERE `+where+`;`, arg).Scan(&total); err != nil {
		_ = r.Rollback(ctx, tx)
		return domain.Page[domain.ConversionRecord]{}, fmt.Errorf("failed to count conversions: %w", err)
	}

	query := `
        SELECT id, from_currency, to_currency, amount, converted_amount, exchange_rate,
            historical_date, user_id, guest_id, created_at
        FROM conversion_history
        WHERE ` + where + `
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := tx.Query(ctx, query, arg, limit, offset)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return domain.Page[domain.ConversionRecord]{}, fmt.Errorf("failed to query conversions: %w", err)
	}

	var ms []models.ConversionHistory
	for rows.Next() {
		var m models.ConversionHistory
		if err := rows.Scan(
			&m.ID,
			&m.FromCurrency,
			&m.ToCurrency,
			&m.Amount,
			&m.ConvertedAmount,
			&m.ExchangeRate,
			&m.HistoricalDate,
			&m.UserID,
			&m.GuestID,
			&m.CreatedAt,
		); err != nil {
			rows.Close()
			_ = r.Rollback(ctx, tx)
			return domain.Page[domain.ConversionRecord]{}, fmt.Errorf("failed to scan conversion row: %w", err)
		}
		ms = append(ms, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		_ = r.Rollback(ctx, tx)
		return domain.Page[domain.ConversionRecord]{}, fmt.Errorf("error iterating conversion rows: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return domain.Page[domain.ConversionRecord]{}, err
	}

	return domain.Page[domain.ConversionRecord]{
		Items: mapping.ToDomainConversionSlice(ms),
		Total: total,
	}, nil
}

func (r *PgxConversionHistoryRepository) DeleteConversions(ctx context.Context, identity domain.Identity) (int64, error) {
	where, arg, err := identityFilter(identity)
	if err != nil {
		return 0, err
	}
	tag, err := r.Pool.Exec(ctx, `DELETE FROM conversion_history WHERE `+where+`;`, arg)
	if err != nil {
		return 0, fmt.Errorf("failed to delete conversions: %w", err)
	}
	return tag.RowsAffected(), nil
}
