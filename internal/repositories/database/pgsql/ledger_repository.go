package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/dsarhan/fx_reval_app/internal/apperrors"
	"github.com/dsarhan/fx_reval_app/internal/core/domain"
	portsrepo "github.com/dsarhan/fx_reval_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository implements the LedgerItemReader interface using pgxpool.
type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger line data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerItemReader {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerItemReader = (*PgxLedgerRepository)(nil)

// entryStatuses resolves which journal entry statuses are eligible. Draft
// entries join the posted set only when explicitly requested; cancelled
// entries are never selected.
func entryStatuses(includeUnposted bool) []string {
	if includeUnposted {
		return []string{string(domain.EntryDraft), string(domain.EntryPosted)}
	}
	return []string{string(domain.EntryPosted)}
}

// FindOpenForeignCurrencyItems returns every open foreign-currency ledger
// line matching the filter, ordered ascending by (date, ledger_line_id).
// The full eligible set is materialized; this backs a point-in-time report,
// not a paged listing.
func (r *PgxLedgerRepository) FindOpenForeignCurrencyItems(ctx context.Context, filter portsrepo.LedgerItemFilter) ([]domain.LedgerItem, error) {
	statuses := entryStatuses(filter.IncludeUnposted)

	query := `
		SELECT
			l.ledger_line_id,
			l.journal_entry_id,
			l.account_id,
			l.partner_id,
			l.currency_code,
			l.date,
			l.maturity_date,
			l.amount_currency,
			l.balance_operation,
			j.status,
			l.reconciled,
			a.reconcilable,
			a.category
		FROM ledger_lines l
		JOIN journal_entries j ON l.journal_entry_id = j.journal_entry_id
		JOIN accounts a ON l.account_id = a.account_id
		WHERE j.company_id = $1
			AND l.currency_code IS NOT NULL
			AND l.currency_code <> $2
			AND l.amount_currency <> 0
			AND a.reconcilable = TRUE
			AND l.reconciled = FALSE
			AND j.status = ANY($3)
	`
	args := []any{filter.CompanyID, filter.HomeCurrencyCode, statuses}

	if len(filter.Categories) > 0 {
		categories := make([]string, len(filter.Categories))
		for i, c := range filter.Categories {
			categories[i] = string(c)
		}
		query += ` AND a.category = ANY($4)`
		args = append(args, categories)
	}

	query += ` ORDER BY l.date, l.ledger_line_id`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying open foreign-currency items: %w", apperrors.ErrLedgerQuery, err)
	}
	defer rows.Close()

	var items []domain.LedgerItem
	for rows.Next() {
		var item domain.LedgerItem
		var partnerID *string
		var maturityDate *time.Time
		var status string
		var category string

		if err := rows.Scan(
			&item.LedgerLineID,
			&item.JournalEntryID,
			&item.AccountID,
			&partnerID,
			&item.CurrencyCode,
			&item.Date,
			&maturityDate,
			&item.AmountCurrency,
			&item.BalanceOperation,
			&status,
			&item.Reconciled,
			&item.Reconcilable,
			&category,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning ledger item row: %w", apperrors.ErrLedgerQuery, err)
		}

		if partnerID != nil {
			item.PartnerID = *partnerID
		}
		if maturityDate != nil {
			item.MaturityDate = *maturityDate
		}
		item.EntryStatus = domain.JournalEntryStatus(status)
		item.AccountCategory = domain.AccountCategory(category)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating ledger item rows: %w", apperrors.ErrLedgerQuery, err)
	}

	if len(items) == 0 {
		// Return empty slice instead of nil
		return []domain.LedgerItem{}, nil
	}
	return items, nil
}
