package apperrors

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateUnavailable indicates that no exchange rate is effective on or before
// the requested date for a currency pair.
var ErrRateUnavailable = errors.New("exchange rate unavailable")

// ErrLedgerQuery indicates that the ledger store could not be queried or
// returned malformed data.
var ErrLedgerQuery = errors.New("ledger query failure")

// RateUnavailableError carries the currency pair and as-of date for which no
// rate could be resolved. It matches ErrRateUnavailable via errors.Is.
type RateUnavailableError struct {
	FromCurrencyCode string
	ToCurrencyCode   string
	AsOf             time.Time
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("no exchange rate for %s->%s effective on or before %s",
		e.FromCurrencyCode, e.ToCurrencyCode, e.AsOf.Format("2006-01-02"))
}

func (e *RateUnavailableError) Unwrap() error {
	return ErrRateUnavailable
}
