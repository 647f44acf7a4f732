package dto

import (
	"github.com/dsarhan/fx_reval_app/internal/core/domain"
)

// CurrencyResponse represents a currency in API responses.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int32  `json:"precision"`
}

// ToCurrencyResponse converts a domain Currency to its response DTO.
func ToCurrencyResponse(c domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: c.CurrencyCode,
		Symbol:       c.Symbol,
		Name:         c.Name,
		Precision:    c.Precision,
	}
}

// ToCurrencyResponseSlice converts a slice of domain Currencies.
func ToCurrencyResponseSlice(cs []domain.Currency) []CurrencyResponse {
	resp := make([]CurrencyResponse, len(cs))
	for i, c := range cs {
		resp[i] = ToCurrencyResponse(c)
	}
	return resp
}
