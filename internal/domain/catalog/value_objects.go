package catalog

import (
	"errors"
	"strings"
)

var ErrInvalidCurrency = errors.New("invalid currency code")

// Currency is an ISO 4217 code, canonical uppercase.
type Currency string

func NewCurrency(code string) (Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return Currency(""), ErrInvalidCurrency
	}
	return Currency(code), nil
}

func (c Currency) String() string {
	return string(c)
}

// SupportedCurrencies is the ordered preference list for price resolution.
// The first entry is the primary currency.
type SupportedCurrencies []Currency

func NewSupportedCurrencies(codes []string) (SupportedCurrencies, error) {
	if len(codes) == 0 {
		return nil, errors.New("supported currency list cannot be empty")
	}
	out := make(SupportedCurrencies, 0, len(codes))
	for _, code := range codes {
		cur, err := NewCurrency(code)
		if err != nil {
			return nil, err
		}
		out = append(out, cur)
	}
	return out, nil
}

func (s SupportedCurrencies) Contains(c Currency) bool {
	for _, cur := range s {
		if cur == c {
			return true
		}
	}
	return false
}

// Primary is the designated default currency.
func (s SupportedCurrencies) Primary() Currency {
	return s[0]
}
