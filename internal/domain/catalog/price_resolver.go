package catalog

import "errors"

var ErrNoActivePrice = errors.New("no active price available")

// ResolvePrice picks the single authoritative active price for one lab out of
// its per-currency price rows. The fallback order is an explicit preference
// list rather than ad hoc conditionals:
//
//  1. the requested currency, when it is in the supported list
//  2. the primary supported currency
//  3. the remaining supported currencies, in list order
//
// At most one active price exists per (lab, currency), so the first match in
// preference order is deterministic.
func ResolvePrice(prices []Price, requested Currency, supported SupportedCurrencies) (Price, error) {
	active := make(map[Currency]Price, len(prices))
	for _, p := range prices {
		if p.Active() {
			active[p.Currency()] = p
		}
	}

	for _, cur := range preferenceOrder(requested, supported) {
		if p, ok := active[cur]; ok {
			return p, nil
		}
	}

	return Price{}, ErrNoActivePrice
}

func preferenceOrder(requested Currency, supported SupportedCurrencies) []Currency {
	order := make([]Currency, 0, len(supported)+1)
	if supported.Contains(requested) {
		order = append(order, requested)
	}
	for _, cur := range supported {
		if cur != requested {
			order = append(order, cur)
		}
	}
	return order
}
