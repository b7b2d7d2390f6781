package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabTitle  = errors.New("lab title cannot be empty")
	ErrNegativeAmount = errors.New("price amount cannot be negative")
)

// Lab is immutable for pricing purposes within a single quote/checkout.
type Lab struct {
	id    uuid.UUID
	title string
}

func NewLab(id uuid.UUID, title string) (*Lab, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyLabTitle
	}
	return &Lab{id: id, title: title}, nil
}

func (l *Lab) ID() uuid.UUID { return l.id }
func (l *Lab) Title() string { return l.title }

// Price is one (lab, currency) price row in minor units.
type Price struct {
	labID       uuid.UUID
	currency    Currency
	amountCents int64
	active      bool
}

func NewPrice(labID uuid.UUID, currency Currency, amountCents int64, active bool) (Price, error) {
	if amountCents < 0 {
		return Price{}, ErrNegativeAmount
	}
	return Price{
		labID:       labID,
		currency:    currency,
		amountCents: amountCents,
		active:      active,
	}, nil
}

func (p Price) LabID() uuid.UUID   { return p.labID }
func (p Price) Currency() Currency { return p.currency }
func (p Price) AmountCents() int64 { return p.amountCents }
func (p Price) Active() bool       { return p.active }
