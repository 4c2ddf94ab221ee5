package price

import "time"

const (
	BTCUSD  = "BTC/USD"
	GoldUSD = "XAU/USD"
	IRRUSD  = "IRR/USD"
)

// Names lists the quotes shown in the prices view, in display order.
var Names = []string{BTCUSD, GoldUSD, IRRUSD}

// Quote is one market price. Available is false when the source could not be
// read, Value is meaningless in that case.
type Quote struct {
	Name      string
	Value     float64
	Available bool
	UpdatedAt time.Time
}

// Unavailable returns the placeholder quote used when a source fails.
func Unavailable(name string) Quote {
	return Quote{Name: name}
}

// Prices is one snapshot of all displayed quotes.
type Prices struct {
	BTCUSD  Quote
	GoldUSD Quote
	IRRUSD  Quote
}

// Quotes returns the snapshot as a slice in display order.
func (p Prices) Quotes() []Quote {
	return []Quote{p.BTCUSD, p.GoldUSD, p.IRRUSD}
}

// With returns a copy of p with q stored under its name. Unknown names are ignored.
func (p Prices) With(q Quote) Prices {
	switch q.Name {
	case BTCUSD:
		p.BTCUSD = q
	case GoldUSD:
		p.GoldUSD = q
	case IRRUSD:
		p.IRRUSD = q
	}
	return p
}

// NoPrices is the snapshot before the first successful pull.
func NoPrices() Prices {
	return Prices{
		BTCUSD:  Unavailable(BTCUSD),
		GoldUSD: Unavailable(GoldUSD),
		IRRUSD:  Unavailable(IRRUSD),
	}
}
