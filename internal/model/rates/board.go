package rates

import (
	"sync"

	"max.ks1230/personal-accountant/internal/entity/price"
)

// Board holds the latest price snapshot. Readers never wait for the network.
type Board struct {
	mu      sync.RWMutex
	current price.Prices
}

func NewBoard() *Board {
	return &Board{current: price.NoPrices()}
}

func (b *Board) Current() price.Prices {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}

// Update merges fresh quotes into the snapshot. A quote that became
// unavailable replaces the older value, stale prices are never shown.
func (b *Board) Update(p price.Prices) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, q := range p.Quotes() {
		b.current = b.current.With(q)
	}
}
