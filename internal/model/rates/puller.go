// Package rates keeps market prices fresh in the background.
package rates

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/entity/price"
	"max.ks1230/personal-accountant/internal/logger"
)

const defaultDelay = 10 * time.Minute

type quotesStorage interface {
	SaveQuote(ctx context.Context, q price.Quote) error
	LatestQuote(ctx context.Context, name string) (price.Quote, error)
}

type pricesProvider interface {
	FetchCurrentPrices(ctx context.Context) price.Prices
}

type config interface {
	PullingDelay() time.Duration
}

type Puller struct {
	board        *Board
	provider     pricesProvider
	storage      quotesStorage
	pullingDelay time.Duration
}

// NewPuller builds a puller. storage may be nil, quotes are then only kept
// on the board.
func NewPuller(board *Board, provider pricesProvider, storage quotesStorage, config config) *Puller {
	delay := config.PullingDelay()
	if delay <= 0 {
		delay = defaultDelay
	}
	return &Puller{
		board:        board,
		provider:     provider,
		storage:      storage,
		pullingDelay: delay,
	}
}

// Pull restores the last stored quotes, refreshes the board immediately and
// then on every tick until ctx is done.
func (p *Puller) Pull(ctx context.Context) {
	p.Restore(ctx)

	ticker := time.NewTicker(p.pullingDelay)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start pulling prices")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop pulling prices")
			return
		// fake first tick to pull prices immediately
		case <-firstTick:
			p.PullOnce(ctx)
		case <-ticker.C:
			p.PullOnce(ctx)
		}
	}
}

func (p *Puller) PullOnce(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "pullPrices")
	defer span.Finish()

	pulled := p.provider.FetchCurrentPrices(ctx)
	p.board.Update(pulled)

	for _, q := range pulled.Quotes() {
		if q.Available {
			p.saveQuote(ctx, q)
		}
	}
	logger.Debug("pulled current prices")
}

// Restore puts the most recent stored quotes on the board so the prices view
// has values before the first pull completes. Only available quotes are
// taken, the board keeps its current value for the rest.
func (p *Puller) Restore(ctx context.Context) {
	if p.storage == nil {
		return
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "restoreQuotes")
	defer span.Finish()

	restored := p.board.Current()
	for _, name := range price.Names {
		q, err := p.storage.LatestQuote(ctx, name)
		if err != nil {
			ext.Error.Set(span, true)
			logger.Error("failed to restore quote", zap.Error(err), zap.String("quote", name))
			continue
		}
		if q.Available {
			restored = restored.With(q)
		}
	}
	p.board.Update(restored)
	logger.Debug("restored stored prices")
}

func (p *Puller) saveQuote(ctx context.Context, q price.Quote) {
	if p.storage == nil {
		return
	}

	span, ctx := opentracing.StartSpanFromContext(ctx, "saveQuote")
	defer span.Finish()
	span.SetTag("quote", q.Name)

	if err := p.storage.SaveQuote(ctx, q); err != nil {
		ext.Error.Set(span, true)
		logger.Error("failed to save quote", zap.Error(err), zap.String("quote", q.Name))
	}
}
