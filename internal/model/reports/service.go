package reports

import (
	"context"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	pb "max.ks1230/personal-accountant/internal/api/reports"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/logger"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

type ledgerLoader interface {
	Login(ctx context.Context, id string) (*ledger.Ledger, error)
}

// reportCache keeps reports under a per-ledger version. Every change of the
// ledger bumps the version, so reports stored under an older one are never
// read again.
type reportCache interface {
	ReportVersion(ledgerID string) (uint64, error)
	GetReport(ledgerID, period string, version uint64) (string, error)
	CacheReport(ledgerID, period string, version uint64, report string) error
}

type config interface {
	Currency() string
	ProjectionFactor() decimal.Decimal
}

// Service builds summaries and rendered reports for stored ledgers.
type Service struct {
	loader    ledgerLoader
	cache     reportCache
	generator *Generator
	formatter Formatter
	factor    decimal.Decimal
}

// NewService builds a report service. cache may be nil.
func NewService(loader ledgerLoader, cache reportCache, config config) *Service {
	return &Service{
		loader:    loader,
		cache:     cache,
		generator: NewGenerator(),
		formatter: NewFormatter(config.Currency()),
		factor:    config.ProjectionFactor(),
	}
}

func (s *Service) Formatter() Formatter {
	return s.formatter
}

func (s *Service) Summary(ctx context.Context, ledgerID, period string) (Summary, error) {
	l, err := s.loader.Login(ctx, ledgerID)
	if err != nil {
		return Summary{}, errors.Wrap(err, "build summary")
	}
	return s.generator.Build(l, period, s.factor)
}

// Report returns the markdown report, from the cache when possible. The
// cache version is read before the ledger is loaded: a change saved while
// the report renders bumps the version and the report stored here is never
// served.
func (s *Service) Report(ctx context.Context, ledgerID, period string) (string, error) {
	version, cached := s.cacheVersion(ledgerID)
	if cached {
		report, err := s.cache.GetReport(ledgerID, period, version)
		if err == nil {
			return report, nil
		}
		if !errors.Is(err, memcache.ErrCacheMiss) {
			logger.Warn("cannot read report cache", zap.String("ledger", ledgerID), zap.Error(err))
		}
	}

	summary, err := s.Summary(ctx, ledgerID, period)
	if err != nil {
		return "", err
	}
	report := Markdown(summary, s.formatter)

	if cached {
		if err = s.cache.CacheReport(ledgerID, period, version, report); err != nil {
			logger.Warn("cannot cache report", zap.String("ledger", ledgerID), zap.Error(err))
		}
	}
	return report, nil
}

func (s *Service) cacheVersion(ledgerID string) (uint64, bool) {
	if s.cache == nil {
		return 0, false
	}
	version, err := s.cache.ReportVersion(ledgerID)
	if err != nil {
		logger.Warn("cannot read report version", zap.String("ledger", ledgerID), zap.Error(err))
		return 0, false
	}
	return version, true
}

// GenerateReport answers a queued request. Failures are described in the
// returned report instead of an error, the chat still gets an answer.
func (s *Service) GenerateReport(ctx context.Context, req *pb.ReportRequest) *pb.Report {
	logger.Info("GenerateReport - start", zap.String("ledger", req.LedgerID), zap.String("period", req.Period))
	defer logger.Info("GenerateReport - end")

	result := &pb.Report{
		LedgerID: req.LedgerID,
		ChatID:   req.ChatID,
		Period:   req.Period,
	}
	text, err := s.Report(ctx, req.LedgerID, req.Period)
	if err != nil {
		logger.Error("cannot generate report", zap.String("ledger", req.LedgerID), zap.Error(err))
		result.Error = describeError(err)
		return result
	}
	result.Text = text
	return result
}

func describeError(err error) string {
	switch {
	case errors.Is(err, customerr.ErrNotFound):
		return "User not found"
	case errors.Is(err, ErrUnknownPeriod):
		return "Unknown report period"
	case customerr.IsDecode(err):
		return "Your ledger file is damaged and needs to be repaired"
	}
	return "Can't build your report atm. Try later"
}
