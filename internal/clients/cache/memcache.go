// Package cache keeps rendered reports in memcached.
package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/logger"
)

const (
	keyPrefix     = "report:"
	allPeriod     = "all"
	versionSuffix = "version"
)

type MemcacheClient struct {
	client     *memcache.Client
	expiration int32
	periods    []string
}

type config interface {
	Hosts() []string
	Expiration() time.Duration
}

// NewMemcache connects to the configured nodes. periods lists every report
// period.
func NewMemcache(config config, periods []string) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	client := &MemcacheClient{
		client:     mc,
		expiration: int32(config.Expiration() / time.Second),
		periods:    periods,
	}
	return client, errors.Wrap(mc.Ping(), "ping memcached")
}

func formatKey(ledgerID, period string, version uint64) string {
	if period == "" {
		period = allPeriod
	}
	return keyPrefix + ledgerID + ":" + strconv.FormatUint(version, 10) + ":" + period
}

func versionKey(ledgerID string) string {
	return keyPrefix + ledgerID + ":" + versionSuffix
}

func (mc *MemcacheClient) CacheReport(ledgerID, period string, version uint64, report string) error {
	logger.Debug("cache report", zap.String("ledger", ledgerID), zap.String("period", period), zap.Uint64("version", version))
	return mc.client.Set(&memcache.Item{
		Key:        formatKey(ledgerID, period, version),
		Value:      []byte(report),
		Expiration: mc.expiration,
	})
}

// GetReport returns memcache.ErrCacheMiss when nothing is cached.
func (mc *MemcacheClient) GetReport(ledgerID, period string, version uint64) (string, error) {
	item, err := mc.client.Get(formatKey(ledgerID, period, version))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

// ReportVersion is zero until the ledger changes for the first time.
func (mc *MemcacheClient) ReportVersion(ledgerID string) (uint64, error) {
	item, err := mc.client.Get(versionKey(ledgerID))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return parseVersion(item.Value)
}

// InvalidateCache bumps the report version of the ledger. When the version
// is gone (never set or evicted) the reports of version zero are dropped and
// the version restarts from the clock, above any number used before.
func (mc *MemcacheClient) InvalidateCache(ledgerID string) error {
	logger.Debug("invalidate cache", zap.String("ledger", ledgerID))

	_, err := mc.client.Increment(versionKey(ledgerID), 1)
	if !errors.Is(err, memcache.ErrCacheMiss) {
		return err
	}

	for _, period := range mc.periods {
		err = mc.client.Delete(formatKey(ledgerID, period, 0))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return err
		}
	}
	restart := strconv.FormatUint(uint64(time.Now().UnixNano()), 10)
	err = mc.client.Add(&memcache.Item{Key: versionKey(ledgerID), Value: []byte(restart)})
	if errors.Is(err, memcache.ErrNotStored) {
		// another process restarted the version first
		_, err = mc.client.Increment(versionKey(ledgerID), 1)
	}
	return err
}

// LedgerChanged makes every cached report of the ledger stale.
func (mc *MemcacheClient) LedgerChanged(_ context.Context, ledgerID string) error {
	return errors.Wrap(mc.InvalidateCache(ledgerID), "invalidate reports")
}

// parseVersion reads a counter, memcached may pad incremented values with
// spaces.
func parseVersion(raw []byte) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(string(raw)), 10, 64)
	return v, errors.Wrap(err, "parse report version")
}
