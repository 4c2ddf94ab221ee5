// Package prices reads market quotes from public JSON APIs.
package prices

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/entity/price"
	"max.ks1230/personal-accountant/internal/logger"
)

const (
	defaultTimeout  = 5 * time.Second
	goldTokenHeader = "x-access-token"
)

type config interface {
	FetchTimeout() time.Duration
	BTCSource() (url, path string)
	GoldSource() (url, path string)
	GoldAccessToken() string
	IRRSource() (url, path string)
}

type source struct {
	name   string
	url    string
	path   string
	header http.Header
}

// Client fetches every configured quote. It never fails as a whole: a source
// that cannot be read yields an unavailable quote.
type Client struct {
	http    *http.Client
	timeout time.Duration
	sources []source
	now     func() time.Time
}

func New(cfg config) *Client {
	timeout := cfg.FetchTimeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	btcURL, btcPath := cfg.BTCSource()
	goldURL, goldPath := cfg.GoldSource()
	irrURL, irrPath := cfg.IRRSource()

	goldHeader := http.Header{}
	if token := cfg.GoldAccessToken(); token != "" {
		goldHeader.Set(goldTokenHeader, token)
	}

	return &Client{
		http:    &http.Client{},
		timeout: timeout,
		sources: []source{
			{name: price.BTCUSD, url: btcURL, path: btcPath},
			{name: price.GoldUSD, url: goldURL, path: goldPath, header: goldHeader},
			{name: price.IRRUSD, url: irrURL, path: irrPath},
		},
		now: time.Now,
	}
}

// FetchCurrentPrices queries all sources concurrently, each bounded by the
// configured timeout.
func (c *Client) FetchCurrentPrices(ctx context.Context) price.Prices {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fetchPrices")
	defer span.Finish()

	quotes := make([]price.Quote, len(c.sources))
	var wg sync.WaitGroup
	for i, src := range c.sources {
		wg.Add(1)
		go func(i int, src source) {
			defer wg.Done()
			quotes[i] = c.quote(ctx, src)
		}(i, src)
	}
	wg.Wait()

	result := price.NoPrices()
	for _, q := range quotes {
		result = result.With(q)
	}
	return result
}

func (c *Client) quote(ctx context.Context, src source) price.Quote {
	if src.url == "" {
		return price.Unavailable(src.name)
	}

	val, err := c.fetch(ctx, src)
	if err != nil {
		fetchFailures.WithLabelValues(src.name).Inc()
		logger.Warn("cannot fetch price", zap.String("quote", src.name), zap.Error(err))
		return price.Unavailable(src.name)
	}
	return price.Quote{Name: src.name, Value: val, Available: true, UpdatedAt: c.now().UTC()}
}

func (c *Client) fetch(ctx context.Context, src source) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.url, nil)
	if err != nil {
		return 0, errors.Wrap(err, "build request")
	}
	for k, v := range src.header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return 0, errors.Wrap(err, "request")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, errors.Errorf("unexpected status %s", res.Status)
	}

	var doc any
	if err = json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return 0, errors.Wrap(err, "decode response")
	}
	return extract(doc, src.path)
}

// extract reads a positive number at path. Some APIs send numbers as
// strings with thousands separators.
func extract(doc any, path string) (float64, error) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return 0, errors.Wrapf(err, "path %s", path)
	}
	// a filter expression yields a list, keep the first match
	if list, ok := v.([]any); ok {
		if len(list) == 0 {
			return 0, errors.Errorf("path %s: no match", path)
		}
		v = list[0]
	}

	var val float64
	switch t := v.(type) {
	case float64:
		val = t
	case string:
		val, err = strconv.ParseFloat(strings.ReplaceAll(t, ",", ""), 64)
		if err != nil {
			return 0, errors.Wrapf(err, "path %s", path)
		}
	default:
		return 0, errors.Errorf("path %s: not a number: %v", path, v)
	}

	if math.IsNaN(val) || val <= 0 {
		return 0, errors.Errorf("path %s: no value", path)
	}
	return val, nil
}
