// Package tracing installs the global opentracing tracer.
package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	jaegerzap "github.com/uber/jaeger-client-go/log/zap"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/logger"
)

type config interface {
	Enabled() bool
	ServiceName() string
	SamplerParam() float64
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init sets up a jaeger tracer when tracing is enabled. The agent address
// comes from the usual JAEGER_* environment variables. The returned closer
// flushes pending spans.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		return nopCloser{}, nil
	}

	jcfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "read jaeger env")
	}
	jcfg.ServiceName = cfg.ServiceName()
	jcfg.Sampler = &jaegercfg.SamplerConfig{
		Type:  jaeger.SamplerTypeProbabilistic,
		Param: cfg.SamplerParam(),
	}

	tracer, closer, err := jcfg.NewTracer(jaegercfg.Logger(jaegerzap.NewLogger(logger.Named("jaeger"))))
	if err != nil {
		return nil, errors.Wrap(err, "create tracer")
	}
	opentracing.SetGlobalTracer(tracer)
	logger.Info("tracing enabled", zap.String("service", cfg.ServiceName()))
	return closer, nil
}
