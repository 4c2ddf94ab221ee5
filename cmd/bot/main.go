package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/clients/cache"
	"max.ks1230/personal-accountant/internal/clients/kafka"
	"max.ks1230/personal-accountant/internal/clients/prices"
	"max.ks1230/personal-accountant/internal/clients/tg"
	"max.ks1230/personal-accountant/internal/config"
	"max.ks1230/personal-accountant/internal/logger"
	ledgers "max.ks1230/personal-accountant/internal/model/ledger"
	"max.ks1230/personal-accountant/internal/model/messages"
	"max.ks1230/personal-accountant/internal/model/rates"
	"max.ks1230/personal-accountant/internal/model/reports"
	"max.ks1230/personal-accountant/internal/model/storage"
	"max.ks1230/personal-accountant/internal/tracing"
)

const shutdownTimeout = 5 * time.Second

func main() {
	defer logger.Sync()
	logger.Info("Bot init - start")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config", zap.Error(err))
	}

	tracer, err := tracing.Init(conf.Tracing())
	if err != nil {
		logger.Fatal("failed to init tracing", zap.Error(err))
	}
	defer tracer.Close()

	store, err := storage.Open(ctx, conf.Storage(), conf.Postgres())
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}
	defer store.Close()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client", zap.Error(err))
	}

	keeper := ledgers.NewKeeper(store)
	reportService := reports.NewService(keeper, nil, conf.App())
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached(), reports.ReportPeriods())
		if err != nil {
			logger.Fatal("failed to init memcached", zap.Error(err))
		}
		keeper = ledgers.NewKeeper(store, mc)
		reportService = reports.NewService(keeper, mc, conf.App())
	}

	board := rates.NewBoard()
	puller := newPuller(board, prices.New(conf.Prices()), store, conf.App())
	go puller.Pull(ctx)

	handler := messages.NewHandler(keeper, reportService, board, nil, messages.NewSessions())
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer", zap.Error(err))
		}
		defer producer.Close()
		handler = messages.NewHandler(keeper, reportService, board, producer, messages.NewSessions())
	}

	acceptor, err := reports.NewServer(conf.Reporter().AcceptorAddress(), messages.NewReportDelivery(client))
	if err != nil {
		logger.Fatal("failed to init report acceptor", zap.Error(err))
	}
	go acceptor.Serve()
	defer acceptor.Shutdown()

	metricsServer := serveMetrics(conf.Metrics().ListenAddress())
	defer shutdownMetrics(metricsServer)

	logger.Info("Bot init - end")

	client.ListenUpdates(ctx, messages.NewService(client, handler))
}

// newPuller records quotes only when ledgers live in postgres, the other
// backends have no place for them.
func newPuller(board *rates.Board, client *prices.Client, store storage.Ledgers, conf *config.AppConfig) *rates.Puller {
	if pg, ok := store.(*storage.PostgresStorage); ok {
		return rates.NewPuller(board, client, pg, conf)
	}
	return rates.NewPuller(board, client, nil, conf)
}

func serveMetrics(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: shutdownTimeout}

	go func() {
		logger.Info("metrics server listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()
	return server
}

func shutdownMetrics(server *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("metrics server shutdown", zap.Error(err))
	}
}
