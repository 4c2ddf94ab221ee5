package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/clients/cache"
	"max.ks1230/personal-accountant/internal/clients/kafka"
	"max.ks1230/personal-accountant/internal/config"
	"max.ks1230/personal-accountant/internal/logger"
	ledgers "max.ks1230/personal-accountant/internal/model/ledger"
	"max.ks1230/personal-accountant/internal/model/reports"
	"max.ks1230/personal-accountant/internal/model/storage"
	"max.ks1230/personal-accountant/internal/tracing"
)

func main() {
	defer logger.Sync()
	logger.Info("Reporter init - start")

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

	keeper := ledgers.NewKeeper(store)
	reportService := reports.NewService(keeper, nil, conf.App())
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached(), reports.ReportPeriods())
		if err != nil {
			logger.Fatal("failed to init memcached", zap.Error(err))
		}
		reportService = reports.NewService(keeper, mc, conf.App())
	}

	sender, err := reports.NewSender(conf.Reporter().AcceptorAddress())
	if err != nil {
		logger.Fatal("failed to init report sender", zap.Error(err))
	}
	defer sender.Close()

	consumer, err := kafka.NewConsumer(conf.Kafka(), reportService, sender)
	if err != nil {
		logger.Fatal("failed to init kafka consumer", zap.Error(err))
	}
	defer consumer.Close()

	logger.Info("Reporter init - end")

	if err = consumer.StartConsuming(ctx); err != nil {
		logger.Error("consuming stopped", zap.Error(err))
	}
}
