package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/google/subcommands"
	"go.uber.org/zap"
	"max.ks1230/personal-accountant/internal/cli"
	"max.ks1230/personal-accountant/internal/clients/cache"
	"max.ks1230/personal-accountant/internal/clients/prices"
	"max.ks1230/personal-accountant/internal/config"
	"max.ks1230/personal-accountant/internal/logger"
	ledgers "max.ks1230/personal-accountant/internal/model/ledger"
	"max.ks1230/personal-accountant/internal/model/reports"
	"max.ks1230/personal-accountant/internal/model/storage"
)

var plain = flag.Bool("plain", false, "Print markdown without terminal styling.")

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	os.Exit(int(run(commander)))
}

func run(commander *subcommands.Commander) subcommands.ExitStatus {
	ctx := context.Background()

	conf, err := config.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init config: %v\n", err)
		return subcommands.ExitFailure
	}

	store, err := storage.Open(ctx, conf.Storage(), conf.Postgres())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	// reports cached by the bot must not outlive changes made here
	var notifiers []ledgers.ChangeNotifier
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached(), reports.ReportPeriods())
		if err != nil {
			logger.Warn("report cache unavailable", zap.Error(err))
		} else {
			notifiers = append(notifiers, mc)
		}
	}

	keeper := ledgers.NewKeeper(store, notifiers...)
	app := cli.NewApp(
		keeper,
		reports.NewService(keeper, nil, conf.App()),
		prices.New(conf.Prices()),
		os.Stdout,
		os.Stderr,
	)
	cli.Register(commander, app)

	flag.Parse()
	app.SetPlain(*plain)
	return commander.Execute(ctx)
}
