// Package cli implements the terminal commands of ledgerctl.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/entity/price"
	"max.ks1230/personal-accountant/internal/model/reports"
)

const wordWrap = 100

type ledgerKeeper interface {
	Register(ctx context.Context, username string) (*ledger.Ledger, error)
	Login(ctx context.Context, id string) (*ledger.Ledger, error)
	AddIncome(ctx context.Context, id string, amount decimal.Decimal) (*ledger.Ledger, error)
	AddExpense(ctx context.Context, id string, amount decimal.Decimal, explanation string) (*ledger.Ledger, error)
	Reset(ctx context.Context, id string) (*ledger.Ledger, error)
}

type reportService interface {
	Summary(ctx context.Context, ledgerID, period string) (reports.Summary, error)
	Report(ctx context.Context, ledgerID, period string) (string, error)
	Formatter() reports.Formatter
}

type pricesSource interface {
	FetchCurrentPrices(ctx context.Context) price.Prices
}

// App carries what the commands work on. A CLI run is short lived, the
// commands share one App.
type App struct {
	keeper  ledgerKeeper
	reports reportService
	prices  pricesSource
	out     io.Writer
	errOut  io.Writer
	plain   bool
}

func NewApp(keeper ledgerKeeper, reports reportService, prices pricesSource, out, errOut io.Writer) *App {
	return &App{
		keeper:  keeper,
		reports: reports,
		prices:  prices,
		out:     out,
		errOut:  errOut,
	}
}

// SetPlain disables terminal styling of markdown output.
func (a *App) SetPlain(plain bool) {
	a.plain = plain
}

// Register adds every command to the commander.
func Register(c *subcommands.Commander, app *App) {
	c.Register(&registerCmd{app: app}, "ledger")
	c.Register(&showCmd{app: app}, "ledger")
	c.Register(&incomeCmd{app: app}, "ledger")
	c.Register(&expenseCmd{app: app}, "ledger")
	c.Register(&resetCmd{app: app}, "ledger")
	c.Register(&forecastCmd{app: app}, "ledger")

	c.Register(&pricesCmd{app: app}, "market")
}

func (a *App) printMarkdown(md string) {
	if a.plain {
		fmt.Fprintln(a.out, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wordWrap))
	if err == nil {
		var styled string
		if styled, err = r.Render(md); err == nil {
			fmt.Fprint(a.out, styled)
			return
		}
	}
	fmt.Fprintln(a.out, md)
}

func (a *App) fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(a.errOut, "Error: "+format+"\n", args...)
	return subcommands.ExitFailure
}

func (a *App) usage(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(a.errOut, format+"\n", args...)
	return subcommands.ExitUsageError
}
