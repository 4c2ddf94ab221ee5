package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/personal-accountant/internal/model/customerr"
	ledgers "max.ks1230/personal-accountant/internal/model/ledger"
	"max.ks1230/personal-accountant/internal/model/reports"
)

type registerCmd struct {
	app  *App
	name string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create a new ledger and print its code" }
func (*registerCmd) Usage() string {
	return `ledgerctl register -name <name>

  Creates an empty ledger. Keep the printed code, every other command needs it.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the ledger owner.")
}

func (c *registerCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		return c.app.usage("-name is required")
	}
	l, err := c.app.keeper.Register(ctx, c.name)
	if err != nil {
		return c.app.fail("could not register: %v", err)
	}
	fmt.Fprintf(c.app.out, "Registered %s. Your unique code is %s\n", l.Username, l.ID)
	return subcommands.ExitSuccess
}

type showCmd struct {
	app    *App
	code   string
	period string
	view   string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a ledger" }
func (*showCmd) Usage() string {
	return `ledgerctl show -code <code> [-view report|table|chart] [-period week|month|year]

  Displays the ledger as a complete report (default), an expense table or
  bar charts.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Unique code of the ledger.")
	f.StringVar(&c.view, "view", "report", "One of report, table or chart.")
	f.StringVar(&c.period, "period", "", "Limit expenses to the current week, month or year.")
}

func (c *showCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		return c.app.usage("-code is required")
	}

	switch c.view {
	case "report":
		report, err := c.app.reports.Report(ctx, c.code, c.period)
		if err != nil {
			return c.app.describe(err)
		}
		c.app.printMarkdown(report)
	case "table", "chart":
		summary, err := c.app.reports.Summary(ctx, c.code, c.period)
		if err != nil {
			return c.app.describe(err)
		}
		view := reports.Table
		if c.view == "chart" {
			view = reports.BarChart
		}
		fmt.Fprintln(c.app.out, view(summary, c.app.reports.Formatter()))
	default:
		return c.app.usage("unknown view %q", c.view)
	}
	return subcommands.ExitSuccess
}

type incomeCmd struct {
	app  *App
	code string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "add income to a ledger" }
func (*incomeCmd) Usage() string {
	return `ledgerctl income -code <code> <amount>
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Unique code of the ledger.")
}

func (c *incomeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || f.NArg() != 1 {
		return c.app.usage("usage: %s", strings.TrimSpace(c.Usage()))
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		return c.app.usage("invalid amount %q", f.Arg(0))
	}
	l, err := c.app.keeper.AddIncome(ctx, c.code, amount)
	if err != nil {
		return c.app.describe(err)
	}
	fmt.Fprintf(c.app.out, "Balance: %s\n", c.app.reports.Formatter().Format(l.Balance))
	return subcommands.ExitSuccess
}

type expenseCmd struct {
	app  *App
	code string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `ledgerctl expense -code <code> <amount> [explanation...]
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Unique code of the ledger.")
}

func (c *expenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" || f.NArg() < 1 {
		return c.app.usage("usage: %s", strings.TrimSpace(c.Usage()))
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		return c.app.usage("invalid amount %q", f.Arg(0))
	}
	explanation := strings.Join(f.Args()[1:], " ")
	l, err := c.app.keeper.AddExpense(ctx, c.code, amount, explanation)
	if err != nil {
		return c.app.describe(err)
	}
	fmt.Fprintf(c.app.out, "Balance: %s\n", c.app.reports.Formatter().Format(l.Balance))
	return subcommands.ExitSuccess
}

type resetCmd struct {
	app  *App
	code string
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "empty a ledger" }
func (*resetCmd) Usage() string {
	return `ledgerctl reset -code <code>

  Sets the balance to zero and drops every expense. The owner and code stay.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Unique code of the ledger.")
}

func (c *resetCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		return c.app.usage("-code is required")
	}
	if _, err := c.app.keeper.Reset(ctx, c.code); err != nil {
		return c.app.describe(err)
	}
	fmt.Fprintln(c.app.out, "Ledger reset")
	return subcommands.ExitSuccess
}

type forecastCmd struct {
	app  *App
	code string
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project future income and expenses" }
func (*forecastCmd) Usage() string {
	return `ledgerctl forecast -code <code>
`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "code", "", "Unique code of the ledger.")
}

func (c *forecastCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		return c.app.usage("-code is required")
	}
	summary, err := c.app.reports.Summary(ctx, c.code, reports.PeriodAll)
	if err != nil {
		return c.app.describe(err)
	}
	fmt.Fprintln(c.app.out, reports.Forecast(summary, c.app.reports.Formatter()))
	return subcommands.ExitSuccess
}

type pricesCmd struct {
	app *App
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "fetch and display market prices" }
func (*pricesCmd) Usage() string {
	return `ledgerctl prices
`
}

func (*pricesCmd) SetFlags(*flag.FlagSet) {}

func (c *pricesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fmt.Fprintln(c.app.out, reports.Prices(c.app.prices.FetchCurrentPrices(ctx)))
	return subcommands.ExitSuccess
}

// describe prints errors the user can act on without the error chain.
func (a *App) describe(err error) subcommands.ExitStatus {
	switch {
	case errors.Is(err, customerr.ErrNotFound):
		return a.fail("user not found, check the code")
	case errors.Is(err, customerr.ErrInvalidAmount):
		return a.usage("amounts must not be negative, have up to %d integer digits and %d decimal places", ledgers.MaxAmountDigits, ledgers.MaxAmountScale)
	case errors.Is(err, reports.ErrUnknownPeriod):
		return a.usage("unknown period, use week, month or year")
	case customerr.IsDecode(err):
		return a.fail("the ledger record is damaged, repair or restore it: %v", err)
	}
	return a.fail("%v", err)
}
