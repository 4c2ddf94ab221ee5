package cli

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/personal-accountant/internal/entity/price"
	ledgers "max.ks1230/personal-accountant/internal/model/ledger"
	"max.ks1230/personal-accountant/internal/model/reports"
	"max.ks1230/personal-accountant/internal/model/storage"
)

type appConfig struct{}

func (appConfig) Currency() string                  { return "USD" }
func (appConfig) ProjectionFactor() decimal.Decimal { return decimal.RequireFromString("1.1") }

type fixedPrices price.Prices

func (p fixedPrices) FetchCurrentPrices(context.Context) price.Prices { return price.Prices(p) }

type testApp struct {
	*App
	out    *bytes.Buffer
	errOut *bytes.Buffer
}

func newTestApp(prices price.Prices) testApp {
	keeper := ledgers.NewKeeper(storage.NewInMemStorage())
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	app := NewApp(keeper, reports.NewService(keeper, nil, appConfig{}), fixedPrices(prices), out, errOut)
	app.SetPlain(true)
	return testApp{App: app, out: out, errOut: errOut}
}

func (a testApp) run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	a.out.Reset()
	a.errOut.Reset()

	f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(f)
	require.NoError(t, f.Parse(args))
	return cmd.Execute(context.Background(), f)
}

func (a testApp) register(t *testing.T, name string) string {
	t.Helper()
	require.Equal(t, subcommands.ExitSuccess, a.run(t, &registerCmd{app: a.App}, "-name", name))
	fields := strings.Fields(a.out.String())
	require.NotEmpty(t, fields)
	return fields[len(fields)-1]
}

func Test_Register_ShouldRequireName(t *testing.T) {
	app := newTestApp(price.NoPrices())

	status := app.run(t, &registerCmd{app: app.App})

	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, app.errOut.String(), "-name is required")
}

func Test_LedgerCommands_ShouldWorkOnOneLedger(t *testing.T) {
	app := newTestApp(price.NoPrices())
	code := app.register(t, "alice")
	assert.Contains(t, app.out.String(), "Registered alice")

	assert.Equal(t, subcommands.ExitSuccess, app.run(t, &incomeCmd{app: app.App}, "-code", code, "10"))
	assert.Equal(t, "Balance: $10.00\n", app.out.String())

	assert.Equal(t, subcommands.ExitSuccess, app.run(t, &expenseCmd{app: app.App}, "-code", code, "4", "coffee", "beans"))
	assert.Equal(t, "Balance: $6.00\n", app.out.String())

	assert.Equal(t, subcommands.ExitSuccess, app.run(t, &showCmd{app: app.App}, "-code", code, "-view", "table"))
	assert.Contains(t, app.out.String(), "coffee beans")
	assert.Contains(t, app.out.String(), "Balance: $6.00")

	assert.Equal(t, subcommands.ExitSuccess, app.run(t, &showCmd{app: app.App}, "-code", code))
	assert.Contains(t, app.out.String(), "coffee beans")

	assert.Equal(t, subcommands.ExitSuccess, app.run(t, &forecastCmd{app: app.App}, "-code", code))
	assert.Contains(t, app.out.String(), "Income: $6.60")
	assert.Contains(t, app.out.String(), "Expenses: $4.40")

	assert.Equal(t, subcommands.ExitSuccess, app.run(t, &resetCmd{app: app.App}, "-code", code))
	assert.Equal(t, subcommands.ExitSuccess, app.run(t, &showCmd{app: app.App}, "-code", code, "-view", "table"))
	assert.Contains(t, app.out.String(), "Balance: $0.00")
	assert.NotContains(t, app.out.String(), "coffee")
}

func Test_Income_ShouldRejectNegativeAmount(t *testing.T) {
	app := newTestApp(price.NoPrices())
	code := app.register(t, "bob")

	status := app.run(t, &incomeCmd{app: app.App}, "-code", code, "--", "-5")

	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, app.errOut.String(), "must not be negative")
}

func Test_Expense_ShouldRejectHugeExponent(t *testing.T) {
	app := newTestApp(price.NoPrices())
	code := app.register(t, "bob")

	status := app.run(t, &expenseCmd{app: app.App}, "-code", code, "--", "1e30000000", "yacht")

	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, app.errOut.String(), "integer digits")
}

func Test_Expense_ShouldRejectMalformedAmount(t *testing.T) {
	app := newTestApp(price.NoPrices())
	code := app.register(t, "bob")

	status := app.run(t, &expenseCmd{app: app.App}, "-code", code, "ten")

	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, app.errOut.String(), `invalid amount "ten"`)
}

func Test_Commands_ShouldReportUnknownCode(t *testing.T) {
	app := newTestApp(price.NoPrices())

	status := app.run(t, &showCmd{app: app.App}, "-code", "missing")

	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, app.errOut.String(), "user not found")
}

func Test_Show_ShouldRejectUnknownViewAndPeriod(t *testing.T) {
	app := newTestApp(price.NoPrices())
	code := app.register(t, "carol")

	assert.Equal(t, subcommands.ExitUsageError, app.run(t, &showCmd{app: app.App}, "-code", code, "-view", "pie"))
	assert.Equal(t, subcommands.ExitUsageError, app.run(t, &showCmd{app: app.App}, "-code", code, "-view", "table", "-period", "decade"))
	assert.Contains(t, app.errOut.String(), "unknown period")
}

func Test_Prices_ShouldShowEveryQuote(t *testing.T) {
	prices := price.NoPrices().With(price.Quote{Name: price.BTCUSD, Value: 65000, Available: true, UpdatedAt: time.Now()})
	app := newTestApp(prices)

	assert.Equal(t, subcommands.ExitSuccess, app.run(t, &pricesCmd{app: app.App}))
	assert.Contains(t, app.out.String(), "65000")
	assert.Contains(t, app.out.String(), "N/A")
}
