// Package reports turns ledgers into tables, charts and complete reports.
package reports

import (
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	ledgermodel "max.ks1230/personal-accountant/internal/model/ledger"
)

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var reportPeriods = []string{PeriodAll, PeriodWeek, PeriodMonth, PeriodYear}

// ErrUnknownPeriod is returned for a period outside ReportPeriods.
var ErrUnknownPeriod = errors.New("report period is not supported")

// Summary is everything a report shows about one ledger.
type Summary struct {
	LedgerID    string
	Username    string
	Period      string
	Balance     decimal.Decimal
	Income      decimal.Decimal
	Spent       decimal.Decimal
	Expenses    []ledger.ExpenseEntry
	Projection  ledgermodel.Projection
	GeneratedAt time.Time
}

// PeriodSpent sums the expenses that fall into the report period.
func (s Summary) PeriodSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

type Generator struct {
	now func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Build summarizes l. Balance, income and projection always cover the whole
// ledger, only the expense rows are limited to the period.
func (g *Generator) Build(l *ledger.Ledger, period string, factor decimal.Decimal) (Summary, error) {
	at := g.now()
	from, err := periodStart(period, at)
	if err != nil {
		return Summary{}, err
	}

	spent := l.ExpenseTotal()
	return Summary{
		LedgerID:    l.ID,
		Username:    l.Username,
		Period:      period,
		Balance:     l.Balance,
		Income:      l.Balance.Add(spent),
		Spent:       spent,
		Expenses:    filterExpensesFrom(l.Expenses, from),
		Projection:  ledgermodel.Project(l, factor),
		GeneratedAt: at,
	}, nil
}

func periodStart(period string, at time.Time) (time.Time, error) {
	t := now.With(at)
	switch period {
	case PeriodAll:
		return time.Time{}, nil
	case PeriodWeek:
		return t.BeginningOfWeek(), nil
	case PeriodMonth:
		return t.BeginningOfMonth(), nil
	case PeriodYear:
		return t.BeginningOfYear(), nil
	}
	return time.Time{}, errors.Wrapf(ErrUnknownPeriod, "period %q", period)
}

// filterExpensesFrom keeps entries created at or after from. Entries without
// a creation time only show in the unfiltered report.
func filterExpensesFrom(exps []ledger.ExpenseEntry, from time.Time) []ledger.ExpenseEntry {
	res := make([]ledger.ExpenseEntry, 0, len(exps))
	for _, exp := range exps {
		if from.IsZero() || !exp.Created.Before(from) && !exp.Created.IsZero() {
			res = append(res, exp)
		}
	}
	return res
}

func ReportPeriods() []string {
	res := make([]string, len(reportPeriods))
	copy(res, reportPeriods)
	return res
}
