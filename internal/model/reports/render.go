package reports

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"max.ks1230/personal-accountant/internal/entity/price"
)

const (
	dateLayout   = "02.01.2006"
	barWidth     = 20
	barChar      = "█"
	notAvailable = "N/A"
)

const noExpensesMessage = "No expenses recorded"

// Table lists the period's expenses followed by the balance.
func Table(s Summary, f Formatter) string {
	var b strings.Builder
	if len(s.Expenses) == 0 {
		b.WriteString(noExpensesMessage + "\n")
	}
	for i, e := range s.Expenses {
		fmt.Fprintf(&b, "%d. %s", i+1, f.Format(e.Amount))
		if e.Explanation != "" {
			fmt.Fprintf(&b, " %s", e.Explanation)
		}
		if !e.Created.IsZero() {
			fmt.Fprintf(&b, " (%s)", e.Created.Local().Format(dateLayout))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nSpent: %s\nBalance: %s", f.Format(s.PeriodSpent()), f.Format(s.Balance))
	return b.String()
}

type bar struct {
	label string
	value decimal.Decimal
	text  string
}

// BarChart draws current income against expenses and the projected values.
func BarChart(s Summary, f Formatter) string {
	var b strings.Builder
	b.WriteString("Income vs expenses\n")
	b.WriteString(drawBars([]bar{
		{label: "Income", value: s.Income, text: f.Format(s.Income)},
		{label: "Expenses", value: s.Spent, text: f.Format(s.Spent)},
	}))
	fmt.Fprintf(&b, "\nFuture income and expenses (x%s)\n", s.Projection.Factor)
	b.WriteString(drawBars([]bar{
		{label: "Income", value: s.Projection.Balance, text: f.Format(s.Projection.Balance)},
		{label: "Expenses", value: s.Projection.Expenses, text: f.Format(s.Projection.Expenses)},
	}))
	return b.String()
}

// Forecast is the textual form of the projection.
func Forecast(s Summary, f Formatter) string {
	return fmt.Sprintf("Projected with factor %s\nIncome: %s\nExpenses: %s",
		s.Projection.Factor,
		f.Format(s.Projection.Balance),
		f.Format(s.Projection.Expenses))
}

// Prices draws the quotes on one scale. Unavailable quotes get no bar.
func Prices(p price.Prices) string {
	bars := make([]bar, 0, len(price.Names))
	for _, q := range p.Quotes() {
		if !q.Available {
			bars = append(bars, bar{label: q.Name, text: notAvailable})
			continue
		}
		bars = append(bars, bar{
			label: q.Name,
			value: decimal.NewFromFloat(q.Value),
			text:  strconv.FormatFloat(q.Value, 'f', -1, 64),
		})
	}
	return "Prices in USD\n" + drawBars(bars)
}

// drawBars scales bars to the largest value. Negative values draw as empty.
func drawBars(bars []bar) string {
	maxValue := decimal.Zero
	labelWidth := 0
	for _, br := range bars {
		if br.value.GreaterThan(maxValue) {
			maxValue = br.value
		}
		if len(br.label) > labelWidth {
			labelWidth = len(br.label)
		}
	}

	var b strings.Builder
	for _, br := range bars {
		n := 0
		if maxValue.IsPositive() && br.value.IsPositive() {
			n = int(br.value.Mul(decimal.NewFromInt(barWidth)).Div(maxValue).Round(0).IntPart())
			if n == 0 {
				n = 1
			}
		}
		fmt.Fprintf(&b, "%-*s %s %s\n", labelWidth, br.label, strings.Repeat(barChar, n), br.text)
	}
	return b.String()
}

// Markdown renders the complete report.
func Markdown(s Summary, f Formatter) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Report for %s\n\n", s.Username)
	if s.Period != PeriodAll {
		fmt.Fprintf(&b, "Period: this %s\n\n", s.Period)
	}

	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Income | %s |\n", f.Format(s.Income))
	fmt.Fprintf(&b, "| Expenses | %s |\n", f.Format(s.Spent))
	fmt.Fprintf(&b, "| **Balance** | **%s** |\n\n", f.Format(s.Balance))

	fmt.Fprint(&b, "## Expenses\n\n")
	if len(s.Expenses) == 0 {
		fmt.Fprintf(&b, "%s\n\n", noExpensesMessage)
	} else {
		fmt.Fprintln(&b, "| # | Date | Explanation | Amount |")
		fmt.Fprintln(&b, "|---:|:---|:---|---:|")
		for i, e := range s.Expenses {
			date := ""
			if !e.Created.IsZero() {
				date = e.Created.Local().Format(dateLayout)
			}
			fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, date, escapeCell(e.Explanation), f.Format(e.Amount))
		}
		fmt.Fprintf(&b, "| | | **Total** | **%s** |\n\n", f.Format(s.PeriodSpent()))
	}

	fmt.Fprint(&b, "## Projection\n\n")
	fmt.Fprintf(&b, "With factor %s: income %s, expenses %s.\n",
		s.Projection.Factor,
		f.Format(s.Projection.Balance),
		f.Format(s.Projection.Expenses))
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
