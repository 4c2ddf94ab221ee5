package reports

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// Formatter prints amounts in one currency.
type Formatter struct {
	currency money.Currency
}

func NewFormatter(code string) Formatter {
	// money.New never returns a nil currency, unknown codes get a bare one
	return Formatter{currency: *money.New(0, code).Currency()}
}

func (f Formatter) Format(d decimal.Decimal) string {
	minor := d.Shift(int32(f.currency.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return formatLarge(f.currency.Formatter(), minor)
	}
	return f.currency.Formatter().Format(minor.IntPart())
}

// formatLarge lays out minor units that do not fit an int64 the way
// money.Formatter does for those that do.
func formatLarge(mf *money.Formatter, minor decimal.Decimal) string {
	sa := minor.Abs().String()
	if len(sa) <= mf.Fraction {
		sa = strings.Repeat("0", mf.Fraction-len(sa)+1) + sa
	}
	if mf.Thousand != "" {
		for i := len(sa) - mf.Fraction - 3; i > 0; i -= 3 {
			sa = sa[:i] + mf.Thousand + sa[i:]
		}
	}
	if mf.Fraction > 0 {
		sa = sa[:len(sa)-mf.Fraction] + mf.Decimal + sa[len(sa)-mf.Fraction:]
	}
	sa = strings.Replace(mf.Template, "1", sa, 1)
	sa = strings.Replace(sa, "$", mf.Grapheme, 1)
	if minor.Sign() < 0 {
		sa = "-" + sa
	}
	return sa
}
