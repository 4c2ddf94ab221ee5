package storage

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

// ledgerRecord is the stored document. The field names are those of the
// original data files, where "income" holds the running balance.
type ledgerRecord struct {
	Username string          `json:"username"`
	Income   json.Number     `json:"income"`
	Expenses []expenseRecord `json:"expenses"`
}

type expenseRecord struct {
	Amount      json.Number `json:"amount"`
	Explanation string      `json:"explanation"`
	Created     *time.Time  `json:"created_at,omitempty"`
}

func encodeLedger(l *ledger.Ledger) ([]byte, error) {
	rec := ledgerRecord{
		Username: l.Username,
		Income:   json.Number(formatAmount(l.Balance)),
		Expenses: make([]expenseRecord, 0, len(l.Expenses)),
	}
	for _, e := range l.Expenses {
		exp := expenseRecord{
			Amount:      json.Number(formatAmount(e.Amount)),
			Explanation: e.Explanation,
		}
		if !e.Created.IsZero() {
			created := e.Created.UTC()
			exp.Created = &created
		}
		rec.Expenses = append(rec.Expenses, exp)
	}

	data, err := json.Marshal(rec)
	return data, errors.Wrap(err, "encode ledger")
}

func decodeLedger(id string, data []byte) (*ledger.Ledger, error) {
	var rec ledgerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, &customerr.DecodeError{ID: id, Err: err}
	}

	balance, err := parseAmount(rec.Income)
	if err != nil {
		return nil, &customerr.DecodeError{ID: id, Err: errors.Wrap(err, "income")}
	}

	l := ledger.New(id, rec.Username)
	l.Balance = balance
	for i, exp := range rec.Expenses {
		amount, err := parseAmount(exp.Amount)
		if err != nil {
			return nil, &customerr.DecodeError{ID: id, Err: errors.Wrapf(err, "expense %d", i)}
		}
		entry := ledger.ExpenseEntry{Amount: amount, Explanation: exp.Explanation}
		if exp.Created != nil {
			entry.Created = exp.Created.UTC()
		}
		l.Expenses = append(l.Expenses, entry)
	}
	return l, nil
}

// formatAmount writes d so that parsing it back gives the same coefficient
// and exponent, 30.00 stays 30.00. Ledgers compare amounts by value, the
// exponent only keeps stored records stable across rewrites.
func formatAmount(d decimal.Decimal) string {
	exp := d.Exponent()
	switch {
	case exp < 0:
		return d.StringFixed(-exp)
	case exp > 0:
		return d.Coefficient().String() + "e" + strconv.Itoa(int(exp))
	}
	return d.String()
}

// parseAmount treats a missing number as zero, as the original files did for
// a fresh ledger.
func parseAmount(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(n.String())
}
