package storage

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

func Test_DecodeLedger_ShouldReadOriginalFileFormat(t *testing.T) {
	data := []byte(`{"username": "bob", "income": 70, "expenses": [{"amount": 30, "explanation": "lunch"}, {"amount": 0.5, "explanation": ""}]}`)

	l, err := decodeLedger("code", data)

	require.NoError(t, err)
	assert.Equal(t, "code", l.ID)
	assert.Equal(t, "bob", l.Username)
	assert.Equal(t, "70", l.Balance.String())
	require.Len(t, l.Expenses, 2)
	assert.Equal(t, "30", l.Expenses[0].Amount.String())
	assert.Equal(t, "lunch", l.Expenses[0].Explanation)
	assert.True(t, l.Expenses[0].Created.IsZero())
	assert.Equal(t, "0.5", l.Expenses[1].Amount.String())
}

func Test_EncodeLedger_ShouldWriteNumbers(t *testing.T) {
	l := sampleLedger()
	l.Expenses = l.Expenses[:1]

	data, err := encodeLedger(l)

	require.NoError(t, err)
	assert.JSONEq(t,
		`{"username":"alice","income":57.55,"expenses":[{"amount":30,"explanation":"lunch","created_at":"2026-10-01T12:30:00Z"}]}`,
		string(data))
}

func Test_EncodeLedger_ShouldKeepAmountExponents(t *testing.T) {
	l := sampleLedger()
	l.Balance = decimal.RequireFromString("30.00")
	l.Expenses[0].Amount = decimal.RequireFromString("1.5e3")
	l.Expenses[1].Amount = decimal.RequireFromString("-0.10")

	data, err := encodeLedger(l)
	require.NoError(t, err)
	decoded, err := decodeLedger(l.ID, data)
	require.NoError(t, err)

	assert.Equal(t, "30.00", decoded.Balance.StringFixed(2))
	assert.Equal(t, l.Balance.Exponent(), decoded.Balance.Exponent())
	for i := range l.Expenses {
		want, got := l.Expenses[i].Amount, decoded.Expenses[i].Amount
		assert.True(t, want.Equal(got), "expense %d: %s != %s", i, want, got)
		assert.Equal(t, want.Exponent(), got.Exponent(), "expense %d exponent", i)
		assert.Equal(t, 0, want.Coefficient().Cmp(got.Coefficient()), "expense %d coefficient", i)
	}
}

func Test_FormatAmount(t *testing.T) {
	for in, want := range map[string]string{
		"30.00":  "30.00",
		"30":     "30",
		"-0.10":  "-0.10",
		"1.5e3":  "15e2",
		"0.0000": "0.0000",
	} {
		assert.Equal(t, want, formatAmount(decimal.RequireFromString(in)), in)
	}
}

func Test_DecodeLedger_ShouldFailWithDecodeError(t *testing.T) {
	for name, data := range map[string]string{
		"truncated":      `{"username": "bob", "income": 7`,
		"not json":       `hello`,
		"bad income":     `{"username": "bob", "income": "lots"}`,
		"bad amount":     `{"username": "bob", "income": 1, "expenses": [{"amount": "x"}]}`,
		"wrong type":     `{"username": 12}`,
		"empty document": ``,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := decodeLedger("code", []byte(data))

			assert.True(t, customerr.IsDecode(err), "got %v", err)
		})
	}
}
