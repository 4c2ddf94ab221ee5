package messages

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"max.ks1230/personal-accountant/internal/model/customerr"
)

const commandParts = 2

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return "", text
	}
	split := strings.SplitN(text, " ", commandParts)
	cmd = split[0]
	// commands sent from group chats carry the bot name
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	if len(split) == commandParts {
		arg = strings.TrimSpace(split[1])
	}
	return cmd, arg
}

// parseAmount accepts both decimal separators.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, errors.New("empty amount")
	}
	return decimal.NewFromString(s)
}

// describeError returns the answer for errors the user can act on. ok is
// false for failures of the bot itself.
func describeError(err error) (msg string, ok bool) {
	switch {
	case errors.Is(err, customerr.ErrNotFound):
		return userNotFoundMessage, true
	case errors.Is(err, customerr.ErrInvalidAmount):
		return invalidAmountMessage, true
	case customerr.IsDecode(err):
		return damagedLedgerMessage, true
	}
	return "", false
}
