package messages

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pb "max.ks1230/personal-accountant/internal/api/reports"
	"max.ks1230/personal-accountant/internal/model/customerr"
	ledgermodel "max.ks1230/personal-accountant/internal/model/ledger"
	"max.ks1230/personal-accountant/internal/model/messages/mock"
	"max.ks1230/personal-accountant/internal/model/rates"
	"max.ks1230/personal-accountant/internal/model/reports"
	"max.ks1230/personal-accountant/internal/model/storage"
)

const chatID = int64(100)

type appConfig struct{}

func (appConfig) Currency() string                  { return "USD" }
func (appConfig) ProjectionFactor() decimal.Decimal { return ledgermodel.DefaultFactor }

func newTestHandler(t *testing.T, requester reportRequester) *HandlerService {
	t.Helper()
	keeper := ledgermodel.NewKeeper(storage.NewInMemStorage())
	return NewHandler(keeper, reports.NewService(keeper, nil, appConfig{}), rates.NewBoard(), requester, NewSessions())
}

func send(t *testing.T, h *HandlerService, text string) string {
	t.Helper()
	resp, err := h.HandleMessage(context.Background(), Message{Text: text, ChatID: chatID, Username: "tg_user"})
	require.NoError(t, err, text)
	return resp
}

func register(t *testing.T, h *HandlerService, name string) string {
	t.Helper()
	send(t, h, "/register "+name)
	code, ok := h.sessions.Get(chatID)
	require.True(t, ok)
	return code
}

func Test_Handler_Scenario(t *testing.T) {
	h := newTestHandler(t, nil)

	resp := send(t, h, "/register alice")
	code, ok := h.sessions.Get(chatID)
	require.True(t, ok)
	assert.Contains(t, resp, "Nice to meet you, alice!")
	assert.Contains(t, resp, code)

	assert.Equal(t, "Income added. Balance: $100.00", send(t, h, "/income 100"))
	assert.Equal(t, "Expense added. Balance: $70.00", send(t, h, "/expense 30 lunch at noon"))
	assert.Equal(t, "Balance: $70.00", send(t, h, "/balance"))

	table := send(t, h, "/table")
	assert.Contains(t, table, "1. $30.00 lunch at noon")

	forecast := send(t, h, "/forecast")
	assert.Contains(t, forecast, "Income: $77.00")
	assert.Contains(t, forecast, "Expenses: $33.00")

	chart := send(t, h, "/chart")
	assert.Contains(t, chart, "Income vs expenses")

	assert.Equal(t, resetMessage+". Balance: $0.00", send(t, h, "/reset"))
	assert.Contains(t, send(t, h, "/table"), "No expenses recorded")
}

func Test_Handler_LoginLogout(t *testing.T) {
	h := newTestHandler(t, nil)
	code := register(t, h, "alice")

	assert.Equal(t, logoutMessage, send(t, h, "/logout"))
	assert.Equal(t, notLoggedInMessage, send(t, h, "/balance"))

	assert.Equal(t, userNotFoundMessage, send(t, h, "/login not-a-code"))
	assert.Equal(t, loginUsageMessage, send(t, h, "/login"))
	assert.Equal(t, "Welcome back, alice!", send(t, h, "/login "+code))
	assert.Equal(t, "Balance: $0.00", send(t, h, "/balance"))
}

func Test_Handler_RegisterShouldFallBackToTelegramName(t *testing.T) {
	h := newTestHandler(t, nil)

	assert.Contains(t, send(t, h, "/register"), "Nice to meet you, tg_user!")

	resp, err := h.HandleMessage(context.Background(), Message{Text: "/register", ChatID: 1})
	require.NoError(t, err)
	assert.Equal(t, registerUsageMessage, resp)
}

func Test_Handler_ShouldRejectBadAmounts(t *testing.T) {
	h := newTestHandler(t, nil)
	register(t, h, "alice")

	assert.Equal(t, invalidAmountMessage, send(t, h, "/income -5"))
	assert.Equal(t, invalidAmountMessage, send(t, h, "/expense -5 refund"))
	assert.Equal(t, invalidAmountMessage, send(t, h, "/income 1e30000000"))
	assert.Equal(t, invalidAmountMessage, send(t, h, "/expense 1e-30000000 dust"))
	assert.Equal(t, incorrectAmountMsg, send(t, h, "/income abc"))
	assert.Equal(t, incorrectAmountMsg, send(t, h, "/expense"))
	assert.Equal(t, "Income added. Balance: $12.50", send(t, h, "/income 12,5"))
}

func Test_Handler_ReportInline(t *testing.T) {
	h := newTestHandler(t, nil)
	register(t, h, "alice")
	send(t, h, "/expense 5 tea")

	assert.Equal(t, unknownPeriodMessage, send(t, h, "/report decade"))
	assert.Equal(t, unknownPeriodMessage, send(t, h, "/table decade"))

	report := send(t, h, "/report week")
	assert.Contains(t, report, "# Report for alice")
	assert.Contains(t, report, "tea")
}

func Test_Handler_ReportQueued(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	requester := mock.NewReportRequesterMock(m)
	h := newTestHandler(t, requester)
	code := register(t, h, "alice")

	var queued []*pb.ReportRequest
	requester.RequestReportMock.Set(func(_ context.Context, req *pb.ReportRequest) error {
		queued = append(queued, req)
		if len(queued) > 1 {
			return errors.New("no brokers")
		}
		return nil
	})

	assert.Equal(t, reportQueuedMessage, send(t, h, "/report month"))
	assert.Contains(t, send(t, h, "/report"), "# Report for alice")

	require.Len(t, queued, 2)
	assert.Equal(t, &pb.ReportRequest{LedgerID: code, ChatID: chatID, Period: "month"}, queued[0])
}

func Test_Handler_Prices(t *testing.T) {
	h := newTestHandler(t, nil)

	resp := send(t, h, "/prices")

	assert.Equal(t, 3, strings.Count(resp, "N/A"))
}

func Test_Handler_TextAndUnknownCommands(t *testing.T) {
	h := newTestHandler(t, nil)

	assert.Equal(t, loveToTalkMessage, send(t, h, "hello there"))
	assert.Equal(t, dontUnderstandMessage, send(t, h, "/dance"))
	assert.Equal(t, helpMessage, send(t, h, "/help@accountant_bot"))
}

func Test_ParseCommand(t *testing.T) {
	cmd, arg := parseCommand("  /expense 30   lunch ")
	assert.Equal(t, "/expense", cmd)
	assert.Equal(t, "30   lunch", arg)

	cmd, arg = parseCommand("/start@bot")
	assert.Equal(t, "/start", cmd)
	assert.Empty(t, arg)

	cmd, arg = parseCommand("just text")
	assert.Empty(t, cmd)
	assert.Equal(t, "just text", arg)
}

func Test_DescribeError(t *testing.T) {
	msg, ok := describeError(errors.Wrap(customerr.ErrNotFound, "login"))
	assert.True(t, ok)
	assert.Equal(t, userNotFoundMessage, msg)

	msg, ok = describeError(&customerr.DecodeError{ID: "x", Err: errors.New("bad")})
	assert.True(t, ok)
	assert.Equal(t, damagedLedgerMessage, msg)

	_, ok = describeError(&customerr.IOError{Op: "save", Err: errors.New("disk full")})
	assert.False(t, ok)
}
