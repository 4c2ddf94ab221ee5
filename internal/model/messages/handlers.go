package messages

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	pb "max.ks1230/personal-accountant/internal/api/reports"
	"max.ks1230/personal-accountant/internal/entity/ledger"
	"max.ks1230/personal-accountant/internal/entity/price"
	"max.ks1230/personal-accountant/internal/logger"
	"max.ks1230/personal-accountant/internal/model/customerr"
	"max.ks1230/personal-accountant/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am your personal accountant 🤖"
	loveToTalkMessage     = "I would love to talk about it more!"
	sorryMessage          = "Sorry, something wrong happened..."

	registerUsageMessage  = "Tell me your name: /register <name>"
	loginUsageMessage     = "Send me your unique code: /login <code>"
	notLoggedInMessage    = "Please /register or /login first"
	userNotFoundMessage   = "User not found"
	incorrectAmountMsg    = "Your amount is incorrect"
	invalidAmountMessage  = "Amounts must not be negative, have up to 15 digits before the point and up to 8 after it"
	damagedLedgerMessage  = "Your ledger file is damaged. Ask the administrator to repair it"
	unknownPeriodMessage  = "Unknown report period. Use one of: week, month, year"
	reportQueuedMessage   = "Your report is being prepared, I will send it shortly"
	logoutMessage         = "Bye! Use /login with your code to come back"
	resetMessage          = "Your ledger is empty now"

	cannotRegisterMessage = "Can't register you atm. Try later"
	cannotLoadMessage     = "Can't get your ledger atm. Try later"
	cannotSaveMessage     = "Can't save your ledger atm. Try later"
)

const helpMessage = `/register <name> - create a new ledger
/login <code> - open your ledger
/logout - forget this chat's ledger
/income <amount> - add income
/expense <amount> [explanation] - add an expense
/balance - show the balance
/table [week|month|year] - list expenses
/chart - income and expenses charts
/forecast - projected income and expenses
/report [week|month|year] - complete report
/prices - BTC, gold and IRR prices
/reset - empty your ledger`

const (
	startCommand    = "/start"
	helpCommand     = "/help"
	registerCommand = "/register"
	loginCommand    = "/login"
	logoutCommand   = "/logout"
	incomeCommand   = "/income"
	expenseCommand  = "/expense"
	balanceCommand  = "/balance"
	tableCommand    = "/table"
	chartCommand    = "/chart"
	forecastCommand = "/forecast"
	reportCommand   = "/report"
	pricesCommand   = "/prices"
	resetCommand    = "/reset"
)

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

type priceBoard interface {
	Current() price.Prices
}

type reportRequester interface {
	RequestReport(ctx context.Context, req *pb.ReportRequest) error
}

type handler func(ctx context.Context, arg string, msg Message) (string, error)

type ledgerHandler func(ctx context.Context, arg string, chatID int64, ledgerID string) (string, error)

type handlerMap map[string]handler

type HandlerService struct {
	handlersMap handlerMap
	keeper      ledgerKeeper
	reports     reportService
	prices      priceBoard
	requester   reportRequester
	sessions    *Sessions
}

// NewHandler builds the command handler. requester may be nil, reports are
// then rendered inline.
func NewHandler(keeper ledgerKeeper, reports reportService, prices priceBoard, requester reportRequester, sessions *Sessions) *HandlerService {
	res := &HandlerService{
		keeper:    keeper,
		reports:   reports,
		prices:    prices,
		requester: requester,
		sessions:  sessions,
	}
	res.handlersMap = newMap(res)
	return res
}

func (s *HandlerService) HandleMessage(ctx context.Context, msg Message) (string, error) {
	cmd, arg := parseCommand(msg.Text)
	countCommand(cmd)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, msg)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[helpCommand] = s.handleHelp
	m[registerCommand] = s.handleRegister
	m[loginCommand] = s.handleLogin
	m[logoutCommand] = s.handleLogout
	m[incomeCommand] = s.withLedger(s.handleIncome)
	m[expenseCommand] = s.withLedger(s.handleExpense)
	m[balanceCommand] = s.withLedger(s.handleBalance)
	m[tableCommand] = s.withLedger(s.handleTable)
	m[chartCommand] = s.withLedger(s.handleChart)
	m[forecastCommand] = s.withLedger(s.handleForecast)
	m[reportCommand] = s.withLedger(s.handleReport)
	m[pricesCommand] = s.handlePrices
	m[resetCommand] = s.withLedger(s.handleReset)

	m[""] = s.handleNoCommand

	return m
}

// withLedger runs h for the ledger this chat is logged in to.
func (s *HandlerService) withLedger(h ledgerHandler) handler {
	return func(ctx context.Context, arg string, msg Message) (string, error) {
		id, ok := s.sessions.Get(msg.ChatID)
		if !ok {
			return notLoggedInMessage, nil
		}
		return h(ctx, arg, msg.ChatID, id)
	}
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ Message) (string, error) {
	return helloMessage + "\n\n" + helpMessage, nil
}

func (s *HandlerService) handleHelp(_ context.Context, _ string, _ Message) (string, error) {
	return helpMessage, nil
}

func (s *HandlerService) handleRegister(ctx context.Context, arg string, msg Message) (string, error) {
	name := arg
	if name == "" {
		name = msg.Username
	}
	if name == "" {
		return registerUsageMessage, nil
	}

	l, err := s.keeper.Register(ctx, name)
	if err != nil {
		return cannotRegisterMessage, errors.Wrap(err, "handle register")
	}
	s.sessions.Set(msg.ChatID, l.ID)
	return fmt.Sprintf("Nice to meet you, %s! Your unique code is\n%s\nKeep it to /login later.", l.Username, l.ID), nil
}

func (s *HandlerService) handleLogin(ctx context.Context, arg string, msg Message) (string, error) {
	if arg == "" {
		return loginUsageMessage, nil
	}

	l, err := s.keeper.Login(ctx, arg)
	if err != nil {
		return s.answerError(err, cannotLoadMessage, "handle login")
	}
	s.sessions.Set(msg.ChatID, l.ID)
	return fmt.Sprintf("Welcome back, %s!", l.Username), nil
}

func (s *HandlerService) handleLogout(_ context.Context, _ string, msg Message) (string, error) {
	s.sessions.Delete(msg.ChatID)
	return logoutMessage, nil
}

func (s *HandlerService) handleIncome(ctx context.Context, arg string, _ int64, id string) (string, error) {
	amount, err := parseAmount(arg)
	if err != nil {
		return incorrectAmountMsg, nil
	}

	l, err := s.keeper.AddIncome(ctx, id, amount)
	if err != nil {
		return s.answerError(err, cannotSaveMessage, "handle income")
	}
	return "Income added. " + s.balanceLine(l), nil
}

func (s *HandlerService) handleExpense(ctx context.Context, arg string, _ int64, id string) (string, error) {
	amountArg, explanation, _ := strings.Cut(arg, " ")
	amount, err := parseAmount(amountArg)
	if err != nil {
		return incorrectAmountMsg, nil
	}

	l, err := s.keeper.AddExpense(ctx, id, amount, strings.TrimSpace(explanation))
	if err != nil {
		return s.answerError(err, cannotSaveMessage, "handle expense")
	}
	return "Expense added. " + s.balanceLine(l), nil
}

func (s *HandlerService) handleBalance(ctx context.Context, _ string, _ int64, id string) (string, error) {
	l, err := s.keeper.Login(ctx, id)
	if err != nil {
		return s.answerError(err, cannotLoadMessage, "handle balance")
	}
	return s.balanceLine(l), nil
}

func (s *HandlerService) handleTable(ctx context.Context, arg string, _ int64, id string) (string, error) {
	return s.render(ctx, id, arg, "handle table", reports.Table)
}

func (s *HandlerService) handleChart(ctx context.Context, _ string, _ int64, id string) (string, error) {
	return s.render(ctx, id, reports.PeriodAll, "handle chart", reports.BarChart)
}

func (s *HandlerService) handleForecast(ctx context.Context, _ string, _ int64, id string) (string, error) {
	return s.render(ctx, id, reports.PeriodAll, "handle forecast", reports.Forecast)
}

func (s *HandlerService) render(ctx context.Context, id, period, op string, view func(reports.Summary, reports.Formatter) string) (string, error) {
	summary, err := s.reports.Summary(ctx, id, period)
	if errors.Is(err, reports.ErrUnknownPeriod) {
		return unknownPeriodMessage, nil
	}
	if err != nil {
		return s.answerError(err, cannotLoadMessage, op)
	}
	return view(summary, s.reports.Formatter()), nil
}

func (s *HandlerService) handleReport(ctx context.Context, arg string, chatID int64, id string) (string, error) {
	if !validPeriod(arg) {
		return unknownPeriodMessage, nil
	}

	if s.requester != nil {
		err := s.requester.RequestReport(ctx, &pb.ReportRequest{LedgerID: id, ChatID: chatID, Period: arg})
		if err == nil {
			return reportQueuedMessage, nil
		}
		logger.Warn("cannot queue report, rendering inline", zap.String("ledger", id), zap.Error(err))
	}

	report, err := s.reports.Report(ctx, id, arg)
	if err != nil {
		return s.answerError(err, cannotLoadMessage, "handle report")
	}
	return report, nil
}

func (s *HandlerService) handlePrices(_ context.Context, _ string, _ Message) (string, error) {
	return reports.Prices(s.prices.Current()), nil
}

func (s *HandlerService) handleReset(ctx context.Context, _ string, _ int64, id string) (string, error) {
	l, err := s.keeper.Reset(ctx, id)
	if err != nil {
		return s.answerError(err, cannotSaveMessage, "handle reset")
	}
	return resetMessage + ". " + s.balanceLine(l), nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ Message) (string, error) {
	return loveToTalkMessage, nil
}

func (s *HandlerService) balanceLine(l *ledger.Ledger) string {
	return "Balance: " + s.reports.Formatter().Format(l.Balance)
}

// answerError turns errors the user can act on into answers, everything
// else is reported as a failure.
func (s *HandlerService) answerError(err error, failMessage, op string) (string, error) {
	msg, ok := describeError(err)
	if !ok {
		return failMessage, errors.Wrap(err, op)
	}
	if customerr.IsDecode(err) {
		logger.Error("damaged ledger", zap.String("op", op), zap.Error(err))
	}
	return msg, nil
}

func validPeriod(period string) bool {
	for _, p := range reports.ReportPeriods() {
		if p == period {
			return true
		}
	}
	return false
}
