package mock

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	"max.ks1230/personal-accountant/internal/entity/ledger"
)

// LedgerLoaderMock implements reports.ledgerLoader. It is kept in the layout minimock generates.
type LedgerLoaderMock struct {
	t minimock.Tester

	funcLogin          func(ctx context.Context, id string) (lp1 *ledger.Ledger, err error)
	inspectFuncLogin   func(ctx context.Context, id string)
	afterLoginCounter  uint64
	beforeLoginCounter uint64
	LoginMock          mLedgerLoaderMockLogin
}

// NewLedgerLoaderMock returns a mock registered with the controller when t is one.
func NewLedgerLoaderMock(t minimock.Tester) *LedgerLoaderMock {
	m := &LedgerLoaderMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.LoginMock = mLedgerLoaderMockLogin{mock: m}
	m.LoginMock.callArgs = []*LedgerLoaderMockLoginParams{}

	return m
}

type mLedgerLoaderMockLogin struct {
	mock               *LedgerLoaderMock
	defaultExpectation *LedgerLoaderMockLoginExpectation
	expectations       []*LedgerLoaderMockLoginExpectation

	callArgs []*LedgerLoaderMockLoginParams
	mutex    sync.RWMutex
}

// LedgerLoaderMockLoginExpectation specifies expectation struct of the LedgerLoaderMock.Login
type LedgerLoaderMockLoginExpectation struct {
	mock    *LedgerLoaderMock
	params  *LedgerLoaderMockLoginParams
	results *LedgerLoaderMockLoginResults
	Counter uint64
}

// LedgerLoaderMockLoginParams contains parameters of the LedgerLoaderMock.Login
type LedgerLoaderMockLoginParams struct {
	ctx context.Context
	id  string
}

// LedgerLoaderMockLoginResults contains results of the LedgerLoaderMock.Login
type LedgerLoaderMockLoginResults struct {
	lp1 *ledger.Ledger
	err error
}

// Expect sets up expected params for LedgerLoaderMock.Login
func (mmLogin *mLedgerLoaderMockLogin) Expect(ctx context.Context, id string) *mLedgerLoaderMockLogin {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("LedgerLoaderMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &LedgerLoaderMockLoginExpectation{}
	}

	mmLogin.defaultExpectation.params = &LedgerLoaderMockLoginParams{ctx, id}
	for _, e := range mmLogin.expectations {
		if minimock.Equal(e.params, mmLogin.defaultExpectation.params) {
			mmLogin.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmLogin.defaultExpectation.params)
		}
	}

	return mmLogin
}

// Inspect accepts an inspector function that has same arguments as the LedgerLoaderMock.Login
func (mmLogin *mLedgerLoaderMockLogin) Inspect(f func(ctx context.Context, id string)) *mLedgerLoaderMockLogin {
	if mmLogin.mock.inspectFuncLogin != nil {
		mmLogin.mock.t.Fatalf("Inspect function is already set for LedgerLoaderMock.Login")
	}

	mmLogin.mock.inspectFuncLogin = f

	return mmLogin
}

// Return sets up results that will be returned by LedgerLoaderMock.Login
func (mmLogin *mLedgerLoaderMockLogin) Return(lp1 *ledger.Ledger, err error) *LedgerLoaderMock {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("LedgerLoaderMock.Login mock is already set by Set")
	}

	if mmLogin.defaultExpectation == nil {
		mmLogin.defaultExpectation = &LedgerLoaderMockLoginExpectation{mock: mmLogin.mock}
	}
	mmLogin.defaultExpectation.results = &LedgerLoaderMockLoginResults{lp1, err}
	return mmLogin.mock
}

// Set uses given function f to mock the LedgerLoaderMock.Login method
func (mmLogin *mLedgerLoaderMockLogin) Set(f func(ctx context.Context, id string) (lp1 *ledger.Ledger, err error)) *LedgerLoaderMock {
	if mmLogin.defaultExpectation != nil {
		mmLogin.mock.t.Fatalf("Default expectation is already set for the LedgerLoaderMock.Login method")
	}

	if len(mmLogin.expectations) > 0 {
		mmLogin.mock.t.Fatalf("Some expectations are already set for the LedgerLoaderMock.Login method")
	}

	mmLogin.mock.funcLogin = f
	return mmLogin.mock
}

// When sets expectation for the LedgerLoaderMock.Login which will trigger the result defined by the following
// Then helper
func (mmLogin *mLedgerLoaderMockLogin) When(ctx context.Context, id string) *LedgerLoaderMockLoginExpectation {
	if mmLogin.mock.funcLogin != nil {
		mmLogin.mock.t.Fatalf("LedgerLoaderMock.Login mock is already set by Set")
	}

	expectation := &LedgerLoaderMockLoginExpectation{
		mock:   mmLogin.mock,
		params: &LedgerLoaderMockLoginParams{ctx, id},
	}
	mmLogin.expectations = append(mmLogin.expectations, expectation)
	return expectation
}

// Then sets up LedgerLoaderMock.Login return parameters for the expectation previously defined by the When method
func (e *LedgerLoaderMockLoginExpectation) Then(lp1 *ledger.Ledger, err error) *LedgerLoaderMock {
	e.results = &LedgerLoaderMockLoginResults{lp1, err}
	return e.mock
}

// Login implements the mocked interface
func (mmLogin *LedgerLoaderMock) Login(ctx context.Context, id string) (lp1 *ledger.Ledger, err error) {
	mm_atomic.AddUint64(&mmLogin.beforeLoginCounter, 1)
	defer mm_atomic.AddUint64(&mmLogin.afterLoginCounter, 1)

	if mmLogin.inspectFuncLogin != nil {
		mmLogin.inspectFuncLogin(ctx, id)
	}

	mm_params := &LedgerLoaderMockLoginParams{ctx, id}

	// Record call args
	mmLogin.LoginMock.mutex.Lock()
	mmLogin.LoginMock.callArgs = append(mmLogin.LoginMock.callArgs, mm_params)
	mmLogin.LoginMock.mutex.Unlock()

	for _, e := range mmLogin.LoginMock.expectations {
		if minimock.Equal(e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.lp1, e.results.err
		}
	}

	if mmLogin.LoginMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmLogin.LoginMock.defaultExpectation.Counter, 1)
		mm_want := mmLogin.LoginMock.defaultExpectation.params
		mm_got := LedgerLoaderMockLoginParams{ctx, id}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmLogin.t.Errorf("LedgerLoaderMock.Login got unexpected parameters, want: %#v, got: %#v\n", *mm_want, mm_got)
		}

		mm_results := mmLogin.LoginMock.defaultExpectation.results
		if mm_results == nil {
			mmLogin.t.Fatal("No results are set for the LedgerLoaderMock.Login")
		}
		return (*mm_results).lp1, (*mm_results).err
	}
	if mmLogin.funcLogin != nil {
		return mmLogin.funcLogin(ctx, id)
	}
	mmLogin.t.Fatalf("Unexpected call to LedgerLoaderMock.Login. %v %v", ctx, id)
	return
}

// LoginAfterCounter returns a count of finished LedgerLoaderMock.Login invocations
func (mmLogin *LedgerLoaderMock) LoginAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLogin.afterLoginCounter)
}

// LoginBeforeCounter returns a count of LedgerLoaderMock.Login invocations
func (mmLogin *LedgerLoaderMock) LoginBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmLogin.beforeLoginCounter)
}

// Calls returns a list of arguments used in each call to LedgerLoaderMock.Login.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmLogin *mLedgerLoaderMockLogin) Calls() []*LedgerLoaderMockLoginParams {
	mmLogin.mutex.RLock()

	argCopy := make([]*LedgerLoaderMockLoginParams, len(mmLogin.callArgs))
	copy(argCopy, mmLogin.callArgs)

	mmLogin.mutex.RUnlock()

	return argCopy
}

// MinimockLoginDone returns true if the count of the Login invocations corresponds
// the number of defined expectations
func (m *LedgerLoaderMock) MinimockLoginDone() bool {
	for _, e := range m.LoginMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.LoginMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterLoginCounter) < 1 {
		return false
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLogin != nil && mm_atomic.LoadUint64(&m.afterLoginCounter) < 1 {
		return false
	}
	return true
}

// MinimockLoginInspect logs each unmet expectation
func (m *LedgerLoaderMock) MinimockLoginInspect() {
	for _, e := range m.LoginMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to LedgerLoaderMock.Login with params: %#v", *e.params)
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.LoginMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterLoginCounter) < 1 {
		if m.LoginMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to LedgerLoaderMock.Login")
		} else {
			m.t.Errorf("Expected call to LedgerLoaderMock.Login with params: %#v", *m.LoginMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcLogin != nil && mm_atomic.LoadUint64(&m.afterLoginCounter) < 1 {
		m.t.Error("Expected call to LedgerLoaderMock.Login")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times.
func (m *LedgerLoaderMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockLoginInspect()
		m.t.FailNow()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times.
func (m *LedgerLoaderMock) MinimockWait(timeout time.Duration) {
	timeoutCh := time.After(timeout)
	for {
		if m.minimockDone() {
			return
		}
		select {
		case <-timeoutCh:
			m.MinimockFinish()
			return
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func (m *LedgerLoaderMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockLoginDone()
}
