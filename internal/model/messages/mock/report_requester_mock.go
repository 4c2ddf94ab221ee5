package mock

import (
	"context"
	"sync"
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
	pb "max.ks1230/personal-accountant/internal/api/reports"
)

// ReportRequesterMock implements messages.reportRequester. It is kept in the layout minimock generates.
type ReportRequesterMock struct {
	t minimock.Tester

	funcRequestReport          func(ctx context.Context, req *pb.ReportRequest) (err error)
	inspectFuncRequestReport   func(ctx context.Context, req *pb.ReportRequest)
	afterRequestReportCounter  uint64
	beforeRequestReportCounter uint64
	RequestReportMock          mReportRequesterMockRequestReport
}

// NewReportRequesterMock returns a mock registered with the controller when t is one.
func NewReportRequesterMock(t minimock.Tester) *ReportRequesterMock {
	m := &ReportRequesterMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.RequestReportMock = mReportRequesterMockRequestReport{mock: m}
	m.RequestReportMock.callArgs = []*ReportRequesterMockRequestReportParams{}

	return m
}

type mReportRequesterMockRequestReport struct {
	mock               *ReportRequesterMock
	defaultExpectation *ReportRequesterMockRequestReportExpectation
	expectations       []*ReportRequesterMockRequestReportExpectation

	callArgs []*ReportRequesterMockRequestReportParams
	mutex    sync.RWMutex
}

// ReportRequesterMockRequestReportExpectation specifies expectation struct of the ReportRequesterMock.RequestReport
type ReportRequesterMockRequestReportExpectation struct {
	mock    *ReportRequesterMock
	params  *ReportRequesterMockRequestReportParams
	results *ReportRequesterMockRequestReportResults
	Counter uint64
}

// ReportRequesterMockRequestReportParams contains parameters of the ReportRequesterMock.RequestReport
type ReportRequesterMockRequestReportParams struct {
	ctx context.Context
	req *pb.ReportRequest
}

// ReportRequesterMockRequestReportResults contains results of the ReportRequesterMock.RequestReport
type ReportRequesterMockRequestReportResults struct {
	err error
}

// Expect sets up expected params for ReportRequesterMock.RequestReport
func (mmRequestReport *mReportRequesterMockRequestReport) Expect(ctx context.Context, req *pb.ReportRequest) *mReportRequesterMockRequestReport {
	if mmRequestReport.mock.funcRequestReport != nil {
		mmRequestReport.mock.t.Fatalf("ReportRequesterMock.RequestReport mock is already set by Set")
	}

	if mmRequestReport.defaultExpectation == nil {
		mmRequestReport.defaultExpectation = &ReportRequesterMockRequestReportExpectation{}
	}

	mmRequestReport.defaultExpectation.params = &ReportRequesterMockRequestReportParams{ctx, req}
	for _, e := range mmRequestReport.expectations {
		if minimock.Equal(e.params, mmRequestReport.defaultExpectation.params) {
			mmRequestReport.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmRequestReport.defaultExpectation.params)
		}
	}

	return mmRequestReport
}

// Inspect accepts an inspector function that has same arguments as the ReportRequesterMock.RequestReport
func (mmRequestReport *mReportRequesterMockRequestReport) Inspect(f func(ctx context.Context, req *pb.ReportRequest)) *mReportRequesterMockRequestReport {
	if mmRequestReport.mock.inspectFuncRequestReport != nil {
		mmRequestReport.mock.t.Fatalf("Inspect function is already set for ReportRequesterMock.RequestReport")
	}

	mmRequestReport.mock.inspectFuncRequestReport = f

	return mmRequestReport
}

// Return sets up results that will be returned by ReportRequesterMock.RequestReport
func (mmRequestReport *mReportRequesterMockRequestReport) Return(err error) *ReportRequesterMock {
	if mmRequestReport.mock.funcRequestReport != nil {
		mmRequestReport.mock.t.Fatalf("ReportRequesterMock.RequestReport mock is already set by Set")
	}

	if mmRequestReport.defaultExpectation == nil {
		mmRequestReport.defaultExpectation = &ReportRequesterMockRequestReportExpectation{mock: mmRequestReport.mock}
	}
	mmRequestReport.defaultExpectation.results = &ReportRequesterMockRequestReportResults{err}
	return mmRequestReport.mock
}

// Set uses given function f to mock the ReportRequesterMock.RequestReport method
func (mmRequestReport *mReportRequesterMockRequestReport) Set(f func(ctx context.Context, req *pb.ReportRequest) (err error)) *ReportRequesterMock {
	if mmRequestReport.defaultExpectation != nil {
		mmRequestReport.mock.t.Fatalf("Default expectation is already set for the ReportRequesterMock.RequestReport method")
	}

	if len(mmRequestReport.expectations) > 0 {
		mmRequestReport.mock.t.Fatalf("Some expectations are already set for the ReportRequesterMock.RequestReport method")
	}

	mmRequestReport.mock.funcRequestReport = f
	return mmRequestReport.mock
}

// When sets expectation for the ReportRequesterMock.RequestReport which will trigger the result defined by the following
// Then helper
func (mmRequestReport *mReportRequesterMockRequestReport) When(ctx context.Context, req *pb.ReportRequest) *ReportRequesterMockRequestReportExpectation {
	if mmRequestReport.mock.funcRequestReport != nil {
		mmRequestReport.mock.t.Fatalf("ReportRequesterMock.RequestReport mock is already set by Set")
	}

	expectation := &ReportRequesterMockRequestReportExpectation{
		mock:   mmRequestReport.mock,
		params: &ReportRequesterMockRequestReportParams{ctx, req},
	}
	mmRequestReport.expectations = append(mmRequestReport.expectations, expectation)
	return expectation
}

// Then sets up ReportRequesterMock.RequestReport return parameters for the expectation previously defined by the When method
func (e *ReportRequesterMockRequestReportExpectation) Then(err error) *ReportRequesterMock {
	e.results = &ReportRequesterMockRequestReportResults{err}
	return e.mock
}

// RequestReport implements the mocked interface
func (mmRequestReport *ReportRequesterMock) RequestReport(ctx context.Context, req *pb.ReportRequest) (err error) {
	mm_atomic.AddUint64(&mmRequestReport.beforeRequestReportCounter, 1)
	defer mm_atomic.AddUint64(&mmRequestReport.afterRequestReportCounter, 1)

	if mmRequestReport.inspectFuncRequestReport != nil {
		mmRequestReport.inspectFuncRequestReport(ctx, req)
	}

	mm_params := &ReportRequesterMockRequestReportParams{ctx, req}

	// Record call args
	mmRequestReport.RequestReportMock.mutex.Lock()
	mmRequestReport.RequestReportMock.callArgs = append(mmRequestReport.RequestReportMock.callArgs, mm_params)
	mmRequestReport.RequestReportMock.mutex.Unlock()

	for _, e := range mmRequestReport.RequestReportMock.expectations {
		if minimock.Equal(e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmRequestReport.RequestReportMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmRequestReport.RequestReportMock.defaultExpectation.Counter, 1)
		mm_want := mmRequestReport.RequestReportMock.defaultExpectation.params
		mm_got := ReportRequesterMockRequestReportParams{ctx, req}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmRequestReport.t.Errorf("ReportRequesterMock.RequestReport got unexpected parameters, want: %#v, got: %#v\n", *mm_want, mm_got)
		}

		mm_results := mmRequestReport.RequestReportMock.defaultExpectation.results
		if mm_results == nil {
			mmRequestReport.t.Fatal("No results are set for the ReportRequesterMock.RequestReport")
		}
		return (*mm_results).err
	}
	if mmRequestReport.funcRequestReport != nil {
		return mmRequestReport.funcRequestReport(ctx, req)
	}
	mmRequestReport.t.Fatalf("Unexpected call to ReportRequesterMock.RequestReport. %v %v", ctx, req)
	return
}

// RequestReportAfterCounter returns a count of finished ReportRequesterMock.RequestReport invocations
func (mmRequestReport *ReportRequesterMock) RequestReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRequestReport.afterRequestReportCounter)
}

// RequestReportBeforeCounter returns a count of ReportRequesterMock.RequestReport invocations
func (mmRequestReport *ReportRequesterMock) RequestReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmRequestReport.beforeRequestReportCounter)
}

// Calls returns a list of arguments used in each call to ReportRequesterMock.RequestReport.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmRequestReport *mReportRequesterMockRequestReport) Calls() []*ReportRequesterMockRequestReportParams {
	mmRequestReport.mutex.RLock()

	argCopy := make([]*ReportRequesterMockRequestReportParams, len(mmRequestReport.callArgs))
	copy(argCopy, mmRequestReport.callArgs)

	mmRequestReport.mutex.RUnlock()

	return argCopy
}

// MinimockRequestReportDone returns true if the count of the RequestReport invocations corresponds
// the number of defined expectations
func (m *ReportRequesterMock) MinimockRequestReportDone() bool {
	for _, e := range m.RequestReportMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.RequestReportMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterRequestReportCounter) < 1 {
		return false
	}
	// if func was set then invocations count should be greater than zero
	if m.funcRequestReport != nil && mm_atomic.LoadUint64(&m.afterRequestReportCounter) < 1 {
		return false
	}
	return true
}

// MinimockRequestReportInspect logs each unmet expectation
func (m *ReportRequesterMock) MinimockRequestReportInspect() {
	for _, e := range m.RequestReportMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ReportRequesterMock.RequestReport with params: %#v", *e.params)
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.RequestReportMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterRequestReportCounter) < 1 {
		if m.RequestReportMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ReportRequesterMock.RequestReport")
		} else {
			m.t.Errorf("Expected call to ReportRequesterMock.RequestReport with params: %#v", *m.RequestReportMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcRequestReport != nil && mm_atomic.LoadUint64(&m.afterRequestReportCounter) < 1 {
		m.t.Error("Expected call to ReportRequesterMock.RequestReport")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times.
func (m *ReportRequesterMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockRequestReportInspect()
		m.t.FailNow()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times.
func (m *ReportRequesterMock) MinimockWait(timeout time.Duration) {
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

func (m *ReportRequesterMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockRequestReportDone()
}
