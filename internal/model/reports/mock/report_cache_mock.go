package mock

import (
	"sync"
	mm_atomic "sync/atomic"
	"time"

	"github.com/gojuno/minimock/v3"
)

// ReportCacheMock implements reports.reportCache. It is kept in the layout minimock generates.
type ReportCacheMock struct {
	t minimock.Tester

	funcCacheReport          func(ledgerID string, period string, version uint64, report string) (err error)
	inspectFuncCacheReport   func(ledgerID string, period string, version uint64, report string)
	afterCacheReportCounter  uint64
	beforeCacheReportCounter uint64
	CacheReportMock          mReportCacheMockCacheReport

	funcGetReport          func(ledgerID string, period string, version uint64) (s1 string, err error)
	inspectFuncGetReport   func(ledgerID string, period string, version uint64)
	afterGetReportCounter  uint64
	beforeGetReportCounter uint64
	GetReportMock          mReportCacheMockGetReport

	funcReportVersion          func(ledgerID string) (u1 uint64, err error)
	inspectFuncReportVersion   func(ledgerID string)
	afterReportVersionCounter  uint64
	beforeReportVersionCounter uint64
	ReportVersionMock          mReportCacheMockReportVersion
}

// NewReportCacheMock returns a mock registered with the controller when t is one.
func NewReportCacheMock(t minimock.Tester) *ReportCacheMock {
	m := &ReportCacheMock{t: t}
	if controller, ok := t.(minimock.MockController); ok {
		controller.RegisterMocker(m)
	}

	m.CacheReportMock = mReportCacheMockCacheReport{mock: m}
	m.CacheReportMock.callArgs = []*ReportCacheMockCacheReportParams{}
	m.GetReportMock = mReportCacheMockGetReport{mock: m}
	m.GetReportMock.callArgs = []*ReportCacheMockGetReportParams{}
	m.ReportVersionMock = mReportCacheMockReportVersion{mock: m}
	m.ReportVersionMock.callArgs = []*ReportCacheMockReportVersionParams{}

	return m
}

type mReportCacheMockCacheReport struct {
	mock               *ReportCacheMock
	defaultExpectation *ReportCacheMockCacheReportExpectation
	expectations       []*ReportCacheMockCacheReportExpectation

	callArgs []*ReportCacheMockCacheReportParams
	mutex    sync.RWMutex
}

// ReportCacheMockCacheReportExpectation specifies expectation struct of the ReportCacheMock.CacheReport
type ReportCacheMockCacheReportExpectation struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockCacheReportParams
	results *ReportCacheMockCacheReportResults
	Counter uint64
}

// ReportCacheMockCacheReportParams contains parameters of the ReportCacheMock.CacheReport
type ReportCacheMockCacheReportParams struct {
	ledgerID string
	period   string
	version  uint64
	report   string
}

// ReportCacheMockCacheReportResults contains results of the ReportCacheMock.CacheReport
type ReportCacheMockCacheReportResults struct {
	err error
}

// Expect sets up expected params for ReportCacheMock.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Expect(ledgerID string, period string, version uint64, report string) *mReportCacheMockCacheReport {
	if mmCacheReport.mock.funcCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("ReportCacheMock.CacheReport mock is already set by Set")
	}

	if mmCacheReport.defaultExpectation == nil {
		mmCacheReport.defaultExpectation = &ReportCacheMockCacheReportExpectation{}
	}

	mmCacheReport.defaultExpectation.params = &ReportCacheMockCacheReportParams{ledgerID, period, version, report}
	for _, e := range mmCacheReport.expectations {
		if minimock.Equal(e.params, mmCacheReport.defaultExpectation.params) {
			mmCacheReport.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmCacheReport.defaultExpectation.params)
		}
	}

	return mmCacheReport
}

// Inspect accepts an inspector function that has same arguments as the ReportCacheMock.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Inspect(f func(ledgerID string, period string, version uint64, report string)) *mReportCacheMockCacheReport {
	if mmCacheReport.mock.inspectFuncCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.CacheReport")
	}

	mmCacheReport.mock.inspectFuncCacheReport = f

	return mmCacheReport
}

// Return sets up results that will be returned by ReportCacheMock.CacheReport
func (mmCacheReport *mReportCacheMockCacheReport) Return(err error) *ReportCacheMock {
	if mmCacheReport.mock.funcCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("ReportCacheMock.CacheReport mock is already set by Set")
	}

	if mmCacheReport.defaultExpectation == nil {
		mmCacheReport.defaultExpectation = &ReportCacheMockCacheReportExpectation{mock: mmCacheReport.mock}
	}
	mmCacheReport.defaultExpectation.results = &ReportCacheMockCacheReportResults{err}
	return mmCacheReport.mock
}

// Set uses given function f to mock the ReportCacheMock.CacheReport method
func (mmCacheReport *mReportCacheMockCacheReport) Set(f func(ledgerID string, period string, version uint64, report string) (err error)) *ReportCacheMock {
	if mmCacheReport.defaultExpectation != nil {
		mmCacheReport.mock.t.Fatalf("Default expectation is already set for the ReportCacheMock.CacheReport method")
	}

	if len(mmCacheReport.expectations) > 0 {
		mmCacheReport.mock.t.Fatalf("Some expectations are already set for the ReportCacheMock.CacheReport method")
	}

	mmCacheReport.mock.funcCacheReport = f
	return mmCacheReport.mock
}

// When sets expectation for the ReportCacheMock.CacheReport which will trigger the result defined by the following
// Then helper
func (mmCacheReport *mReportCacheMockCacheReport) When(ledgerID string, period string, version uint64, report string) *ReportCacheMockCacheReportExpectation {
	if mmCacheReport.mock.funcCacheReport != nil {
		mmCacheReport.mock.t.Fatalf("ReportCacheMock.CacheReport mock is already set by Set")
	}

	expectation := &ReportCacheMockCacheReportExpectation{
		mock:   mmCacheReport.mock,
		params: &ReportCacheMockCacheReportParams{ledgerID, period, version, report},
	}
	mmCacheReport.expectations = append(mmCacheReport.expectations, expectation)
	return expectation
}

// Then sets up ReportCacheMock.CacheReport return parameters for the expectation previously defined by the When method
func (e *ReportCacheMockCacheReportExpectation) Then(err error) *ReportCacheMock {
	e.results = &ReportCacheMockCacheReportResults{err}
	return e.mock
}

// CacheReport implements the mocked interface
func (mmCacheReport *ReportCacheMock) CacheReport(ledgerID string, period string, version uint64, report string) (err error) {
	mm_atomic.AddUint64(&mmCacheReport.beforeCacheReportCounter, 1)
	defer mm_atomic.AddUint64(&mmCacheReport.afterCacheReportCounter, 1)

	if mmCacheReport.inspectFuncCacheReport != nil {
		mmCacheReport.inspectFuncCacheReport(ledgerID, period, version, report)
	}

	mm_params := &ReportCacheMockCacheReportParams{ledgerID, period, version, report}

	// Record call args
	mmCacheReport.CacheReportMock.mutex.Lock()
	mmCacheReport.CacheReportMock.callArgs = append(mmCacheReport.CacheReportMock.callArgs, mm_params)
	mmCacheReport.CacheReportMock.mutex.Unlock()

	for _, e := range mmCacheReport.CacheReportMock.expectations {
		if minimock.Equal(e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.err
		}
	}

	if mmCacheReport.CacheReportMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmCacheReport.CacheReportMock.defaultExpectation.Counter, 1)
		mm_want := mmCacheReport.CacheReportMock.defaultExpectation.params
		mm_got := ReportCacheMockCacheReportParams{ledgerID, period, version, report}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmCacheReport.t.Errorf("ReportCacheMock.CacheReport got unexpected parameters, want: %#v, got: %#v\n", *mm_want, mm_got)
		}

		mm_results := mmCacheReport.CacheReportMock.defaultExpectation.results
		if mm_results == nil {
			mmCacheReport.t.Fatal("No results are set for the ReportCacheMock.CacheReport")
		}
		return (*mm_results).err
	}
	if mmCacheReport.funcCacheReport != nil {
		return mmCacheReport.funcCacheReport(ledgerID, period, version, report)
	}
	mmCacheReport.t.Fatalf("Unexpected call to ReportCacheMock.CacheReport. %v %v %v %v", ledgerID, period, version, report)
	return
}

// CacheReportAfterCounter returns a count of finished ReportCacheMock.CacheReport invocations
func (mmCacheReport *ReportCacheMock) CacheReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCacheReport.afterCacheReportCounter)
}

// CacheReportBeforeCounter returns a count of ReportCacheMock.CacheReport invocations
func (mmCacheReport *ReportCacheMock) CacheReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmCacheReport.beforeCacheReportCounter)
}

// Calls returns a list of arguments used in each call to ReportCacheMock.CacheReport.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmCacheReport *mReportCacheMockCacheReport) Calls() []*ReportCacheMockCacheReportParams {
	mmCacheReport.mutex.RLock()

	argCopy := make([]*ReportCacheMockCacheReportParams, len(mmCacheReport.callArgs))
	copy(argCopy, mmCacheReport.callArgs)

	mmCacheReport.mutex.RUnlock()

	return argCopy
}

// MinimockCacheReportDone returns true if the count of the CacheReport invocations corresponds
// the number of defined expectations
func (m *ReportCacheMock) MinimockCacheReportDone() bool {
	for _, e := range m.CacheReportMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.CacheReportMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterCacheReportCounter) < 1 {
		return false
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCacheReport != nil && mm_atomic.LoadUint64(&m.afterCacheReportCounter) < 1 {
		return false
	}
	return true
}

// MinimockCacheReportInspect logs each unmet expectation
func (m *ReportCacheMock) MinimockCacheReportInspect() {
	for _, e := range m.CacheReportMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ReportCacheMock.CacheReport with params: %#v", *e.params)
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.CacheReportMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterCacheReportCounter) < 1 {
		if m.CacheReportMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ReportCacheMock.CacheReport")
		} else {
			m.t.Errorf("Expected call to ReportCacheMock.CacheReport with params: %#v", *m.CacheReportMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcCacheReport != nil && mm_atomic.LoadUint64(&m.afterCacheReportCounter) < 1 {
		m.t.Error("Expected call to ReportCacheMock.CacheReport")
	}
}

type mReportCacheMockGetReport struct {
	mock               *ReportCacheMock
	defaultExpectation *ReportCacheMockGetReportExpectation
	expectations       []*ReportCacheMockGetReportExpectation

	callArgs []*ReportCacheMockGetReportParams
	mutex    sync.RWMutex
}

// ReportCacheMockGetReportExpectation specifies expectation struct of the ReportCacheMock.GetReport
type ReportCacheMockGetReportExpectation struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockGetReportParams
	results *ReportCacheMockGetReportResults
	Counter uint64
}

// ReportCacheMockGetReportParams contains parameters of the ReportCacheMock.GetReport
type ReportCacheMockGetReportParams struct {
	ledgerID string
	period   string
	version  uint64
}

// ReportCacheMockGetReportResults contains results of the ReportCacheMock.GetReport
type ReportCacheMockGetReportResults struct {
	s1  string
	err error
}

// Expect sets up expected params for ReportCacheMock.GetReport
func (mmGetReport *mReportCacheMockGetReport) Expect(ledgerID string, period string, version uint64) *mReportCacheMockGetReport {
	if mmGetReport.mock.funcGetReport != nil {
		mmGetReport.mock.t.Fatalf("ReportCacheMock.GetReport mock is already set by Set")
	}

	if mmGetReport.defaultExpectation == nil {
		mmGetReport.defaultExpectation = &ReportCacheMockGetReportExpectation{}
	}

	mmGetReport.defaultExpectation.params = &ReportCacheMockGetReportParams{ledgerID, period, version}
	for _, e := range mmGetReport.expectations {
		if minimock.Equal(e.params, mmGetReport.defaultExpectation.params) {
			mmGetReport.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmGetReport.defaultExpectation.params)
		}
	}

	return mmGetReport
}

// Inspect accepts an inspector function that has same arguments as the ReportCacheMock.GetReport
func (mmGetReport *mReportCacheMockGetReport) Inspect(f func(ledgerID string, period string, version uint64)) *mReportCacheMockGetReport {
	if mmGetReport.mock.inspectFuncGetReport != nil {
		mmGetReport.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.GetReport")
	}

	mmGetReport.mock.inspectFuncGetReport = f

	return mmGetReport
}

// Return sets up results that will be returned by ReportCacheMock.GetReport
func (mmGetReport *mReportCacheMockGetReport) Return(s1 string, err error) *ReportCacheMock {
	if mmGetReport.mock.funcGetReport != nil {
		mmGetReport.mock.t.Fatalf("ReportCacheMock.GetReport mock is already set by Set")
	}

	if mmGetReport.defaultExpectation == nil {
		mmGetReport.defaultExpectation = &ReportCacheMockGetReportExpectation{mock: mmGetReport.mock}
	}
	mmGetReport.defaultExpectation.results = &ReportCacheMockGetReportResults{s1, err}
	return mmGetReport.mock
}

// Set uses given function f to mock the ReportCacheMock.GetReport method
func (mmGetReport *mReportCacheMockGetReport) Set(f func(ledgerID string, period string, version uint64) (s1 string, err error)) *ReportCacheMock {
	if mmGetReport.defaultExpectation != nil {
		mmGetReport.mock.t.Fatalf("Default expectation is already set for the ReportCacheMock.GetReport method")
	}

	if len(mmGetReport.expectations) > 0 {
		mmGetReport.mock.t.Fatalf("Some expectations are already set for the ReportCacheMock.GetReport method")
	}

	mmGetReport.mock.funcGetReport = f
	return mmGetReport.mock
}

// When sets expectation for the ReportCacheMock.GetReport which will trigger the result defined by the following
// Then helper
func (mmGetReport *mReportCacheMockGetReport) When(ledgerID string, period string, version uint64) *ReportCacheMockGetReportExpectation {
	if mmGetReport.mock.funcGetReport != nil {
		mmGetReport.mock.t.Fatalf("ReportCacheMock.GetReport mock is already set by Set")
	}

	expectation := &ReportCacheMockGetReportExpectation{
		mock:   mmGetReport.mock,
		params: &ReportCacheMockGetReportParams{ledgerID, period, version},
	}
	mmGetReport.expectations = append(mmGetReport.expectations, expectation)
	return expectation
}

// Then sets up ReportCacheMock.GetReport return parameters for the expectation previously defined by the When method
func (e *ReportCacheMockGetReportExpectation) Then(s1 string, err error) *ReportCacheMock {
	e.results = &ReportCacheMockGetReportResults{s1, err}
	return e.mock
}

// GetReport implements the mocked interface
func (mmGetReport *ReportCacheMock) GetReport(ledgerID string, period string, version uint64) (s1 string, err error) {
	mm_atomic.AddUint64(&mmGetReport.beforeGetReportCounter, 1)
	defer mm_atomic.AddUint64(&mmGetReport.afterGetReportCounter, 1)

	if mmGetReport.inspectFuncGetReport != nil {
		mmGetReport.inspectFuncGetReport(ledgerID, period, version)
	}

	mm_params := &ReportCacheMockGetReportParams{ledgerID, period, version}

	// Record call args
	mmGetReport.GetReportMock.mutex.Lock()
	mmGetReport.GetReportMock.callArgs = append(mmGetReport.GetReportMock.callArgs, mm_params)
	mmGetReport.GetReportMock.mutex.Unlock()

	for _, e := range mmGetReport.GetReportMock.expectations {
		if minimock.Equal(e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.s1, e.results.err
		}
	}

	if mmGetReport.GetReportMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmGetReport.GetReportMock.defaultExpectation.Counter, 1)
		mm_want := mmGetReport.GetReportMock.defaultExpectation.params
		mm_got := ReportCacheMockGetReportParams{ledgerID, period, version}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmGetReport.t.Errorf("ReportCacheMock.GetReport got unexpected parameters, want: %#v, got: %#v\n", *mm_want, mm_got)
		}

		mm_results := mmGetReport.GetReportMock.defaultExpectation.results
		if mm_results == nil {
			mmGetReport.t.Fatal("No results are set for the ReportCacheMock.GetReport")
		}
		return (*mm_results).s1, (*mm_results).err
	}
	if mmGetReport.funcGetReport != nil {
		return mmGetReport.funcGetReport(ledgerID, period, version)
	}
	mmGetReport.t.Fatalf("Unexpected call to ReportCacheMock.GetReport. %v %v %v", ledgerID, period, version)
	return
}

// GetReportAfterCounter returns a count of finished ReportCacheMock.GetReport invocations
func (mmGetReport *ReportCacheMock) GetReportAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetReport.afterGetReportCounter)
}

// GetReportBeforeCounter returns a count of ReportCacheMock.GetReport invocations
func (mmGetReport *ReportCacheMock) GetReportBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmGetReport.beforeGetReportCounter)
}

// Calls returns a list of arguments used in each call to ReportCacheMock.GetReport.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmGetReport *mReportCacheMockGetReport) Calls() []*ReportCacheMockGetReportParams {
	mmGetReport.mutex.RLock()

	argCopy := make([]*ReportCacheMockGetReportParams, len(mmGetReport.callArgs))
	copy(argCopy, mmGetReport.callArgs)

	mmGetReport.mutex.RUnlock()

	return argCopy
}

// MinimockGetReportDone returns true if the count of the GetReport invocations corresponds
// the number of defined expectations
func (m *ReportCacheMock) MinimockGetReportDone() bool {
	for _, e := range m.GetReportMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.GetReportMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterGetReportCounter) < 1 {
		return false
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetReport != nil && mm_atomic.LoadUint64(&m.afterGetReportCounter) < 1 {
		return false
	}
	return true
}

// MinimockGetReportInspect logs each unmet expectation
func (m *ReportCacheMock) MinimockGetReportInspect() {
	for _, e := range m.GetReportMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ReportCacheMock.GetReport with params: %#v", *e.params)
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.GetReportMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterGetReportCounter) < 1 {
		if m.GetReportMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ReportCacheMock.GetReport")
		} else {
			m.t.Errorf("Expected call to ReportCacheMock.GetReport with params: %#v", *m.GetReportMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcGetReport != nil && mm_atomic.LoadUint64(&m.afterGetReportCounter) < 1 {
		m.t.Error("Expected call to ReportCacheMock.GetReport")
	}
}

type mReportCacheMockReportVersion struct {
	mock               *ReportCacheMock
	defaultExpectation *ReportCacheMockReportVersionExpectation
	expectations       []*ReportCacheMockReportVersionExpectation

	callArgs []*ReportCacheMockReportVersionParams
	mutex    sync.RWMutex
}

// ReportCacheMockReportVersionExpectation specifies expectation struct of the ReportCacheMock.ReportVersion
type ReportCacheMockReportVersionExpectation struct {
	mock    *ReportCacheMock
	params  *ReportCacheMockReportVersionParams
	results *ReportCacheMockReportVersionResults
	Counter uint64
}

// ReportCacheMockReportVersionParams contains parameters of the ReportCacheMock.ReportVersion
type ReportCacheMockReportVersionParams struct {
	ledgerID string
}

// ReportCacheMockReportVersionResults contains results of the ReportCacheMock.ReportVersion
type ReportCacheMockReportVersionResults struct {
	u1  uint64
	err error
}

// Expect sets up expected params for ReportCacheMock.ReportVersion
func (mmReportVersion *mReportCacheMockReportVersion) Expect(ledgerID string) *mReportCacheMockReportVersion {
	if mmReportVersion.mock.funcReportVersion != nil {
		mmReportVersion.mock.t.Fatalf("ReportCacheMock.ReportVersion mock is already set by Set")
	}

	if mmReportVersion.defaultExpectation == nil {
		mmReportVersion.defaultExpectation = &ReportCacheMockReportVersionExpectation{}
	}

	mmReportVersion.defaultExpectation.params = &ReportCacheMockReportVersionParams{ledgerID}
	for _, e := range mmReportVersion.expectations {
		if minimock.Equal(e.params, mmReportVersion.defaultExpectation.params) {
			mmReportVersion.mock.t.Fatalf("Expectation set by When has same params: %#v", *mmReportVersion.defaultExpectation.params)
		}
	}

	return mmReportVersion
}

// Inspect accepts an inspector function that has same arguments as the ReportCacheMock.ReportVersion
func (mmReportVersion *mReportCacheMockReportVersion) Inspect(f func(ledgerID string)) *mReportCacheMockReportVersion {
	if mmReportVersion.mock.inspectFuncReportVersion != nil {
		mmReportVersion.mock.t.Fatalf("Inspect function is already set for ReportCacheMock.ReportVersion")
	}

	mmReportVersion.mock.inspectFuncReportVersion = f

	return mmReportVersion
}

// Return sets up results that will be returned by ReportCacheMock.ReportVersion
func (mmReportVersion *mReportCacheMockReportVersion) Return(u1 uint64, err error) *ReportCacheMock {
	if mmReportVersion.mock.funcReportVersion != nil {
		mmReportVersion.mock.t.Fatalf("ReportCacheMock.ReportVersion mock is already set by Set")
	}

	if mmReportVersion.defaultExpectation == nil {
		mmReportVersion.defaultExpectation = &ReportCacheMockReportVersionExpectation{mock: mmReportVersion.mock}
	}
	mmReportVersion.defaultExpectation.results = &ReportCacheMockReportVersionResults{u1, err}
	return mmReportVersion.mock
}

// Set uses given function f to mock the ReportCacheMock.ReportVersion method
func (mmReportVersion *mReportCacheMockReportVersion) Set(f func(ledgerID string) (u1 uint64, err error)) *ReportCacheMock {
	if mmReportVersion.defaultExpectation != nil {
		mmReportVersion.mock.t.Fatalf("Default expectation is already set for the ReportCacheMock.ReportVersion method")
	}

	if len(mmReportVersion.expectations) > 0 {
		mmReportVersion.mock.t.Fatalf("Some expectations are already set for the ReportCacheMock.ReportVersion method")
	}

	mmReportVersion.mock.funcReportVersion = f
	return mmReportVersion.mock
}

// When sets expectation for the ReportCacheMock.ReportVersion which will trigger the result defined by the following
// Then helper
func (mmReportVersion *mReportCacheMockReportVersion) When(ledgerID string) *ReportCacheMockReportVersionExpectation {
	if mmReportVersion.mock.funcReportVersion != nil {
		mmReportVersion.mock.t.Fatalf("ReportCacheMock.ReportVersion mock is already set by Set")
	}

	expectation := &ReportCacheMockReportVersionExpectation{
		mock:   mmReportVersion.mock,
		params: &ReportCacheMockReportVersionParams{ledgerID},
	}
	mmReportVersion.expectations = append(mmReportVersion.expectations, expectation)
	return expectation
}

// Then sets up ReportCacheMock.ReportVersion return parameters for the expectation previously defined by the When method
func (e *ReportCacheMockReportVersionExpectation) Then(u1 uint64, err error) *ReportCacheMock {
	e.results = &ReportCacheMockReportVersionResults{u1, err}
	return e.mock
}

// ReportVersion implements the mocked interface
func (mmReportVersion *ReportCacheMock) ReportVersion(ledgerID string) (u1 uint64, err error) {
	mm_atomic.AddUint64(&mmReportVersion.beforeReportVersionCounter, 1)
	defer mm_atomic.AddUint64(&mmReportVersion.afterReportVersionCounter, 1)

	if mmReportVersion.inspectFuncReportVersion != nil {
		mmReportVersion.inspectFuncReportVersion(ledgerID)
	}

	mm_params := &ReportCacheMockReportVersionParams{ledgerID}

	// Record call args
	mmReportVersion.ReportVersionMock.mutex.Lock()
	mmReportVersion.ReportVersionMock.callArgs = append(mmReportVersion.ReportVersionMock.callArgs, mm_params)
	mmReportVersion.ReportVersionMock.mutex.Unlock()

	for _, e := range mmReportVersion.ReportVersionMock.expectations {
		if minimock.Equal(e.params, mm_params) {
			mm_atomic.AddUint64(&e.Counter, 1)
			return e.results.u1, e.results.err
		}
	}

	if mmReportVersion.ReportVersionMock.defaultExpectation != nil {
		mm_atomic.AddUint64(&mmReportVersion.ReportVersionMock.defaultExpectation.Counter, 1)
		mm_want := mmReportVersion.ReportVersionMock.defaultExpectation.params
		mm_got := ReportCacheMockReportVersionParams{ledgerID}
		if mm_want != nil && !minimock.Equal(*mm_want, mm_got) {
			mmReportVersion.t.Errorf("ReportCacheMock.ReportVersion got unexpected parameters, want: %#v, got: %#v\n", *mm_want, mm_got)
		}

		mm_results := mmReportVersion.ReportVersionMock.defaultExpectation.results
		if mm_results == nil {
			mmReportVersion.t.Fatal("No results are set for the ReportCacheMock.ReportVersion")
		}
		return (*mm_results).u1, (*mm_results).err
	}
	if mmReportVersion.funcReportVersion != nil {
		return mmReportVersion.funcReportVersion(ledgerID)
	}
	mmReportVersion.t.Fatalf("Unexpected call to ReportCacheMock.ReportVersion. %v", ledgerID)
	return
}

// ReportVersionAfterCounter returns a count of finished ReportCacheMock.ReportVersion invocations
func (mmReportVersion *ReportCacheMock) ReportVersionAfterCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReportVersion.afterReportVersionCounter)
}

// ReportVersionBeforeCounter returns a count of ReportCacheMock.ReportVersion invocations
func (mmReportVersion *ReportCacheMock) ReportVersionBeforeCounter() uint64 {
	return mm_atomic.LoadUint64(&mmReportVersion.beforeReportVersionCounter)
}

// Calls returns a list of arguments used in each call to ReportCacheMock.ReportVersion.
// The list is in the same order as the calls were made (i.e. recent calls have a higher index)
func (mmReportVersion *mReportCacheMockReportVersion) Calls() []*ReportCacheMockReportVersionParams {
	mmReportVersion.mutex.RLock()

	argCopy := make([]*ReportCacheMockReportVersionParams, len(mmReportVersion.callArgs))
	copy(argCopy, mmReportVersion.callArgs)

	mmReportVersion.mutex.RUnlock()

	return argCopy
}

// MinimockReportVersionDone returns true if the count of the ReportVersion invocations corresponds
// the number of defined expectations
func (m *ReportCacheMock) MinimockReportVersionDone() bool {
	for _, e := range m.ReportVersionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			return false
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.ReportVersionMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterReportVersionCounter) < 1 {
		return false
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReportVersion != nil && mm_atomic.LoadUint64(&m.afterReportVersionCounter) < 1 {
		return false
	}
	return true
}

// MinimockReportVersionInspect logs each unmet expectation
func (m *ReportCacheMock) MinimockReportVersionInspect() {
	for _, e := range m.ReportVersionMock.expectations {
		if mm_atomic.LoadUint64(&e.Counter) < 1 {
			m.t.Errorf("Expected call to ReportCacheMock.ReportVersion with params: %#v", *e.params)
		}
	}

	// if default expectation was set then invocations count should be greater than zero
	if m.ReportVersionMock.defaultExpectation != nil && mm_atomic.LoadUint64(&m.afterReportVersionCounter) < 1 {
		if m.ReportVersionMock.defaultExpectation.params == nil {
			m.t.Error("Expected call to ReportCacheMock.ReportVersion")
		} else {
			m.t.Errorf("Expected call to ReportCacheMock.ReportVersion with params: %#v", *m.ReportVersionMock.defaultExpectation.params)
		}
	}
	// if func was set then invocations count should be greater than zero
	if m.funcReportVersion != nil && mm_atomic.LoadUint64(&m.afterReportVersionCounter) < 1 {
		m.t.Error("Expected call to ReportCacheMock.ReportVersion")
	}
}

// MinimockFinish checks that all mocked methods have been called the expected number of times.
func (m *ReportCacheMock) MinimockFinish() {
	if !m.minimockDone() {
		m.MinimockCacheReportInspect()
		m.MinimockGetReportInspect()
		m.MinimockReportVersionInspect()
		m.t.FailNow()
	}
}

// MinimockWait waits for all mocked methods to be called the expected number of times.
func (m *ReportCacheMock) MinimockWait(timeout time.Duration) {
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

func (m *ReportCacheMock) minimockDone() bool {
	done := true
	return done &&
		m.MinimockCacheReportDone() &&
		m.MinimockGetReportDone() &&
		m.MinimockReportVersionDone()
}
