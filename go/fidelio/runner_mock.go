// Copyright (c) 2024 Fidelio Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fidelio.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package fidelio is a generated GoMock package.
package fidelio

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockRunner is a mock of Runner interface.
type MockRunner struct {
	ctrl     *gomock.Controller
	recorder *MockRunnerMockRecorder
}

// MockRunnerMockRecorder is the mock recorder for MockRunner.
type MockRunnerMockRecorder struct {
	mock *MockRunner
}

// NewMockRunner creates a new mock instance.
func NewMockRunner(ctrl *gomock.Controller) *MockRunner {
	mock := &MockRunner{ctrl: ctrl}
	mock.recorder = &MockRunnerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRunner) EXPECT() *MockRunnerMockRecorder {
	return m.recorder
}

// Call mocks base method.
func (m *MockRunner) Call(source, target Address, input Data, value Value, gasLimit Gas) (CallOutcome, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Call", source, target, input, value, gasLimit)
	ret0, _ := ret[0].(CallOutcome)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Call indicates an expected call of Call.
func (mr *MockRunnerMockRecorder) Call(source, target, input, value, gasLimit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Call", reflect.TypeOf((*MockRunner)(nil).Call), source, target, input, value, gasLimit)
}

// Create mocks base method.
func (m *MockRunner) Create(source Address, initCode Data, value Value, gasLimit Gas) (CreateOutcome, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", source, initCode, value, gasLimit)
	ret0, _ := ret[0].(CreateOutcome)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRunnerMockRecorder) Create(source, initCode, value, gasLimit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRunner)(nil).Create), source, initCode, value, gasLimit)
}

// Create2 mocks base method.
func (m *MockRunner) Create2(source Address, initCode Data, salt Hash, value Value, gasLimit Gas) (CreateOutcome, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create2", source, initCode, salt, value, gasLimit)
	ret0, _ := ret[0].(CreateOutcome)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create2 indicates an expected call of Create2.
func (mr *MockRunnerMockRecorder) Create2(source, initCode, salt, value, gasLimit any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create2", reflect.TypeOf((*MockRunner)(nil).Create2), source, initCode, salt, value, gasLimit)
}
