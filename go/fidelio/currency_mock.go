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

// MockCurrency is a mock of Currency interface.
type MockCurrency struct {
	ctrl     *gomock.Controller
	recorder *MockCurrencyMockRecorder
}

// MockCurrencyMockRecorder is the mock recorder for MockCurrency.
type MockCurrencyMockRecorder struct {
	mock *MockCurrency
}

// NewMockCurrency creates a new mock instance.
func NewMockCurrency(ctrl *gomock.Controller) *MockCurrency {
	mock := &MockCurrency{ctrl: ctrl}
	mock.recorder = &MockCurrencyMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockCurrency) EXPECT() *MockCurrencyMockRecorder {
	return m.recorder
}

// DepositCreating mocks base method.
func (m *MockCurrency) DepositCreating(identity NativeIdentity, amount Value) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "DepositCreating", identity, amount)
}

// DepositCreating indicates an expected call of DepositCreating.
func (mr *MockCurrencyMockRecorder) DepositCreating(identity, amount any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DepositCreating", reflect.TypeOf((*MockCurrency)(nil).DepositCreating), identity, amount)
}

// FreeBalance mocks base method.
func (m *MockCurrency) FreeBalance(identity NativeIdentity) Value {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FreeBalance", identity)
	ret0, _ := ret[0].(Value)
	return ret0
}

// FreeBalance indicates an expected call of FreeBalance.
func (mr *MockCurrencyMockRecorder) FreeBalance(identity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FreeBalance", reflect.TypeOf((*MockCurrency)(nil).FreeBalance), identity)
}

// Transfer mocks base method.
func (m *MockCurrency) Transfer(from, to NativeIdentity, amount Value, policy ExistencePolicy) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Transfer", from, to, amount, policy)
	ret0, _ := ret[0].(error)
	return ret0
}

// Transfer indicates an expected call of Transfer.
func (mr *MockCurrencyMockRecorder) Transfer(from, to, amount, policy any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Transfer", reflect.TypeOf((*MockCurrency)(nil).Transfer), from, to, amount, policy)
}

// MockNonceAccountant is a mock of NonceAccountant interface.
type MockNonceAccountant struct {
	ctrl     *gomock.Controller
	recorder *MockNonceAccountantMockRecorder
}

// MockNonceAccountantMockRecorder is the mock recorder for MockNonceAccountant.
type MockNonceAccountantMockRecorder struct {
	mock *MockNonceAccountant
}

// NewMockNonceAccountant creates a new mock instance.
func NewMockNonceAccountant(ctrl *gomock.Controller) *MockNonceAccountant {
	mock := &MockNonceAccountant{ctrl: ctrl}
	mock.recorder = &MockNonceAccountantMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockNonceAccountant) EXPECT() *MockNonceAccountantMockRecorder {
	return m.recorder
}

// AccountNonce mocks base method.
func (m *MockNonceAccountant) AccountNonce(identity NativeIdentity) uint64 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "AccountNonce", identity)
	ret0, _ := ret[0].(uint64)
	return ret0
}

// AccountNonce indicates an expected call of AccountNonce.
func (mr *MockNonceAccountantMockRecorder) AccountNonce(identity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "AccountNonce", reflect.TypeOf((*MockNonceAccountant)(nil).AccountNonce), identity)
}

// IncAccountNonce mocks base method.
func (m *MockNonceAccountant) IncAccountNonce(identity NativeIdentity) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "IncAccountNonce", identity)
}

// IncAccountNonce indicates an expected call of IncAccountNonce.
func (mr *MockNonceAccountantMockRecorder) IncAccountNonce(identity any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncAccountNonce", reflect.TypeOf((*MockNonceAccountant)(nil).IncAccountNonce), identity)
}
