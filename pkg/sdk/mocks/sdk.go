// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package mocks

import (
	errors "github.com/ashr123/warmest-data/pkg/errors"
	mock "github.com/stretchr/testify/mock"

	sdk "github.com/ashr123/warmest-data/pkg/sdk/go"
)

// SDK is an autogenerated mock type for the SDK type
type SDK struct {
	mock.Mock
}

// Clear provides a mock function with no fields
func (_m *SDK) Clear() errors.SDKError {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Clear")
	}

	var r0 errors.SDKError
	if rf, ok := ret.Get(0).(func() errors.SDKError); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(errors.SDKError)
		}
	}

	return r0
}

// Drain provides a mock function with no fields
func (_m *SDK) Drain() ([]string, errors.SDKError) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Drain")
	}

	var r0 []string
	var r1 errors.SDKError
	if rf, ok := ret.Get(0).(func() ([]string, errors.SDKError)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() []string); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]string)
		}
	}

	if rf, ok := ret.Get(1).(func() errors.SDKError); ok {
		r1 = rf()
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(errors.SDKError)
		}
	}

	return r0, r1
}

// Get provides a mock function with given fields: key
func (_m *SDK) Get(key string) (int, errors.SDKError) {
	ret := _m.Called(key)

	if len(ret) == 0 {
		panic("no return value specified for Get")
	}

	var r0 int
	var r1 errors.SDKError
	if rf, ok := ret.Get(0).(func(string) (int, errors.SDKError)); ok {
		return rf(key)
	}
	if rf, ok := ret.Get(0).(func(string) int); ok {
		r0 = rf(key)
	} else {
		r0 = ret.Get(0).(int)
	}

	if rf, ok := ret.Get(1).(func(string) errors.SDKError); ok {
		r1 = rf(key)
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(errors.SDKError)
		}
	}

	return r0, r1
}

// Health provides a mock function with no fields
func (_m *SDK) Health() (sdk.HealthInfo, errors.SDKError) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Health")
	}

	var r0 sdk.HealthInfo
	var r1 errors.SDKError
	if rf, ok := ret.Get(0).(func() (sdk.HealthInfo, errors.SDKError)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() sdk.HealthInfo); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(sdk.HealthInfo)
	}

	if rf, ok := ret.Get(1).(func() errors.SDKError); ok {
		r1 = rf()
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(errors.SDKError)
		}
	}

	return r0, r1
}

// Put provides a mock function with given fields: key, value
func (_m *SDK) Put(key string, value int) (*int, errors.SDKError) {
	ret := _m.Called(key, value)

	if len(ret) == 0 {
		panic("no return value specified for Put")
	}

	var r0 *int
	var r1 errors.SDKError
	if rf, ok := ret.Get(0).(func(string, int) (*int, errors.SDKError)); ok {
		return rf(key, value)
	}
	if rf, ok := ret.Get(0).(func(string, int) *int); ok {
		r0 = rf(key, value)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*int)
		}
	}

	if rf, ok := ret.Get(1).(func(string, int) errors.SDKError); ok {
		r1 = rf(key, value)
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(errors.SDKError)
		}
	}

	return r0, r1
}

// Remove provides a mock function with given fields: key
func (_m *SDK) Remove(key string) (*int, errors.SDKError) {
	ret := _m.Called(key)

	if len(ret) == 0 {
		panic("no return value specified for Remove")
	}

	var r0 *int
	var r1 errors.SDKError
	if rf, ok := ret.Get(0).(func(string) (*int, errors.SDKError)); ok {
		return rf(key)
	}
	if rf, ok := ret.Get(0).(func(string) *int); ok {
		r0 = rf(key)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*int)
		}
	}

	if rf, ok := ret.Get(1).(func(string) errors.SDKError); ok {
		r1 = rf(key)
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(errors.SDKError)
		}
	}

	return r0, r1
}

// Warmest provides a mock function with no fields
func (_m *SDK) Warmest() (*string, errors.SDKError) {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Warmest")
	}

	var r0 *string
	var r1 errors.SDKError
	if rf, ok := ret.Get(0).(func() (*string, errors.SDKError)); ok {
		return rf()
	}
	if rf, ok := ret.Get(0).(func() *string); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*string)
		}
	}

	if rf, ok := ret.Get(1).(func() errors.SDKError); ok {
		r1 = rf()
	} else {
		if ret.Get(1) != nil {
			r1 = ret.Get(1).(errors.SDKError)
		}
	}

	return r0, r1
}

// NewSDK creates a new instance of SDK. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewSDK(t interface {
	mock.TestingT
	Cleanup(func())
}) *SDK {
	mock := &SDK{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
