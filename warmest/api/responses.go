// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"net/http"

	warmestdata "github.com/ashr123/warmest-data"
)

var (
	_ warmestdata.Response = (*valueRes)(nil)
	_ warmestdata.Response = (*warmestRes)(nil)
	_ warmestdata.Response = (*clearRes)(nil)
)

// valueRes is encoded as a bare JSON integer; an absent value yields an
// empty body.
type valueRes struct {
	value *int
}

func (res valueRes) Code() int {
	return http.StatusOK
}

func (res valueRes) Headers() map[string]string {
	return map[string]string{}
}

func (res valueRes) Empty() bool {
	return res.value == nil
}

func (res valueRes) MarshalJSON() ([]byte, error) {
	return json.Marshal(res.value)
}

// warmestRes is encoded as a bare JSON string.
type warmestRes struct {
	key *string
}

func (res warmestRes) Code() int {
	return http.StatusOK
}

func (res warmestRes) Headers() map[string]string {
	return map[string]string{}
}

func (res warmestRes) Empty() bool {
	return res.key == nil
}

func (res warmestRes) MarshalJSON() ([]byte, error) {
	return json.Marshal(res.key)
}

type clearRes struct{}

func (res clearRes) Code() int {
	return http.StatusNoContent
}

func (res clearRes) Headers() map[string]string {
	return map[string]string{}
}

func (res clearRes) Empty() bool {
	return true
}
