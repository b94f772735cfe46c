// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"github.com/ashr123/warmest-data/internal/api"
	"github.com/ashr123/warmest-data/pkg/apiutil"
)

type putReq struct {
	key   string
	value *int
}

func (req putReq) validate() error {
	if err := validateKey(req.key); err != nil {
		return err
	}
	if req.value == nil {
		return apiutil.ErrInvalidValue
	}

	return nil
}

type keyReq struct {
	key string
}

func (req keyReq) validate() error {
	return validateKey(req.key)
}

func validateKey(key string) error {
	if key == "" {
		return apiutil.ErrMissingKey
	}
	if len(key) > api.MaxKeySize {
		return apiutil.ErrKeySize
	}

	return nil
}
