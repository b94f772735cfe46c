// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package apiutil

import "github.com/ashr123/warmest-data/pkg/errors"

// Errors defined in this file are used by the LoggingErrorEncoder decorator
// to distinguish and log API request validation errors and avoid that service
// errors are logged twice.
var (
	// ErrValidation indicates that an error was returned by the API.
	ErrValidation = errors.New("something went wrong with the request")

	// ErrMissingKey indicates missing data key.
	ErrMissingKey = errors.New("missing data key")

	// ErrKeySize indicates that key size exceeds the max.
	ErrKeySize = errors.New("invalid key size")

	// ErrInvalidValue indicates a request body that is not a JSON integer.
	ErrInvalidValue = errors.New("value must be a JSON integer")

	// ErrUnsupportedContentType indicates unacceptable or lack of Content-Type.
	ErrUnsupportedContentType = errors.New("unsupported content type")
)
