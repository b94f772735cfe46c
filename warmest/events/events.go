// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package events

import (
	"github.com/ashr123/warmest-data/pkg/events"
)

const (
	dataPrefix = "data."
	dataPut    = dataPrefix + "put"
	dataRemove = dataPrefix + "remove"
	dataClear  = dataPrefix + "clear"
)

var (
	_ events.Event = (*putEvent)(nil)
	_ events.Event = (*removeEvent)(nil)
	_ events.Event = (*clearEvent)(nil)
)

type putEvent struct {
	key      string
	value    int
	previous *int
}

func (pe putEvent) Encode() (map[string]interface{}, error) {
	val := map[string]interface{}{
		"operation": dataPut,
		"key":       pe.key,
		"value":     pe.value,
	}
	if pe.previous != nil {
		val["previous"] = *pe.previous
	}

	return val, nil
}

type removeEvent struct {
	key      string
	previous *int
}

func (re removeEvent) Encode() (map[string]interface{}, error) {
	val := map[string]interface{}{
		"operation": dataRemove,
		"key":       re.key,
	}
	if re.previous != nil {
		val["previous"] = *re.previous
	}

	return val, nil
}

type clearEvent struct{}

func (ce clearEvent) Encode() (map[string]interface{}, error) {
	return map[string]interface{}{
		"operation": dataClear,
	}, nil
}
