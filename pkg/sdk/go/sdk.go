// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ashr123/warmest-data/pkg/errors"
)

// CTJSON represents JSON content type.
const CTJSON ContentType = "application/json"

// ContentType represents all possible content types.
type ContentType string

var _ SDK = (*wdSDK)(nil)

var (
	// ErrEmptyKey indicates that an operation was called without a key.
	ErrEmptyKey = errors.New("empty key")

	// ErrInvalidResponse indicates that the service answered with a body
	// that could not be decoded.
	ErrInvalidResponse = errors.New("invalid response body")
)

// SDK contains warmest-data API.
//
//go:generate mockery --name SDK --output=../mocks --filename sdk.go --quiet --note "Copyright (c) Abstract Machines"
type SDK interface {
	// Put stores the value under key and makes key the warmest one.
	// It returns the value the key held before, or nil for a new key.
	//
	// example:
	//  prev, _ := sdk.Put("a", 100)
	//  fmt.Println(prev)
	Put(key string, value int) (*int, errors.SDKError)

	// Get returns the value stored under key and makes key the warmest one.
	// A missing key is reported as an error with status 404.
	//
	// example:
	//  value, _ := sdk.Get("a")
	//  fmt.Println(value)
	Get(key string) (int, errors.SDKError)

	// Remove deletes key and returns its value, or nil when it was absent.
	//
	// example:
	//  prev, _ := sdk.Remove("a")
	//  fmt.Println(prev)
	Remove(key string) (*int, errors.SDKError)

	// Warmest returns the warmest key, or nil when nothing is stored.
	//
	// example:
	//  key, _ := sdk.Warmest()
	//  fmt.Println(key)
	Warmest() (*string, errors.SDKError)

	// Clear removes every stored key.
	//
	// example:
	//  err := sdk.Clear()
	//  fmt.Println(err)
	Clear() errors.SDKError

	// Drain removes the warmest key until nothing is left and returns the
	// removed keys, warmest first.
	//
	// example:
	//  keys, _ := sdk.Drain()
	//  fmt.Println(keys)
	Drain() ([]string, errors.SDKError)

	// Health returns service health check.
	//
	// example:
	//  health, _ := sdk.Health()
	//  fmt.Println(health)
	Health() (HealthInfo, errors.SDKError)
}

type wdSDK struct {
	url    string
	client *http.Client
}

// Config contains sdk configuration parameters.
type Config struct {
	URL             string
	TLSVerification bool
}

// NewSDK returns new warmest-data SDK instance.
func NewSDK(conf Config) SDK {
	return &wdSDK{
		url: conf.URL,
		client: &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: !conf.TLSVerification,
				},
			},
		},
	}
}

func (sdk wdSDK) Put(key string, value int) (*int, errors.SDKError) {
	if key == "" {
		return nil, errors.NewSDKError(ErrEmptyKey)
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, errors.NewSDKError(err)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodPut, sdk.dataURL(key), data, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	return decodeValue(body)
}

func (sdk wdSDK) Get(key string) (int, errors.SDKError) {
	if key == "" {
		return 0, errors.NewSDKError(ErrEmptyKey)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodGet, sdk.dataURL(key), nil, http.StatusOK)
	if sdkerr != nil {
		return 0, sdkerr
	}

	v, sdkerr := decodeValue(body)
	if sdkerr != nil {
		return 0, sdkerr
	}
	if v == nil {
		return 0, errors.NewSDKError(ErrInvalidResponse)
	}

	return *v, nil
}

func (sdk wdSDK) Remove(key string) (*int, errors.SDKError) {
	if key == "" {
		return nil, errors.NewSDKError(ErrEmptyKey)
	}

	_, body, sdkerr := sdk.processRequest(http.MethodDelete, sdk.dataURL(key), nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}

	return decodeValue(body)
}

func (sdk wdSDK) Warmest() (*string, errors.SDKError) {
	url := fmt.Sprintf("%s/warmest", sdk.url)

	_, body, sdkerr := sdk.processRequest(http.MethodGet, url, nil, http.StatusOK)
	if sdkerr != nil {
		return nil, sdkerr
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var key string
	if err := json.Unmarshal(body, &key); err != nil {
		return nil, errors.NewSDKError(errors.Wrap(ErrInvalidResponse, err))
	}

	return &key, nil
}

func (sdk wdSDK) Clear() errors.SDKError {
	url := fmt.Sprintf("%s/data", sdk.url)

	_, _, sdkerr := sdk.processRequest(http.MethodDelete, url, nil, http.StatusNoContent)

	return sdkerr
}

func (sdk wdSDK) Drain() ([]string, errors.SDKError) {
	keys := []string{}
	for {
		key, sdkerr := sdk.Warmest()
		if sdkerr != nil {
			return keys, sdkerr
		}
		if key == nil {
			return keys, nil
		}
		if _, sdkerr := sdk.Remove(*key); sdkerr != nil {
			return keys, sdkerr
		}
		keys = append(keys, *key)
	}
}

func (sdk wdSDK) dataURL(key string) string {
	return fmt.Sprintf("%s/data/%s", sdk.url, url.PathEscape(key))
}

func (sdk wdSDK) processRequest(method, reqURL string, data []byte, expectedRespCodes ...int) (http.Header, []byte, errors.SDKError) {
	req, err := http.NewRequest(method, reqURL, bytes.NewReader(data))
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	req.Header.Add("Content-Type", string(CTJSON))

	resp, err := sdk.client.Do(req)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}
	defer resp.Body.Close()

	sdkerr := errors.CheckError(resp, expectedRespCodes...)
	if sdkerr != nil {
		return make(http.Header), []byte{}, sdkerr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return make(http.Header), []byte{}, errors.NewSDKError(err)
	}

	return resp.Header, body, nil
}

// decodeValue reads a bare JSON integer; an empty body means no value.
func decodeValue(body []byte) (*int, errors.SDKError) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}

	v, err := strconv.Atoi(string(body))
	if err != nil {
		return nil, errors.NewSDKError(errors.Wrap(ErrInvalidResponse, err))
	}

	return &v, nil
}
