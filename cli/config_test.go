// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ashr123/warmest-data/cli"
	sdk "github.com/ashr123/warmest-data/pkg/sdk/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cli.ConfigPath = filepath.Join(t.TempDir(), "config.toml")
	defer func() {
		cli.ConfigPath = ""
		cli.RawOutput = false
	}()

	conf, err := cli.ParseConfig(sdk.Config{URL: "http://example.com"})
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, cli.DefaultURL, conf.URL)
	assert.False(t, conf.TLSVerification)

	_, err = os.Stat(cli.ConfigPath)
	assert.Nil(t, err, "config file should be created")

	rootCmd := setFlags(cli.NewConfigCmd())
	cases := []struct {
		desc   string
		args   []string
		output string
	}{
		{
			desc:   "set url",
			args:   []string{"url", "https://warmest.example.com:9443"},
			output: "ok",
		},
		{
			desc:   "set tls verification",
			args:   []string{"tls_verification", "true"},
			output: "ok",
		},
		{
			desc:   "set raw output",
			args:   []string{"raw_output", "true"},
			output: "ok",
		},
		{
			desc:   "set invalid url",
			args:   []string{"url", "ftp://warmest.example.com"},
			output: "invalid url",
		},
		{
			desc:   "set unknown key",
			args:   []string{"prefix", "warmest"},
			output: "no such key",
		},
		{
			desc:   "set non boolean tls verification",
			args:   []string{"tls_verification", "maybe"},
			output: "invalid syntax",
		},
		{
			desc:   "set with missing value",
			args:   []string{"url"},
			output: "usage: ",
		},
	}

	for _, tc := range cases {
		out := executeCommand(t, rootCmd, tc.args...)
		assert.True(t, strings.Contains(out, tc.output), fmt.Sprintf("%s: expected output to contain %q, got %q", tc.desc, tc.output, out))
	}

	conf, err = cli.ParseConfig(sdk.Config{})
	require.Nil(t, err, fmt.Sprintf("unexpected error: %s", err))
	assert.Equal(t, "https://warmest.example.com:9443", conf.URL)
	assert.True(t, conf.TLSVerification)
	assert.True(t, cli.RawOutput)
}
