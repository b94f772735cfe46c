// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	warmestdata "github.com/ashr123/warmest-data"
	"github.com/spf13/cobra"
)

type versions struct {
	CLI     string `json:"cli"`
	Service string `json:"service,omitempty"`
}

// NewVersionCmd returns version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI and service version",
		Long:  `Prints the CLI version and the version reported by the service health check`,
		Run: func(cmd *cobra.Command, args []string) {
			v := versions{CLI: warmestdata.Version}
			h, err := sdk.Health()
			if err != nil {
				logErrorCmd(*cmd, err)
			} else {
				v.Service = h.Version
			}

			logJSONCmd(*cmd, v)
		},
	}
}
