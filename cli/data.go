// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

var cmdData = []cobra.Command{
	{
		Use:   "put <key> <value>",
		Short: "Put value",
		Long: "Stores the integer value under key, making key the warmest one.\n" +
			"Prints the previous value, or null if the key was new.",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 2 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			value, err := strconv.Atoi(args[1])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			prev, err := sdk.Put(args[0], value)
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, prev)
		},
	},
	{
		Use:   "get <key>",
		Short: "Get value",
		Long:  "Prints the value stored under key and makes key the warmest one",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			value, err := sdk.Get(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, value)
		},
	},
	{
		Use:   "remove <key>",
		Short: "Remove value",
		Long:  "Removes key and prints its value, or null if the key was absent",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 1 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			prev, err := sdk.Remove(args[0])
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, prev)
		},
	},
	{
		Use:   "warmest",
		Short: "Get warmest key",
		Long:  "Prints the most recently put or read key, or null if nothing is stored",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			key, err := sdk.Warmest()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, key)
		},
	},
	{
		Use:   "clear",
		Short: "Clear data",
		Long:  "Removes every stored key",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			if err := sdk.Clear(); err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logOKCmd(*cmd)
		},
	},
	{
		Use:   "drain",
		Short: "Drain data",
		Long:  "Removes the warmest key until nothing is left and prints the removed keys, warmest first",
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) != 0 {
				logUsageCmd(*cmd, cmd.Use)
				return
			}

			keys, err := sdk.Drain()
			if err != nil {
				logErrorCmd(*cmd, err)
				return
			}

			logJSONCmd(*cmd, keys)
		},
	},
}

// NewDataCmd returns data command.
func NewDataCmd() *cobra.Command {
	cmd := cobra.Command{
		Use:   "data [put | get | remove | warmest | clear | drain]",
		Short: "Data management",
		Long:  `Data management: put, get or remove values and find the warmest key`,
	}

	for i := range cmdData {
		cmd.AddCommand(&cmdData[i])
	}

	return &cmd
}
