// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains cli main function to run the warmest-data CLI.
package main

import (
	"log"

	"github.com/ashr123/warmest-data/cli"
	sdk "github.com/ashr123/warmest-data/pkg/sdk/go"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
)

const urlFlag = "url"

func main() {
	sdkConf := sdk.Config{
		URL:             cli.DefaultURL,
		TLSVerification: false,
	}
	flagURL := sdkConf.URL

	// Root
	rootCmd := &cobra.Command{
		Use: "warmest-cli",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := cli.ParseConfig(sdkConf)
			if err != nil {
				log.Fatalf("Failed to parse config: %s", err)
			}
			if cmd.Flags().Changed(urlFlag) {
				cfg.URL = flagURL
			}
			cli.SetSDK(sdk.NewSDK(cfg))
		},
	}

	cc.Init(&cc.Config{
		RootCmd:  rootCmd,
		Headings: cc.HiCyan + cc.Bold + cc.Underline,
		Commands: cc.HiYellow + cc.Bold,
		Example:  cc.Italic,
		ExecName: cc.Bold,
		Flags:    cc.Bold,
	})

	// API commands
	dataCmd := cli.NewDataCmd()
	healthCmd := cli.NewHealthCmd()
	versionCmd := cli.NewVersionCmd()
	configCmd := cli.NewConfigCmd()

	// Root Commands
	rootCmd.AddCommand(dataCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	// Root Flags
	rootCmd.PersistentFlags().StringVarP(
		&flagURL,
		urlFlag,
		"u",
		flagURL,
		"warmest-data service URL",
	)

	rootCmd.PersistentFlags().StringVarP(
		&cli.ConfigPath,
		"config",
		"c",
		"",
		"Config path",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&cli.RawOutput,
		"raw",
		"r",
		false,
		"Enables raw output mode for easier parsing of output",
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
