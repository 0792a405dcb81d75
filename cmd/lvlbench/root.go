// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlbench/sorts"
	"github.com/katalvlaran/lvlbench/stats"
)

func newRootCmd() *cobra.Command {
	logConf := defaultLogConfig()

	root := &cobra.Command{
		Use:          "lvlbench",
		Short:        "Instrumented benchmarks of sorting algorithms",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&logConf.Filename, "log-file", "", "write logs to this file (rotated) instead of stderr")
	pf.StringVar(&logConf.Level, "log-level", logConf.Level, "debug, info, warn or error")
	pf.StringVar(&logConf.Format, "log-format", logConf.Format, "console or json")

	root.AddCommand(newRunCmd(&logConf), newListCmd())

	return root
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List algorithms and normalizer names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "algorithms:  %s\n", strings.Join(sorts.Names(), ", "))
			fmt.Fprintf(out, "normalizers: %s\n", strings.Join(stats.NormalizerNames(), ", "))

			return nil
		},
	}
}
