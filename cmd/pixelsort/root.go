// Copyright 2025 go-pixelsort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixelsort/internal/config"
	"github.com/ajroetker/go-pixelsort/internal/logging"
	"github.com/ajroetker/go-pixelsort/pixelsort"
	"github.com/ajroetker/go-pixelsort/pixelsort/dispatch"
	"github.com/ajroetker/go-pixelsort/pixelsort/key"
)

// newRootCommand builds the command tree. Environment overrides are applied
// before flags are bound, so explicit flags win over the environment.
func newRootCommand() *cobra.Command {
	cfg := config.Default()
	envErr := cfg.ApplyEnv(nil)

	rootCommand := &cobra.Command{
		Use:           "pixelsort",
		Short:         "Sort the pixels of an image inside square chunks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			level, err := cfg.Level()
			if err != nil {
				return err
			}
			logging.SetLevel(level)
			return nil
		},
	}
	rootCommand.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (trace, debug, info, warn, error)")

	rootCommand.AddCommand(newSortCommand(&cfg))

	keysCommand := &cobra.Command{
		Use:   "keys",
		Short: "List the available sort keys",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range key.Names() {
				if name == key.Default.String() {
					name += " (default)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
	rootCommand.AddCommand(keysCommand)

	infoCommand := &cobra.Command{
		Use:   "info",
		Short: "Print the detected CPU target and worker defaults",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "SIMD level:     %s\n", dispatch.CurrentName())
			fmt.Fprintf(out, "Vector width:   %d bytes (%d x uint32)\n", dispatch.CurrentWidth(), dispatch.Lanes32())
			fmt.Fprintf(out, "SIMD disabled:  %t\n", dispatch.NoSimdEnv())
			fmt.Fprintf(out, "Workers:        %d\n", workerCount(cfg.Workers))
			fmt.Fprintf(out, "Chunk size:     %d\n", cfg.ChunkSize)
			fmt.Fprintf(out, "Sort keys:      %s\n", strings.Join(key.Names(), ", "))
			fmt.Fprintf(out, "Parallel above: %d pixels\n", pixelsort.MinParallelPixels)
		},
	}
	rootCommand.AddCommand(infoCommand)

	return rootCommand
}

func workerCount(workers int) int {
	if workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return workers
}
