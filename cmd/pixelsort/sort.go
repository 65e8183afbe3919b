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
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pixelsort/internal/config"
	"github.com/ajroetker/go-pixelsort/internal/logging"
	"github.com/ajroetker/go-pixelsort/internal/oops"
	"github.com/ajroetker/go-pixelsort/pixelsort"
	"github.com/ajroetker/go-pixelsort/pixelsort/imageio"
)

func newSortCommand(cfg *config.Config) *cobra.Command {
	var output string

	sortCommand := &cobra.Command{
		Use:   "sort <input>",
		Short: "Sort the pixels of an image",
		Long:  "Sort the pixels of an image inside square chunks and write the result. The output defaults to sorted_<input> next to the input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(*cfg, args[0], output)
		},
	}

	flags := sortCommand.Flags()
	flags.StringVarP(&output, "output", "o", "", "Output path (default sorted_<input>)")
	flags.IntVar(&cfg.ChunkSize, "chunk", cfg.ChunkSize, "Chunk edge length in pixels")
	flags.StringVar(&cfg.Key, "key", cfg.Key, "Sort key (see 'pixelsort keys')")
	flags.StringVar(&cfg.Order, "order", cfg.Order, "Sort order, asc or desc")
	flags.IntVar(&cfg.Workers, "workers", cfg.Workers, "Worker goroutines, 0 for GOMAXPROCS")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "Output format (default from the output extension)")

	return sortCommand
}

// defaultOutputPath returns sorted_<name> in the input's directory.
func defaultOutputPath(input string) string {
	dir, name := filepath.Split(input)
	return filepath.Join(dir, "sorted_"+name)
}

func runSort(cfg config.Config, input, output string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if output == "" {
		output = defaultOutputPath(input)
	}

	start := time.Now()
	f, err := os.Open(input)
	if err != nil {
		return oops.New(err, "opening input")
	}
	buf, inputFormat, err := imageio.Decode(f)
	f.Close()
	if err != nil {
		return err
	}

	format := cfg.Format
	if format == "" {
		format = imageio.FormatFromPath(output)
	}
	if format == "" {
		format = inputFormat
	}

	opts, err := cfg.SortOptions(buf.Layout())
	if err != nil {
		return err
	}
	engine := pixelsort.New(cfg.Workers, pixelsort.WithLogger(*logging.GlobalLogger()))
	defer engine.Close()
	if _, err := engine.Sort(buf, opts); err != nil {
		return err
	}

	out, err := os.Create(output)
	if err != nil {
		return oops.New(err, "creating output")
	}
	if err := imageio.Encode(out, buf, format); err != nil {
		out.Close()
		os.Remove(output)
		return err
	}
	if err := out.Close(); err != nil {
		return oops.New(err, "closing output")
	}

	logging.Info().
		Str("input", input).
		Str("output", output).
		Str("format", format).
		Int("width", buf.Width()).
		Int("height", buf.Height()).
		Dur("elapsed", time.Since(start)).
		Msg("Sorted image")
	return nil
}
