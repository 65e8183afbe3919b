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

// Command pixelsort sorts the pixels of an image inside square chunks.
//
// Usage:
//
//	pixelsort sort photo.png                      # writes sorted_photo.png
//	pixelsort sort photo.jpg -o out.png --chunk 32 --key hue --order desc
//	pixelsort keys                                # list sort criteria
//	pixelsort info                                # CPU target and worker defaults
//
// PIXELSORT_LOG_LEVEL and PIXELSORT_WORKERS override the defaults of
// --log-level and --workers.
package main

import (
	"os"

	"github.com/ajroetker/go-pixelsort/internal/logging"
)

func main() {
	defer logging.LogPanics(nil)

	if err := newRootCommand().Execute(); err != nil {
		logging.Error().Err(err).Msg("pixelsort failed")
		os.Exit(1)
	}
}
