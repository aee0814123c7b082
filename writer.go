// Copyright 2026 Ian Lewis
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

package dsl

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ianlewis/go-dsl/entry"
)

// Writer writes a DSL dictionary to an underlying writer. Output is buffered
// and Flush must be called after the last entry is written.
type Writer struct {
	w       *bufio.Writer
	options *RenderOptions
}

// NewWriter returns a new Writer writing to w.
func NewWriter(w io.Writer, options *RenderOptions) *Writer {
	if options == nil {
		options = DefaultRenderOptions
	}
	return &Writer{
		w:       bufio.NewWriter(w),
		options: options,
	}
}

// WriteHeader writes the DSL header. It should be called once before any
// entries are written.
func (w *Writer) WriteHeader(h Header) error {
	return WriteHeader(w.w, h)
}

// WriteEntry renders e and writes it as a single card.
func (w *Writer) WriteEntry(e *entry.Entry) error {
	for _, line := range Render(e, w.options) {
		if _, err := w.w.WriteString(line); err != nil {
			return fmt.Errorf("writing %q: %w", e.Word, err)
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
