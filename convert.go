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
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ianlewis/go-dsl/entry"
)

// ErrInvalidPolicy indicates an unknown malformed record policy.
var ErrInvalidPolicy = errors.New("invalid malformed record policy")

// MalformedPolicy determines what Convert does with records that cannot be
// decoded. Lines longer than [entry.ScannerOptions.MaxLineSize] are
// malformed records too.
type MalformedPolicy int

const (
	// MalformedAbort stops the conversion at the first malformed record
	// and returns its *entry.DecodeError.
	MalformedAbort MalformedPolicy = iota

	// MalformedSkip logs malformed records and continues with the next
	// line.
	MalformedSkip
)

// String implements [fmt.Stringer].
func (p MalformedPolicy) String() string {
	switch p {
	case MalformedAbort:
		return "abort"
	case MalformedSkip:
		return "skip"
	default:
		return fmt.Sprintf("MalformedPolicy(%d)", int(p))
	}
}

// ParseMalformedPolicy parses a policy name as returned by
// MalformedPolicy.String. Names are case insensitive.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(s) {
	case "abort":
		return MalformedAbort, nil
	case "skip":
		return MalformedSkip, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// ConvertOptions are options for Convert.
type ConvertOptions struct {
	// Header is the DSL header written before the first entry.
	Header Header

	// Render are the options for rendering entries.
	Render *RenderOptions

	// Scanner are the options for reading input records.
	Scanner *entry.ScannerOptions

	// OnMalformed determines how malformed records are handled.
	OnMalformed MalformedPolicy

	// Logger receives messages about skipped records. Nothing is logged if
	// Logger is nil.
	Logger *slog.Logger
}

// Stats are statistics about a conversion.
type Stats struct {
	// Lines is the number of input lines read.
	Lines int

	// Written is the number of entries written.
	Written int

	// Skipped is the number of malformed records that were skipped.
	Skipped int
}

// Convert reads JSON Lines records from r and writes a DSL dictionary to w.
// Records are processed strictly one at a time: each line is decoded,
// rendered and written before the next line is read.
//
// Output written before an error is flushed to w.
func Convert(r io.Reader, w io.Writer, options *ConvertOptions) (Stats, error) {
	if options == nil {
		options = &ConvertOptions{}
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var stats Stats
	dw := NewWriter(w, options.Render)
	if err := dw.WriteHeader(options.Header); err != nil {
		return stats, err
	}

	err := convertEntries(entry.NewScanner(r, options.Scanner), dw, options.OnMalformed, logger, &stats)
	if flushErr := dw.Flush(); err == nil {
		err = flushErr
	}
	return stats, err
}

func convertEntries(s *entry.Scanner, dw *Writer, policy MalformedPolicy, logger *slog.Logger, stats *Stats) error {
	for s.Scan() {
		stats.Lines++
		e, err := s.Entry()
		if err != nil {
			if policy != MalformedSkip {
				return err
			}
			logger.Warn("skipping malformed record",
				slog.Int("line", s.Line()),
				slog.Any("error", err),
			)
			stats.Skipped++
			continue
		}

		if err := dw.WriteEntry(e); err != nil {
			return err
		}
		stats.Written++
		logger.Debug("wrote entry", slog.String("word", e.Word), slog.Int("line", s.Line()))
	}
	//nolint:wrapcheck // error is already wrapped by the scanner.
	return s.Err()
}
