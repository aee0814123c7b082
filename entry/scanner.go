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

package entry

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DecodeError is an error decoding the record on a specific input line.
type DecodeError struct {
	// Line is the 1-based line number.
	Line int

	// Err is the underlying error. It wraps [ErrMalformed].
	Err error
}

// Error implements [error.Error].
func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ScannerOptions are options for scanning a JSON Lines file.
type ScannerOptions struct {
	// MaxLineSize is the maximum size of a single line in bytes. Longer
	// lines are discarded and reported as a [*DecodeError] wrapping
	// [ErrLineTooLong].
	MaxLineSize int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	MaxLineSize: 16 << 20,
}

// Scanner reads records from a JSON Lines stream one line at a time.
//
// A byte order mark at the start of the stream is skipped. UTF-16 input with
// a byte order mark is converted to UTF-8.
type Scanner struct {
	r           *bufio.Reader
	maxLineSize int
	buf         []byte
	line        int
	entry       *Entry
	err         error
	ioErr       error
}

// NewScanner returns a new Scanner reading from r.
func NewScanner(r io.Reader, options *ScannerOptions) *Scanner {
	if options == nil {
		options = DefaultScannerOptions
	}

	maxLineSize := options.MaxLineSize
	if maxLineSize <= 0 {
		maxLineSize = DefaultScannerOptions.MaxLineSize
	}

	return &Scanner{
		r:           bufio.NewReaderSize(transform.NewReader(r, unicode.BOMOverride(transform.Nop)), min(64*1024, maxLineSize)),
		maxLineSize: maxLineSize,
	}
}

// Scan advances the Scanner to the next line and decodes it. It returns false
// when the scan stops, either by reaching the end of the input or an I/O
// error. A line that fails to decode, or is longer than the maximum line
// size, does not stop the scan. The decode error is returned by Entry
// instead.
func (s *Scanner) Scan() bool {
	s.entry, s.err = nil, nil
	if s.ioErr != nil {
		return false
	}

	line, tooLong, err := s.readLine()
	if err != nil {
		if err != io.EOF {
			s.ioErr = err
		}
		return false
	}
	s.line++

	if tooLong {
		s.err = &DecodeError{Line: s.line, Err: ErrLineTooLong}
		return true
	}

	e, err := Decode(line)
	if err != nil {
		s.err = &DecodeError{Line: s.line, Err: err}
		return true
	}
	s.entry = e
	return true
}

// readLine reads the next line without its line ending. Bytes past the
// maximum line size are read and discarded. io.EOF is returned only when no
// bytes remain.
func (s *Scanner) readLine() ([]byte, bool, error) {
	s.buf = s.buf[:0]
	read := 0
	for {
		chunk, err := s.r.ReadSlice('\n')
		read += len(chunk)
		// Keep room for a trailing "\r\n".
		if len(s.buf)+len(chunk) <= s.maxLineSize+2 {
			s.buf = append(s.buf, chunk...)
		} else {
			s.buf = append(s.buf, chunk[:s.maxLineSize+2-len(s.buf)]...)
		}

		if err == bufio.ErrBufferFull {
			continue
		}
		if err != nil && (err != io.EOF || read == 0) {
			return nil, false, err
		}
		break
	}

	line := s.buf
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	// When more than the kept bytes were read the line ending was discarded
	// with the rest, so the line is too long either way.
	return line, read > s.maxLineSize+2 || len(line) > s.maxLineSize, nil
}

// Entry returns the record decoded by the most recent call to Scan. If the
// line could not be decoded a *DecodeError is returned.
func (s *Scanner) Entry() (*Entry, error) {
	return s.entry, s.err
}

// Line returns the 1-based number of the most recently scanned line.
func (s *Scanner) Line() int {
	return s.line
}

// Err returns the first I/O error encountered by the Scanner.
func (s *Scanner) Err() error {
	if s.ioErr != nil {
		return fmt.Errorf("reading records: %w", s.ioErr)
	}
	return nil
}
