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
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Card is a single dictionary card. Body lines are kept as written,
// including their indentation.
type Card struct {
	// Headwords are the headword lines of the card. A DSL card can list
	// several headwords on consecutive lines.
	Headwords []string

	// Body are the indented lines of the card.
	Body []string
}

// String returns the card as written in a DSL file.
func (c *Card) String() string {
	var b strings.Builder
	for _, h := range c.Headwords {
		b.WriteString(h)
		b.WriteByte('\n')
	}
	for _, l := range c.Body {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Reader reads the header and cards of a DSL file.
type Reader struct {
	s       *bufio.Scanner
	header  Header
	pending string
	hasNext bool
	card    *Card
}

// NewReader returns a new Reader reading from r. The header is read
// immediately and is available from Header. The header is the run of "#"
// directive lines before the first blank line, so headwords starting with
// "#" after it are read as cards.
func NewReader(r io.Reader) (*Reader, error) {
	s := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	s.Buffer(make([]byte, 0, 64*1024), 16<<20)

	dr := &Reader{s: s}
	directives := 0
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			if directives > 0 {
				// The header ends at the first blank line after it.
				break
			}
			continue
		}
		name, value, ok := parseDirective(line)
		if !ok {
			dr.pending, dr.hasNext = line, true
			break
		}
		dr.header.set(name, value)
		directives++
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	return dr, nil
}

// Header returns the dictionary header.
func (r *Reader) Header() Header {
	return r.header
}

// Scan advances the Reader to the next card. It returns false when there are
// no more cards or an error occurred.
func (r *Reader) Scan() bool {
	r.card = nil
	if !r.hasNext && !r.next() {
		return false
	}

	c := &Card{}
	// Leading body lines without a headword are dropped.
	for r.hasNext && isBody(r.pending) {
		if !r.next() {
			return false
		}
	}
	for r.hasNext && !isBody(r.pending) {
		c.Headwords = append(c.Headwords, r.pending)
		r.next()
	}
	for r.hasNext && isBody(r.pending) {
		c.Body = append(c.Body, r.pending)
		r.next()
	}
	r.card = c
	return true
}

// next reads the next non-empty line into pending.
func (r *Reader) next() bool {
	r.pending, r.hasNext = "", false
	for r.s.Scan() {
		line := r.s.Text()
		// NOTE: indented lines containing only whitespace are body lines.
		if line == "" {
			continue
		}
		r.pending, r.hasNext = line, true
		return true
	}
	return false
}

// Card returns the card read by the most recent call to Scan.
func (r *Reader) Card() *Card {
	return r.card
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	if err := r.s.Err(); err != nil {
		return fmt.Errorf("reading cards: %w", err)
	}
	return nil
}

func isBody(line string) bool {
	return strings.HasPrefix(line, "\t") || strings.HasPrefix(line, " ")
}
