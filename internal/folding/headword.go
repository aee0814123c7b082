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

// Package folding implements text transformers used to normalize
// headwords.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

type state int

const (
	// leading is the state before the first non-space rune.
	leading state = iota

	// inWord is the state while copying non-space runes.
	inWord

	// inSpace is the state while skipping an internal whitespace span.
	inSpace
)

// Headword folds whitespace in a headword. Leading and trailing whitespace is
// removed and every internal run of whitespace, including tabs and line
// breaks, is replaced by a single ASCII space. The result never begins with a
// tab and never spans more than one line, so it is always read as a headword
// by DSL readers.
type Headword struct {
	state state
}

// Transform implements [transform.Transformer.Transform].
func (h *Headword) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			if h.state == inWord {
				h.state = inSpace
			}
			nSrc += size
			continue
		}

		// NOTE: utf8.RuneError is re-encoded as U+FFFD so its length can
		// differ from size.
		need := utf8.RuneLen(r)
		if h.state == inSpace {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if h.state == inSpace {
			dst[nDst] = ' '
			nDst++
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		h.state = inWord
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (h *Headword) Reset() {
	h.state = leading
}

// Fold returns s with its whitespace folded as by [Headword].
func Fold(s string) string {
	folded, _, err := transform.String(&Headword{}, s)
	if err != nil {
		// Headword never returns an error other than ErrShortDst and
		// ErrShortSrc which are handled by transform.String.
		return s
	}
	return folded
}

// Key returns the lookup key for a headword. Whitespace is folded and the
// result is case folded so that lookups are case insensitive.
func Key(s string) string {
	key, _, err := transform.String(transform.Chain(&Headword{}, cases.Fold()), s)
	if err != nil {
		return Fold(s)
	}
	return key
}
