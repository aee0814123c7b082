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
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

var (
	// ErrMalformed indicates that a record is not a valid JSON object of the
	// expected shape.
	ErrMalformed = errors.New("malformed record")

	// ErrMissingWord indicates that a record has no headword.
	ErrMissingWord = fmt.Errorf("%w: missing word", ErrMalformed)

	// ErrLineTooLong indicates a line longer than the maximum line size.
	ErrLineTooLong = fmt.Errorf("%w: line too long", ErrMalformed)
)

// Entry is a single dictionary headword record.
type Entry struct {
	// Word is the headword.
	Word string `json:"word"`

	// PartOfSpeech is a short grammatical label such as "noun".
	PartOfSpeech Optional[string] `json:"pos"`

	// Sounds are the pronunciation variants of the word.
	Sounds Optional[[]Sound] `json:"sounds"`

	// Senses are the meanings of the word. The position of each sense
	// determines its display number.
	Senses []Sense `json:"senses"`
}

// Sound is a single pronunciation variant.
type Sound struct {
	IPA Optional[string] `json:"ipa"`
}

// Sense is a single meaning of a word.
type Sense struct {
	// Glosses are plain language definitions of the sense.
	Glosses Optional[[]string] `json:"glosses"`

	// Examples illustrate the sense. They are shared by every gloss.
	Examples Optional[[]Example] `json:"examples"`
}

// Example is a usage example.
type Example struct {
	Text string `json:"text"`
}

// Decode decodes a single JSON encoded record.
func Decode(data []byte) (*Entry, error) {
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if e.Word == "" {
		return nil, ErrMissingWord
	}
	return &e, nil
}
