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

// Package markup formats single lines of Lingvo DSL card markup.
//
// Every body line of a DSL card is indented with a tab. Most lines wrap their
// content in a pair of role tags, e.g.
//
//	\t[p]noun[/p]
//
// Content is written verbatim. No escaping of DSL special characters is
// performed and callers are expected to pass content that is already valid
// DSL.
package markup

import (
	"strings"
)

// Role is the name of a DSL tag identifying the semantic kind of a line.
type Role string

const (
	// PartOfSpeech is the role for grammatical labels.
	PartOfSpeech Role = "p"

	// Transcription is the role for phonetic transcriptions.
	Transcription Role = "t"

	// Translation is the role for translations and glosses.
	Translation Role = "trn"

	// Example is the role for usage examples.
	Example Role = "ex"
)

// Tag returns a single tab indented line with content wrapped in the opening
// and closing tags for role.
func Tag(role Role, content string) string {
	var b strings.Builder
	b.Grow(len(content) + 2*len(role) + 7)
	b.WriteByte('\t')
	writeTagged(&b, role, content)
	b.WriteByte('\n')
	return b.String()
}

func writeTagged(b *strings.Builder, role Role, content string) {
	b.WriteByte('[')
	b.WriteString(string(role))
	b.WriteByte(']')
	b.WriteString(content)
	b.WriteString("[/")
	b.WriteString(string(role))
	b.WriteByte(']')
}

// DisplayNumber returns the 1-based number shown for the sense at the given
// 0-based index.
func DisplayNumber(index int) int {
	return index + 1
}
