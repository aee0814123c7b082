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
	"fmt"
	"io"
	"strings"
)

// BOM is the byte order mark written at the start of every DSL file.
const BOM = "\uFEFF"

const (
	directiveName             = "NAME"
	directiveIndexLanguage    = "INDEX_LANGUAGE"
	directiveContentsLanguage = "CONTENTS_LANGUAGE"
)

// Header holds the values of the DSL header directives.
type Header struct {
	// Name is the dictionary display name.
	Name string

	// IndexLanguage is the language of the headwords, e.g. "SerbianCyrillic".
	IndexLanguage string

	// ContentsLanguage is the language of the card bodies, e.g. "English".
	ContentsLanguage string
}

// String returns the header as written to a DSL file, including the leading
// byte order mark and the terminating blank line.
func (h Header) String() string {
	var b strings.Builder
	b.WriteString(BOM)
	writeDirective(&b, directiveName, h.Name)
	writeDirective(&b, directiveIndexLanguage, h.IndexLanguage)
	writeDirective(&b, directiveContentsLanguage, h.ContentsLanguage)
	b.WriteByte('\n')
	return b.String()
}

func writeDirective(b *strings.Builder, name, value string) {
	b.WriteByte('#')
	b.WriteString(name)
	b.WriteString(" \"")
	b.WriteString(value)
	b.WriteString("\"\n")
}

// WriteHeader writes the DSL header for h to w.
func WriteHeader(w io.Writer, h Header) error {
	if _, err := io.WriteString(w, h.String()); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return nil
}

// parseDirective parses a header line of the form `#NAME "value"`. ok is
// false if line is not a directive.
func parseDirective(line string) (name, value string, ok bool) {
	if !strings.HasPrefix(line, "#") {
		return "", "", false
	}
	name, value, _ = strings.Cut(line[1:], " ")
	value = strings.TrimSpace(value)
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		value = value[1 : len(value)-1]
	}
	return name, value, name != ""
}

// set sets the header field for the directive name. Unknown directives are
// ignored.
func (h *Header) set(name, value string) {
	switch name {
	case directiveName:
		h.Name = value
	case directiveIndexLanguage:
		h.IndexLanguage = value
	case directiveContentsLanguage:
		h.ContentsLanguage = value
	}
}
