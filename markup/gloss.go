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

package markup

import (
	"strconv"
	"strings"
)

// GlossKind identifies how a gloss is laid out in the output.
type GlossKind int

const (
	// SingleLine is a gloss without line breaks. It is written as a single
	// [trn] tagged line.
	SingleLine GlossKind = iota

	// MultiLine is a pre-formatted gloss containing line breaks. It is
	// written without tags and each continuation line is indented by an
	// extra tab.
	MultiLine
)

// String implements [fmt.Stringer].
func (k GlossKind) String() string {
	switch k {
	case SingleLine:
		return "SingleLine"
	case MultiLine:
		return "MultiLine"
	default:
		return "GlossKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Gloss is gloss text classified by layout.
type Gloss struct {
	Kind GlossKind
	Text string
}

// ParseGloss classifies text as a single line or multi-line gloss.
func ParseGloss(text string) Gloss {
	if strings.Contains(text, "\n") {
		return Gloss{Kind: MultiLine, Text: text}
	}
	return Gloss{Kind: SingleLine, Text: text}
}

// UnnumberedTranslation returns the translation line(s) for g without a sense
// number.
func UnnumberedTranslation(g Gloss) string {
	return translation("", g)
}

// NumberedTranslation returns the translation line(s) for g prefixed with
// the sense number n, e.g. "\t1) [trn]dog[/trn]\n".
func NumberedTranslation(n int, g Gloss) string {
	return translation(strconv.Itoa(n)+") ", g)
}

func translation(prefix string, g Gloss) string {
	var b strings.Builder
	b.WriteByte('\t')
	b.WriteString(prefix)
	switch g.Kind {
	case MultiLine:
		// NOTE: multi-line glosses are not wrapped in [trn] tags.
		b.WriteString(strings.ReplaceAll(g.Text, "\n", "\n\t"))
	default:
		writeTagged(&b, Translation, g.Text)
	}
	b.WriteByte('\n')
	return b.String()
}
