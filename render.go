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
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-dsl/entry"
	"github.com/ianlewis/go-dsl/internal/folding"
	"github.com/ianlewis/go-dsl/markup"
)

// RenderOptions are options for rendering entries.
type RenderOptions struct {
	// FoldHeadwords folds whitespace in headwords. Leading and trailing
	// whitespace is removed and internal whitespace spans are replaced by
	// a single space.
	FoldHeadwords bool

	// StripHTML converts HTML in glosses and examples to plain text. Each
	// line of a gloss is converted separately so multi-line glosses keep
	// their line structure.
	StripHTML bool
}

// DefaultRenderOptions is the default options for rendering entries.
// Entry fields are written verbatim.
var DefaultRenderOptions = &RenderOptions{}

// Render returns the DSL lines for a single entry in output order. The
// headword line comes first and is followed by the part of speech,
// transcriptions and numbered translations. Each translation is followed by
// all examples of its sense.
//
// A returned element holds exactly one line, except for multi-line glosses
// which are returned as a single element spanning several lines. Every
// element ends with a line break.
func Render(e *entry.Entry, options *RenderOptions) []string {
	if options == nil {
		options = DefaultRenderOptions
	}

	word := e.Word
	if options.FoldHeadwords {
		word = folding.Fold(word)
	}
	lines := []string{word + "\n"}

	if pos, ok := e.PartOfSpeech.Get(); ok {
		lines = append(lines, markup.Tag(markup.PartOfSpeech, pos))
	}

	sounds, _ := e.Sounds.Get()
	for _, sound := range sounds {
		if ipa, ok := sound.IPA.Get(); ok {
			lines = append(lines, markup.Tag(markup.Transcription, ipa))
		}
	}

	for k, sense := range e.Senses {
		glosses, ok := sense.Glosses.Get()
		if !ok {
			// NOTE: the sense index is still consumed so later senses keep
			// their position based number.
			continue
		}
		examples, _ := sense.Examples.Get()
		n := markup.DisplayNumber(k)
		for _, gloss := range glosses {
			g := markup.ParseGloss(options.text(gloss))
			lines = append(lines, markup.NumberedTranslation(n, g))
			for _, ex := range examples {
				lines = append(lines, markup.Tag(markup.Example, options.text(ex.Text)))
			}
		}
	}

	return lines
}

// text applies the text options to s.
func (o *RenderOptions) text(s string) string {
	if !o.StripHTML {
		return s
	}
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = html2text.HTML2Text(p)
	}
	return strings.Join(parts, "\n")
}
