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

package dsl_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-dsl"
	"github.com/ianlewis/go-dsl/entry"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		entry    *entry.Entry
		options  *dsl.RenderOptions
		expected []string
	}{
		{
			name: "full entry",
			entry: &entry.Entry{
				Word:         "pas",
				PartOfSpeech: entry.Some("noun"),
				Sounds:       entry.Some([]entry.Sound{{IPA: entry.Some("pas")}}),
				Senses: []entry.Sense{
					{
						Glosses:  entry.Some([]string{"dog"}),
						Examples: entry.Some([]entry.Example{{Text: "Pas trči."}}),
					},
				},
			},
			expected: []string{
				"pas\n",
				"\t[p]noun[/p]\n",
				"\t[t]pas[/t]\n",
				"\t1) [trn]dog[/trn]\n",
				"\t[ex]Pas trči.[/ex]\n",
			},
		},
		{
			name: "headword only",
			entry: &entry.Entry{
				Word: "pas",
			},
			expected: []string{"pas\n"},
		},
		{
			name: "empty senses and sounds",
			entry: &entry.Entry{
				Word:   "pas",
				Sounds: entry.Some([]entry.Sound{}),
				Senses: []entry.Sense{},
			},
			expected: []string{"pas\n"},
		},
		{
			name: "multi-line gloss",
			entry: &entry.Entry{
				Word: "pas",
				Senses: []entry.Sense{
					{Glosses: entry.Some([]string{"a\nb"})},
				},
			},
			expected: []string{
				"pas\n",
				"\t1) a\n\tb\n",
			},
		},
		{
			name: "sounds without ipa are skipped",
			entry: &entry.Entry{
				Word: "pas",
				Sounds: entry.Some([]entry.Sound{
					{},
					{IPA: entry.Some("pâs")},
					{},
					{IPA: entry.Some("pȁs")},
				}),
			},
			expected: []string{
				"pas\n",
				"\t[t]pâs[/t]\n",
				"\t[t]pȁs[/t]\n",
			},
		},
		{
			name: "senses without glosses keep numbering",
			entry: &entry.Entry{
				Word: "pas",
				Senses: []entry.Sense{
					{Glosses: entry.Some([]string{"dog"})},
					{Examples: entry.Some([]entry.Example{{Text: "unused"}})},
					{Glosses: entry.Some([]string{}), Examples: entry.Some([]entry.Example{{Text: "unused"}})},
					{Glosses: entry.Some([]string{"belt"})},
				},
			},
			expected: []string{
				"pas\n",
				"\t1) [trn]dog[/trn]\n",
				"\t4) [trn]belt[/trn]\n",
			},
		},
		{
			name: "examples repeat for every gloss",
			entry: &entry.Entry{
				Word: "pas",
				Senses: []entry.Sense{
					{
						Glosses: entry.Some([]string{"dog", "hound"}),
						Examples: entry.Some([]entry.Example{
							{Text: "Pas laje."},
							{Text: "Pas trči."},
						}),
					},
					{
						Glosses: entry.Some([]string{"belt"}),
					},
				},
			},
			expected: []string{
				"pas\n",
				"\t1) [trn]dog[/trn]\n",
				"\t[ex]Pas laje.[/ex]\n",
				"\t[ex]Pas trči.[/ex]\n",
				"\t1) [trn]hound[/trn]\n",
				"\t[ex]Pas laje.[/ex]\n",
				"\t[ex]Pas trči.[/ex]\n",
				"\t2) [trn]belt[/trn]\n",
			},
		},
		{
			name: "fold headwords",
			entry: &entry.Entry{
				Word: "\tdobar \n dan ",
			},
			options:  &dsl.RenderOptions{FoldHeadwords: true},
			expected: []string{"dobar dan\n"},
		},
		{
			name: "headword verbatim by default",
			entry: &entry.Entry{
				Word: "dobar  dan",
			},
			expected: []string{"dobar  dan\n"},
		},
		{
			name: "strip html",
			entry: &entry.Entry{
				Word: "pas",
				Senses: []entry.Sense{
					{
						Glosses:  entry.Some([]string{"<b>dog</b>", "<i>a</i>\n<i>b</i>"}),
						Examples: entry.Some([]entry.Example{{Text: "<i>Pas</i> trči."}}),
					},
				},
			},
			options: &dsl.RenderOptions{StripHTML: true},
			expected: []string{
				"pas\n",
				"\t1) [trn]dog[/trn]\n",
				"\t[ex]Pas trči.[/ex]\n",
				"\t1) a\n\tb\n",
				"\t[ex]Pas trči.[/ex]\n",
			},
		},
		{
			name: "html verbatim by default",
			entry: &entry.Entry{
				Word: "pas",
				Senses: []entry.Sense{
					{Glosses: entry.Some([]string{"<b>dog</b>"})},
				},
			},
			expected: []string{
				"pas\n",
				"\t1) [trn]<b>dog</b>[/trn]\n",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, dsl.Render(test.entry, test.options)); diff != "" {
				t.Fatalf("Render (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestRender_glossExampleCounts checks that a sense with N glosses and M
// examples renders N translation lines each followed by its M examples.
func TestRender_glossExampleCounts(t *testing.T) {
	t.Parallel()

	for n := range 4 {
		for m := range 4 {
			glosses := make([]string, n)
			for i := range glosses {
				glosses[i] = "gloss"
			}
			examples := make([]entry.Example, m)
			for i := range examples {
				examples[i] = entry.Example{Text: "example"}
			}
			e := &entry.Entry{
				Word: "w",
				Senses: []entry.Sense{
					{Glosses: entry.Some(glosses), Examples: entry.Some(examples)},
				},
			}

			lines := dsl.Render(e, nil)[1:]
			if want, got := n*(m+1), len(lines); want != got {
				t.Fatalf("N=%d M=%d: lines; want: %d, got: %d", n, m, want, got)
			}
			for i, line := range lines {
				want := "\t[ex]example[/ex]\n"
				if i%(m+1) == 0 {
					want = "\t1) [trn]gloss[/trn]\n"
				}
				if line != want {
					t.Errorf("N=%d M=%d: line %d; want: %q, got: %q", n, m, i, want, line)
				}
			}
		}
	}
}

func TestRender_idempotent(t *testing.T) {
	t.Parallel()

	e := &entry.Entry{
		Word:         "pas",
		PartOfSpeech: entry.Some("noun"),
		Senses: []entry.Sense{
			{
				Glosses:  entry.Some([]string{"dog", "a\nb"}),
				Examples: entry.Some([]entry.Example{{Text: "Pas trči."}}),
			},
		},
	}

	first := strings.Join(dsl.Render(e, nil), "")
	second := strings.Join(dsl.Render(e, nil), "")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("Render (-first, +second):\n%s", diff)
	}
}
