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

package index

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type card struct {
	Headword string
	Body     string
}

func TestIndex_Lookup(t *testing.T) {
	t.Parallel()

	cards := []card{
		{Headword: "pas", Body: "dog"},
		{Headword: "mačka", Body: "cat"},
		{Headword: "Pas", Body: "Pas (surname)"},
		{Headword: "kuća", Body: "house"},
	}

	tests := []struct {
		name     string
		key      func(card) string
		query    string
		expected []card
	}{
		{
			name:     "single result",
			key:      func(c card) string { return c.Headword },
			query:    "mačka",
			expected: []card{{Headword: "mačka", Body: "cat"}},
		},
		{
			name:  "multiple results keep order",
			key:   func(c card) string { return strings.ToLower(c.Headword) },
			query: "pas",
			expected: []card{
				{Headword: "pas", Body: "dog"},
				{Headword: "Pas", Body: "Pas (surname)"},
			},
		},
		{
			name:     "case sensitive key",
			key:      func(c card) string { return c.Headword },
			query:    "Pas",
			expected: []card{{Headword: "Pas", Body: "Pas (surname)"}},
		},
		{
			name:     "no results",
			key:      func(c card) string { return c.Headword },
			query:    "pa",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			idx := New(cards, test.key)
			if want, got := len(cards), idx.Len(); want != got {
				t.Fatalf("Len; want: %d, got: %d", want, got)
			}
			if diff := cmp.Diff(test.expected, idx.Lookup(test.query)); diff != "" {
				t.Fatalf("Lookup (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestIndex_empty(t *testing.T) {
	t.Parallel()

	idx := New(nil, func(s string) string { return s })
	if got := idx.Lookup("pas"); got != nil {
		t.Fatalf("Lookup: unexpected result %v", got)
	}
}
