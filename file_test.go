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
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-dsl"
	"github.com/ianlewis/go-dsl/entry"
	"github.com/ianlewis/go-dsl/internal/testutil"
)

type record struct {
	Word   string        `json:"word"`
	POS    string        `json:"pos,omitempty"`
	Senses []recordSense `json:"senses,omitempty"`
}

type recordSense struct {
	Glosses []string `json:"glosses,omitempty"`
}

func TestConvertFile(t *testing.T) {
	t.Parallel()

	data := testutil.MakeJSONL(t,
		record{Word: "pas", POS: "noun", Senses: []recordSense{{Glosses: []string{"dog"}}}},
		record{Word: "mačka", Senses: []recordSense{{Glosses: []string{"cat"}}}},
	)
	expected := testHeader.String() +
		"pas\n" +
		"\t[p]noun[/p]\n" +
		"\t1) [trn]dog[/trn]\n" +
		"mačka\n" +
		"\t1) [trn]cat[/trn]\n"

	tests := []struct {
		name    string
		input   *testutil.MakeFileOptions
		outName string
	}{
		{
			name:    "plain",
			input:   nil,
			outName: "hbs.dsl",
		},
		{
			name:    "gzip input",
			input:   &testutil.MakeFileOptions{Name: "words.jsonl.gz", Compress: true},
			outName: "hbs.dsl",
		},
		{
			name:    "dictzip output",
			input:   nil,
			outName: "hbs.dsl.dz",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			inPath := testutil.MakeTempFile(t, data, test.input)
			outPath := filepath.Join(t.TempDir(), test.outName)

			stats, err := dsl.ConvertFile(inPath, outPath, &dsl.ConvertOptions{Header: testHeader})
			if err != nil {
				t.Fatalf("ConvertFile: %v", err)
			}
			if diff := cmp.Diff(dsl.Stats{Lines: 2, Written: 2}, stats); diff != "" {
				t.Errorf("Stats (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(expected, testutil.ReadFile(t, outPath)); diff != "" {
				t.Errorf("ConvertFile (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestConvertFile_missingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := dsl.ConvertFile(filepath.Join(dir, "missing.jsonl"), filepath.Join(dir, "out.dsl"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("ConvertFile; want: %v, got: %v", fs.ErrNotExist, err)
	}
}

func TestConvertFile_malformed(t *testing.T) {
	t.Parallel()

	inPath := testutil.MakeTempFile(t, []byte("{\"word\":\"pas\"}\n[]\n"), nil)
	outPath := filepath.Join(t.TempDir(), "hbs.dsl")

	_, err := dsl.ConvertFile(inPath, outPath, &dsl.ConvertOptions{Header: testHeader})
	if !errors.Is(err, entry.ErrMalformed) {
		t.Fatalf("ConvertFile; want: %v, got: %v", entry.ErrMalformed, err)
	}

	// Output written before the error is kept.
	if diff := cmp.Diff(testHeader.String()+"pas\n", testutil.ReadFile(t, outPath)); diff != "" {
		t.Errorf("ConvertFile (-want, +got):\n%s", diff)
	}
}
