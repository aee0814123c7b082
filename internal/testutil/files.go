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

// Package testutil implements helpers for tests.
package testutil

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/ianlewis/go-dictzip"
)

// MakeJSONL encodes records as JSON Lines. Each record is written on its
// own line.
func MakeJSONL(t *testing.T, records ...any) []byte {
	t.Helper()

	var b bytes.Buffer
	for _, r := range records {
		line, err := json.Marshal(r)
		if err != nil {
			t.Fatal(err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// MakeFileOptions are options for MakeTempFile.
type MakeFileOptions struct {
	// Name is the file name. Defaults to "words.jsonl".
	Name string

	// Compress compresses the file. Files with a .dz extension are
	// compressed with dictzip, all others with gzip.
	Compress bool
}

// GetName returns the file name.
func (o *MakeFileOptions) GetName() string {
	if o != nil && o.Name != "" {
		return o.Name
	}
	return "words.jsonl"
}

// MakeTempFile writes data to a new file in a temporary directory and
// returns its path. The directory is removed when the test completes.
func MakeTempFile(t *testing.T, data []byte, opts *MakeFileOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), opts.GetName())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser = nopCloser{f}
	if opts != nil && opts.Compress {
		if strings.EqualFold(filepath.Ext(path), ".dz") {
			w, err = dictzip.NewWriter(f)
			if err != nil {
				t.Fatal(err)
			}
		} else {
			w = gzip.NewWriter(f)
		}
	}

	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// ReadFile returns the contents of the file at path. Files with a .gz or .dz
// extension are decompressed.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var r io.Reader = f
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" || ext == ".dz" {
		z, err := gzip.NewReader(f)
		if err != nil {
			t.Fatal(err)
		}
		defer z.Close()
		r = z
	}

	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}
