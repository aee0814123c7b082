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
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// Create creates the DSL output file at path. If the path has a .dz
// extension the file is compressed with dictzip.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}

	if !isExt(path, ".dz") {
		return f, nil
	}

	z, err := dictzip.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}
	return &dictzipFile{z: z, f: f}, nil
}

type dictzipFile struct {
	z *dictzip.Writer
	f *os.File
}

func (d *dictzipFile) Write(p []byte) (int, error) {
	//nolint:wrapcheck // error is wrapped by the caller.
	return d.z.Write(p)
}

func (d *dictzipFile) Close() error {
	zErr := d.z.Close()
	fErr := d.f.Close()
	if err := errors.Join(zErr, fErr); err != nil {
		return fmt.Errorf("closing %q: %w", d.f.Name(), err)
	}
	return nil
}

// Open opens the file at path for reading. Files with a .gz or .dz extension
// are decompressed. Dictzip files are valid gzip files.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	if !isExt(path, ".gz") && !isExt(path, ".dz") {
		return f, nil
	}

	z, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	return &gzipFile{z: z, f: f}, nil
}

type gzipFile struct {
	z *gzip.Reader
	f *os.File
}

func (g *gzipFile) Read(p []byte) (int, error) {
	//nolint:wrapcheck // error is wrapped by the caller.
	return g.z.Read(p)
}

func (g *gzipFile) Close() error {
	zErr := g.z.Close()
	fErr := g.f.Close()
	if err := errors.Join(zErr, fErr); err != nil {
		return fmt.Errorf("closing %q: %w", g.f.Name(), err)
	}
	return nil
}

func isExt(path, ext string) bool {
	return strings.EqualFold(filepath.Ext(path), ext)
}

// ConvertFile converts the JSON Lines file at inPath to a DSL dictionary at
// outPath. The output file is always closed, even on error.
func ConvertFile(inPath, outPath string, options *ConvertOptions) (stats Stats, err error) {
	in, err := Open(inPath)
	if err != nil {
		return stats, err
	}
	defer in.Close()

	out, err := Create(outPath)
	if err != nil {
		return stats, err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()

	stats, err = Convert(in, out, options)
	if err != nil {
		return stats, fmt.Errorf("converting %q: %w", inPath, err)
	}
	return stats, nil
}
