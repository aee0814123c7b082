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

// Package dsl implements a library for writing Lingvo DSL dictionaries from
// Wiktionary entry records in pure Go.
//
// A DSL dictionary is a single UTF-8 text file with a byte order mark. It
// contains:
//  1. A header of directives such as #NAME, #INDEX_LANGUAGE and
//     #CONTENTS_LANGUAGE followed by a blank line.
//  2. A sequence of cards. Each card starts with an unindented headword line
//     followed by tab indented body lines. Body lines use bracketed tags such
//     as [p], [t], [trn] and [ex].
//
// DSL files are read by GoldenDict and ABBYY Lingvo. Both accept files
// compressed with dictzip (.dsl.dz).
//
// More info on the DSL format can be found at this URL:
// http://lingvo.helpmax.net/en/troubleshooting/dsl-compiler/
package dsl
