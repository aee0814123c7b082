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

// Package entry implements the dictionary entry record model and a decoder
// for JSON Lines files in the Kaikki/wiktextract format.
//
// Each line of the input holds one JSON object describing a single headword:
//
//	{"word": "pas", "pos": "noun", "sounds": [{"ipa": "pâs"}],
//	 "senses": [{"glosses": ["dog"], "examples": [{"text": "Pas trči."}]}]}
//
// Only the fields needed to build dictionary cards are decoded. Unknown fields
// are ignored.
package entry
