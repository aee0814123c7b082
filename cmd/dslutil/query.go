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

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-dsl"
	"github.com/ianlewis/go-dsl/internal/folding"
	"github.com/ianlewis/go-dsl/internal/index"
)

type headword struct {
	word string
	card *dsl.Card
}

// loadIndex reads all cards in the DSL file at path and indexes them by their
// case folded headwords.
func loadIndex(path string) (*index.Index[headword], error) {
	f, err := dsl.Open(path)
	if err != nil {
		//nolint:wrapcheck // error is already wrapped by Open.
		return nil, err
	}
	defer f.Close()

	r, err := dsl.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	var words []headword
	for r.Scan() {
		c := r.Card()
		for _, w := range c.Headwords {
			words = append(words, headword{word: w, card: c})
		}
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	return index.New(words, func(h headword) string {
		return folding.Key(h.word)
	}), nil
}

// printCards prints the unique cards for the given headwords.
func printCards(w io.Writer, words []headword) error {
	seen := map[*dsl.Card]bool{}
	for _, h := range words {
		if seen[h.card] {
			continue
		}
		seen[h.card] = true
		if _, err := io.WriteString(w, h.card.String()); err != nil {
			return fmt.Errorf("writing card: %w", err)
		}
	}
	return nil
}

func newQueryCommand() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Look up a headword in a DSL dictionary.",
		ArgsUsage: "FILE QUERY",
		Description: "Prints the cards whose headword matches QUERY. Matching ignores case\n" +
			"and differences in whitespace.",
		Flags: []cli.Flag{
			newHelpFlag(),
		},
		HideHelp:     true,
		OnUsageError: onUsageError,
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowSubcommandHelp(c))
				return nil
			}

			if c.Args().Len() != 2 {
				return fmt.Errorf("%w: expected FILE and QUERY arguments", ErrFlagParse)
			}
			path, query := c.Args().Get(0), c.Args().Get(1)

			idx, err := loadIndex(path)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDslutil, err)
			}
			newLogger(c).Debug("loaded index", "path", path, "headwords", idx.Len())

			words := idx.Lookup(folding.Key(query))
			if len(words) == 0 {
				return fmt.Errorf("%w: %q", ErrNotFound, query)
			}
			return printCards(c.App.Writer, words)
		},
	}
}
